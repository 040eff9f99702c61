// Package repository реализует хранилище данных на основе PostgreSQL
// для учётных записей операторов, реестра статей и цены размещения.
// Уникальность (email без учёта регистра, идентификатор статьи) обеспечивают
// ограничения базы, поэтому две конкурирующие вставки не могут пройти
// проверку на дубликат одновременно.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Сервисы сопоставляют их через errors.Is.
var (
	// ErrUserNotFound — пользователь с таким email или ID отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken — пользователь с таким email уже существует.
	ErrEmailTaken = errors.New("email already taken")
	// ErrArticleNotFound — статья с таким ID не отслеживается.
	ErrArticleNotFound = errors.New("article not found")
	// ErrArticleExists — статья с таким ID уже в реестре.
	ErrArticleExists = errors.New("article already tracked")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// isUniqueViolation сообщает, что запрос нарушил уникальное ограничение.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
