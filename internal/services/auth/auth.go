// Package services содержит бизнес-логику учётных записей и сессий:
// вход, разбор токена с перечитыванием пользователя, приглашение,
// сброс пароля и удаление.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/vc-metrics/internal/lib/jwt"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/password"
	"github.com/magabrotheeeer/vc-metrics/internal/models"
	"github.com/magabrotheeeer/vc-metrics/internal/storage/repository"
)

// Ошибки бизнес-уровня. Обработчики сопоставляют их со статусами HTTP.
var (
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Наружу оба случая неразличимы, чтобы не раскрывать список аккаунтов.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken — пользователь с таким email уже есть.
	ErrEmailTaken = errors.New("user already exists")
	// ErrUserNotFound — пользователя с таким ID нет.
	ErrUserNotFound = errors.New("user not found")
	// ErrSelfDelete — попытка удалить собственную учётную запись.
	ErrSelfDelete = errors.New("cannot delete own account")
)

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает выданный ID.
	CreateUser(ctx context.Context, email, passwordHash string, isAdmin bool) (int, error)
	// GetUserByEmail возвращает пользователя по email без учёта регистра.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID возвращает пользователя по ID.
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// UpdatePasswordHash перезаписывает только хэш пароля.
	UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error
	// DeleteUser удаляет пользователя по ID.
	DeleteUser(ctx context.Context, id int) error
}

// AuthService отвечает за аутентификацию и управление учётными записями.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Login проверяет учётные данные и выпускает сессионный токен.
// Отсутствующий пользователь и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate разбирает токен и перечитывает пользователя из хранилища.
// Перечитывание на каждом запросе — осознанный выбор: удалённый или
// разжалованный пользователь теряет доступ сразу, не дожидаясь истечения
// токена.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListUsers возвращает всех пользователей.
func (s *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}

// Invite создаёт нового пользователя с временным паролем.
// Открытый временный пароль возвращается ровно один раз и нигде не
// сохраняется; в хранилище попадает только хэш.
func (s *AuthService) Invite(ctx context.Context, email string, isAdmin bool) (*models.User, string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, "", fmt.Errorf("empty email")
	}

	tempPassword, err := password.Generate()
	if err != nil {
		return nil, "", err
	}
	hashed, err := password.GetHash(tempPassword)
	if err != nil {
		return nil, "", err
	}

	id, err := s.users.CreateUser(ctx, normalized, hashed, isAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return user, tempPassword, nil
}

// ResetPassword выпускает новый временный пароль и перезаписывает только хэш.
// Действующие сессии пользователя при этом не отзываются — они истекут
// по TTL токена.
func (s *AuthService) ResetPassword(ctx context.Context, userID int) (string, error) {
	tempPassword, err := password.Generate()
	if err != nil {
		return "", err
	}
	hashed, err := password.GetHash(tempPassword)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, hashed); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return tempPassword, nil
}

// DeleteUser удаляет учётную запись. Удаление собственной записи запрещено,
// чтобы администратор не запер сам себя.
func (s *AuthService) DeleteUser(ctx context.Context, callerID, userID int) error {
	if callerID == userID {
		return ErrSelfDelete
	}
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
