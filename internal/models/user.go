// Package models содержит доменные структуры консоли: пользователей,
// отслеживаемые статьи и их счётчики. Структуры используются в бизнес‑логике
// и при работе с хранилищем.
package models

import "time"

// User представляет учётную запись оператора консоли.
type User struct {
	ID           int       // Целочисленный идентификатор, выдается монотонно (max + 1)
	Email        string    // Электронная почта, уникальна без учёта регистра
	PasswordHash string    // bcrypt-хэш пароля
	IsAdmin      bool      // Признак администратора
	CreatedAt    time.Time // Дата создания учётной записи
}

// PublicUser — безопасная проекция пользователя для ответов API.
// Хэш пароля наружу не отдается никогда.
type PublicUser struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Public возвращает проекцию пользователя без чувствительных полей.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
