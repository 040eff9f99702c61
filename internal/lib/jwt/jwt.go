// Package jwt реализует выпуск и проверку сессионных JWT токенов.
//
// Токен самодостаточен: идентификатор пользователя и срок действия подписаны
// секретом сервера, серверного списка сессий нет. Logout выполняется на
// стороне клиента простым удалением токена.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Maker описывает интерфейс выпуска и разбора сессионных токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя с заданным ID.
	GenerateToken(userID int) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// CustomClaims описывает полезную нагрузку сессионного токена.
type CustomClaims struct {
	UserID               int `json:"uid"` // Идентификатор пользователя
	jwt.RegisteredClaims     // Стандартные claims (IssuedAt, ExpiresAt)
}

// MakerImpl реализует Maker на секретном ключе и фиксированном TTL.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker создаёт новый MakerImpl.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}

// GenerateToken выпускает подписанный HS256 токен со сроком действия tokenTTL.
func (j *MakerImpl) GenerateToken(userID int) (string, error) {
	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken разбирает токен, проверяет подпись и срок действия.
// Искажённый, чужой или просроченный токен возвращает ошибку — для
// вызывающего это эквивалент отсутствия токена.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
