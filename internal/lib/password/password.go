// Package password реализует хеширование паролей и выпуск временных паролей.
//
// GetHash создает bcrypt-хеш пароля для безопасного хранения.
// CompareHash проверяет соответствие пароля сохранённому хешу.
// Generate выпускает одноразовый временный пароль для приглашения или сброса.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// tempAlphabet — алфавит временных паролей. Смешанный регистр, цифры и
// символы; похожие на вид знаки (I, l, 0, 1) исключены, пароль придётся
// набирать руками.
const tempAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789!@#$%"

// TempPasswordLength — длина временного пароля.
const TempPasswordLength = 12

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Generate возвращает временный пароль длиной TempPasswordLength.
// Пароль выдается вызывающему ровно один раз и в открытом виде нигде
// не сохраняется.
func Generate() (string, error) {
	const op = "password.Generate"
	buf := make([]byte, TempPasswordLength)
	max := big.NewInt(int64(len(tempAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		buf[i] = tempAlphabet[n.Int64()]
	}
	return string(buf), nil
}
