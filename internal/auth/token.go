// Package auth реализует сессию пользователя витрины: регистрацию,
// вход по паролю и подписанные токены сессии.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// TokenSigner выпускает и проверяет подписанные токены сессии.
type TokenSigner struct {
	secretKey []byte
}

// NewTokenSigner создаёт новый экземпляр TokenSigner с указанным секретным ключом.
func NewTokenSigner(secret string) *TokenSigner {
	key := []byte(secret)
	if len(key) == 0 {
		randomKey := make([]byte, 32)
		if _, err := rand.Read(randomKey); err == nil {
			key = randomKey
		} else {
			key = []byte("default-secret-key")
		}
	}

	return &TokenSigner{
		secretKey: key,
	}
}

// Sign возвращает токен сессии для указанного идентификатора пользователя.
func (t *TokenSigner) Sign(userID string) string {
	mac := hmac.New(sha256.New, t.secretKey)
	mac.Write([]byte(userID))
	signature := mac.Sum(nil)
	return userID + "." + hex.EncodeToString(signature)
}

// Parse проверяет подпись токена и возвращает идентификатор пользователя.
func (t *TokenSigner) Parse(token string) (string, bool) {
	idx := strings.LastIndex(token, ".")
	if idx <= 0 || idx == len(token)-1 {
		return "", false
	}

	userID := token[:idx]
	signature := token[idx+1:]

	mac := hmac.New(sha256.New, t.secretKey)
	mac.Write([]byte(userID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return "", false
	}

	return userID, true
}
