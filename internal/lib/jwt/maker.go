// Package jwt реализует генерацию и парсинг JWT токенов сессии.
//
// Maker определяет интерфейс для выпуска и проверки токенов с идентификатором
// пользователя. MakerImpl — конкретная реализация с использованием секретного
// ключа и срока жизни токена.
package jwt

import (
	"errors"
	"time"
)

// ErrTokenExpired возвращается, когда срок действия токена истёк.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid возвращается при неверной подписи или повреждённом токене.
var ErrTokenInvalid = errors.New("token invalid")

// Maker описывает интерфейс для выпуска и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен с claim userId
	GenerateToken(userID string) (string, error)
	// ParseToken возвращает *Claims с userId
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
