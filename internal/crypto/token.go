package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	// TokenAlphabet - алфавит токенов сброса пароля
	TokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// MinTokenLength - минимальная длина токена
	MinTokenLength = 32
	// DefaultTokenLength - длина токена по умолчанию
	DefaultTokenLength = 32
)

// GenerateToken returns length characters drawn uniformly from TokenAlphabet.
// A nil reader means crypto/rand.
func GenerateToken(random io.Reader, length int) (string, error) {
	if length < MinTokenLength {
		return "", fmt.Errorf("token length must be at least %d, got %d", MinTokenLength, length)
	}
	if random == nil {
		random = rand.Reader
	}

	var b strings.Builder
	b.Grow(length)

	alphabetLen := big.NewInt(int64(len(TokenAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(random, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("%w: failed to generate token: %w", ErrCryptoUnavailable, err)
		}
		b.WriteByte(TokenAlphabet[n.Int64()])
	}

	return b.String(), nil
}
