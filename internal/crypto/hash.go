package crypto

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Параметры PBKDF2-HMAC-SHA512
const (
	// DefaultIterations - количество итераций PBKDF2 по умолчанию
	DefaultIterations = 100_000
	// MinIterations - нижняя граница для настраиваемого количества итераций
	MinIterations = 100_000
	// DefaultSaltSize - размер соли в байтах (64 hex символа)
	DefaultSaltSize = 32
	// MinSaltSize - нижняя граница для настраиваемого размера соли
	MinSaltSize = 32
	// KeyLen - длина производного ключа, равна размеру выхода SHA512
	KeyLen = sha512.Size
)

// ErrCryptoUnavailable indicates that the random source could not be read.
var ErrCryptoUnavailable = errors.New("crypto unavailable")

// Params controls password hashing cost.
type Params struct {
	Iterations int
	SaltSize   int
}

// DefaultParams returns the parameters used when nothing is configured.
func DefaultParams() Params {
	return Params{
		Iterations: DefaultIterations,
		SaltSize:   DefaultSaltSize,
	}
}

// Validate checks the parameters against the minimums.
func (p Params) Validate() error {
	if p.Iterations < MinIterations {
		return fmt.Errorf("iterations must be at least %d, got %d", MinIterations, p.Iterations)
	}
	if p.SaltSize < MinSaltSize {
		return fmt.Errorf("salt size must be at least %d bytes, got %d", MinSaltSize, p.SaltSize)
	}
	return nil
}

// Hasher produces and verifies password credentials of the form
// hex(salt) || hex(PBKDF2-HMAC-SHA512(password, hex(salt))).
//
// The hex-encoded salt string itself is fed to PBKDF2 as the salt, so
// credentials stay verifiable from the stored string alone.
type Hasher struct {
	rand   io.Reader
	params Params
}

// NewHasher creates a hasher. A nil reader means crypto/rand.
func NewHasher(params Params, random io.Reader) (*Hasher, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}
	return &Hasher{rand: random, params: params}, nil
}

// DefaultHasher returns a hasher with default parameters backed by crypto/rand.
func DefaultHasher() *Hasher {
	return &Hasher{rand: rand.Reader, params: DefaultParams()}
}

// Params returns the hashing parameters in use.
func (h *Hasher) Params() Params {
	return h.params
}

// GenerateSalt генерирует криптографически случайную соль и возвращает ее в hex
func (h *Hasher) GenerateSalt() (string, error) {
	salt := make([]byte, h.params.SaltSize)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("%w: failed to generate salt: %w", ErrCryptoUnavailable, err)
	}
	return hex.EncodeToString(salt), nil
}

// HashPassword returns a new credential string for password.
func (h *Hasher) HashPassword(password string) (string, error) {
	salt, err := h.GenerateSalt()
	if err != nil {
		return "", err
	}
	return salt + h.derive(password, salt), nil
}

// VerifyPassword reports whether candidate matches the stored credential.
// Malformed credentials never match.
func (h *Hasher) VerifyPassword(stored, candidate string) bool {
	salt, key, ok := splitCredential(stored)
	if !ok {
		return false
	}

	computed := h.derive(candidate, salt)

	// Сравнение за постоянное время
	return subtle.ConstantTimeCompare([]byte(computed), []byte(key)) == 1
}

func (h *Hasher) derive(password, salt string) string {
	dk := pbkdf2.Key([]byte(password), []byte(salt), h.params.Iterations, KeyLen, sha512.New)
	return hex.EncodeToString(dk)
}

// splitCredential разделяет строку на hex соль и hex ключ.
// Ключ всегда занимает последние 2*KeyLen символов, соль - все что перед ним.
func splitCredential(stored string) (salt, key string, ok bool) {
	keyHexLen := 2 * KeyLen
	if len(stored) < keyHexLen+2*MinSaltSize {
		return "", "", false
	}

	salt = stored[:len(stored)-keyHexLen]
	key = stored[len(stored)-keyHexLen:]

	if len(salt)%2 != 0 {
		return "", "", false
	}
	if _, err := hex.DecodeString(salt); err != nil {
		return "", "", false
	}
	if _, err := hex.DecodeString(key); err != nil {
		return "", "", false
	}

	return salt, key, true
}
