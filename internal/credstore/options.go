package credstore

import (
	"io"
	"log/slog"
	"time"

	"github.com/iudanet/campusauth/internal/crypto"
)

// DefaultTokenTTL - время жизни токена сброса пароля
const DefaultTokenTTL = time.Hour

// maxTokenAttempts bounds regeneration on a token collision.
const maxTokenAttempts = 3

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithHasher sets the password hasher.
func WithHasher(hasher *crypto.Hasher) Option {
	return func(s *Store) {
		if hasher != nil {
			s.hasher = hasher
		}
	}
}

// WithTokenTTL sets how long reset tokens stay valid.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.tokenTTL = ttl
	}
}

// WithTokenLength sets the reset token length.
func WithTokenLength(length int) Option {
	return func(s *Store) {
		s.tokenLength = length
	}
}

// WithRandom sets the random source for reset tokens.
func WithRandom(random io.Reader) Option {
	return func(s *Store) {
		s.random = random
	}
}
