// Package credstore owns user accounts and password-reset tokens.
//
// All state lives in one document kept by a storage.DocumentStorage. Every
// mutation is a load-modify-save cycle of the whole document performed under
// the store's write lock; reads take the read lock and work on one loaded
// snapshot. Password hashing is CPU-bound and runs before the write lock is
// taken, so anything it depended on is checked again under the lock.
//
// Reset tokens follow Issued -> Consumed | Expired. Verification does not
// consume a token; expiry is enforced lazily when a token is looked at.
package credstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/campusauth/internal/crypto"
	"github.com/iudanet/campusauth/internal/models"
	"github.com/iudanet/campusauth/internal/storage"
)

// Store is the credential store.
type Store struct {
	storage     storage.DocumentStorage
	hasher      *crypto.Hasher
	logger      *slog.Logger
	now         func() time.Time
	random      io.Reader
	tokenTTL    time.Duration
	tokenLength int
	mu          sync.RWMutex
}

// New creates a credential store on top of the given document storage.
func New(docs storage.DocumentStorage, opts ...Option) (*Store, error) {
	if docs == nil {
		return nil, fmt.Errorf("document storage is required")
	}

	s := &Store{
		storage:     docs,
		hasher:      crypto.DefaultHasher(),
		logger:      slog.Default(),
		now:         time.Now,
		tokenTTL:    DefaultTokenTTL,
		tokenLength: crypto.DefaultTokenLength,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.tokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", s.tokenTTL)
	}
	if s.tokenLength < crypto.MinTokenLength {
		return nil, fmt.Errorf("token length must be at least %d, got %d", crypto.MinTokenLength, s.tokenLength)
	}

	return s, nil
}

// Register creates a new user. The email is stored lower-cased and must not
// belong to an existing user.
func (s *Store) Register(ctx context.Context, fullName, email, password string) (*models.UserRecord, error) {
	email = models.NormalizeEmail(email)

	// Быстрая проверка до дорогого хеширования
	exists, err := s.Exists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.WarnContext(ctx, "user already exists", slog.String("email", email))
		return nil, ErrAlreadyExists
	}

	passwordHash, err := s.hasher.HashPassword(password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	// Повторная проверка под блокировкой
	if doc.FindUser(email) != nil {
		s.logger.WarnContext(ctx, "user already exists", slog.String("email", email))
		return nil, ErrAlreadyExists
	}

	now := s.now().UTC()
	user := &models.UserRecord{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	doc.Users = append(doc.Users, user)

	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered successfully",
		slog.String("email", email),
		slog.String("user_id", user.ID))

	return user, nil
}

// Authenticate checks the password of the user with the given email and
// returns the full record, password hash included.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.UserRecord, error) {
	email = models.NormalizeEmail(email)

	user, err := s.GetUser(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "authentication failed: user not found", slog.String("email", email))
		}
		return nil, err
	}

	if !s.hasher.VerifyPassword(user.PasswordHash, password) {
		s.logger.WarnContext(ctx, "authentication failed: wrong password", slog.String("email", email))
		return nil, ErrWrongPassword
	}

	s.logger.InfoContext(ctx, "user authenticated", slog.String("user_id", user.ID))
	return user, nil
}

// Exists reports whether a user with the given email is registered.
func (s *Store) Exists(ctx context.Context, email string) (bool, error) {
	_, err := s.GetUser(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetUser returns the user with the given email or ErrNotFound.
func (s *Store) GetUser(ctx context.Context, email string) (*models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	user := doc.FindUser(email)
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// IssueResetToken creates a reset token for the user with the given email.
// The token is valid for the configured TTL and can be used once.
func (s *Store) IssueResetToken(ctx context.Context, email string) (string, error) {
	email = models.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	if doc.FindUser(email) == nil {
		s.logger.WarnContext(ctx, "reset requested for unknown user", slog.String("email", email))
		return "", ErrNotFound
	}

	token, err := s.newToken(doc)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to generate reset token", slog.Any("error", err))
		return "", err
	}

	now := s.now().UTC()
	doc.ResetTokens[token] = &models.ResetToken{
		Token:     token,
		Email:     email,
		ExpiresAt: now.Add(s.tokenTTL),
		CreatedAt: now,
	}

	if err := s.save(ctx, doc); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "reset token issued",
		slog.String("email", email),
		slog.Time("expires_at", now.Add(s.tokenTTL)))

	return token, nil
}

// newToken генерирует токен, которого еще нет в документе
func (s *Store) newToken(doc *models.Document) (string, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := crypto.GenerateToken(s.random, s.tokenLength)
		if err != nil {
			return "", err
		}
		if _, taken := doc.ResetTokens[token]; !taken {
			return token, nil
		}
	}
	return "", fmt.Errorf("%w: token collisions after %d attempts", ErrCryptoUnavailable, maxTokenAttempts)
}

// VerifyResetToken returns the email the token was issued for without
// consuming it. An expired token is removed and reported as ErrTokenExpired;
// later calls see ErrTokenInvalid.
func (s *Store) VerifyResetToken(ctx context.Context, token string) (string, error) {
	s.mu.RLock()
	doc, err := s.load(ctx)
	s.mu.RUnlock()
	if err != nil {
		return "", err
	}

	resetToken, ok := doc.ResetTokens[token]
	if !ok || token == "" {
		return "", ErrTokenInvalid
	}

	if resetToken.Expired(s.now()) {
		return "", s.expireToken(ctx, token)
	}

	return resetToken.Email, nil
}

// expireToken удаляет просроченный токен и возвращает ошибку для вызывающего
func (s *Store) expireToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	resetToken, ok := doc.ResetTokens[token]
	if !ok {
		// Токен уже удален другой операцией
		return ErrTokenInvalid
	}

	delete(doc.ResetTokens, token)
	if err := s.save(ctx, doc); err != nil {
		return err
	}

	s.logger.WarnContext(ctx, "reset token expired", slog.String("email", resetToken.Email))
	return ErrTokenExpired
}

// ResetPassword sets a new password for the token's owner and consumes the
// token. The password change and the token removal are written together.
func (s *Store) ResetPassword(ctx context.Context, token, newPassword string) error {
	if _, err := s.VerifyResetToken(ctx, token); err != nil {
		return err
	}

	passwordHash, err := s.hasher.HashPassword(newPassword)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	// Токен мог быть использован, пока мы хешировали пароль
	resetToken, ok := doc.ResetTokens[token]
	if !ok {
		return ErrTokenInvalid
	}
	now := s.now()
	if resetToken.Expired(now) {
		delete(doc.ResetTokens, token)
		if err := s.save(ctx, doc); err != nil {
			return err
		}
		return ErrTokenExpired
	}

	user := doc.FindUser(resetToken.Email)
	if user == nil {
		s.logger.WarnContext(ctx, "reset token owner not found", slog.String("email", resetToken.Email))
		return ErrNotFound
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = now.UTC()
	delete(doc.ResetTokens, token)

	if err := s.save(ctx, doc); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "password reset", slog.String("user_id", user.ID))
	return nil
}

// PurgeExpiredTokens removes every expired reset token and returns how many
// were removed.
func (s *Store) PurgeExpiredTokens(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	removed := 0
	for key, token := range doc.ResetTokens {
		if token.Expired(now) {
			delete(doc.ResetTokens, key)
			removed++
		}
	}

	if removed == 0 {
		return 0, nil
	}

	if err := s.save(ctx, doc); err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "expired reset tokens purged", slog.Int("count", removed))
	return removed, nil
}

func (s *Store) load(ctx context.Context) (*models.Document, error) {
	doc, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load credential document", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return doc, nil
}

func (s *Store) save(ctx context.Context, doc *models.Document) error {
	if err := s.storage.Save(ctx, doc); err != nil {
		s.logger.ErrorContext(ctx, "failed to save credential document", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
