package models

import (
	"strings"
	"time"
)

// UserRecord представляет зарегистрированного пользователя портала
type UserRecord struct {
	ID           string    `json:"id"`            // UUID пользователя
	FullName     string    `json:"full_name"`     // отображаемое имя, не уникально
	Email        string    `json:"email"`         // нормализованный email (lower case)
	PasswordHash string    `json:"password_hash"` // hex(salt) || hex(PBKDF2 key)
	CreatedAt    time.Time `json:"created_at"`    // время создания
	UpdatedAt    time.Time `json:"updated_at"`    // время последней смены пароля
}

// ResetToken представляет одноразовый токен сброса пароля
type ResetToken struct {
	Token     string    `json:"-"`          // ключ в Document.ResetTokens
	Email     string    `json:"email"`      // нормализованный email владельца
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время выдачи
}

// Expired reports whether the token is past its deadline at now.
func (t *ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Document is the whole persisted aggregate: every user and every
// outstanding reset token. Storage backends read and write it as one unit.
type Document struct {
	Users       []*UserRecord          `json:"users"`
	ResetTokens map[string]*ResetToken `json:"reset_tokens"`
}

// NewDocument returns an empty document ready for use.
func NewDocument() *Document {
	return &Document{
		Users:       []*UserRecord{},
		ResetTokens: map[string]*ResetToken{},
	}
}

// Normalize fills nil collections left by decoding and restores token keys.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []*UserRecord{}
	}
	if d.ResetTokens == nil {
		d.ResetTokens = map[string]*ResetToken{}
	}
	for key, token := range d.ResetTokens {
		if token == nil {
			delete(d.ResetTokens, key)
			continue
		}
		token.Token = key
	}
}

// FindUser returns the user with the given email or nil.
// The email is normalized before comparison.
func (d *Document) FindUser(email string) *UserRecord {
	email = NormalizeEmail(email)
	for _, user := range d.Users {
		if NormalizeEmail(user.Email) == email {
			return user
		}
	}
	return nil
}

// NormalizeEmail приводит email к виду, в котором он хранится и сравнивается
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
