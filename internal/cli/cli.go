// Package cli implements the campusauth command-line interface on top of the
// credential store.
package cli

import (
	"context"
	"errors"

	"github.com/iudanet/campusauth/internal/credstore"
	"github.com/iudanet/campusauth/internal/iocli"
	"github.com/iudanet/campusauth/internal/models"
)

//go:generate moq -out credentials_mock.go . Credentials

// Credentials is the part of the credential store the commands use.
type Credentials interface {
	Register(ctx context.Context, fullName, email, password string) (*models.UserRecord, error)
	Authenticate(ctx context.Context, email, password string) (*models.UserRecord, error)
	IssueResetToken(ctx context.Context, email string) (string, error)
	VerifyResetToken(ctx context.Context, token string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	PurgeExpiredTokens(ctx context.Context) (int, error)
	GetUser(ctx context.Context, email string) (*models.UserRecord, error)
}

var _ Credentials = (*credstore.Store)(nil)

// Cli runs commands against a credential store.
type Cli struct {
	io    iocli.IO
	creds Credentials
}

// New creates a Cli.
func New(console iocli.IO, creds Credentials) *Cli {
	return &Cli{io: console, creds: creds}
}

// failure - ошибка с сообщением для пользователя, исходная ошибка доступна через errors.Is
type failure struct {
	err error
	msg string
}

func (f *failure) Error() string { return f.msg }

func (f *failure) Unwrap() error { return f.err }

// userError переводит ошибку хранилища в сообщение портала
func userError(err error) error {
	var f *failure
	if errors.As(err, &f) {
		return err
	}
	return &failure{err: err, msg: credstore.Message(err)}
}
