package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/campusauth/internal/credstore"
	"github.com/iudanet/campusauth/internal/iocli"
	"github.com/iudanet/campusauth/internal/models"
	"github.com/iudanet/campusauth/internal/validation"
)

// output собирает все, что команды печатают через IOMock
type output struct {
	b  strings.Builder
	mu sync.Mutex
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.b.String()
}

// newMockIO возвращает IOMock, отвечающий на запросы из answers по тексту подсказки
func newMockIO(answers map[string]string) (*iocli.IOMock, *output) {
	out := &output{}
	answer := func(prompt string) (string, error) {
		value, ok := answers[prompt]
		if !ok {
			return "", io.EOF
		}
		return value, nil
	}

	mockIO := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.mu.Lock()
			defer out.mu.Unlock()
			out.b.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			out.mu.Lock()
			defer out.mu.Unlock()
			out.b.WriteString(fmt.Sprintf(format, a...))
		},
		ReadInputFunc:    answer,
		ReadPasswordFunc: answer,
	}
	return mockIO, out
}

func testUser() *models.UserRecord {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return &models.UserRecord{
		ID:           "0d7f6e1a-7c55-4b57-9b43-2f2a3c5d9e10",
		FullName:     "Ann Lee",
		Email:        "ann@x.io",
		PasswordHash: strings.Repeat("ab", 96),
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func TestCli_runRegister(t *testing.T) {
	ctx := context.Background()

	mockIO, out := newMockIO(map[string]string{
		"Full name: ":        "Ann Lee",
		"Email: ":            "Ann@X.io",
		"Password: ":         "secret1",
		"Confirm password: ": "secret1",
	})
	mockCreds := &CredentialsMock{
		RegisterFunc: func(ctx context.Context, fullName, email, password string) (*models.UserRecord, error) {
			return &models.UserRecord{FullName: fullName, Email: "ann@x.io"}, nil
		},
	}

	err := New(mockIO, mockCreds).runRegister(ctx)
	require.NoError(t, err)

	calls := mockCreds.RegisterCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Ann Lee", calls[0].FullName)
	assert.Equal(t, "Ann@X.io", calls[0].Email)
	assert.Equal(t, "secret1", calls[0].Password)

	assert.Contains(t, out.String(), credstore.MsgRegistered)
	assert.Contains(t, out.String(), "Email: ann@x.io")
	// Пароль читается скрытым вводом
	assert.Len(t, mockIO.ReadPasswordCalls(), 2)
}

func TestCli_runRegister_FormErrors(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]string
		wantErr error
	}{
		{
			name: "password mismatch",
			answers: map[string]string{
				"Full name: ": "Ann Lee", "Email: ": "ann@x.io",
				"Password: ": "secret1", "Confirm password: ": "secret2",
			},
			wantErr: validation.ErrPasswordMismatch,
		},
		{
			name: "short password",
			answers: map[string]string{
				"Full name: ": "Ann Lee", "Email: ": "ann@x.io",
				"Password: ": "abc", "Confirm password: ": "abc",
			},
			wantErr: validation.ErrPasswordTooShort,
		},
		{
			name: "blank name",
			answers: map[string]string{
				"Full name: ": "", "Email: ": "ann@x.io",
				"Password: ": "secret1", "Confirm password: ": "secret1",
			},
			wantErr: validation.ErrMissingFields,
		},
		{
			name: "bad email",
			answers: map[string]string{
				"Full name: ": "Ann Lee", "Email: ": "ann",
				"Password: ": "secret1", "Confirm password: ": "secret1",
			},
			wantErr: validation.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, _ := newMockIO(tt.answers)
			mockCreds := &CredentialsMock{}

			err := New(mockIO, mockCreds).runRegister(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, mockCreds.RegisterCalls(), "store must not be called for an invalid form")
		})
	}
}

func TestCli_runRegister_Duplicate(t *testing.T) {
	mockIO, out := newMockIO(map[string]string{
		"Full name: ":        "Ann Lee",
		"Email: ":            "ann@x.io",
		"Password: ":         "secret1",
		"Confirm password: ": "secret1",
	})
	mockCreds := &CredentialsMock{
		RegisterFunc: func(ctx context.Context, fullName, email, password string) (*models.UserRecord, error) {
			return nil, credstore.ErrAlreadyExists
		},
	}

	err := New(mockIO, mockCreds).runRegister(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, credstore.ErrAlreadyExists)
	assert.Equal(t, "A user with this email already exists.", err.Error())
	assert.NotContains(t, out.String(), credstore.MsgRegistered)
}

func TestCli_runRegister_ReadError(t *testing.T) {
	mockIO, _ := newMockIO(map[string]string{"Full name: ": "Ann Lee"})
	mockCreds := &CredentialsMock{}

	err := New(mockIO, mockCreds).runRegister(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "failed to read email")
}

func TestCli_runLogin(t *testing.T) {
	mockIO, out := newMockIO(map[string]string{
		"Email: ":    "ann@x.io",
		"Password: ": "secret1",
	})
	mockCreds := &CredentialsMock{
		AuthenticateFunc: func(ctx context.Context, email, password string) (*models.UserRecord, error) {
			return testUser(), nil
		},
	}

	err := New(mockIO, mockCreds).runLogin(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Login successful!")
	assert.Contains(t, out.String(), "Logged in as: Ann Lee")
	assert.NotContains(t, out.String(), testUser().PasswordHash)
}

func TestCli_runLogin_Errors(t *testing.T) {
	tests := []struct {
		name     string
		answers  map[string]string
		storeErr error
		wantErr  error
		wantMsg  string
	}{
		{
			name:    "missing password",
			answers: map[string]string{"Email: ": "ann@x.io", "Password: ": ""},
			wantErr: validation.ErrMissingFields,
			wantMsg: "Please fill in all fields.",
		},
		{
			name:     "wrong password",
			answers:  map[string]string{"Email: ": "ann@x.io", "Password: ": "wrong"},
			storeErr: credstore.ErrWrongPassword,
			wantErr:  credstore.ErrWrongPassword,
			wantMsg:  "Incorrect password.",
		},
		{
			name:     "unknown user",
			answers:  map[string]string{"Email: ": "nobody@x.io", "Password: ": "secret1"},
			storeErr: credstore.ErrNotFound,
			wantErr:  credstore.ErrNotFound,
			wantMsg:  "User not found.",
		},
		{
			name:     "storage down",
			answers:  map[string]string{"Email: ": "ann@x.io", "Password: ": "secret1"},
			storeErr: fmt.Errorf("%w: disk gone", credstore.ErrStorageUnavailable),
			wantErr:  credstore.ErrStorageUnavailable,
			wantMsg:  "Account storage is unavailable. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, _ := newMockIO(tt.answers)
			mockCreds := &CredentialsMock{
				AuthenticateFunc: func(ctx context.Context, email, password string) (*models.UserRecord, error) {
					return nil, tt.storeErr
				},
			}

			err := New(mockIO, mockCreds).runLogin(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCli_runResetRequest(t *testing.T) {
	const token = "AbCdEfGhIjKlMnOpQrStUvWxYz012345"

	mockIO, out := newMockIO(map[string]string{"Email: ": "ann@x.io"})
	mockCreds := &CredentialsMock{
		IssueResetTokenFunc: func(ctx context.Context, email string) (string, error) {
			return token, nil
		},
	}

	err := New(mockIO, mockCreds).runResetRequest(context.Background())
	require.NoError(t, err)

	require.Len(t, mockCreds.IssueResetTokenCalls(), 1)
	assert.Equal(t, "ann@x.io", mockCreds.IssueResetTokenCalls()[0].Email)
	assert.Contains(t, out.String(), credstore.MsgTokenIssued)
	assert.Contains(t, out.String(), "Reset token: "+token)
}

func TestCli_runResetRequest_UnknownUser(t *testing.T) {
	mockIO, out := newMockIO(map[string]string{"Email: ": "ghost@x.io"})
	mockCreds := &CredentialsMock{
		IssueResetTokenFunc: func(ctx context.Context, email string) (string, error) {
			return "", credstore.ErrNotFound
		},
	}

	err := New(mockIO, mockCreds).runResetRequest(context.Background())
	require.Error(t, err)
	assert.Equal(t, "User not found.", err.Error())
	assert.NotContains(t, out.String(), "Reset token:")
}

func TestCli_runResetVerify(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		mockIO, out := newMockIO(nil)
		mockCreds := &CredentialsMock{
			VerifyResetTokenFunc: func(ctx context.Context, token string) (string, error) {
				return "ann@x.io", nil
			},
		}

		require.NoError(t, New(mockIO, mockCreds).runResetVerify(context.Background(), "tok"))
		assert.Contains(t, out.String(), "Reset password for: ann@x.io")
	})

	t.Run("expired", func(t *testing.T) {
		mockIO, _ := newMockIO(nil)
		mockCreds := &CredentialsMock{
			VerifyResetTokenFunc: func(ctx context.Context, token string) (string, error) {
				return "", credstore.ErrTokenExpired
			},
		}

		err := New(mockIO, mockCreds).runResetVerify(context.Background(), "tok")
		require.ErrorIs(t, err, credstore.ErrTokenExpired)
		assert.Equal(t, "Token has expired.", err.Error())
	})
}

func TestCli_runResetConfirm(t *testing.T) {
	mockIO, out := newMockIO(map[string]string{
		"New password: ":         "newpass9",
		"Confirm new password: ": "newpass9",
	})
	mockCreds := &CredentialsMock{
		VerifyResetTokenFunc: func(ctx context.Context, token string) (string, error) {
			return "ann@x.io", nil
		},
		ResetPasswordFunc: func(ctx context.Context, token, newPassword string) error {
			return nil
		},
	}

	err := New(mockIO, mockCreds).runResetConfirm(context.Background(), "tok")
	require.NoError(t, err)

	calls := mockCreds.ResetPasswordCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "tok", calls[0].Token)
	assert.Equal(t, "newpass9", calls[0].NewPassword)
	assert.Contains(t, out.String(), "Reset password for: ann@x.io")
	assert.Contains(t, out.String(), credstore.MsgPasswordReset)
}

func TestCli_runResetConfirm_InvalidTokenSkipsPrompt(t *testing.T) {
	mockIO, _ := newMockIO(nil)
	mockCreds := &CredentialsMock{
		VerifyResetTokenFunc: func(ctx context.Context, token string) (string, error) {
			return "", credstore.ErrTokenInvalid
		},
	}

	err := New(mockIO, mockCreds).runResetConfirm(context.Background(), "bogus")
	require.ErrorIs(t, err, credstore.ErrTokenInvalid)
	assert.Equal(t, "Invalid or expired token.", err.Error())
	assert.Empty(t, mockIO.ReadPasswordCalls())
	assert.Empty(t, mockCreds.ResetPasswordCalls())
}

func TestCli_runResetConfirm_Mismatch(t *testing.T) {
	mockIO, _ := newMockIO(map[string]string{
		"New password: ":         "newpass9",
		"Confirm new password: ": "newpass8",
	})
	mockCreds := &CredentialsMock{
		VerifyResetTokenFunc: func(ctx context.Context, token string) (string, error) {
			return "ann@x.io", nil
		},
	}

	err := New(mockIO, mockCreds).runResetConfirm(context.Background(), "tok")
	require.ErrorIs(t, err, validation.ErrPasswordMismatch)
	assert.Empty(t, mockCreds.ResetPasswordCalls())
}

func TestCli_runResetConfirm_TokenUsedMeanwhile(t *testing.T) {
	mockIO, _ := newMockIO(map[string]string{
		"New password: ":         "newpass9",
		"Confirm new password: ": "newpass9",
	})
	mockCreds := &CredentialsMock{
		VerifyResetTokenFunc: func(ctx context.Context, token string) (string, error) {
			return "ann@x.io", nil
		},
		ResetPasswordFunc: func(ctx context.Context, token, newPassword string) error {
			return credstore.ErrTokenInvalid
		},
	}

	err := New(mockIO, mockCreds).runResetConfirm(context.Background(), "tok")
	require.ErrorIs(t, err, credstore.ErrTokenInvalid)
}

func TestCli_runPurgeTokens(t *testing.T) {
	mockIO, out := newMockIO(nil)
	mockCreds := &CredentialsMock{
		PurgeExpiredTokensFunc: func(ctx context.Context) (int, error) {
			return 3, nil
		},
	}

	require.NoError(t, New(mockIO, mockCreds).runPurgeTokens(context.Background()))
	assert.Contains(t, out.String(), "Removed 3 expired reset token(s).")
}

func TestCli_runShowUser(t *testing.T) {
	mockIO, out := newMockIO(nil)
	mockCreds := &CredentialsMock{
		GetUserFunc: func(ctx context.Context, email string) (*models.UserRecord, error) {
			if email != "ann@x.io" {
				return nil, credstore.ErrNotFound
			}
			return testUser(), nil
		},
	}
	c := New(mockIO, mockCreds)

	require.NoError(t, c.runShowUser(context.Background(), "ann@x.io"))
	assert.Contains(t, out.String(), "Full name: Ann Lee")
	assert.Contains(t, out.String(), "2026-03-01T09:30:00Z")
	assert.NotContains(t, out.String(), testUser().PasswordHash)

	err := c.runShowUser(context.Background(), "bob@x.io")
	require.ErrorIs(t, err, credstore.ErrNotFound)
	assert.Equal(t, "User not found.", err.Error())
}

func TestUserError_KeepsExistingMessage(t *testing.T) {
	first := userError(credstore.ErrWrongPassword)
	second := userError(first)

	assert.Same(t, first, second)

	var f *failure
	require.True(t, errors.As(second, &f))
	assert.Equal(t, "Incorrect password.", f.Error())
}
