package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/campusauth/internal/credstore"
	"github.com/iudanet/campusauth/internal/validation"
)

func (c *Cli) runResetRequest(ctx context.Context) error {
	c.io.Println("=== Reset Password ===")
	c.io.Println("Enter your email to receive a password reset link.")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	if err := validation.Required(email); err != nil {
		return err
	}

	token, err := c.creds.IssueResetToken(ctx, email)
	if err != nil {
		return userError(err)
	}

	c.io.Println()
	c.io.Println("✓ " + credstore.MsgTokenIssued)
	// Токен печатается вместо отправки письма
	c.io.Printf("Reset token: %s\n", token)

	return nil
}

func (c *Cli) runResetVerify(ctx context.Context, token string) error {
	email, err := c.creds.VerifyResetToken(ctx, token)
	if err != nil {
		return userError(err)
	}

	c.io.Println("✓ Token is valid.")
	c.io.Printf("Reset password for: %s\n", email)

	return nil
}

func (c *Cli) runResetConfirm(ctx context.Context, token string) error {
	// Проверяем токен до запроса пароля
	email, err := c.creds.VerifyResetToken(ctx, token)
	if err != nil {
		return userError(err)
	}

	c.io.Println("=== Create New Password ===")
	c.io.Printf("Reset password for: %s\n", email)
	c.io.Println()

	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm new password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if err := validation.ValidateNewPassword(password, confirm); err != nil {
		return err
	}

	if err := c.creds.ResetPassword(ctx, token, password); err != nil {
		return userError(err)
	}

	c.io.Println()
	c.io.Println("✓ " + credstore.MsgPasswordReset)

	return nil
}
