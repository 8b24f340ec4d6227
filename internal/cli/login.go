package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/campusauth/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := validation.Required(email, password); err != nil {
		return err
	}

	user, err := c.creds.Authenticate(ctx, email, password)
	if err != nil {
		return userError(err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as: %s\n", user.FullName)

	return nil
}
