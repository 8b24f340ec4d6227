package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/campusauth/internal/credstore"
	"github.com/iudanet/campusauth/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Create an Account ===")
	c.io.Println()

	fullName, err := c.io.ReadInput("Full name: ")
	if err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if err := validation.ValidateSignup(fullName, email, password, confirm); err != nil {
		return err
	}

	user, err := c.creds.Register(ctx, fullName, email, password)
	if err != nil {
		return userError(err)
	}

	c.io.Println()
	c.io.Println("✓ " + credstore.MsgRegistered)
	c.io.Printf("Email: %s\n", user.Email)

	return nil
}
