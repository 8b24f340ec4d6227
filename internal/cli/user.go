package cli

import (
	"context"
	"time"
)

func (c *Cli) runPurgeTokens(ctx context.Context) error {
	removed, err := c.creds.PurgeExpiredTokens(ctx)
	if err != nil {
		return userError(err)
	}

	c.io.Printf("✓ Removed %d expired reset token(s).\n", removed)
	return nil
}

func (c *Cli) runShowUser(ctx context.Context, email string) error {
	user, err := c.creds.GetUser(ctx, email)
	if err != nil {
		return userError(err)
	}

	// Хеш пароля не выводится
	c.io.Printf("Full name: %s\n", user.FullName)
	c.io.Printf("Email:     %s\n", user.Email)
	c.io.Printf("ID:        %s\n", user.ID)
	c.io.Printf("Created:   %s\n", user.CreatedAt.Format(time.RFC3339))
	c.io.Printf("Updated:   %s\n", user.UpdatedAt.Format(time.RFC3339))

	return nil
}
