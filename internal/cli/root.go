package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/campusauth/internal/config"
	"github.com/iudanet/campusauth/internal/iocli"
	"github.com/iudanet/campusauth/internal/logging"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// NewRootCommand builds the campusauth command tree using the terminal for
// input and output.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return newRootCommand(info, iocli.NewStdio(), OpenStore)
}

func newRootCommand(info BuildInfo, console iocli.IO, open OpenFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "campusauth",
		Short:         "Campus portal account management",
		Long:          "campusauth registers portal users, checks their passwords and handles password resets.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	// withCli открывает хранилище на время выполнения одной команды
	withCli := func(run func(ctx context.Context, c *Cli, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			creds, closer, err := open(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to open credential store: %w", err)
			}
			defer func() {
				if err := closer.Close(); err != nil {
					logger.Error("failed to close storage", slog.Any("error", err))
				}
			}()

			return run(ctx, New(console, creds), args)
		}
	}

	register := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: withCli(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runRegister(ctx)
		}),
	}

	login := &cobra.Command{
		Use:   "login",
		Short: "Check an email and password",
		Args:  cobra.NoArgs,
		RunE: withCli(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runLogin(ctx)
		}),
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Password reset",
	}
	reset.AddCommand(
		&cobra.Command{
			Use:   "request",
			Short: "Issue a reset token for an account",
			Args:  cobra.NoArgs,
			RunE: withCli(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runResetRequest(ctx)
			}),
		},
		&cobra.Command{
			Use:   "verify <token>",
			Short: "Show which account a reset token belongs to",
			Args:  cobra.ExactArgs(1),
			RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
				return c.runResetVerify(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "confirm <token>",
			Short: "Set a new password using a reset token",
			Args:  cobra.ExactArgs(1),
			RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
				return c.runResetConfirm(ctx, args[0])
			}),
		},
	)

	purge := &cobra.Command{
		Use:   "purge-tokens",
		Short: "Remove expired reset tokens",
		Args:  cobra.NoArgs,
		RunE: withCli(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runPurgeTokens(ctx)
		}),
	}

	user := &cobra.Command{
		Use:   "user <email>",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: withCli(func(ctx context.Context, c *Cli, args []string) error {
			return c.runShowUser(ctx, args[0])
		}),
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			console.Printf("campusauth version %s\n", info.Version)
			console.Printf("Build date: %s\n", info.BuildDate)
			console.Printf("Git commit: %s\n", info.GitCommit)
		},
	}

	root.AddCommand(register, login, reset, purge, user, version)
	return root
}
