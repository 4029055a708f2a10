package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"chat-assistant/config"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/sqldb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Operate the chat assistant database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(
		newMigrateCmd(),
		newQuotaCmd(),
		newInteractionsCmd(),
		newCalendarEventsCmd(),
	)
	return root
}

// env is what every subcommand needs: config, a quiet logger and the database.
type env struct {
	cfg *config.Config
	l   log.Logger
	db  *sqldb.DB
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	l := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})
	db, err := sqldb.Open(ctx, sqldb.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &env{cfg: cfg, l: l, db: db}, nil
}

func (e *env) retry() sqldb.RetryConfig {
	return sqldb.RetryConfig{Attempts: e.cfg.Database.RetryAttempts, Delay: e.cfg.Database.RetryDelay}
}

func (e *env) Close() error {
	return e.db.Close()
}
