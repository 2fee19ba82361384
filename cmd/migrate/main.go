package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"bookshelf/internal/config"
	"bookshelf/internal/platform/postgres"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or inspect the books schema migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", "", "migrations directory (default $MIGRATIONS_DIR or db/migrations)")

	withDB := func(run func(db *sql.DB, dir string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.MigrationsDir
			}
			db, closeDB, err := openDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeDB()
			return run(db, dir)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withDB(func(db *sql.DB, dir string) error {
				if err := goose.Up(db, dir); err != nil {
					return fmt.Errorf("run migrations: %w", err)
				}
				fmt.Println("Migrations applied successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: withDB(func(db *sql.DB, dir string) error {
				if err := goose.Down(db, dir); err != nil {
					return fmt.Errorf("roll back migration: %w", err)
				}
				fmt.Println("Migrations rolled back successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			RunE: withDB(func(db *sql.DB, dir string) error {
				return goose.Status(db, dir)
			}),
		},
		&cobra.Command{
			Use:   "create NAME",
			Short: "Create a new SQL migration",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				if dir == "" {
					dir = cfg.MigrationsDir
				}
				if err := goose.Create(nil, dir, args[0], "sql"); err != nil {
					return fmt.Errorf("create migration: %w", err)
				}
				fmt.Printf("Migration created: %s\n", args[0])
				return nil
			},
		},
	)
	return root
}

func loadConfig() (*config.Config, error) {
	config.LoadEnvFiles()
	return config.Load()
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error) {
	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, cfg.DBTimeout)
	if err != nil {
		return nil, nil, err
	}
	if err := goose.SetDialect("postgres"); err != nil {
		pool.Close()
		return nil, nil, err
	}
	db := stdlib.OpenDBFromPool(pool)
	return db, func() {
		_ = db.Close()
		pool.Close()
	}, nil
}
