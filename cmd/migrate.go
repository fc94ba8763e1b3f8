package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crowdfund/internal/config"
	"crowdfund/internal/db"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := cfg.Log.NewLogger(os.Stdout)
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migration error: %w", err)
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
}
