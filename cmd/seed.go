package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/db"
)

func seedCommand() *cobra.Command {
	var (
		actors []string
		amount string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "credit external balances in the postgres custody",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(actors) == 0 {
				return errors.New("--actor is required")
			}
			amt, err := domain.ParseAmount(amount)
			if err != nil {
				return fmt.Errorf("amount: %w", err)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.Store.Driver != configs.StoreDriverPostgres {
				return errors.New("seed needs STORE_DRIVER=postgres; use serve --fund with the memory driver")
			}
			logger := cfg.Log.NewLogger(os.Stdout)

			st, err := openStore(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer st.close()

			if err = db.Seed(cmd.Context(), st.custody, actorIDs(actors), amt); err != nil {
				return err
			}
			logger.Info("actors credited", slog.Int("count", len(actors)), slog.String("amount", amt.String()))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&actors, "actor", nil, "actors to credit")
	cmd.Flags().StringVar(&amount, "amount", "1000000000000000000", "amount credited to each actor")
	return cmd
}
