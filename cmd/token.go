package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"crowdfund/internal/auth"
	"crowdfund/internal/config"
	"crowdfund/internal/core/domain"
)

func tokenCommand() *cobra.Command {
	var actor string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "mint a bearer token for an actor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if actor == "" {
				return errors.New("--actor is required")
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			token, err := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL).Issue(domain.ActorID(actor))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "", "actor the token identifies")
	return cmd
}
