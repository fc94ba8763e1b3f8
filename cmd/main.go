package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// main is the entry point of the crowdfund service. Each subcommand loads
// configuration from the environment (and an optional .env file) on its
// own, so `token` works without a database.
func main() {
	rootCmd := &cobra.Command{
		Use:           "crowdfund",
		Short:         "single campaign crowdfunding service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		tokenCommand(),
		seedCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
