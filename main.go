package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/apicombat/go-starter-client/api"
	"github.com/apicombat/go-starter-client/lib/flow"
	"github.com/apicombat/go-starter-client/lib/logger"
)

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	var email, password string

	rootCmd := &cobra.Command{
		Use:   "apicombat-client",
		Short: "Starter client for the API Combat server",
		Long: `apicombat-client plays through the full API Combat game loop:
it registers (or logs in), shows your profile, the unit shop and your
roster, assembles a team, queues a casual battle and waits for the result.

Run with no flags to register a fresh account with generated credentials,
or pass --email and --password together to log in to an existing one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(api.DefaultServerURL)
			runner := flow.NewRunner(client, cmd.OutOrStdout())
			return runner.Run(cmd.Context(), email, password)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&email, "email", "", "Login with existing email")
	rootCmd.Flags().StringVar(&password, "password", "", "Login with existing password")

	return rootCmd
}

func main() {
	logger.Init(false)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
