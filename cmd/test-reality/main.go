// Command test-reality checks the client against the live Algolia Monitoring API
// and reports endpoints whose responses do not decode into the typed records.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var envFile string

	cmd := &cobra.Command{
		Use:   "test-reality",
		Short: "Test go-algolia-monitoring against the live Monitoring API",
		Long: `test-reality calls every Monitoring API endpoint concurrently and prints,
per endpoint, the HTTP status, the duration and any schema issues found while
decoding the response.

Credentials are read from flags, the environment or a .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, envFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.String("api-key", "", "Algolia API key (or ALGOLIA_API_KEY)")
	flags.String("app-id", "", "Algolia application ID (or ALGOLIA_APPLICATION_ID)")
	flags.String("base-url", "", "Monitoring API base URL (or ALGOLIA_MONITORING_BASE_URL)")
	flags.String("clusters", "", "comma separated clusters to query (or ALGOLIA_CLUSTERS)")
	flags.Duration("timeout", 0, "per-request timeout (default 30s)")
	flags.BoolP("verbose", "v", false, "verbose output with debug logs and JSON samples")

	// These should never fail as flags are defined above
	_ = bindSettings(v, flags) //nolint:errcheck

	return cmd
}
