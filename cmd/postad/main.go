// Command postad browses categories and listings and posts property ads
// against the property API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/config"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/taxonomy"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/transport"
	"github.com/spf13/cobra"
)

type app struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	client   *transport.Client
	taxonomy *taxonomy.Source
}

var (
	configPath string
	apiURL     string
	a          = &app{}
)

var rootCmd = &cobra.Command{
	Use:           "postad",
	Short:         "Browse and post property ads",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadClientConfig(configPath)
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.APIBaseURL = apiURL
		}
		a.cfg = cfg
		a.log = logger.New(cfg.Log)
		a.client = transport.New(cfg.APIBaseURL, cfg.HTTPTimeout, a.log.Logger)
		a.taxonomy = taxonomy.NewSource(a.client, a.log.Logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if a.log != nil {
			_ = a.log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "client config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL, overrides API_BASE_URL")
	rootCmd.AddCommand(categoriesCmd, listingsCmd, showCmd, postCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
