package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/portfolio"
)

var rootCmd = &cobra.Command{
	Use:     "portfolio",
	Short:   "Personal portfolio site with an admin console",
	Version: version,
	Example: `portfolio serve
portfolio db init
portfolio admin password --username admin --password 's3cret-pass'`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd(), dbCmd(), adminCmd())
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}

// setup loads the configuration and builds the logger every command uses.
func setup() (portfolio.Config, *zap.Logger, error) {
	cfg := portfolio.LoadConfig()
	log, err := portfolio.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}
