package main

import (
	"fmt"
	"os"
	"time"

	"github.com/KirkDiggler/starwatch/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newRootCmd builds the starwatch command tree
func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "starwatch",
		Short:         "Announce live broadcasts and post session reports to Discord",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "starwatch.yaml", "config file, missing is fine when everything comes from STARWATCH_ variables")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		setupLogging(cfg.Level())
		return cfg, nil
	}

	root.AddCommand(newRunCmd(load, func() string { return cfgFile }))
	root.AddCommand(newCheckCmd(load))

	return root
}

func setupLogging(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
