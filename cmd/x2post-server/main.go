package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/tenebris-tech/x2post/internal/config"
	"github.com/tenebris-tech/x2post/internal/logging"
	"github.com/tenebris-tech/x2post/server"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "x2post-server",
		Short:         "Serve the content adapter over HTTP",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(nil)
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnvOverrides()
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := cfg.LogLevel
			if verbose {
				level = logging.LevelDebug
			}
			logger, err := logging.New(level, cfg.LogJSON)
			if err != nil {
				return err
			}
			defer logging.Sync(logger)

			serverCfg := cfg.ServerConfig()
			serverCfg.Version = version

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(serverCfg, logger, cfg.AdapterOptions()...).Start(ctx)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML configuration file")
	f.StringVar(&addr, "addr", server.DefaultConfig().Addr, "listen address")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
