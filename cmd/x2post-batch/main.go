package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/tenebris-tech/x2post/batch"
	"github.com/tenebris-tech/x2post/internal/config"
	"github.com/tenebris-tech/x2post/internal/logging"
)

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
		configPath   string
		recursive    bool
		outputDir    string
		skipExisting bool
		platforms    []string
		workers      int
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "x2post-batch <file|directory>",
		Short: "Adapt every text file under a directory",
		Long: `Adapts .txt and .md files and writes <name>.x.txt, <name>.linkedin.txt
and <name>.blog.md next to each source, or into --output-dir.
Follows symlinks to directories and tracks real paths to avoid loops.
Files this tool generated are never used as sources.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(nil)
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnvOverrides()

			flags := cmd.Flags()
			cfg.Batch.Recursive = recursive
			if flags.Changed("output-dir") {
				cfg.Batch.OutputDirectory = outputDir
			}
			if flags.Changed("skip-existing") {
				cfg.Batch.SkipExisting = skipExisting
			}
			if flags.Changed("platform") {
				cfg.Batch.Platforms = platforms
			}
			if flags.Changed("workers") {
				cfg.Batch.Workers = workers
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

			opts, err := cfg.BatchOptions()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			opts = append(opts,
				batch.WithLogger(logger),
				batch.WithOnFileStart(func(path string) {
					fmt.Fprintf(out, "Adapting: %s\n", path)
				}),
				batch.WithOnFileComplete(func(path string, outputs []string, err error) {
					if err != nil {
						fmt.Fprintf(out, "  Error: %v\n", err)
						return
					}
					for _, o := range outputs {
						fmt.Fprintf(out, "  Created: %s\n", o)
					}
				}),
				batch.WithOnFileSkipped(func(path, outputPath, reason string) {
					fmt.Fprintf(out, "Skipped: %s (%s)\n", path, reason)
				}),
			)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := batch.New(opts...).Adapt(ctx, args[0])
			if result != nil {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Complete: %d adapted, %d skipped (already exist), %d failed\n",
					result.Adapted, result.Skipped, result.Failed)
			}
			if err != nil {
				return err
			}
			if result.Failed > 0 {
				return errors.Newf("%d file(s) failed", result.Failed)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML configuration file")
	f.BoolVarP(&recursive, "recursive", "r", true, "recursively process directories")
	f.StringVar(&outputDir, "output-dir", "", "output directory for generated files (flat structure)")
	f.BoolVar(&skipExisting, "skip-existing", true, "skip sources whose outputs already exist")
	f.StringSliceVarP(&platforms, "platform", "p", nil, "platform to write: x, linkedin, blog (repeatable, default all)")
	f.IntVarP(&workers, "workers", "w", batch.DefaultWorkers, "files adapted concurrently")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
