// Command chart renders the benchmark bar charts. Without flags it writes
// the built-in set of charts into the current directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zloyboy/benchchart/batch"
	"github.com/zloyboy/benchchart/config"
)

type options struct {
	configPath string
	outDir     string
	only       []string
	parallel   int
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "chart",
		Short: "Render benchmark bar charts",
		Long: `chart draws annotated bar charts of IPC and thread scaling timings
and saves one image per chart. The image format follows the file extension.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML batch file (default: built-in charts)")
	rootCmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", ".", "Existing directory the images are written to")
	rootCmd.Flags().StringSliceVar(&opts.only, "only", nil, "Render only the charts with these keys")
	rootCmd.Flags().IntVarP(&opts.parallel, "parallel", "p", 1, "Number of charts rendered at once")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output")
	return rootCmd
}

func run(cmd *cobra.Command, opts options) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	b := config.Default()
	if opts.configPath != "" {
		var err error
		if b, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	b, err := b.Filter(opts.only)
	if err != nil {
		return err
	}
	jobs, err := b.Jobs(opts.outDir)
	if err != nil {
		return err
	}

	report := batch.Run(cmd.Context(), jobs, batch.Options{
		Parallelism: opts.parallel,
		Logger:      log,
	})
	if len(report.Failures) > 0 {
		printFailures(cmd.ErrOrStderr(), report, len(jobs))
		return errors.WithMessagef(report.Err(), "%d of %d charts failed", len(report.Failures), len(jobs))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d charts written\n", len(report.Written))
	return nil
}

func printFailures(w io.Writer, report *batch.Report, total int) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(w, "%d of %d charts failed:\n", len(report.Failures), total)
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  %s: %v\n", f.Key, f.Err)
	}
}
