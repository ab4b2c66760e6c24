package cli

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/concurrency/exercises/internal/config"
	"github.com/marcodamonte/concurrency/exercises/internal/driver"
)

type runFlags struct {
	configPath string
	only       []string
	detach     bool
	metrics    bool
}

func (f *runFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML file overriding the default inputs")
	cmd.Flags().StringSliceVar(&f.only, "only", nil, "run only these steps (comma-separated; see `exercises list`)")
	cmd.Flags().BoolVar(&f.detach, "detach", false, "submit the concurrent-work step to a worker pool instead of awaiting it")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "print collected metrics after the run")
}

func runCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every exercise once and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDriver(cmd, f)
		},
	}
	f.bind(cmd)
	return cmd
}

func runDriver(cmd *cobra.Command, f runFlags) error {
	in, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	d := driver.New(driver.Options{
		Out:        cmd.OutOrStdout(),
		Inputs:     in,
		Only:       f.only,
		Detach:     f.detach,
		Logger:     slog.Default(),
		Registerer: reg,
	})

	slog.Debug("run.start", "config", f.configPath, "only", f.only, "detach", f.detach)
	if err := d.Run(cmd.Context()); err != nil {
		return err
	}

	if f.metrics {
		return writeMetrics(cmd, reg)
	}
	return nil
}

func writeMetrics(cmd *cobra.Command, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
