package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/concurrency/exercises/internal/buildinfo"
	"github.com/marcodamonte/concurrency/exercises/internal/logger"
)

// Execute runs the command line and exits non-zero on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type rootFlags struct {
	debug   bool
	jsonLog bool
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	var rn runFlags

	cmd := &cobra.Command{
		Use:          "exercises",
		Short:        "Run small algorithm and concurrency exercises",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			l := logger.New(cmd.ErrOrStderr(), logger.Config{Debug: rf.debug, JSON: rf.jsonLog})
			slog.SetDefault(l)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDriver(cmd, rn)
		},
	}

	cmd.PersistentFlags().BoolVar(&rf.debug, "debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&rf.jsonLog, "log-json", false, "emit logs as JSON")
	rn.bind(cmd)

	cmd.AddCommand(runCmd(), listCmd(), versionCmd())
	return cmd
}
