package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dfir-tools/tvlog/pkg/config"
	"github.com/dfir-tools/tvlog/pkg/eventlog"
	"github.com/dfir-tools/tvlog/pkg/output"
)

// EventsOptions holds command-line options for the events command.
type EventsOptions struct {
	Config  string
	Output  string
	Quiet   bool
	Verbose bool

	Kind string
}

// NewEventsCommand creates the events command.
func NewEventsCommand() *cobra.Command {
	opts := &EventsOptions{}

	cmd := &cobra.Command{
		Use:   "events <log-dir>",
		Short: "Scan program log files for session, logon, IP, PID and keyboard events",
		Long: `Scan the program log files (*Logfile*.log) in a directory.

Session and logon start markers pair with the immediately following end
marker within the same file; IP, PID and keyboard events stand alone.
A missing directory is a warning, not an error, and yields an empty
result.

Exit codes:
  0 - Scan completed (possibly zero results)
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "Optional config file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include sources and line positions")
	cmd.Flags().StringVar(&opts.Kind, "kind", "all", "Event kind (sessions|logons|ips|pids|keyboards|all)")

	return cmd
}

func runEvents(cmd *cobra.Command, dir string, opts *EventsOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	kinds, err := parseKinds(opts.Kind)
	if err != nil {
		return err
	}

	scanner, err := eventlog.NewScanner(kinds...)
	if err != nil {
		return err
	}

	results, err := scanner.ScanDirectory(ctx, dir, cfg.LogfileGlob)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}

	report := output.NewEventReport("events ("+opts.Kind+")", results)

	formatter, err := createFormatter(opts.Output, opts.Verbose, opts.Quiet)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func parseKinds(s string) ([]eventlog.Kind, error) {
	if s == "" || s == "all" {
		return nil, nil
	}
	kind := eventlog.Kind(s)
	for _, k := range eventlog.AllKinds {
		if k == kind {
			return []eventlog.Kind{kind}, nil
		}
	}
	return nil, fmt.Errorf("unknown event kind %q (use sessions, logons, ips, pids, keyboards or all)", s)
}
