package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dfir-tools/tvlog/pkg/config"
	"github.com/dfir-tools/tvlog/pkg/connection"
	"github.com/dfir-tools/tvlog/pkg/output"
	"github.com/dfir-tools/tvlog/pkg/query"
)

// ExitCode is set by commands to indicate the result.
var ExitCode = 0

// ConnectionOptions holds command-line options for the incoming and
// outgoing commands.
type ConnectionOptions struct {
	Config  string
	Output  string
	Quiet   bool
	Verbose bool

	After    string
	Before   string
	Shortest bool
	Longest  bool
	Unique   string
}

// NewIncomingCommand creates the incoming command.
func NewIncomingCommand() *cobra.Command {
	return newConnectionCommand(
		"incoming",
		"Parse an incoming-connections log (Connections_incoming.txt)",
		connection.LayoutIncoming,
	)
}

// NewOutgoingCommand creates the outgoing command.
func NewOutgoingCommand() *cobra.Command {
	return newConnectionCommand(
		"outgoing",
		"Parse a connections log (Connections.txt)",
		connection.LayoutConnections,
	)
}

func newConnectionCommand(name, short string, layout connection.Layout) *cobra.Command {
	opts := &ConnectionOptions{}

	cmd := &cobra.Command{
		Use:   name + " <log-file>",
		Short: short,
		Long: short + `.

Every line yields one record; timestamps that fail to parse leave the
field absent and the duration degrades to the layout's sentinel.

Query flags select at most one operation:
  --after/--before   keep records with a start strictly inside the bounds
  --shortest         top 10 sessions by ascending duration
  --longest          top 10 sessions by descending duration
  --unique <field>   one record per distinct id, name or user

Exit codes:
  0 - Records parsed (possibly zero results)
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnections(cmd, args[0], layout, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "Optional config file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include sources and line positions")

	cmd.Flags().StringVar(&opts.After, "after", "", `Keep records starting after this time ("25-12-2020 14:30:00" or "25-12-2020")`)
	cmd.Flags().StringVar(&opts.Before, "before", "", "Keep records starting before this time")
	cmd.Flags().BoolVar(&opts.Shortest, "shortest", false, "Rank the shortest sessions")
	cmd.Flags().BoolVar(&opts.Longest, "longest", false, "Rank the longest sessions")
	cmd.Flags().StringVar(&opts.Unique, "unique", "", "Project distinct values of a field (id|name|user)")

	cmd.MarkFlagsMutuallyExclusive("shortest", "longest", "unique")
	cmd.MarkFlagsMutuallyExclusive("after", "shortest")
	cmd.MarkFlagsMutuallyExclusive("after", "longest")
	cmd.MarkFlagsMutuallyExclusive("after", "unique")
	cmd.MarkFlagsMutuallyExclusive("before", "shortest")
	cmd.MarkFlagsMutuallyExclusive("before", "longest")
	cmd.MarkFlagsMutuallyExclusive("before", "unique")

	return cmd
}

func runConnections(cmd *cobra.Command, path string, layout connection.Layout, opts *ConnectionOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	layout = layout.WithSentinel(sentinelOverride(cfg, layout))
	parser := connection.NewParser(layout, connection.WithTimestampLayout(cfg.TimestampLayout))

	records, err := parser.ParseFile(ctx, path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	linesParsed := len(records)

	warnOnLayoutMismatch(ctx, path, layout)

	records, operation, err := applyQuery(records, layout, cfg, opts)
	if err != nil {
		return err
	}

	report := output.NewConnectionReport(operation, linesParsed, records)

	formatter, err := createFormatter(opts.Output, opts.Verbose, opts.Quiet)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// applyQuery applies the selected filter or projection and names the
// operation for the report header.
func applyQuery(records []connection.Record, layout connection.Layout, cfg *config.Config, opts *ConnectionOptions) ([]connection.Record, string, error) {
	switch {
	case opts.Unique != "":
		field, err := query.ParseField(opts.Unique)
		if err != nil {
			return nil, "", err
		}
		if field == query.FieldDisplayName && !layout.HasDisplayName {
			return nil, "", fmt.Errorf("the %s layout has no display name field", layout.Name)
		}
		return query.Unique(records, field), fmt.Sprintf("%s (unique %s)", layout.Name, field), nil

	case opts.Shortest:
		return query.RankByDuration(records, query.Shortest, cfg.TopN),
			fmt.Sprintf("%s (shortest %d)", layout.Name, cfg.TopN), nil

	case opts.Longest:
		return query.RankByDuration(records, query.Longest, cfg.TopN),
			fmt.Sprintf("%s (longest %d)", layout.Name, cfg.TopN), nil

	case opts.After != "" || opts.Before != "":
		after, err := parseBound(opts.After, cfg.TimestampLayout)
		if err != nil {
			return nil, "", fmt.Errorf("invalid --after: %w", err)
		}
		before, err := parseBound(opts.Before, cfg.TimestampLayout)
		if err != nil {
			return nil, "", fmt.Errorf("invalid --before: %w", err)
		}
		return query.DateRange(records, after, before), layout.Name + " (date range)", nil

	default:
		return records, layout.Name, nil
	}
}

// parseBound parses a date bound, accepting the full timestamp layout or
// a bare date (midnight).
func parseBound(s, layout string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(layout, s); err == nil {
		return &t, nil
	}
	dateOnly, _, _ := timeLayoutSplit(layout)
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("%q does not match %q", s, layout)
	}
	return &t, nil
}

// timeLayoutSplit splits a "date time" layout at the first space.
func timeLayoutSplit(layout string) (string, string, bool) {
	for i := 0; i < len(layout); i++ {
		if layout[i] == ' ' {
			return layout[:i], layout[i+1:], true
		}
	}
	return layout, "", false
}

// warnOnLayoutMismatch samples the file and warns when its token shape
// looks like the other layout. Advisory only; parsing proceeds as asked.
func warnOnLayoutMismatch(ctx context.Context, path string, layout connection.Layout) {
	det, err := connection.DetectLayout(ctx, path, 0)
	if err != nil {
		return
	}
	if det.SampledLines > 0 && det.Layout.Name != layout.Name && det.Confidence >= 0.5 {
		log.Warn().
			Str("file", path).
			Str("requested", layout.Name).
			Str("detected", det.Layout.Name).
			Msg("file shape looks like the other connection-log layout")
	}
}

func sentinelOverride(cfg *config.Config, layout connection.Layout) string {
	if layout.HasDisplayName {
		return cfg.Sentinels.Incoming
	}
	return cfg.Sentinels.Connections
}

func createFormatter(format string, verbose, quiet bool) (output.Formatter, error) {
	opts := output.FormatOptions{
		Verbose: verbose,
		Quiet:   quiet,
	}

	switch format {
	case "text":
		return output.NewTextFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
