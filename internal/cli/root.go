// Package cli provides the command-line interface for tvlog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dfir-tools/tvlog/internal/cli/commands"
	"github.com/dfir-tools/tvlog/internal/logging"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "tvlog",
		Short: "Extract session records from TeamViewer log artifacts",
		Long: `tvlog parses TeamViewer connection logs and program log files into
structured session records.

Connection logs (Connections.txt, Connections_incoming.txt) are parsed
line by line into records with derived durations, then optionally
filtered by date range, ranked by duration, or projected to distinct
field values.

Program log files (*Logfile*.log) are scanned for session, logon, IP,
process and keyboard-layout events, pairing start markers with the
immediately following end marker within the same file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(commands.NewIncomingCommand())
	rootCmd.AddCommand(commands.NewOutgoingCommand())
	rootCmd.AddCommand(commands.NewEventsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
