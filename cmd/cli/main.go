// tvlog - TeamViewer Log Parser
//
// tvlog extracts structured session records from TeamViewer connection
// logs and program log files, with date-range filtering, duration
// ranking and unique-value projection.
package main

import (
	"os"

	"github.com/dfir-tools/tvlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
