package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/eoq/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioFile = flag.String(
			"scenario",
			"",
			"Path to scenario file (.csv, .yaml, or .yml)",
		)
		outputFile = flag.String("output", "", "Write results to a file instead of stdout")
		format     = flag.String("format", "text", "Output format: text, json, csv")
		analysis   = flag.Bool("analysis", false, "Include per-tier breakdown for discount models")
		days       = flag.Int("days", 0, "Operating days per period (0 = lead times already in periods)")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ScenarioFile:    *scenarioFile,
		OutputFile:      *outputFile,
		Format:          *format,
		Analysis:        *analysis,
		DaysOfOperation: *days,
		Verbose:         *verbose,
		Help:            *help,
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
