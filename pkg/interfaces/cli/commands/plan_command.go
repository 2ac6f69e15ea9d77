package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/eoq/pkg/application/services"
	"github.com/vsinha/eoq/pkg/eoq"
	"github.com/vsinha/eoq/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/eoq/pkg/infrastructure/repositories/yaml"
	"github.com/vsinha/eoq/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	ScenarioFile    string
	OutputFile      string
	Format          string
	Analysis        bool
	DaysOfOperation int
	Verbose         bool
	Help            bool
}

// PlanCommand handles the main planning execution logic
type PlanCommand struct {
	config Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{
		config: config,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("📂 Loading scenario from %s...\n", c.config.ScenarioFile)
	}

	lines, err := c.loadScenario()
	if err != nil {
		return fmt.Errorf("error loading scenario: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("  Loaded %d scenario lines\n", len(lines))
		fmt.Println("⚙️  Evaluating models...")
	}

	service := services.NewPlanningServiceWithConfig(services.PlanConfig{
		Analysis:        c.config.Analysis,
		DaysOfOperation: c.config.DaysOfOperation,
	})

	start := time.Now()
	result, err := service.Plan(ctx, lines)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}
	elapsed := time.Since(start)

	writer, closeWriter, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeWriter()

	return output.Write(writer, result, output.Config{
		Format:  c.config.Format,
		Elapsed: elapsed,
	})
}

func (c *PlanCommand) validateInputs() error {
	if c.config.ScenarioFile == "" {
		return fmt.Errorf("scenario file is required (use -scenario)")
	}
	switch c.config.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unsupported output format: %s (use text, json, or csv)", c.config.Format)
	}
	if c.config.DaysOfOperation < 0 {
		return fmt.Errorf("days of operation cannot be negative")
	}
	return nil
}

// loadScenario picks a loader from the scenario file extension.
func (c *PlanCommand) loadScenario() ([]eoq.ScenarioLine, error) {
	switch filepath.Ext(c.config.ScenarioFile) {
	case ".csv":
		return csv.NewLoader().LoadScenario(c.config.ScenarioFile)
	case ".yaml", ".yml":
		return yaml.NewLoader().LoadScenario(c.config.ScenarioFile)
	default:
		return nil, fmt.Errorf("unsupported scenario file extension: %s (use .csv, .yaml, or .yml)",
			filepath.Ext(c.config.ScenarioFile))
	}
}

func (c *PlanCommand) openOutput() (io.Writer, func(), error) {
	if c.config.OutputFile == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(c.config.OutputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", c.config.OutputFile, err)
	}
	return file, func() { file.Close() }, nil
}

func (c *PlanCommand) showHelp() {
	fmt.Println(`eoq - Economic Order Quantity planning tool

Evaluates EOQ model variants (basic, production, backorder, discount) for
every SKU in a scenario file and reports the recommended order quantities.

Usage:
  eoq -scenario <file> [options]

Options:
  -scenario string   Path to scenario file (.csv, .yaml, or .yml)
  -output string     Write results to a file instead of stdout
  -format string     Output format: text, json, csv (default "text")
  -analysis          Include the per-tier breakdown for discount models
  -days int          Operating days per period; converts day-denominated
                     lead times (0 = lead times already in periods)
  -verbose           Enable verbose output
  -help              Show this help message

Scenario CSV columns:
  sku,model,price,demand_rate,ordering_cost,holding_rate,
  production_rate,shortage_cost,discount_tiers,lead_time,safety_stock

Discount tiers use the form "0:0|500:0.05|1200:0.1".`)
}
