package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const scenarioCSV = `sku,model,price,demand_rate,ordering_cost,holding_rate,production_rate,shortage_cost,discount_tiers,lead_time,safety_stock
WIDGET,basic,10,1200,50,0.2,,,,0.5,5
PLATE,discount,100,1000,50,0.2,,,0:0|100:0.05|200:0.1,,
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestPlanCommand_Execute(t *testing.T) {
	scenario := writeFile(t, "scenario.csv", scenarioCSV)
	outPath := filepath.Join(t.TempDir(), "plan.csv")

	cmd := NewPlanCommand(Config{
		ScenarioFile: scenario,
		OutputFile:   outPath,
		Format:       "csv",
		Analysis:     true,
	})

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "WIDGET") || !strings.Contains(out, "PLATE") {
		t.Errorf("Expected output to contain both SKUs, got:\n%s", out)
	}
}

func TestPlanCommand_Execute_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		config Config
	}{
		{
			name:   "missing scenario",
			config: Config{Format: "text"},
		},
		{
			name:   "bad format",
			config: Config{ScenarioFile: "scenario.csv", Format: "xml"},
		},
		{
			name:   "negative days",
			config: Config{ScenarioFile: "scenario.csv", Format: "text", DaysOfOperation: -1},
		},
		{
			name:   "unsupported extension",
			config: Config{ScenarioFile: "scenario.txt", Format: "text"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := NewPlanCommand(tc.config)
			if err := cmd.Execute(context.Background()); err == nil {
				t.Error("Expected execute to fail")
			}
		})
	}
}

func TestPlanCommand_Execute_Help(t *testing.T) {
	cmd := NewPlanCommand(Config{Help: true})
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Expected help to succeed, got: %v", err)
	}
}
