package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/eoq/pkg/eoq"
)

// Loader handles loading planning scenarios from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// expectedHeader is the scenario CSV schema. Model-specific columns may be
// left empty on lines that do not use them.
var expectedHeader = []string{
	"sku", "model", "price", "demand_rate", "ordering_cost", "holding_rate",
	"production_rate", "shortage_cost", "discount_tiers", "lead_time", "safety_stock",
}

// LoadScenario loads scenario lines from a CSV file
func (l *Loader) LoadScenario(filename string) ([]eoq.ScenarioLine, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("scenario CSV must have header and at least one data row")
	}

	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("scenario CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var lines []eoq.ScenarioLine
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("scenario CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		line, err := parseLine(record)
		if err != nil {
			return nil, fmt.Errorf("scenario CSV row %d: %w", i+2, err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(header[i]) != col {
			return false
		}
	}
	return true
}

func parseLine(record []string) (eoq.ScenarioLine, error) {
	var line eoq.ScenarioLine

	line.SKU = strings.TrimSpace(record[0])
	if line.SKU == "" {
		return line, fmt.Errorf("sku cannot be empty")
	}

	kind, err := eoq.ParseModelKind(strings.TrimSpace(record[1]))
	if err != nil {
		return line, err
	}
	line.Kind = kind

	if line.Params.Price, err = parseFloat("price", record[2]); err != nil {
		return line, err
	}
	if line.Params.DemandRate, err = parseFloat("demand_rate", record[3]); err != nil {
		return line, err
	}
	if line.Params.OrderingCost, err = parseFloat("ordering_cost", record[4]); err != nil {
		return line, err
	}
	if line.Params.HoldingRate, err = parseFloat("holding_rate", record[5]); err != nil {
		return line, err
	}

	if cell := strings.TrimSpace(record[6]); cell != "" {
		if line.ProductionRate, err = parseFloat("production_rate", cell); err != nil {
			return line, err
		}
	}
	if cell := strings.TrimSpace(record[7]); cell != "" {
		if line.ShortageCost, err = parseFloat("shortage_cost", cell); err != nil {
			return line, err
		}
	}
	if cell := strings.TrimSpace(record[8]); cell != "" {
		if line.DiscountRates, err = ParseTiers(cell); err != nil {
			return line, err
		}
	}
	if cell := strings.TrimSpace(record[9]); cell != "" {
		if line.LeadTime, err = parseFloat("lead_time", cell); err != nil {
			return line, err
		}
		line.HasLeadTime = true
		if cell := strings.TrimSpace(record[10]); cell != "" {
			if line.SafetyStock, err = parseFloat("safety_stock", cell); err != nil {
				return line, err
			}
		}
	}

	return line, nil
}

func parseFloat(column, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return f, nil
}

// ParseTiers parses a discount tier cell of the form
// "0:0|500:0.05|1200:0.1" into a breakpoint-to-discount map.
func ParseTiers(cell string) (map[int64]float64, error) {
	tiers := make(map[int64]float64)
	for _, pair := range strings.Split(cell, "|") {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid discount tier %q: expected quantity:discount", pair)
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid discount tier quantity %q: %w", parts[0], err)
		}
		discount, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid discount fraction %q: %w", parts[1], err)
		}
		if _, exists := tiers[qty]; exists {
			return nil, fmt.Errorf("duplicate discount tier quantity %d", qty)
		}
		tiers[qty] = discount
	}
	return tiers, nil
}
