// Package yaml loads planning scenarios from YAML files. It produces the
// same scenario lines as the CSV loader, for hand-maintained scenarios
// where per-SKU tier maps are easier to read in block form.
package yaml

import (
	"fmt"
	"os"

	yamlv2 "gopkg.in/yaml.v2"

	"github.com/vsinha/eoq/pkg/eoq"
)

// Loader handles loading planning scenarios from YAML files
type Loader struct{}

// NewLoader creates a new YAML loader
func NewLoader() *Loader {
	return &Loader{}
}

// scenarioFile is the on-disk document shape.
type scenarioFile struct {
	Lines []scenarioLine `yaml:"lines"`
}

type scenarioLine struct {
	SKU            string            `yaml:"sku"`
	Model          string            `yaml:"model"`
	Price          float64           `yaml:"price"`
	DemandRate     float64           `yaml:"demand_rate"`
	OrderingCost   float64           `yaml:"ordering_cost"`
	HoldingRate    float64           `yaml:"holding_rate"`
	ProductionRate float64           `yaml:"production_rate,omitempty"`
	ShortageCost   float64           `yaml:"shortage_cost,omitempty"`
	DiscountTiers  map[int64]float64 `yaml:"discount_tiers,omitempty"`
	LeadTime       *float64          `yaml:"lead_time,omitempty"`
	SafetyStock    float64           `yaml:"safety_stock,omitempty"`
}

// LoadScenario loads scenario lines from a YAML file
func (l *Loader) LoadScenario(filename string) ([]eoq.ScenarioLine, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file %s: %w", filename, err)
	}

	var file scenarioFile
	if err := yamlv2.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if len(file.Lines) == 0 {
		return nil, fmt.Errorf("scenario YAML must contain at least one line")
	}

	lines := make([]eoq.ScenarioLine, 0, len(file.Lines))
	for i, raw := range file.Lines {
		line, err := raw.toScenarioLine()
		if err != nil {
			return nil, fmt.Errorf("scenario YAML line %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (s scenarioLine) toScenarioLine() (eoq.ScenarioLine, error) {
	var line eoq.ScenarioLine

	if s.SKU == "" {
		return line, fmt.Errorf("sku cannot be empty")
	}
	kind, err := eoq.ParseModelKind(s.Model)
	if err != nil {
		return line, err
	}

	line = eoq.ScenarioLine{
		SKU:  s.SKU,
		Kind: kind,
		Params: eoq.Params{
			Price:        s.Price,
			DemandRate:   s.DemandRate,
			OrderingCost: s.OrderingCost,
			HoldingRate:  s.HoldingRate,
		},
		ProductionRate: s.ProductionRate,
		ShortageCost:   s.ShortageCost,
		DiscountRates:  s.DiscountTiers,
		SafetyStock:    s.SafetyStock,
	}
	if s.LeadTime != nil {
		line.HasLeadTime = true
		line.LeadTime = *s.LeadTime
	}

	return line, nil
}
