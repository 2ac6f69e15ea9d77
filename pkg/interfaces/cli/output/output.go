package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/vsinha/eoq/pkg/application/dto"
	"github.com/vsinha/eoq/pkg/eoq"
)

// Config controls how a plan result is rendered
type Config struct {
	// Format is one of text, json, csv
	Format string
	// Elapsed is the planning wall time, shown in the text summary
	Elapsed time.Duration
}

// Write renders the plan result to w in the configured format
func Write(w io.Writer, result *dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return writeText(w, result, config)
	case "json":
		return writeJSON(w, result)
	case "csv":
		return writeCSV(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func writeText(w io.Writer, result *dto.PlanResult, config Config) error {
	var out string

	out += "═══════════════════════════════════════════════════════════════\n"
	out += "                 REPLENISHMENT PLAN RESULTS\n"
	out += "═══════════════════════════════════════════════════════════════\n\n"

	out += "📊 SUMMARY\n"
	out += fmt.Sprintf("  Planning Time: %v\n", config.Elapsed)
	out += fmt.Sprintf("  SKUs Planned: %d\n", len(result.Lines))
	out += "\n"

	out += "📝 RECOMMENDATIONS\n"
	out += "────────────────────────────────────────────────────────────────\n"
	for _, line := range result.Lines {
		out += fmt.Sprintf("SKU: %-20s Model: %-10s Qty: %10.2f\n",
			line.SKU, line.Model, line.OrderQuantity)
		out += fmt.Sprintf("  Unit Price: %-12s Total Cost: %s\n",
			line.UnitPrice.StringFixed(2), line.TotalCost.StringFixed(2))
		if line.HasReorderPoint {
			out += fmt.Sprintf("  Reorder Point: %.2f\n", line.ReorderPoint)
		}
		if line.Cycle != nil {
			out += fmt.Sprintf("  Max Inventory: %.2f  Max Backorder: %.2f\n",
				line.Cycle.MaxInventory, line.Cycle.MaxBackorder)
		}
		if len(line.Tiers) > 0 {
			out += tierTable(line.Tiers)
		}
		out += "\n"
	}

	_, err := io.WriteString(w, out)
	return err
}

func tierTable(tiers []eoq.TierEvaluation) string {
	out := "  Tier Analysis:\n"
	out += "      min_qty  discount  unit_price  candidate    total_cost\n"
	for _, tier := range tiers {
		marker := " "
		if tier.Selected {
			marker = "*"
		}
		out += fmt.Sprintf("  %s %9d  %8.2f  %10.2f  %9.2f  %12.2f\n",
			marker, tier.MinQuantity, tier.Discount, tier.UnitPrice, tier.Candidate, tier.TotalCost)
	}
	return out
}

// jsonLine is the serializable view of a plan line
type jsonLine struct {
	SKU           string               `json:"sku"`
	Model         string               `json:"model"`
	OrderQuantity float64              `json:"order_quantity"`
	ReorderPoint  *float64             `json:"reorder_point,omitempty"`
	UnitPrice     string               `json:"unit_price"`
	TotalCost     string               `json:"total_cost"`
	Cycle         *eoq.CycleMetrics    `json:"cycle,omitempty"`
	Tiers         []eoq.TierEvaluation `json:"tiers,omitempty"`
}

func writeJSON(w io.Writer, result *dto.PlanResult) error {
	lines := make([]jsonLine, 0, len(result.Lines))
	for _, line := range result.Lines {
		jl := jsonLine{
			SKU:           line.SKU,
			Model:         line.Model.String(),
			OrderQuantity: line.OrderQuantity,
			UnitPrice:     line.UnitPrice.StringFixed(2),
			TotalCost:     line.TotalCost.StringFixed(2),
			Cycle:         line.Cycle,
			Tiers:         line.Tiers,
		}
		if line.HasReorderPoint {
			rop := line.ReorderPoint
			jl.ReorderPoint = &rop
		}
		lines = append(lines, jl)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{
		"computed_at": result.ComputedAt,
		"lines":       lines,
	})
}

func writeCSV(w io.Writer, result *dto.PlanResult) error {
	writer := csv.NewWriter(w)

	header := []string{"sku", "model", "order_quantity", "reorder_point", "unit_price", "total_cost"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, line := range result.Lines {
		rop := ""
		if line.HasReorderPoint {
			rop = strconv.FormatFloat(line.ReorderPoint, 'f', 2, 64)
		}
		record := []string{
			line.SKU,
			line.Model.String(),
			strconv.FormatFloat(line.OrderQuantity, 'f', 2, 64),
			rop,
			line.UnitPrice.StringFixed(2),
			line.TotalCost.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record for %s: %w", line.SKU, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
