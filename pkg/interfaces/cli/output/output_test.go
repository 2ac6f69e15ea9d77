package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/vsinha/eoq/pkg/application/dto"
	"github.com/vsinha/eoq/pkg/eoq"
)

func testResult() *dto.PlanResult {
	cycle := eoq.CycleMetrics{OrderQuantity: 92.38, MaxInventory: 34.64, MaxBackorder: 57.73, TotalCost: 1732.05}
	return &dto.PlanResult{
		ComputedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Lines: []dto.PlanLine{
			{
				SKU:             "WIDGET",
				Model:           eoq.Basic,
				OrderQuantity:   244.95,
				HasReorderPoint: true,
				ReorderPoint:    605,
				UnitPrice:       dto.Money(10),
				TotalCost:       dto.Money(489.9),
			},
			{
				SKU:           "BOLT",
				Model:         eoq.Backorder,
				OrderQuantity: 92.38,
				UnitPrice:     dto.Money(200),
				TotalCost:     dto.Money(1732.05),
				Cycle:         &cycle,
			},
			{
				SKU:           "PLATE",
				Model:         eoq.Discount,
				OrderQuantity: 200,
				UnitPrice:     dto.Money(90),
				TotalCost:     dto.Money(92050),
				Tiers: []eoq.TierEvaluation{
					{MinQuantity: 0, UnitPrice: 100, UnconstrainedEOQ: 70.71, Candidate: 70.71, TotalCost: 101414.21, Feasible: true},
					{MinQuantity: 200, Discount: 0.10, UnitPrice: 90, UnconstrainedEOQ: 74.54, Candidate: 200, TotalCost: 92050, Selected: true},
				},
			},
		},
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testResult(), Config{Format: "text", Elapsed: time.Millisecond})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"WIDGET", "BOLT", "PLATE", "Reorder Point", "Max Backorder", "Tier Analysis", "92050.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected text output to contain %q", want)
		}
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testResult(), Config{Format: "json"})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var doc struct {
		Lines []struct {
			SKU          string   `json:"sku"`
			Model        string   `json:"model"`
			ReorderPoint *float64 `json:"reorder_point"`
			TotalCost    string   `json:"total_cost"`
		} `json:"lines"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if len(doc.Lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(doc.Lines))
	}
	if doc.Lines[0].ReorderPoint == nil || *doc.Lines[0].ReorderPoint != 605 {
		t.Errorf("Unexpected reorder point: %+v", doc.Lines[0])
	}
	if doc.Lines[1].ReorderPoint != nil {
		t.Error("Expected omitted reorder point on backorder line")
	}
	if doc.Lines[2].TotalCost != "92050.00" {
		t.Errorf("Expected total cost 92050.00, got %q", doc.Lines[2].TotalCost)
	}
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testResult(), Config{Format: "csv"})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("Expected header plus 3 records, got %d rows", len(records))
	}
	if records[0][0] != "sku" {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if records[1][3] != "605.00" {
		t.Errorf("Expected reorder point 605.00, got %q", records[1][3])
	}
	if records[2][3] != "" {
		t.Errorf("Expected empty reorder point, got %q", records[2][3])
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testResult(), Config{Format: "xml"}); err == nil {
		t.Fatal("Expected unsupported format to fail")
	}
}
