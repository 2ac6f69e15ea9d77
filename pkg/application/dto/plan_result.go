package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/eoq/pkg/eoq"
)

// PlanResult contains the complete output of a planning run
type PlanResult struct {
	Lines      []PlanLine
	ComputedAt time.Time
}

// PlanLine is the replenishment recommendation for one SKU
type PlanLine struct {
	SKU   string
	Model eoq.ModelKind

	// OrderQuantity is the model's optimal order (or production lot) size.
	OrderQuantity float64

	// ReorderPoint is set when the scenario line carried a lead time.
	HasReorderPoint bool
	ReorderPoint    float64

	// UnitPrice is the effective unit price, rounded to cents. For discount
	// models this is the selected tier's discounted price.
	UnitPrice decimal.Decimal

	// TotalCost is the period cost at the recommended quantity, rounded to
	// cents: ordering + holding for basic and production models, ordering +
	// holding + shortage for backorder models, and purchase + ordering +
	// holding for discount models.
	TotalCost decimal.Decimal

	// Cycle is set for backorder models.
	Cycle *eoq.CycleMetrics

	// Tiers is the per-tier breakdown, set for discount models when the
	// planning run has analysis enabled.
	Tiers []eoq.TierEvaluation
}

// Money rounds a computed cost to cents for presentation.
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
