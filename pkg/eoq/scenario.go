package eoq

import "fmt"

// ModelKind identifies which EOQ variant a scenario line uses.
type ModelKind int

const (
	Basic ModelKind = iota
	Production
	Backorder
	Discount
)

func (k ModelKind) String() string {
	switch k {
	case Basic:
		return "basic"
	case Production:
		return "production"
	case Backorder:
		return "backorder"
	case Discount:
		return "discount"
	default:
		return "unknown"
	}
}

// ParseModelKind parses the textual model kind used in scenario files.
func ParseModelKind(s string) (ModelKind, error) {
	switch s {
	case "basic":
		return Basic, nil
	case "production":
		return Production, nil
	case "backorder":
		return Backorder, nil
	case "discount":
		return Discount, nil
	default:
		return 0, fmt.Errorf("unknown model kind: %q", s)
	}
}

// Model is the calculation surface shared by all four variants.
type Model interface {
	// EOQ returns the variant's optimal order quantity.
	EOQ() float64
	// ReorderPoint returns the reorder point for a lead time in planning
	// periods.
	ReorderPoint(leadTime, safetyStock float64) (float64, error)
}

// ScenarioLine is one SKU's inputs in a planning scenario: the shared
// economic parameters plus whichever extras its model kind needs.
type ScenarioLine struct {
	SKU    string
	Kind   ModelKind
	Params Params

	// ProductionRate applies to Production lines.
	ProductionRate float64
	// ShortageCost applies to Backorder lines.
	ShortageCost float64
	// DiscountRates applies to Discount lines.
	DiscountRates map[int64]float64

	// HasLeadTime marks lines that also want a reorder point.
	HasLeadTime bool
	LeadTime    float64
	SafetyStock float64
}

// Build constructs the model the line describes, validating its parameters.
func (l ScenarioLine) Build() (Model, error) {
	switch l.Kind {
	case Basic:
		return NewBasicModel(l.Params)
	case Production:
		return NewProductionModel(l.Params, l.ProductionRate)
	case Backorder:
		return NewBackorderModel(l.Params, l.ShortageCost)
	case Discount:
		return NewDiscountModel(l.Params, l.DiscountRates)
	default:
		return nil, fmt.Errorf("unknown model kind: %d", l.Kind)
	}
}
