package eoq

import (
	"math"
	"sort"
)

// Tier is one quantity-discount breakpoint: ordering at least MinQuantity
// units earns the Discount fraction off the base unit price. The tier is
// valid up to (not including) the next tier's breakpoint.
type Tier struct {
	MinQuantity int64
	Discount    float64
}

// PurchaseRecommendation is the cost-minimizing order selected across all
// discount tiers.
type PurchaseRecommendation struct {
	// Quantity is the order quantity to place.
	Quantity float64
	// UnitPrice is the effective (discounted) unit price at that quantity.
	UnitPrice float64
	// TotalCost is the period purchase + ordering + holding cost.
	TotalCost float64
}

// TierEvaluation is the per-tier breakdown produced by Analyze.
type TierEvaluation struct {
	// MinQuantity and Discount identify the tier.
	MinQuantity int64
	Discount    float64
	// UnitPrice is the discounted unit price for the tier.
	UnitPrice float64
	// UnconstrainedEOQ is the EOQ computed at the tier's price, before any
	// clamping to the tier's valid quantity range.
	UnconstrainedEOQ float64
	// Candidate is the quantity actually evaluated for the tier: the
	// unconstrained EOQ when it falls inside the tier's range, otherwise
	// the nearer range boundary.
	Candidate float64
	// TotalCost is the period purchase + ordering + holding cost at the
	// candidate quantity.
	TotalCost float64
	// Feasible reports whether the unconstrained EOQ fell inside the
	// tier's range without clamping.
	Feasible bool
	// Selected marks the tier whose candidate won the comparison.
	Selected bool
}

// DiscountModel is the quantity-discount EOQ variant: the unit price drops
// at each breakpoint, and the optimal quantity is found by evaluating total
// cost at each tier's best admissible quantity.
type DiscountModel struct {
	params Params
	tiers  []Tier // ascending by MinQuantity
}

// NewDiscountModel creates a DiscountModel from a map of minimum order
// quantity to discount fraction. The map must contain the base tier (key 0
// with discount 0), every discount must lie in [0, 1), and discounts must
// be non-decreasing as quantity increases.
func NewDiscountModel(params Params, discountRates map[int64]float64) (*DiscountModel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(discountRates) == 0 {
		return nil, invalidParam("discount_rates", 0, "at least one tier is required")
	}

	tiers := make([]Tier, 0, len(discountRates))
	for qty, discount := range discountRates {
		if qty < 0 {
			return nil, invalidParam("discount_rates", float64(qty), "breakpoint quantity cannot be negative")
		}
		if discount < 0 || discount >= 1 {
			return nil, invalidParam("discount_rates", discount, "discount fraction must be in [0, 1)")
		}
		tiers = append(tiers, Tier{MinQuantity: qty, Discount: discount})
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinQuantity < tiers[j].MinQuantity })

	if tiers[0].MinQuantity != 0 {
		return nil, invalidParam("discount_rates", float64(tiers[0].MinQuantity), "base tier with quantity 0 is required")
	}
	if tiers[0].Discount != 0 {
		return nil, invalidParam("discount_rates", tiers[0].Discount, "base tier must have discount 0")
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Discount < tiers[i-1].Discount {
			return nil, invalidParam("discount_rates", tiers[i].Discount, "discount fractions must be non-decreasing with quantity")
		}
	}

	return &DiscountModel{params: params, tiers: tiers}, nil
}

// Params returns the model's economic parameters.
func (m *DiscountModel) Params() Params {
	return m.params
}

// Tiers returns the discount tiers in ascending breakpoint order.
func (m *DiscountModel) Tiers() []Tier {
	out := make([]Tier, len(m.tiers))
	copy(out, m.tiers)
	return out
}

// totalCost is the period purchase + ordering + holding cost for ordering
// quantity units at unitPrice.
func (m *DiscountModel) totalCost(quantity, unitPrice float64) float64 {
	purchase := m.params.DemandRate * unitPrice
	ordering := 0.0
	if quantity > 0 {
		ordering = m.params.DemandRate / quantity * m.params.OrderingCost
	}
	holding := quantity / 2 * unitPrice * m.params.HoldingRate
	return purchase + ordering + holding
}

// OptimalOrder returns the order quantity, effective unit price, and total
// cost that minimize period cost across all discount tiers. Equal-cost ties
// go to the lower quantity.
func (m *DiscountModel) OptimalOrder() PurchaseRecommendation {
	best, _ := m.evaluate(false)
	return best
}

// Analyze returns the same recommendation as OptimalOrder together with the
// per-tier breakdown, with the winning tier marked Selected.
func (m *DiscountModel) Analyze() (PurchaseRecommendation, []TierEvaluation) {
	return m.evaluate(true)
}

// evaluate enumerates the tiers in ascending order. Within a tier the total
// cost is convex in quantity, so the candidate is the tier-price EOQ when
// it lies inside the tier's range and the nearer range boundary otherwise.
func (m *DiscountModel) evaluate(withBreakdown bool) (PurchaseRecommendation, []TierEvaluation) {
	var (
		best      PurchaseRecommendation
		bestIdx   = -1
		breakdown []TierEvaluation
	)
	if withBreakdown {
		breakdown = make([]TierEvaluation, 0, len(m.tiers))
	}

	for i, tier := range m.tiers {
		unitPrice := m.params.Price * (1 - tier.Discount)
		holding := unitPrice * m.params.HoldingRate
		unconstrained := math.Sqrt(2 * m.params.DemandRate * m.params.OrderingCost / holding)

		lower := float64(tier.MinQuantity)
		upper := math.Inf(1)
		if i+1 < len(m.tiers) {
			upper = float64(m.tiers[i+1].MinQuantity - 1)
		}

		candidate := unconstrained
		if candidate < lower {
			candidate = lower
		}
		if candidate > upper {
			candidate = upper
		}
		feasible := candidate == unconstrained

		cost := m.totalCost(candidate, unitPrice)

		if bestIdx < 0 || cost < best.TotalCost ||
			(cost == best.TotalCost && candidate < best.Quantity) {
			best = PurchaseRecommendation{Quantity: candidate, UnitPrice: unitPrice, TotalCost: cost}
			bestIdx = i
		}

		if withBreakdown {
			breakdown = append(breakdown, TierEvaluation{
				MinQuantity:      tier.MinQuantity,
				Discount:         tier.Discount,
				UnitPrice:        unitPrice,
				UnconstrainedEOQ: unconstrained,
				Candidate:        candidate,
				TotalCost:        cost,
				Feasible:         feasible,
			})
		}
	}

	if withBreakdown {
		breakdown[bestIdx].Selected = true
	}
	return best, breakdown
}

// EOQ returns the cost-minimizing order quantity. It is OptimalOrder
// reduced to its quantity, for symmetry with the other models.
func (m *DiscountModel) EOQ() float64 {
	return m.OptimalOrder().Quantity
}

// ReorderPoint returns the inventory level that triggers a new order, for
// a lead time expressed in planning periods.
func (m *DiscountModel) ReorderPoint(leadTime, safetyStock float64) (float64, error) {
	return ReorderPoint(m.params.DemandRate, leadTime, safetyStock)
}

// DailyReorderPoint returns the reorder point for a lead time in calendar
// days, given the number of operating days per period.
func (m *DiscountModel) DailyReorderPoint(leadTimeDays, safetyStock float64, daysOfOperation int) (float64, error) {
	return DailyReorderPoint(m.params.DemandRate, leadTimeDays, safetyStock, daysOfOperation)
}
