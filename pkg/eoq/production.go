package eoq

import "math"

// ProductionModel is the Economic Production Quantity variant: inventory
// builds gradually at a finite production rate instead of arriving in a
// single delivery, so only the net accumulation rate incurs holding cost.
type ProductionModel struct {
	params         Params
	productionRate float64
}

// NewProductionModel creates a ProductionModel. The production rate must
// strictly exceed the demand rate, otherwise inventory never accumulates.
func NewProductionModel(params Params, productionRate float64) (*ProductionModel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if productionRate <= params.DemandRate {
		return nil, invalidParam("production_rate", productionRate, "must be greater than demand_rate")
	}
	return &ProductionModel{params: params, productionRate: productionRate}, nil
}

// Params returns the model's economic parameters.
func (m *ProductionModel) Params() Params {
	return m.params
}

// ProductionRate returns the units produced per planning period.
func (m *ProductionModel) ProductionRate() float64 {
	return m.productionRate
}

// EOQ returns the optimal production lot size. The base EOQ is inflated by
// 1/(1 - D/P) under the square root: inventory accumulates at rate P-D, so
// the effective holding cost is H*(1 - D/P).
func (m *ProductionModel) EOQ() float64 {
	p := m.params
	effectiveHolding := p.HoldingCost() * (1 - p.DemandRate/m.productionRate)
	return math.Sqrt(2 * p.DemandRate * p.OrderingCost / effectiveHolding)
}

// ReorderPoint returns the inventory level that triggers a new production
// run, for a lead time expressed in planning periods.
func (m *ProductionModel) ReorderPoint(leadTime, safetyStock float64) (float64, error) {
	return ReorderPoint(m.params.DemandRate, leadTime, safetyStock)
}

// DailyReorderPoint returns the reorder point for a lead time in calendar
// days, given the number of operating days per period.
func (m *ProductionModel) DailyReorderPoint(leadTimeDays, safetyStock float64, daysOfOperation int) (float64, error) {
	return DailyReorderPoint(m.params.DemandRate, leadTimeDays, safetyStock, daysOfOperation)
}
