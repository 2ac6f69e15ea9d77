package eoq

import "math"

// BasicModel is the classic Economic Order Quantity model: instantaneous
// replenishment, no shortages, a single unit price.
type BasicModel struct {
	params Params
}

// NewBasicModel creates a BasicModel after validating the parameters.
func NewBasicModel(params Params) (*BasicModel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &BasicModel{params: params}, nil
}

// Params returns the model's economic parameters.
func (m *BasicModel) Params() Params {
	return m.params
}

// EOQ returns the order quantity minimizing total ordering plus holding
// cost: sqrt(2*D*S/H).
func (m *BasicModel) EOQ() float64 {
	p := m.params
	return math.Sqrt(2 * p.DemandRate * p.OrderingCost / p.HoldingCost())
}

// ReorderPoint returns the inventory level that triggers a new order, for
// a lead time expressed in planning periods.
func (m *BasicModel) ReorderPoint(leadTime, safetyStock float64) (float64, error) {
	return ReorderPoint(m.params.DemandRate, leadTime, safetyStock)
}

// DailyReorderPoint returns the reorder point for a lead time in calendar
// days, given the number of operating days per period.
func (m *BasicModel) DailyReorderPoint(leadTimeDays, safetyStock float64, daysOfOperation int) (float64, error) {
	return DailyReorderPoint(m.params.DemandRate, leadTimeDays, safetyStock, daysOfOperation)
}
