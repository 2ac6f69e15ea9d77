package eoq

import "math"

// BackorderModel is the planned-shortage EOQ variant: demand arriving while
// stock is exhausted is backordered and filled at the start of the next
// cycle, at a shortage cost per unit per period.
type BackorderModel struct {
	params       Params
	shortageCost float64
}

// CycleMetrics describes one replenishment cycle at the optimal quantity.
type CycleMetrics struct {
	// OrderQuantity is the optimal order quantity Q*.
	OrderQuantity float64
	// MaxInventory is the peak on-hand level S_max reached just after a
	// delivery clears the outstanding backorders.
	MaxInventory float64
	// MaxBackorder is the peak backorder level B_max at the end of a cycle.
	MaxBackorder float64
	// TotalCost is the period ordering + holding + shortage cost at Q*.
	TotalCost float64
}

// NewBackorderModel creates a BackorderModel. The shortage cost must be
// positive.
func NewBackorderModel(params Params, shortageCost float64) (*BackorderModel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if shortageCost <= 0 {
		return nil, invalidParam("shortage_cost", shortageCost, "must be positive")
	}
	return &BackorderModel{params: params, shortageCost: shortageCost}, nil
}

// Params returns the model's economic parameters.
func (m *BackorderModel) Params() Params {
	return m.params
}

// ShortageCost returns the cost of carrying one unit of unmet demand for
// one planning period.
func (m *BackorderModel) ShortageCost() float64 {
	return m.shortageCost
}

// EOQ returns the optimal order quantity with planned shortages: the base
// EOQ scaled by sqrt((H+P)/P), where P is the shortage cost.
func (m *BackorderModel) EOQ() float64 {
	p := m.params
	h := p.HoldingCost()
	base := math.Sqrt(2 * p.DemandRate * p.OrderingCost / h)
	return base * math.Sqrt((h+m.shortageCost)/m.shortageCost)
}

// CycleMetrics returns the peak inventory, peak backorder, and total period
// cost at the optimal order quantity. MaxInventory + MaxBackorder always
// equals OrderQuantity.
func (m *BackorderModel) CycleMetrics() CycleMetrics {
	p := m.params
	h := p.HoldingCost()
	q := m.EOQ()
	sMax := q * m.shortageCost / (h + m.shortageCost)
	bMax := q * h / (h + m.shortageCost)
	totalCost := p.DemandRate*p.OrderingCost/q +
		h*sMax*sMax/(2*q) +
		m.shortageCost*bMax*bMax/(2*q)
	return CycleMetrics{
		OrderQuantity: q,
		MaxInventory:  sMax,
		MaxBackorder:  bMax,
		TotalCost:     totalCost,
	}
}

// ReorderPoint returns the inventory level that triggers a new order, for
// a lead time expressed in planning periods.
func (m *BackorderModel) ReorderPoint(leadTime, safetyStock float64) (float64, error) {
	return ReorderPoint(m.params.DemandRate, leadTime, safetyStock)
}

// DailyReorderPoint returns the reorder point for a lead time in calendar
// days, given the number of operating days per period.
func (m *BackorderModel) DailyReorderPoint(leadTimeDays, safetyStock float64, daysOfOperation int) (float64, error) {
	return DailyReorderPoint(m.params.DemandRate, leadTimeDays, safetyStock, daysOfOperation)
}
