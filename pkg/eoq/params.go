package eoq

// Params holds the four economic parameters shared by every model variant.
//
// Holding cost is always derived from price and holding rate, never stored,
// so the two can not drift apart.
type Params struct {
	// Price is the unit purchase price.
	Price float64
	// DemandRate is the units consumed per planning period.
	DemandRate float64
	// OrderingCost is the fixed cost of placing one replenishment order.
	OrderingCost float64
	// HoldingRate is the fraction of unit price charged as holding cost
	// per period, in (0, 1].
	HoldingRate float64
}

// Validate checks the shared parameter constraints.
func (p Params) Validate() error {
	if p.Price <= 0 {
		return invalidParam("price", p.Price, "must be positive")
	}
	if p.DemandRate <= 0 {
		return invalidParam("demand_rate", p.DemandRate, "must be positive")
	}
	if p.OrderingCost <= 0 {
		return invalidParam("ordering_cost", p.OrderingCost, "must be positive")
	}
	if p.HoldingRate <= 0 || p.HoldingRate > 1 {
		return invalidParam("holding_rate", p.HoldingRate, "must be in (0, 1]")
	}
	return nil
}

// HoldingCost returns the per-unit holding cost, price * holding rate.
func (p Params) HoldingCost() float64 {
	return p.Price * p.HoldingRate
}
