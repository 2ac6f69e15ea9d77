package eoq

// ReorderPoint computes the inventory level that should trigger a new
// order: demand over the lead time plus safety stock. Lead time is
// expressed in the same planning periods as the demand rate.
func ReorderPoint(demandRate, leadTime, safetyStock float64) (float64, error) {
	if leadTime < 0 {
		return 0, invalidParam("lead_time", leadTime, "cannot be negative")
	}
	if safetyStock < 0 {
		return 0, invalidParam("safety_stock", safetyStock, "cannot be negative")
	}
	return demandRate*leadTime + safetyStock, nil
}

// DailyReorderPoint computes the reorder point when lead time is given in
// calendar days. The period demand rate is converted to a daily rate using
// the number of operating days per period.
func DailyReorderPoint(demandRate, leadTimeDays, safetyStock float64, daysOfOperation int) (float64, error) {
	if daysOfOperation <= 0 {
		return 0, invalidParam("days_of_operation", float64(daysOfOperation), "must be positive")
	}
	dailyDemand := demandRate / float64(daysOfOperation)
	return ReorderPoint(dailyDemand, leadTimeDays, safetyStock)
}
