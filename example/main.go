package main

import (
	"fmt"

	"github.com/vsinha/eoq/pkg/application/dto"
	"github.com/vsinha/eoq/pkg/eoq"
)

func main() {
	fmt.Println("📦 EOQ model family walkthrough")
	fmt.Println()

	basicExample()
	productionExample()
	backorderExample()
	discountExample()
}

func basicExample() {
	params := eoq.Params{
		Price:        10,
		DemandRate:   1200, // units per year
		OrderingCost: 50,
		HoldingRate:  0.2,
	}

	model, err := eoq.NewBasicModel(params)
	if err != nil {
		fmt.Printf("❌ basic model: %v\n", err)
		return
	}

	fmt.Println("Basic EOQ:")
	fmt.Printf("  Order quantity: %.2f units\n", model.EOQ())

	rop, err := model.DailyReorderPoint(10, 25, 250)
	if err != nil {
		fmt.Printf("❌ reorder point: %v\n", err)
		return
	}
	fmt.Printf("  Reorder point (10-day lead, 25 safety): %.2f units\n", rop)
	fmt.Println()
}

func productionExample() {
	params := eoq.Params{
		Price:        12,
		DemandRate:   500,
		OrderingCost: 40,
		HoldingRate:  0.25,
	}

	model, err := eoq.NewProductionModel(params, 1000)
	if err != nil {
		fmt.Printf("❌ production model: %v\n", err)
		return
	}

	fmt.Println("Production EOQ (finite replenishment rate):")
	fmt.Printf("  Production lot size: %.2f units\n", model.EOQ())
	fmt.Println()
}

func backorderExample() {
	params := eoq.Params{
		Price:        200,
		DemandRate:   800,
		OrderingCost: 100,
		HoldingRate:  0.25,
	}

	model, err := eoq.NewBackorderModel(params, 30)
	if err != nil {
		fmt.Printf("❌ backorder model: %v\n", err)
		return
	}

	metrics := model.CycleMetrics()
	fmt.Println("Backorder EOQ (planned shortages):")
	fmt.Printf("  Order quantity: %.2f units\n", metrics.OrderQuantity)
	fmt.Printf("  Max inventory:  %.2f units\n", metrics.MaxInventory)
	fmt.Printf("  Max backorder:  %.2f units\n", metrics.MaxBackorder)
	fmt.Printf("  Cycle cost:     %s per year\n", dto.Money(metrics.TotalCost).StringFixed(2))
	fmt.Println()
}

func discountExample() {
	params := eoq.Params{
		Price:        100,
		DemandRate:   1000,
		OrderingCost: 50,
		HoldingRate:  0.2,
	}

	model, err := eoq.NewDiscountModel(params, map[int64]float64{
		0:   0,
		100: 0.05,
		200: 0.10,
	})
	if err != nil {
		fmt.Printf("❌ discount model: %v\n", err)
		return
	}

	rec, tiers := model.Analyze()
	fmt.Println("Discount EOQ (quantity breakpoints):")
	fmt.Printf("  Order quantity: %.2f units at %s each\n",
		rec.Quantity, dto.Money(rec.UnitPrice).StringFixed(2))
	fmt.Printf("  Total cost:     %s per year\n", dto.Money(rec.TotalCost).StringFixed(2))
	for _, tier := range tiers {
		marker := "  "
		if tier.Selected {
			marker = "👉"
		}
		fmt.Printf("  %s tier %4d (%.0f%% off): candidate %7.2f, cost %s\n",
			marker, tier.MinQuantity, tier.Discount*100, tier.Candidate,
			dto.Money(tier.TotalCost).StringFixed(2))
	}
}
