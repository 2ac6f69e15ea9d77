package eoq

import (
	"errors"
	"math"
	"testing"
)

func TestProductionModel_EOQ_MatchesFormula(t *testing.T) {
	p := Params{Price: 12, DemandRate: 500, OrderingCost: 40, HoldingRate: 0.25}
	model, err := NewProductionModel(p, 1000)
	if err != nil {
		t.Fatalf("NewProductionModel failed: %v", err)
	}

	got := model.EOQ()
	h := 12 * 0.25
	want := math.Sqrt(2 * 500 * 40 / (h * (1 - 500.0/1000)))
	if !approxEqual(got, want, 1e-6) {
		t.Errorf("Expected EPQ %v, got %v", want, got)
	}
}

func TestProductionModel_EOQ_ExceedsBasic(t *testing.T) {
	// Gradual replenishment always calls for larger lots than instantaneous
	// delivery at the same parameters.
	p := Params{Price: 10, DemandRate: 400, OrderingCost: 30, HoldingRate: 0.25}
	basic, err := NewBasicModel(p)
	if err != nil {
		t.Fatalf("NewBasicModel failed: %v", err)
	}
	production, err := NewProductionModel(p, 850)
	if err != nil {
		t.Fatalf("NewProductionModel failed: %v", err)
	}

	if production.EOQ() <= basic.EOQ() {
		t.Errorf("Expected EPQ %v to exceed EOQ %v", production.EOQ(), basic.EOQ())
	}
}

func TestProductionModel_EOQ_Deterministic(t *testing.T) {
	model, err := NewProductionModel(Params{Price: 10, DemandRate: 400, OrderingCost: 30, HoldingRate: 0.25}, 850)
	if err != nil {
		t.Fatalf("NewProductionModel failed: %v", err)
	}
	if model.EOQ() != model.EOQ() {
		t.Error("Expected repeated calls to return bit-identical results")
	}
}

func TestProductionModel_ProductionRateValidation(t *testing.T) {
	p := Params{Price: 10, DemandRate: 1000, OrderingCost: 30, HoldingRate: 0.25}

	testCases := []struct {
		name           string
		productionRate float64
		wantErr        bool
	}{
		{name: "rate below demand", productionRate: 400, wantErr: true},
		{name: "rate equal to demand", productionRate: 1000, wantErr: true},
		{name: "rate above demand", productionRate: 1200},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProductionModel(p, tc.productionRate)
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected construction to fail")
				}
				var invalid *InvalidParameterError
				if !errors.As(err, &invalid) {
					t.Errorf("Expected InvalidParameterError, got %T", err)
				}
			} else if err != nil {
				t.Fatalf("Expected construction to succeed, got: %v", err)
			}
		})
	}
}
