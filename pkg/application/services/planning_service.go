package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vsinha/eoq/pkg/application/dto"
	"github.com/vsinha/eoq/pkg/eoq"
)

// PlanConfig holds configuration for a planning run
type PlanConfig struct {
	// Analysis includes the per-tier breakdown for discount models
	Analysis bool
	// DaysOfOperation converts day-denominated lead times to period demand
	// (0 = lead times are already in planning periods)
	DaysOfOperation int
}

// PlanningService evaluates replenishment scenarios against the EOQ model
// family
type PlanningService struct {
	config PlanConfig
}

// NewPlanningService creates a planning service with default configuration
func NewPlanningService() *PlanningService {
	return NewPlanningServiceWithConfig(PlanConfig{})
}

// NewPlanningServiceWithConfig creates a planning service with custom configuration
func NewPlanningServiceWithConfig(config PlanConfig) *PlanningService {
	return &PlanningService{config: config}
}

// Plan evaluates every scenario line and returns one recommendation per SKU
func (s *PlanningService) Plan(ctx context.Context, lines []eoq.ScenarioLine) (*dto.PlanResult, error) {
	result := &dto.PlanResult{
		Lines:      make([]dto.PlanLine, 0, len(lines)),
		ComputedAt: time.Now(),
	}

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		planLine, err := s.planLine(line)
		if err != nil {
			return nil, fmt.Errorf("scenario line %s: %w", line.SKU, err)
		}
		result.Lines = append(result.Lines, planLine)
	}

	return result, nil
}

func (s *PlanningService) planLine(line eoq.ScenarioLine) (dto.PlanLine, error) {
	model, err := line.Build()
	if err != nil {
		return dto.PlanLine{}, err
	}

	planLine := dto.PlanLine{
		SKU:           line.SKU,
		Model:         line.Kind,
		OrderQuantity: model.EOQ(),
		UnitPrice:     dto.Money(line.Params.Price),
	}

	switch m := model.(type) {
	case *eoq.BackorderModel:
		cycle := m.CycleMetrics()
		planLine.Cycle = &cycle
		planLine.TotalCost = dto.Money(cycle.TotalCost)
	case *eoq.DiscountModel:
		if s.config.Analysis {
			rec, tiers := m.Analyze()
			planLine.Tiers = tiers
			planLine.UnitPrice = dto.Money(rec.UnitPrice)
			planLine.TotalCost = dto.Money(rec.TotalCost)
			planLine.OrderQuantity = rec.Quantity
		} else {
			rec := m.OptimalOrder()
			planLine.UnitPrice = dto.Money(rec.UnitPrice)
			planLine.TotalCost = dto.Money(rec.TotalCost)
			planLine.OrderQuantity = rec.Quantity
		}
	default:
		planLine.TotalCost = dto.Money(orderingPlusHolding(line.Params, planLine.OrderQuantity))
	}

	if line.HasLeadTime {
		rop, err := s.reorderPoint(line)
		if err != nil {
			return dto.PlanLine{}, err
		}
		planLine.HasReorderPoint = true
		planLine.ReorderPoint = rop
	}

	return planLine, nil
}

func (s *PlanningService) reorderPoint(line eoq.ScenarioLine) (float64, error) {
	if s.config.DaysOfOperation > 0 {
		return eoq.DailyReorderPoint(line.Params.DemandRate, line.LeadTime, line.SafetyStock, s.config.DaysOfOperation)
	}
	return eoq.ReorderPoint(line.Params.DemandRate, line.LeadTime, line.SafetyStock)
}

// orderingPlusHolding is the period cost at quantity q for models without a
// richer cost view: D/q orders at S each, plus an average of q/2 units held.
func orderingPlusHolding(p eoq.Params, q float64) float64 {
	return p.DemandRate/q*p.OrderingCost + q/2*p.HoldingCost()
}
