package usecase

import (
	"math"

	"pcbuild_configurator/internal/domain/entities"
)

// TaxRate is the fixed tax applied to the component subtotal.
const TaxRate = 0.18

const (
	budgetNearThreshold = 0.9
	budgetOverThreshold = 1.0
)

// ComputePricing derives the pricing block from the component map. Every
// populated selection counts, every storage entry included. The engine has no
// shipping or discount policy, so both stay zero.
func ComputePricing(components entities.Components) entities.Pricing {
	var subtotal float64
	components.Each(func(_ entities.Category, sel entities.Selection) {
		subtotal += sel.LineTotal()
	})
	tax := roundCents(subtotal * TaxRate)

	p := entities.Pricing{
		Subtotal: subtotal,
		Tax:      tax,
	}
	p.Total = p.Subtotal + p.Tax + p.Shipping - p.Discount
	return p
}

// BudgetRatio is total over target; zero when no budget is declared.
func BudgetRatio(total, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return total / target
}

// ClassifyBudget maps the budget ratio to under (<0.9), near (0.9..1.0
// inclusive) or over (>1.0).
func ClassifyBudget(total, target float64) entities.BudgetStatus {
	ratio := BudgetRatio(total, target)
	switch {
	case ratio > budgetOverThreshold:
		return entities.BudgetOver
	case ratio >= budgetNearThreshold:
		return entities.BudgetNear
	default:
		return entities.BudgetUnder
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
