package compare

import (
	"context"
	"fmt"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/calculation"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine orchestrates overpayment scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	// Overpayments lists the monthly amounts to simulate against the
	// zero-overpayment baseline. Empty defaults to the terms' own amount.
	Overpayments []decimal.Decimal
	ScenarioPath string
}

// Compare runs the zero-overpayment baseline plus one schedule per requested
// overpayment amount and derives the deltas.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	terms domain.LoanTerms,
	options CompareOptions,
) (*ComparisonSet, error) {

	overpayments := options.Overpayments
	if len(overpayments) == 0 {
		overpayments = []decimal.Decimal{terms.MonthlyOverpayment}
	}

	baseline, err := ce.CalcEngine.Simulate(terms.WithoutOverpayment())
	if err != nil {
		return nil, fmt.Errorf("failed to calculate baseline schedule: %w", err)
	}
	baselineResult := ce.MetricsCalculator.CalculateMetrics("no overpayment", baseline)

	alternatives := []ComparisonResult{}
	for _, amount := range overpayments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !amount.IsPositive() {
			continue
		}

		name := "overpay £" + amount.StringFixed(0) + "/month"
		sched, err := ce.CalcEngine.Simulate(terms.WithOverpayment(amount))
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", name, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(name, sched)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baselineResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaselineResult:     &baselineResult,
		AlternativeResults: alternatives,
		ScenarioPath:       options.ScenarioPath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
