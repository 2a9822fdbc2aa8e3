package compare

import (
	"fmt"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single overpayment scenario with calculated metrics
type ComparisonResult struct {
	ScenarioName string           `json:"scenarioName"`
	Schedule     *domain.Schedule `json:"-"`

	// Key Metrics
	MonthlyOverpayment decimal.Decimal `json:"monthlyOverpayment"`
	MonthsTaken        int             `json:"monthsTaken"`
	TotalInterest      decimal.Decimal `json:"totalInterest"`
	TotalPayment       decimal.Decimal `json:"totalPayment"`
	PayoffDate         string          `json:"payoffDate"`

	// Comparison to Baseline
	InterestSaved    decimal.Decimal `json:"interestSaved"`
	InterestSavedPct decimal.Decimal `json:"interestSavedPct"`
	MonthsSaved      int             `json:"monthsSaved"`
	ExtraPaidMonthly decimal.Decimal `json:"extraPaidMonthly"`
}

// ComparisonSet represents a baseline schedule plus its overpayment alternatives
type ComparisonSet struct {
	BaselineResult     *ComparisonResult  `json:"baselineResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ScenarioPath       string             `json:"scenarioPath,omitempty"`
}

// MetricsCalculator extracts key metrics from amortization schedules
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the headline metrics for one schedule
func (mc *MetricsCalculator) CalculateMetrics(name string, sched *domain.Schedule) ComparisonResult {
	return ComparisonResult{
		ScenarioName:       name,
		Schedule:           sched,
		MonthlyOverpayment: sched.Terms.MonthlyOverpayment,
		MonthsTaken:        sched.Summary.MonthsTaken,
		TotalInterest:      sched.Summary.TotalInterest,
		TotalPayment:       sched.Summary.TotalPayment,
		PayoffDate:         sched.Summary.PayoffDate.Format("2006-01-02"),
	}
}

// CalculateComparison computes the deltas between a scenario and the baseline
func (mc *MetricsCalculator) CalculateComparison(scenario, baseline ComparisonResult) ComparisonResult {
	scenario.InterestSaved = baseline.TotalInterest.Sub(scenario.TotalInterest)
	if !baseline.TotalInterest.IsZero() {
		scenario.InterestSavedPct = scenario.InterestSaved.
			Div(baseline.TotalInterest).
			Mul(decimal.NewFromInt(100))
	}
	scenario.MonthsSaved = baseline.MonthsTaken - scenario.MonthsTaken
	scenario.ExtraPaidMonthly = scenario.MonthlyOverpayment.Sub(baseline.MonthlyOverpayment)
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Find the biggest interest saver
	bestSavings := compSet.BaselineResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalInterest.LessThan(bestSavings.TotalInterest) {
			bestSavings = alt
		}
	}

	if bestSavings != compSet.BaselineResult {
		recommendations = append(recommendations,
			"Best Savings: "+bestSavings.ScenarioName+" saves £"+bestSavings.InterestSaved.StringFixed(0)+
				" in interest over the life of the loan")
	}

	// Find the earliest payoff
	earliest := compSet.BaselineResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MonthsTaken < earliest.MonthsTaken {
			earliest = alt
		}
	}

	if earliest != compSet.BaselineResult {
		years := earliest.MonthsSaved / 12
		months := earliest.MonthsSaved % 12
		recommendations = append(recommendations,
			"Earliest Payoff: "+earliest.ScenarioName+" clears the mortgage "+
				fmt.Sprintf("%d years %d months early", years, months))
	}

	return recommendations
}
