package compare

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/calculation"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTerms() domain.LoanTerms {
	return domain.LoanTerms{
		Principal:            decimal.NewFromInt(240000),
		TotalTermMonths:      360,
		FixedRatePercent:     decimal.NewFromFloat(4.6),
		FixedPhaseMonths:     36,
		RemainingRatePercent: decimal.NewFromFloat(5.5),
		MonthlyOverpayment:   decimal.NewFromInt(200),
	}
}

func testCompareSet(t *testing.T) *ComparisonSet {
	t.Helper()
	engine := NewCompareEngine(&calculation.Engine{
		AsOf: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	compSet, err := engine.Compare(context.Background(), testTerms(), CompareOptions{
		Overpayments: []decimal.Decimal{decimal.NewFromInt(100), decimal.NewFromInt(200)},
		ScenarioPath: "scenario.yaml",
	})
	require.NoError(t, err)
	return compSet
}

func TestCompare_Metrics(t *testing.T) {
	compSet := testCompareSet(t)

	require.NotNil(t, compSet.BaselineResult)
	require.Len(t, compSet.AlternativeResults, 2)

	base := compSet.BaselineResult
	assert.Equal(t, 360, base.MonthsTaken)
	assert.True(t, base.MonthlyOverpayment.IsZero())
	assert.True(t, base.InterestSaved.IsZero(), "baseline has no savings over itself")

	for _, alt := range compSet.AlternativeResults {
		assert.Less(t, alt.MonthsTaken, base.MonthsTaken)
		assert.True(t, alt.InterestSaved.IsPositive(), "%s should save interest", alt.ScenarioName)
		assert.Equal(t, base.MonthsTaken-alt.MonthsTaken, alt.MonthsSaved)
	}

	// Larger overpayments save more
	assert.True(t, compSet.AlternativeResults[1].InterestSaved.
		GreaterThan(compSet.AlternativeResults[0].InterestSaved))

	assert.NotEmpty(t, compSet.Recommendations)
}

func TestCompare_DefaultsToTermsOverpayment(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	compSet, err := engine.Compare(context.Background(), testTerms(), CompareOptions{})
	require.NoError(t, err)

	require.Len(t, compSet.AlternativeResults, 1)
	assert.True(t, compSet.AlternativeResults[0].MonthlyOverpayment.Equal(decimal.NewFromInt(200)))
}

func TestCompare_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewCompareEngine(calculation.NewEngine())
	_, err := engine.Compare(ctx, testTerms(), CompareOptions{
		Overpayments: []decimal.Decimal{decimal.NewFromInt(100)},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTableFormatter(t *testing.T) {
	compSet := testCompareSet(t)

	output := (&TableFormatter{}).Format(compSet)

	assert.Contains(t, output, "MORTGAGE OVERPAYMENT COMPARISON")
	assert.Contains(t, output, "no overpayment (base)")
	assert.Contains(t, output, "COMPARISON TO BASELINE")
	assert.Contains(t, output, "Interest Saved")
	assert.Contains(t, output, "scenario.yaml")
}

func TestTableFormatter_Compact(t *testing.T) {
	compSet := testCompareSet(t)

	output := (&TableFormatter{}).FormatCompact(compSet)
	assert.Contains(t, output, "Baseline: 360 months")
	assert.Contains(t, output, "saves £")
}

func TestCSVFormatter(t *testing.T) {
	compSet := testCompareSet(t)

	output, err := (&CSVFormatter{}).Format(compSet)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, 4, "header + baseline + two alternatives")
	assert.Contains(t, lines[0], "Months Saved")
	assert.Contains(t, lines[1], "baseline")
	assert.Contains(t, lines[2], "alternative")
}

func TestJSONFormatter(t *testing.T) {
	compSet := testCompareSet(t)

	output, err := (&JSONFormatter{Pretty: true}).Format(compSet)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Contains(t, decoded, "baselineResult")
	assert.Contains(t, decoded, "alternativeResults")
	assert.Contains(t, decoded, "recommendations")
}
