package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Monthly Overpayment",
		"Months Taken",
		"Payoff Date",
		"Total Interest",
		"Total Payment",
		"Interest Saved",
		"Interest Saved %",
		"Months Saved",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaselineResult, "baseline")); err != nil {
		return "", err
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.MonthlyOverpayment.StringFixed(2),
		formatInt(result.MonthsTaken),
		result.PayoffDate,
		result.TotalInterest.StringFixed(2),
		result.TotalPayment.StringFixed(2),
		result.InterestSaved.StringFixed(2),
		result.InterestSavedPct.StringFixed(2),
		formatInt(result.MonthsSaved),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
