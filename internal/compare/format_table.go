package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing overpayment scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("MORTGAGE OVERPAYMENT COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if compSet.ScenarioPath != "" {
		sb.WriteString(fmt.Sprintf("Scenario: %s\n", compSet.ScenarioPath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 25
	numWidth := 13

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Months",
		numWidth, "Payoff Date",
		numWidth, "Interest",
		numWidth, "Total Paid"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Baseline row
	sb.WriteString(tf.formatRow(compSet.BaselineResult, nameWidth, numWidth, true))

	// Alternative scenarios
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Comparison details (deltas from the baseline)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASELINE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			savingsSymbol := tf.deltaSymbol(alt.InterestSaved)
			sb.WriteString(fmt.Sprintf("  Interest Saved:   %s£%s (%s%%)\n",
				savingsSymbol,
				tf.formatDecimal(alt.InterestSaved.Abs()),
				alt.InterestSavedPct.StringFixed(1)))

			if alt.MonthsSaved != 0 {
				years := alt.MonthsSaved / 12
				months := alt.MonthsSaved % 12
				sb.WriteString(fmt.Sprintf("  Term Reduced:     %d years %d months\n", years, months))
			}

			sb.WriteString(fmt.Sprintf("  Extra Per Month:  £%s\n",
				tf.formatDecimal(alt.ExtraPaidMonthly)))
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBaseline bool) string {
	name := result.ScenarioName
	if isBaseline {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, fmt.Sprintf("%d", result.MonthsTaken),
		numWidth, result.PayoffDate,
		numWidth, "£"+tf.formatDecimal(result.TotalInterest),
		numWidth, "£"+tf.formatDecimal(result.TotalPayment))
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Baseline: %d months | ", compSet.BaselineResult.MonthsTaken))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(fmt.Sprintf("%s: -%d months, saves £%s",
			alt.ScenarioName, alt.MonthsSaved, tf.formatDecimal(alt.InterestSaved)))
	}

	return sb.String()
}
