package output

import (
	"fmt"
	"strings"
)

// ConsoleFormatter renders a full report as plain text for the terminal.
type ConsoleFormatter struct {
	// MaxScheduleRows caps the schedule table; 0 prints every month.
	MaxScheduleRows int
}

func (cf *ConsoleFormatter) Name() string { return "console" }

// Format renders the report.
func (cf *ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var sb strings.Builder
	sched := report.Schedule
	terms := sched.Terms

	sb.WriteString("MORTGAGE OVERPAYMENT REPORT\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n\n")

	sb.WriteString("LOAN TERMS\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(&sb, "  Loan Amount:          %s\n", FormatCurrency(terms.Principal))
	fmt.Fprintf(&sb, "  Term:                 %s\n", FormatMonths(terms.TotalTermMonths))
	fmt.Fprintf(&sb, "  Fixed Rate:           %s for %s\n",
		FormatPercentage(terms.FixedRatePercent), FormatMonths(terms.FixedPhaseMonths))
	fmt.Fprintf(&sb, "  Remaining Rate:       %s\n", FormatPercentage(terms.RemainingRatePercent))
	fmt.Fprintf(&sb, "  Monthly Overpayment:  %s\n\n", FormatCurrency(terms.MonthlyOverpayment))

	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(&sb, "  Months To Clear:      %d (%s)\n",
		sched.Summary.MonthsTaken, FormatMonths(sched.Summary.MonthsTaken))
	fmt.Fprintf(&sb, "  Estimated Payoff:     %s\n", sched.Summary.PayoffDate.Format("2 January 2006"))
	fmt.Fprintf(&sb, "  Total Interest:       %s\n", FormatCurrency(sched.Summary.TotalInterest))
	fmt.Fprintf(&sb, "  Total Paid:           %s\n", FormatCurrency(sched.Summary.TotalPayment))
	if sched.Summary.MonthsSaved > 0 {
		fmt.Fprintf(&sb, "  Term Reduced By:      %s\n", FormatMonths(sched.Summary.MonthsSaved))
	}
	if report.Baseline != nil && report.Baseline != sched {
		fmt.Fprintf(&sb, "  Interest Saved:       %s\n", FormatCurrency(report.InterestSaved()))
	}
	sb.WriteString("\n")

	sb.WriteString("PAYMENT BREAKDOWN\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(&sb, "  Principal Repaid:     %s\n", FormatCurrency(report.Breakdown.TotalPrincipal))
	fmt.Fprintf(&sb, "  Overpayments:         %s\n", FormatCurrency(report.Breakdown.TotalOverpayment))
	fmt.Fprintf(&sb, "  Interest Paid:        %s\n", FormatCurrency(report.Breakdown.TotalInterest))
	fmt.Fprintf(&sb, "  Total:                %s\n\n", FormatCurrency(report.Breakdown.TotalPayment))

	sb.WriteString("SCHEDULE\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(&sb, "%6s %12s %12s %12s %12s %14s\n",
		"Month", "Payment", "Interest", "Principal", "Overpay", "Balance")

	rows := len(sched.Records)
	truncated := false
	if cf.MaxScheduleRows > 0 && rows > cf.MaxScheduleRows {
		rows = cf.MaxScheduleRows
		truncated = true
	}
	for _, rec := range sched.Records[:rows] {
		fmt.Fprintf(&sb, "%6d %12s %12s %12s %12s %14s\n",
			rec.Month,
			rec.Payment.StringFixed(2),
			rec.Interest.StringFixed(2),
			rec.Principal.StringFixed(2),
			rec.Overpayment.StringFixed(2),
			rec.Balance.StringFixed(2))
	}
	if truncated {
		last := sched.Records[len(sched.Records)-1]
		fmt.Fprintf(&sb, "%6s\n", "...")
		fmt.Fprintf(&sb, "%6d %12s %12s %12s %12s %14s\n",
			last.Month,
			last.Payment.StringFixed(2),
			last.Interest.StringFixed(2),
			last.Principal.StringFixed(2),
			last.Overpayment.StringFixed(2),
			last.Balance.StringFixed(2))
	}

	return []byte(sb.String()), nil
}
