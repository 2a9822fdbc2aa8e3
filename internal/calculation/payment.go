package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// monthlyRate converts an annual percentage rate to a monthly decimal rate.
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// MonthlyPayment returns the fixed payment that fully amortizes principal
// over termMonths at the given annual rate (in percent). A zero rate falls
// back to straight-line repayment. termMonths must be at least 1; principal
// may be any non-negative amount, including a mid-schedule balance.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	months := decimal.NewFromInt(int64(termMonths))
	if annualRatePercent.IsZero() {
		return principal.Div(months)
	}
	rate := monthlyRate(annualRatePercent)
	growth := one.Add(rate).Pow(months)
	return principal.Mul(rate).Mul(growth).Div(growth.Sub(one))
}
