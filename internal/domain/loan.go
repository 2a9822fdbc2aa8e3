package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanTerms describes a single mortgage simulation run. A mortgage has a
// fixed-rate introductory phase followed by a second phase at the lender's
// remaining rate; an optional constant overpayment is applied every month of
// both phases. LoanTerms is immutable once handed to the engine.
type LoanTerms struct {
	Principal            decimal.Decimal `json:"principal"`
	TotalTermMonths      int             `json:"totalTermMonths"`
	FixedRatePercent     decimal.Decimal `json:"fixedRatePercent"`
	FixedPhaseMonths     int             `json:"fixedPhaseMonths"`
	RemainingRatePercent decimal.Decimal `json:"remainingRatePercent"`
	MonthlyOverpayment   decimal.Decimal `json:"monthlyOverpayment"`
}

// WithoutOverpayment returns a copy of the terms with the monthly
// overpayment zeroed, for baseline comparisons.
func (lt LoanTerms) WithoutOverpayment() LoanTerms {
	lt.MonthlyOverpayment = decimal.Zero
	return lt
}

// WithOverpayment returns a copy of the terms with the given monthly
// overpayment.
func (lt LoanTerms) WithOverpayment(amount decimal.Decimal) LoanTerms {
	lt.MonthlyOverpayment = amount
	return lt
}

// PeriodRecord is one month of the amortization schedule. Payment always
// equals Interest + Principal + Overpayment exactly; Balance is the amount
// still owed after the month's payment is applied.
type PeriodRecord struct {
	Month       int             `json:"month"`
	Payment     decimal.Decimal `json:"payment"`
	Interest    decimal.Decimal `json:"interest"`
	Principal   decimal.Decimal `json:"principal"`
	Overpayment decimal.Decimal `json:"overpayment"`
	Balance     decimal.Decimal `json:"balance"`
}

// ScheduleSummary carries the headline numbers derived from a generated
// schedule.
type ScheduleSummary struct {
	TotalInterest decimal.Decimal `json:"totalInterest"`
	TotalPayment  decimal.Decimal `json:"totalPayment"`
	MonthsTaken   int             `json:"monthsTaken"`
	// PayoffDate approximates each month as 30 days from the reference
	// date rather than using calendar month arithmetic.
	PayoffDate  time.Time `json:"payoffDate"`
	MonthsSaved int       `json:"monthsSaved"`
}

// PaymentBreakdown aggregates where every pound of the schedule went.
type PaymentBreakdown struct {
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	TotalPrincipal   decimal.Decimal `json:"totalPrincipal"`
	TotalOverpayment decimal.Decimal `json:"totalOverpayment"`
	TotalPayment     decimal.Decimal `json:"totalPayment"`
}

// Schedule is the complete result of one simulation run.
type Schedule struct {
	Terms   LoanTerms       `json:"terms"`
	Records []PeriodRecord  `json:"records"`
	Summary ScheduleSummary `json:"summary"`
}

// Balances returns the end-of-month balance series as float64 values for
// charting.
func (s *Schedule) Balances() []float64 {
	out := make([]float64, len(s.Records))
	for i, rec := range s.Records {
		out[i] = rec.Balance.InexactFloat64()
	}
	return out
}

// FinalBalance returns the balance after the last period, or the full
// principal if no records were generated.
func (s *Schedule) FinalBalance() decimal.Decimal {
	if len(s.Records) == 0 {
		return s.Terms.Principal
	}
	return s.Records[len(s.Records)-1].Balance
}
