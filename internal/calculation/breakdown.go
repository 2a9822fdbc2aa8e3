package calculation

import (
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// Breakdown reduces a schedule's records into payment totals.
func Breakdown(records []domain.PeriodRecord) domain.PaymentBreakdown {
	bd := domain.PaymentBreakdown{
		TotalInterest:    decimal.Zero,
		TotalPrincipal:   decimal.Zero,
		TotalOverpayment: decimal.Zero,
		TotalPayment:     decimal.Zero,
	}
	for _, rec := range records {
		bd.TotalInterest = bd.TotalInterest.Add(rec.Interest)
		bd.TotalPrincipal = bd.TotalPrincipal.Add(rec.Principal)
		bd.TotalOverpayment = bd.TotalOverpayment.Add(rec.Overpayment)
		bd.TotalPayment = bd.TotalPayment.Add(rec.Payment)
	}
	return bd
}
