package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// Report bundles everything a formatter needs: the overpayment schedule,
// the zero-overpayment baseline it is judged against, and the payment
// breakdown. Baseline may equal Schedule when no overpayment is in play.
type Report struct {
	Schedule    *domain.Schedule        `json:"schedule"`
	Baseline    *domain.Schedule        `json:"-"`
	Breakdown   domain.PaymentBreakdown `json:"breakdown"`
	GeneratedAt time.Time               `json:"generatedAt"`
}

// InterestSaved is the interest delta against the baseline.
func (r *Report) InterestSaved() decimal.Decimal {
	if r.Baseline == nil {
		return decimal.Zero
	}
	return r.Baseline.Summary.TotalInterest.Sub(r.Schedule.Summary.TotalInterest)
}

// Formatter renders a report in one output format.
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under the given name.
func GetFormatterByName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "console", "":
		return &ConsoleFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "json":
		return &JSONFormatter{Pretty: true}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (want console, csv or json)", name)
	}
}

// FormatCurrency formats a decimal as a pound amount with thousands grouping
func FormatCurrency(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	s := amount.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + "£" + grouped.String() + "." + frac
}

// FormatPercentage formats a decimal as a percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatMonths renders a month count as "Ny Nm"
func FormatMonths(months int) string {
	return fmt.Sprintf("%dy %dm", months/12, months%12)
}
