package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DegenerateTermError reports loan terms that cannot produce a schedule,
// such as a non-positive principal or term.
type DegenerateTermError struct {
	Field   string
	Message string
}

func (e *DegenerateTermError) Error() string {
	return fmt.Sprintf("degenerate loan terms: %s: %s", e.Field, e.Message)
}

// NonConvergentError reports a configuration whose payment never clears the
// balance: either the per-month reduction is not positive, or the iteration
// ceiling was hit with a balance still outstanding.
type NonConvergentError struct {
	Month   int
	Balance decimal.Decimal
}

func (e *NonConvergentError) Error() string {
	return fmt.Sprintf("schedule does not converge: balance %s still outstanding at month %d",
		e.Balance.StringFixed(2), e.Month)
}
