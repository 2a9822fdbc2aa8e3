package breakeven

import (
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines what outcome the solver works towards
type OptimizationTarget string

const (
	// TargetMonths solves for the smallest overpayment that clears the
	// mortgage within a given number of months.
	TargetMonths OptimizationTarget = "months"
	// TargetInterest solves for the smallest overpayment that keeps total
	// interest at or below a given amount.
	TargetInterest OptimizationTarget = "interest"
)

// SolveRequest defines the parameters for a solver run
type SolveRequest struct {
	Terms  domain.LoanTerms
	Target OptimizationTarget

	// TargetMonths is the payoff deadline when Target is "months".
	TargetMonths int
	// TargetInterest is the interest ceiling when Target is "interest".
	TargetInterest decimal.Decimal

	MaxIterations int             // Maximum solver iterations (0 = solver default)
	Tolerance     decimal.Decimal // Bracket width at which the search stops (0 = solver default)
}

// SolveResult contains the results of a solver run
type SolveResult struct {
	Request         SolveRequest
	Success         bool
	Iterations      int
	ConvergenceInfo string

	// Overpayment is the smallest monthly overpayment found that meets
	// the target.
	Overpayment decimal.Decimal `json:"overpayment"`

	// Results at the solved overpayment
	Schedule      *domain.Schedule `json:"-"`
	MonthsTaken   int              `json:"monthsTaken"`
	TotalInterest decimal.Decimal  `json:"totalInterest"`

	// Comparison to the zero-overpayment baseline
	InterestSaved decimal.Decimal `json:"interestSaved"`
	MonthsSaved   int             `json:"monthsSaved"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Bracket width convergence tolerance, in pounds
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.New(1, -2), // one penny on the overpayment
		MaxIterations: 100,
	}
}

// Validate checks if a request is internally consistent
func (req *SolveRequest) Validate() error {
	switch req.Target {
	case TargetMonths:
		if req.TargetMonths <= 0 {
			return &BreakEvenError{
				Operation: "validate_request",
				Message:   "target months must be positive",
			}
		}
	case TargetInterest:
		if !req.TargetInterest.IsPositive() {
			return &BreakEvenError{
				Operation: "validate_request",
				Message:   "target interest must be positive",
			}
		}
	default:
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "unsupported optimization target: " + string(req.Target),
		}
	}
	return nil
}

// BreakEvenError represents errors from the break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
