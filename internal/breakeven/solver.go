package breakeven

import (
	"context"
	"fmt"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/calculation"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// Solver finds the smallest monthly overpayment that meets a payoff or
// interest target, by binary search over the overpayment amount. Both
// targets are monotone in the overpayment, so bisection is sufficient.
type Solver struct {
	CalcEngine *calculation.Engine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.Engine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve performs the search described by the request.
func (s *Solver) Solve(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	baseline, err := s.CalcEngine.Simulate(req.Terms.WithoutOverpayment())
	if err != nil {
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   "failed to calculate baseline schedule",
			Cause:     err,
		}
	}

	// The baseline may already meet the goal.
	if s.goalMet(req, baseline) {
		result := s.buildResult(req, decimal.Zero, baseline, baseline, 0)
		result.Success = true
		result.ConvergenceInfo = "goal already met without overpayment"
		return result, nil
	}

	// Bracket the goal: grow the upper bound until it is met. An upper
	// bound past the whole principal per month means no overpayment can
	// meet the target.
	iterations := 0
	lo := decimal.Zero
	hi := decimal.NewFromInt(100)
	var hiSched *domain.Schedule
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++

		sched, err := s.CalcEngine.Simulate(req.Terms.WithOverpayment(hi))
		if err != nil {
			return nil, &BreakEvenError{
				Operation: "solve",
				Message:   "failed to calculate candidate schedule",
				Cause:     err,
			}
		}
		if s.goalMet(req, sched) {
			hiSched = sched
			break
		}

		lo = hi
		hi = hi.Mul(decimal.NewFromInt(2))
		if hi.GreaterThan(req.Terms.Principal) {
			return nil, &BreakEvenError{
				Operation: "solve",
				Message:   fmt.Sprintf("no monthly overpayment up to £%s meets the target", req.Terms.Principal.StringFixed(0)),
			}
		}
	}

	// Bisect down to the smallest overpayment that still meets the goal.
	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(req.Tolerance) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		iterations++

		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		sched, err := s.CalcEngine.Simulate(req.Terms.WithOverpayment(mid))
		if err != nil {
			return nil, &BreakEvenError{
				Operation: "solve",
				Message:   "failed to calculate candidate schedule",
				Cause:     err,
			}
		}

		if s.goalMet(req, sched) {
			hi = mid
			hiSched = sched
		} else {
			lo = mid
		}
	}

	result := s.buildResult(req, hi, hiSched, baseline, iterations)
	if hi.Sub(lo).GreaterThan(req.Tolerance) {
		result.ConvergenceInfo = fmt.Sprintf("max iterations (%d) reached", req.MaxIterations)
		return result, nil
	}

	result.Success = true
	result.ConvergenceInfo = fmt.Sprintf("converged to within £%s after %d iterations",
		req.Tolerance.String(), iterations)
	return result, nil
}

// goalMet reports whether a schedule satisfies the request's target.
func (s *Solver) goalMet(req SolveRequest, sched *domain.Schedule) bool {
	switch req.Target {
	case TargetMonths:
		return sched.Summary.MonthsTaken <= req.TargetMonths
	case TargetInterest:
		return sched.Summary.TotalInterest.LessThanOrEqual(req.TargetInterest)
	}
	return false
}

func (s *Solver) buildResult(req SolveRequest, overpayment decimal.Decimal, sched, baseline *domain.Schedule, iterations int) *SolveResult {
	return &SolveResult{
		Request:       req,
		Iterations:    iterations,
		Overpayment:   overpayment,
		Schedule:      sched,
		MonthsTaken:   sched.Summary.MonthsTaken,
		TotalInterest: sched.Summary.TotalInterest,
		InterestSaved: baseline.Summary.TotalInterest.Sub(sched.Summary.TotalInterest),
		MonthsSaved:   baseline.Summary.MonthsTaken - sched.Summary.MonthsTaken,
	}
}
