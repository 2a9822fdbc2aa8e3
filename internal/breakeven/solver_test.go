package breakeven

import (
	"context"
	"testing"
	"time"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/calculation"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solverTerms() domain.LoanTerms {
	return domain.LoanTerms{
		Principal:            decimal.NewFromInt(240000),
		TotalTermMonths:      360,
		FixedRatePercent:     decimal.NewFromFloat(4.6),
		FixedPhaseMonths:     36,
		RemainingRatePercent: decimal.NewFromFloat(5.5),
	}
}

func newTestSolver() *Solver {
	return NewDefaultSolver(&calculation.Engine{
		AsOf: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func TestSolve_TargetMonths(t *testing.T) {
	solver := newTestSolver()

	// Work out what a 200/month overpayment actually achieves, then ask
	// the solver to hit that deadline; it should not need more than 200.
	reference, err := solver.CalcEngine.Simulate(solverTerms().WithOverpayment(decimal.NewFromInt(200)))
	require.NoError(t, err)

	result, err := solver.Solve(context.Background(), SolveRequest{
		Terms:        solverTerms(),
		Target:       TargetMonths,
		TargetMonths: reference.Summary.MonthsTaken,
	})
	require.NoError(t, err)

	assert.True(t, result.Success, "solver should converge: %s", result.ConvergenceInfo)
	assert.LessOrEqual(t, result.MonthsTaken, reference.Summary.MonthsTaken)
	assert.True(t, result.Overpayment.IsPositive())
	assert.True(t, result.Overpayment.LessThanOrEqual(decimal.NewFromFloat(200.01)),
		"200/month already meets this deadline, solver found %s", result.Overpayment)
	assert.True(t, result.InterestSaved.IsPositive())
	assert.Positive(t, result.MonthsSaved)
}

func TestSolve_TargetMonths_Minimal(t *testing.T) {
	solver := newTestSolver()

	// The solved amount should be close to minimal: paying a little less
	// must miss the deadline.
	target := 240
	result, err := solver.Solve(context.Background(), SolveRequest{
		Terms:        solverTerms(),
		Target:       TargetMonths,
		TargetMonths: target,
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	slightlyLess := result.Overpayment.Sub(decimal.NewFromInt(1))
	require.True(t, slightlyLess.IsPositive())
	sched, err := solver.CalcEngine.Simulate(solverTerms().WithOverpayment(slightlyLess))
	require.NoError(t, err)
	assert.Greater(t, sched.Summary.MonthsTaken, target,
		"paying £1 less per month should miss the deadline")
}

func TestSolve_TargetInterest(t *testing.T) {
	solver := newTestSolver()

	baseline, err := solver.CalcEngine.Simulate(solverTerms())
	require.NoError(t, err)

	// Ask for 20% less interest than the baseline pays.
	ceiling := baseline.Summary.TotalInterest.Mul(decimal.NewFromFloat(0.8))
	result, err := solver.Solve(context.Background(), SolveRequest{
		Terms:          solverTerms(),
		Target:         TargetInterest,
		TargetInterest: ceiling,
	})
	require.NoError(t, err)

	assert.True(t, result.Success, result.ConvergenceInfo)
	assert.True(t, result.TotalInterest.LessThanOrEqual(ceiling))
	assert.True(t, result.Overpayment.IsPositive())
}

func TestSolve_GoalAlreadyMet(t *testing.T) {
	solver := newTestSolver()

	result, err := solver.Solve(context.Background(), SolveRequest{
		Terms:        solverTerms(),
		Target:       TargetMonths,
		TargetMonths: 360,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.Overpayment.IsZero(), "the nominal term needs no overpayment")
	assert.Equal(t, 0, result.Iterations)
}

func TestSolve_InfeasibleTarget(t *testing.T) {
	solver := newTestSolver()

	// Less interest than even the first month accrues cannot be reached.
	_, err := solver.Solve(context.Background(), SolveRequest{
		Terms:          solverTerms(),
		Target:         TargetInterest,
		TargetInterest: decimal.NewFromInt(1),
	})

	var beErr *BreakEvenError
	require.ErrorAs(t, err, &beErr)
	assert.Equal(t, "solve", beErr.Operation)
}

func TestSolve_InvalidRequest(t *testing.T) {
	solver := newTestSolver()

	tests := []struct {
		name string
		req  SolveRequest
	}{
		{"unknown target", SolveRequest{Terms: solverTerms(), Target: "payments"}},
		{"zero months", SolveRequest{Terms: solverTerms(), Target: TargetMonths}},
		{"zero interest", SolveRequest{Terms: solverTerms(), Target: TargetInterest}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := solver.Solve(context.Background(), tt.req)
			var beErr *BreakEvenError
			assert.ErrorAs(t, err, &beErr)
		})
	}
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestSolver().Solve(ctx, SolveRequest{
		Terms:        solverTerms(),
		Target:       TargetMonths,
		TargetMonths: 240,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBreakEvenError_Unwrap(t *testing.T) {
	cause := context.DeadlineExceeded
	err := &BreakEvenError{Operation: "solve", Message: "timed out", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "solve: timed out")
}
