package calculation

import (
	"time"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// iterationHeadroom is added to twice the nominal term to form the ceiling
// on simulated months. Any schedule still open beyond that is reported as
// non-convergent instead of looping.
const iterationHeadroom = 1200

// unbounded marks a phase that runs until the balance clears rather than
// for a fixed number of months.
const unbounded = -1

// zeroTolerance snaps the sub-micro residue left by fixed-precision
// division to an exact zero balance, so the final record always closes the
// schedule.
var zeroTolerance = decimal.New(1, -6)

// daysPerMonth is the payoff-date approximation: months are counted as 30
// days each, not calendar months.
const daysPerMonth = 30

// Engine generates amortization schedules. Simulate is a pure function of
// the loan terms and the AsOf date; engines may be shared across goroutines
// since each run allocates only local state.
type Engine struct {
	// AsOf anchors the estimated payoff date. The zero value means "now".
	AsOf time.Time
}

// NewEngine creates an engine anchored at the current date.
func NewEngine() *Engine {
	return &Engine{AsOf: time.Now()}
}

// phaseSpec parametrizes one rate phase of the schedule. Both phases run
// through the same per-month step so the clamp and overpayment handling
// cannot drift apart.
type phaseSpec struct {
	ratePercent decimal.Decimal
	payment     decimal.Decimal
	monthBudget int
}

// simState carries the running balance and record list across phases.
type simState struct {
	balance     decimal.Decimal
	overpayment decimal.Decimal
	month       int
	ceiling     int
	records     []domain.PeriodRecord
}

// Simulate generates the full two-phase amortization schedule for the given
// terms and derives its summary.
func (e *Engine) Simulate(terms domain.LoanTerms) (*domain.Schedule, error) {
	if err := validateTerms(terms); err != nil {
		return nil, err
	}

	totalMonths := terms.TotalTermMonths
	phase1Months := terms.FixedPhaseMonths
	if phase1Months > totalMonths {
		phase1Months = totalMonths
	}

	st := &simState{
		balance:     terms.Principal,
		overpayment: terms.MonthlyOverpayment,
		ceiling:     2*totalMonths + iterationHeadroom,
	}

	// The phase-1 payment is sized against the full nominal term, the way
	// lenders quote a fixed-rate deal, even though the rate only applies
	// for the fixed phase.
	payment1 := MonthlyPayment(terms.Principal, terms.FixedRatePercent, totalMonths)
	if err := st.run(phaseSpec{
		ratePercent: terms.FixedRatePercent,
		payment:     payment1,
		monthBudget: phase1Months,
	}); err != nil {
		return nil, err
	}

	// Phase 2 only exists when the fixed phase did not already span the
	// whole term; its payment is recomputed against the balance actually
	// remaining, which reflects any phase-1 overpayments.
	if st.balance.IsPositive() && phase1Months < totalMonths {
		remaining := totalMonths - phase1Months
		payment2 := MonthlyPayment(st.balance, terms.RemainingRatePercent, remaining)
		if err := st.run(phaseSpec{
			ratePercent: terms.RemainingRatePercent,
			payment:     payment2,
			monthBudget: unbounded,
		}); err != nil {
			return nil, err
		}
	}

	sched := &domain.Schedule{Terms: terms, Records: st.records}
	sched.Summary = e.summarize(terms, st.records)
	return sched, nil
}

// run advances the schedule one month at a time until the phase's month
// budget is spent or the balance clears.
func (st *simState) run(p phaseSpec) error {
	rate := monthlyRate(p.ratePercent)

	for used := 0; (p.monthBudget == unbounded || used < p.monthBudget) && st.balance.IsPositive(); used++ {
		if st.month >= st.ceiling {
			return &NonConvergentError{Month: st.month, Balance: st.balance}
		}

		interest := st.balance.Mul(rate)
		principal := p.payment.Sub(interest)
		extra := st.overpayment
		payment := p.payment.Add(extra)

		// Final-period clamp: the borrower pays exactly what remains plus
		// the month's interest, never more.
		if principal.Add(extra).GreaterThan(st.balance) {
			principal = st.balance
			extra = decimal.Zero
			payment = st.balance.Add(interest)
		}

		reduction := principal.Add(extra)
		if !reduction.IsPositive() {
			// The payment does not cover interest and no overpayment makes
			// up the difference; the balance would never decrease.
			return &NonConvergentError{Month: st.month + 1, Balance: st.balance}
		}

		st.balance = decimal.Max(st.balance.Sub(reduction), decimal.Zero)
		if st.balance.IsPositive() && st.balance.LessThan(zeroTolerance) {
			st.balance = decimal.Zero
		}

		st.month++
		st.records = append(st.records, domain.PeriodRecord{
			Month:       st.month,
			Payment:     payment,
			Interest:    interest,
			Principal:   principal,
			Overpayment: extra,
			Balance:     st.balance,
		})
	}
	return nil
}

// summarize reduces the record list into the headline summary.
func (e *Engine) summarize(terms domain.LoanTerms, records []domain.PeriodRecord) domain.ScheduleSummary {
	totalInterest := decimal.Zero
	totalPayment := decimal.Zero
	for _, rec := range records {
		totalInterest = totalInterest.Add(rec.Interest)
		totalPayment = totalPayment.Add(rec.Payment)
	}

	monthsTaken := len(records)
	monthsSaved := terms.TotalTermMonths - monthsTaken
	if monthsSaved < 0 {
		monthsSaved = 0
	}

	asOf := e.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	return domain.ScheduleSummary{
		TotalInterest: totalInterest,
		TotalPayment:  totalPayment,
		MonthsTaken:   monthsTaken,
		PayoffDate:    asOf.AddDate(0, 0, monthsTaken*daysPerMonth),
		MonthsSaved:   monthsSaved,
	}
}

// validateTerms fails fast on terms that would produce an empty or infinite
// schedule. Field-level range validation of user input happens in the config
// layer; this is the engine's last line of defence.
func validateTerms(terms domain.LoanTerms) error {
	switch {
	case !terms.Principal.IsPositive():
		return &DegenerateTermError{Field: "principal", Message: "must be positive"}
	case terms.TotalTermMonths <= 0:
		return &DegenerateTermError{Field: "totalTermMonths", Message: "must be at least 1"}
	case terms.FixedPhaseMonths < 0:
		return &DegenerateTermError{Field: "fixedPhaseMonths", Message: "must not be negative"}
	case terms.FixedRatePercent.IsNegative():
		return &DegenerateTermError{Field: "fixedRatePercent", Message: "must not be negative"}
	case terms.RemainingRatePercent.IsNegative():
		return &DegenerateTermError{Field: "remainingRatePercent", Message: "must not be negative"}
	case terms.MonthlyOverpayment.IsNegative():
		return &DegenerateTermError{Field: "monthlyOverpayment", Message: "must not be negative"}
	}
	return nil
}
