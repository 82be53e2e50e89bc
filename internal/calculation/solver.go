package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

const (
	// DefaultSolverMaxIterations bounds the bisection search.
	DefaultSolverMaxIterations = 200

	// solverHeadroomYears extends the simulation window past the target
	// horizon so depletion near the boundary is observable.
	solverHeadroomYears = 5
)

// DefaultSolverTolerance is the relative convergence tolerance for the
// bisection search.
var DefaultSolverTolerance = decimal.New(1, -6)

// RequiredInitialForHorizon runs the simulation-based solver with the
// default tolerance and iteration budget.
func (e *Engine) RequiredInitialForHorizon(params domain.PlanParameters, years int) (decimal.Decimal, error) {
	return e.RequiredInitialViaSimulation(params, years, DefaultSolverTolerance, DefaultSolverMaxIterations)
}

// RequiredInitialViaSimulation finds, by bisection over the starting
// balance, the initial savings whose simulated lifetime matches the
// target horizon. The bracket is seeded from the closed-form estimate;
// each probe simulates a fresh copy of the plan with only the balance
// replaced. Convergence is |high-low| <= tolerance * max(1, mid).
//
// maxIterations is taken literally: when it is exhausted (or zero) the
// current bracket midpoint is returned as a best-effort estimate rather
// than an error.
func (e *Engine) RequiredInitialViaSimulation(params domain.PlanParameters, years int, tolerance decimal.Decimal, maxIterations int) (decimal.Decimal, error) {
	horizon := params.HorizonOrDefault(years)
	target := decimal.NewFromInt(int64(horizon))

	low := decimal.Zero
	high := decimal.Max(one, RequiredInitialClosedForm(params, horizon).Mul(two))

	for i := 0; i < maxIterations; i++ {
		mid := low.Add(high).Div(two)

		trial := params.WithCurrentSavings(mid)
		sim, err := e.Simulate(trial, horizon+solverHeadroomYears, true)
		if err != nil {
			return decimal.Zero, err
		}

		if sim.YearsLasted.GreaterThan(target) {
			high = mid
		} else {
			low = mid
		}

		if e.Debug {
			e.Logger.Debugf("bisection %d: mid=%s lasted=%s years bracket=[%s, %s]",
				i+1, mid.StringFixed(2), sim.YearsLasted.StringFixed(4), low.StringFixed(2), high.StringFixed(2))
		}

		if high.Sub(low).Abs().LessThanOrEqual(tolerance.Mul(decimal.Max(one, mid))) {
			return mid, nil
		}
	}

	return low.Add(high).Div(two), nil
}
