package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// Engine runs depletion simulations and the required-initial solvers.
// It holds no per-plan state; a single Engine is safe to share across
// plans because every run owns its own working values.
type Engine struct {
	Debug  bool // Enable debug output for solver iterations
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// YearsUntilDepletion runs the simulation and returns YearsLasted
// regardless of whether the balance was actually depleted; a plan that
// survives the full window reports maxYears.
func (e *Engine) YearsUntilDepletion(params domain.PlanParameters, maxYears int) (decimal.Decimal, error) {
	sim, err := e.Simulate(params, maxYears, true)
	if err != nil {
		return decimal.Zero, err
	}
	return sim.YearsLasted, nil
}

// BuildPlanReport runs the full analysis for one plan: the depletion
// simulation over maxYears plus both required-initial estimates for the
// requested horizon (0 defers to the plan's target years).
func (e *Engine) BuildPlanReport(params domain.PlanParameters, maxYears, horizonYears int) (*domain.PlanReport, error) {
	sim, err := e.Simulate(params, maxYears, true)
	if err != nil {
		return nil, err
	}

	horizon := params.HorizonOrDefault(horizonYears)
	simulated, err := e.RequiredInitialForHorizon(params, horizon)
	if err != nil {
		return nil, err
	}

	return &domain.PlanReport{
		Plan:                      params,
		Result:                    sim,
		YearsUntilDepletion:       sim.YearsLasted,
		HorizonYears:              horizon,
		RequiredInitialClosedForm: RequiredInitialClosedForm(params, horizon),
		RequiredInitialSimulated:  simulated,
	}, nil
}
