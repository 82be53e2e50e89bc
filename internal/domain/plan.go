package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// WithdrawalTiming selects whether the monthly withdrawal is taken before
// or after that month's growth is applied.
type WithdrawalTiming string

const (
	TimingStart WithdrawalTiming = "start"
	TimingEnd   WithdrawalTiming = "end"
)

// Valid reports whether the timing is one of the recognized values.
func (t WithdrawalTiming) Valid() bool {
	return t == TimingStart || t == TimingEnd
}

// DefaultTargetYears is the horizon used for required-initial calculations
// when the plan does not specify one.
const DefaultTargetYears = 20

// PlanParameters describes a single drawdown plan. It is an immutable value:
// solvers build modified copies (see WithCurrentSavings) rather than mutating
// a shared instance, so concurrent runs over distinct plans need no
// coordination.
type PlanParameters struct {
	CurrentSavings      decimal.Decimal  `json:"current_savings" yaml:"current_savings"`
	AnnualReturnNominal decimal.Decimal  `json:"annual_return_nominal" yaml:"annual_return_nominal"`
	AnnualInflation     decimal.Decimal  `json:"annual_inflation" yaml:"annual_inflation"`
	MonthlyWithdrawal   decimal.Decimal  `json:"monthly_withdrawal" yaml:"monthly_withdrawal"`
	TargetYears         int              `json:"target_years" yaml:"target_years"`
	Timing              WithdrawalTiming `json:"withdrawal_timing" yaml:"withdrawal_timing"`

	// EffectiveTaxRateOnReturns is an optional flat haircut applied
	// multiplicatively to the nominal return before any conversion.
	EffectiveTaxRateOnReturns *decimal.Decimal `json:"effective_tax_rate_on_returns,omitempty" yaml:"effective_tax_rate_on_returns,omitempty"`

	// StartAge labels simulation rows with an age; it has no effect on
	// the computation.
	StartAge *decimal.Decimal `json:"start_age,omitempty" yaml:"start_age,omitempty"`

	// YearlyWithdrawal is an additional lump taken once every 12 months
	// (months 1, 13, 25, ...), additive to the monthly withdrawal.
	YearlyWithdrawal *decimal.Decimal `json:"yearly_withdrawal,omitempty" yaml:"yearly_withdrawal,omitempty"`
}

// taxAdjustedReturn applies the optional flat tax haircut to the nominal
// annual return.
func (p PlanParameters) taxAdjustedReturn() float64 {
	r := p.AnnualReturnNominal.InexactFloat64()
	if p.EffectiveTaxRateOnReturns != nil {
		r *= 1 - p.EffectiveTaxRateOnReturns.InexactFloat64()
	}
	return r
}

// MonthlyNominalReturn converts the (possibly tax-adjusted) nominal annual
// return to an effective monthly rate: (1+r)^(1/12) - 1.
func (p PlanParameters) MonthlyNominalReturn() decimal.Decimal {
	return decimal.NewFromFloat(math.Pow(1+p.taxAdjustedReturn(), 1.0/12) - 1)
}

// AnnualRealRate is the Fisher relation (1+r)/(1+g) - 1 on the
// tax-adjusted nominal return and the annual inflation rate.
func (p PlanParameters) AnnualRealRate() decimal.Decimal {
	g := p.AnnualInflation.InexactFloat64()
	return decimal.NewFromFloat((1+p.taxAdjustedReturn())/(1+g) - 1)
}

// MonthlyRealRate is the effective monthly real rate used by the
// closed-form annuity valuation.
func (p PlanParameters) MonthlyRealRate() decimal.Decimal {
	return decimal.NewFromFloat(math.Pow(1+p.AnnualRealRate().InexactFloat64(), 1.0/12) - 1)
}

// MonthlyInflation is the effective monthly inflation rate used to scale
// the running withdrawal during simulation.
func (p PlanParameters) MonthlyInflation() decimal.Decimal {
	return decimal.NewFromFloat(math.Pow(1+p.AnnualInflation.InexactFloat64(), 1.0/12) - 1)
}

// WithCurrentSavings returns a copy of the plan with only the starting
// balance replaced. Optional fields are shared by pointer; they are
// treated as read-only everywhere.
func (p PlanParameters) WithCurrentSavings(savings decimal.Decimal) PlanParameters {
	out := p
	out.CurrentSavings = savings
	return out
}

// HorizonOrDefault resolves a requested horizon: an explicit positive
// value wins, then the plan's TargetYears, then DefaultTargetYears.
func (p PlanParameters) HorizonOrDefault(years int) int {
	if years > 0 {
		return years
	}
	if p.TargetYears > 0 {
		return p.TargetYears
	}
	return DefaultTargetYears
}
