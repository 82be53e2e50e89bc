package domain

import (
	"github.com/shopspring/decimal"
)

// PlanReport aggregates everything the presentation layer needs for one
// plan: the full schedule plus the depletion horizon and both
// required-initial estimates.
type PlanReport struct {
	Plan   PlanParameters    `json:"plan" yaml:"plan"`
	Result *SimulationResult `json:"result" yaml:"result"`

	YearsUntilDepletion decimal.Decimal `json:"years_until_depletion" yaml:"years_until_depletion"`

	// HorizonYears is the horizon both required-initial estimates target.
	HorizonYears              int             `json:"horizon_years" yaml:"horizon_years"`
	RequiredInitialClosedForm decimal.Decimal `json:"required_initial_closed_form" yaml:"required_initial_closed_form"`
	RequiredInitialSimulated  decimal.Decimal `json:"required_initial_simulated" yaml:"required_initial_simulated"`
}
