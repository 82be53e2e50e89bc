package server

import (
	"github.com/shopspring/decimal"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// SimulateRequest asks for a month-by-month depletion simulation.
type SimulateRequest struct {
	Plan domain.PlanParameters `json:"plan"`

	// MaxYears bounds the simulation; defaults to 100.
	MaxYears int `json:"max_years"`

	// AdjustWithdrawalForInflation defaults to true when omitted.
	AdjustWithdrawalForInflation *bool `json:"adjust_withdrawal_for_inflation,omitempty"`
}

// RequiredInitialRequest asks for both required-initial estimates.
type RequiredInitialRequest struct {
	Plan domain.PlanParameters `json:"plan"`

	// Years is the target horizon; 0 defers to the plan's target years.
	Years int `json:"years"`
}

// RequiredInitialResponse carries the closed-form and simulation-based
// estimates side by side.
type RequiredInitialResponse struct {
	HorizonYears int             `json:"horizon_years"`
	ClosedForm   decimal.Decimal `json:"closed_form"`
	Simulated    decimal.Decimal `json:"simulated"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
