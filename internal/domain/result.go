package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationSnapshot captures the state of the account after one simulated
// month has been fully processed.
type SimulationSnapshot struct {
	// MonthIndex is 1-based.
	MonthIndex int              `json:"month_index" yaml:"month_index"`
	Age        *decimal.Decimal `json:"age,omitempty" yaml:"age,omitempty"`

	// Balance is the end-of-month balance after withdrawals and growth.
	Balance decimal.Decimal `json:"balance" yaml:"balance"`

	// MonthlyWithdrawal is the inflation-scaled amount applied this month.
	MonthlyWithdrawal decimal.Decimal `json:"monthly_withdrawal" yaml:"monthly_withdrawal"`

	// YearlyWithdrawal is the scaled lump applied this month, zero in
	// months where no yearly withdrawal occurs.
	YearlyWithdrawal decimal.Decimal `json:"yearly_withdrawal" yaml:"yearly_withdrawal"`

	// InvestmentReturn is the growth earned this month.
	InvestmentReturn decimal.Decimal `json:"investment_return" yaml:"investment_return"`
}

// SimulationResult is the outcome of one depletion simulation. It is owned
// by the caller and never reused across runs.
type SimulationResult struct {
	Depleted     bool            `json:"depleted" yaml:"depleted"`
	MonthsLasted int             `json:"months_lasted" yaml:"months_lasted"`
	YearsLasted  decimal.Decimal `json:"years_lasted" yaml:"years_lasted"`

	// FinalBalance is the balance at termination, negative when the last
	// withdrawal overdrew the account. It is deliberately not clamped.
	FinalBalance decimal.Decimal `json:"final_balance" yaml:"final_balance"`

	Snapshots []SimulationSnapshot `json:"snapshots" yaml:"snapshots"`
}
