package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

const monthsPerYear = 12

// carryPrecision bounds the decimal places carried month over month so
// coefficients stay small across 100-year horizons; amounts are reported
// in cents, so eight places are invisible downstream.
const carryPrecision = 8

var (
	one    = decimal.NewFromInt(1)
	two    = decimal.NewFromInt(2)
	twelve = decimal.NewFromInt(monthsPerYear)
)

// Simulate runs the deterministic month-by-month depletion simulation for
// up to maxYears. When adjustForInflation is true the running monthly
// withdrawal is scaled by the effective monthly inflation every month
// after the first, and the running yearly withdrawal by annual inflation
// at every 12-month boundary. The running amounts are call-scoped state;
// params itself is never modified.
//
// The simulation terminates the month the balance reaches zero or below;
// that month is excluded from MonthsLasted and the final balance keeps
// its (possibly negative) value.
func (e *Engine) Simulate(params domain.PlanParameters, maxYears int, adjustForInflation bool) (*domain.SimulationResult, error) {
	if !params.Timing.Valid() {
		return nil, fmt.Errorf("withdrawal timing must be %q or %q, got %q", domain.TimingStart, domain.TimingEnd, params.Timing)
	}

	growthFactor := one.Add(params.MonthlyNominalReturn())
	monthlyInflationFactor := one.Add(params.MonthlyInflation())
	yearlyInflationFactor := one.Add(params.AnnualInflation)

	balance := params.CurrentSavings
	monthlyWithdrawal := params.MonthlyWithdrawal
	hasYearly := params.YearlyWithdrawal != nil
	yearlyWithdrawal := decimal.Zero
	if hasYearly {
		yearlyWithdrawal = *params.YearlyWithdrawal
	}

	months := maxYears * monthsPerYear
	snapshots := make([]domain.SimulationSnapshot, 0, months)

	for m := 1; m <= months; m++ {
		isYearlyMonth := m%monthsPerYear == 1

		if adjustForInflation && m > 1 {
			monthlyWithdrawal = monthlyWithdrawal.Mul(monthlyInflationFactor).Round(carryPrecision)
			if hasYearly && isYearlyMonth {
				yearlyWithdrawal = yearlyWithdrawal.Mul(yearlyInflationFactor).Round(carryPrecision)
			}
		}

		if params.Timing == domain.TimingStart {
			balance = balance.Sub(monthlyWithdrawal)
			if hasYearly && isYearlyMonth {
				balance = balance.Sub(yearlyWithdrawal)
			}
		}

		preGrowth := balance
		balance = balance.Mul(growthFactor).Round(carryPrecision)
		investmentReturn := balance.Sub(preGrowth)

		if params.Timing == domain.TimingEnd {
			balance = balance.Sub(monthlyWithdrawal)
			if hasYearly && isYearlyMonth {
				balance = balance.Sub(yearlyWithdrawal)
			}
		}

		snap := domain.SimulationSnapshot{
			MonthIndex:        m,
			Balance:           balance,
			MonthlyWithdrawal: monthlyWithdrawal,
			InvestmentReturn:  investmentReturn,
		}
		if hasYearly && isYearlyMonth {
			snap.YearlyWithdrawal = yearlyWithdrawal
		}
		if params.StartAge != nil {
			age := params.StartAge.Add(decimal.NewFromInt(int64(m - 1)).Div(twelve))
			snap.Age = &age
		}
		snapshots = append(snapshots, snap)

		if balance.LessThanOrEqual(decimal.Zero) {
			return &domain.SimulationResult{
				Depleted:     true,
				MonthsLasted: m - 1,
				YearsLasted:  decimal.NewFromInt(int64(m - 1)).Div(twelve),
				FinalBalance: balance,
				Snapshots:    snapshots,
			}, nil
		}
	}

	return &domain.SimulationResult{
		Depleted:     false,
		MonthsLasted: months,
		YearsLasted:  decimal.NewFromInt(int64(months)).Div(twelve),
		FinalBalance: balance,
		Snapshots:    snapshots,
	}, nil
}
