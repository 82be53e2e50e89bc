package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// zeroRateThreshold guards the annuity division against near-zero real
// rates; below it the present value degenerates to payment * periods.
var zeroRateThreshold = decimal.New(1, -9)

// RequiredInitialClosedForm computes the initial balance needed to sustain
// the plan's withdrawals for the given horizon, as the real-rate present
// value of the monthly stream plus the optional yearly stream. The first
// payment of each stream is valued at the valuation date, so no extra
// discount period is applied.
//
// Because withdrawals are assumed to track inflation exactly, this value
// diverges from the simulation-based solver, whose yearly escalation steps
// at calendar-month boundaries. The divergence is a property of the two
// models, not an error in either.
//
// years <= 0 defers to the plan's target years.
func RequiredInitialClosedForm(params domain.PlanParameters, years int) decimal.Decimal {
	horizon := params.HorizonOrDefault(years)
	monthlyRate := params.MonthlyRealRate()

	pv := annuityPresentValue(params.MonthlyWithdrawal, monthlyRate, horizon*monthsPerYear)

	if params.YearlyWithdrawal != nil && params.YearlyWithdrawal.IsPositive() {
		// Effective real annual rate from the monthly real rate.
		annualRate := decimal.NewFromFloat(math.Pow(1+monthlyRate.InexactFloat64(), monthsPerYear) - 1)
		pv = pv.Add(annuityPresentValue(*params.YearlyWithdrawal, annualRate, horizon))
	}

	return pv
}

// annuityPresentValue values an ordinary annuity of the given per-period
// payment at the given per-period rate.
func annuityPresentValue(payment, rate decimal.Decimal, periods int) decimal.Decimal {
	if rate.Abs().LessThan(zeroRateThreshold) {
		return payment.Mul(decimal.NewFromInt(int64(periods)))
	}
	discount := decimal.NewFromFloat(math.Pow(1+rate.InexactFloat64(), -float64(periods)))
	return payment.Mul(one.Sub(discount)).Div(rate)
}
