package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func ratesPlan() PlanParameters {
	return PlanParameters{
		CurrentSavings:      decimal.NewFromInt(350000),
		AnnualReturnNominal: decimal.NewFromFloat(0.125),
		AnnualInflation:     decimal.NewFromFloat(0.047),
		MonthlyWithdrawal:   decimal.NewFromInt(4000),
		TargetYears:         20,
		Timing:              TimingStart,
	}
}

func assertClose(t *testing.T, got decimal.Decimal, want float64, tol float64) {
	t.Helper()
	if got.Sub(decimal.NewFromFloat(want)).Abs().GreaterThan(decimal.NewFromFloat(tol)) {
		t.Fatalf("expected ~%v, got %s", want, got.String())
	}
}

func TestMonthlyNominalReturn(t *testing.T) {
	p := ratesPlan()
	// (1.125)^(1/12) - 1
	assertClose(t, p.MonthlyNominalReturn(), 0.00986358055321146, 1e-12)
}

func TestAnnualRealRate(t *testing.T) {
	p := ratesPlan()
	// 1.125/1.047 - 1
	assertClose(t, p.AnnualRealRate(), 0.07449856733524363, 1e-12)
}

func TestMonthlyRealRate(t *testing.T) {
	p := ratesPlan()
	assertClose(t, p.MonthlyRealRate(), 0.006005804941684678, 1e-12)
}

func TestMonthlyInflation(t *testing.T) {
	p := ratesPlan()
	// (1.047)^(1/12) - 1
	assertClose(t, p.MonthlyInflation(), 0.003834744881765939, 1e-12)
}

func TestTaxHaircutOnReturns(t *testing.T) {
	p := ratesPlan()
	tax := decimal.NewFromFloat(0.15)
	p.EffectiveTaxRateOnReturns = &tax

	// Nominal 12.5% taxed at 15% -> 10.625% effective annual.
	assertClose(t, p.MonthlyNominalReturn(), 0.008450162539276551, 1e-12)
	assertClose(t, p.AnnualRealRate(), 0.056590257879656214, 1e-12)
}

func TestZeroTaxRateIsNoOp(t *testing.T) {
	p := ratesPlan()
	zero := decimal.Zero
	p.EffectiveTaxRateOnReturns = &zero

	if !p.MonthlyNominalReturn().Equal(ratesPlan().MonthlyNominalReturn()) {
		t.Fatalf("zero tax rate changed the monthly return")
	}
}

func TestWithCurrentSavings(t *testing.T) {
	p := ratesPlan()
	q := p.WithCurrentSavings(decimal.NewFromInt(999))

	if !q.CurrentSavings.Equal(decimal.NewFromInt(999)) {
		t.Fatalf("expected copy to carry 999, got %s", q.CurrentSavings.String())
	}
	if !p.CurrentSavings.Equal(decimal.NewFromInt(350000)) {
		t.Fatalf("original plan was modified: %s", p.CurrentSavings.String())
	}
	if q.MonthlyWithdrawal != p.MonthlyWithdrawal || q.Timing != p.Timing {
		t.Fatalf("copy dropped unrelated fields")
	}
}

func TestWithdrawalTimingValid(t *testing.T) {
	if !TimingStart.Valid() || !TimingEnd.Valid() {
		t.Fatalf("expected start/end to be valid")
	}
	if WithdrawalTiming("").Valid() || WithdrawalTiming("middle").Valid() {
		t.Fatalf("expected unknown timings to be invalid")
	}
}

func TestHorizonOrDefault(t *testing.T) {
	p := ratesPlan()
	if got := p.HorizonOrDefault(30); got != 30 {
		t.Fatalf("explicit horizon: expected 30, got %d", got)
	}
	if got := p.HorizonOrDefault(0); got != 20 {
		t.Fatalf("plan target: expected 20, got %d", got)
	}
	p.TargetYears = 0
	if got := p.HorizonOrDefault(0); got != DefaultTargetYears {
		t.Fatalf("default: expected %d, got %d", DefaultTargetYears, got)
	}
}
