package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// Configuration is the top-level plan document: the plan itself plus
// options controlling how it is run.
type Configuration struct {
	Plan domain.PlanParameters `yaml:"plan" json:"plan"`
	Run  RunOptions            `yaml:"run" json:"run"`
}

// RunOptions controls the simulation window and reporting horizon.
type RunOptions struct {
	// MaxYears bounds the simulation; defaults to DefaultMaxYears.
	MaxYears int `yaml:"max_years" json:"max_years"`

	// AdjustWithdrawalForInflation defaults to true when omitted.
	AdjustWithdrawalForInflation *bool `yaml:"adjust_withdrawal_for_inflation,omitempty" json:"adjust_withdrawal_for_inflation,omitempty"`

	// HorizonYears is the horizon for the required-initial estimates;
	// 0 defers to the plan's target years.
	HorizonYears int `yaml:"horizon_years" json:"horizon_years"`
}

// DefaultMaxYears is the simulation window used when the document does
// not specify one.
const DefaultMaxYears = 100

// AdjustForInflation resolves the option's default.
func (r RunOptions) AdjustForInflation() bool {
	return r.AdjustWithdrawalForInflation == nil || *r.AdjustWithdrawalForInflation
}

// InputParser handles parsing of plan documents.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan document from a YAML file, applies defaults,
// and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func (ip *InputParser) applyDefaults(config *Configuration) {
	if config.Plan.Timing == "" {
		config.Plan.Timing = domain.TimingStart
	}
	if config.Plan.TargetYears == 0 {
		config.Plan.TargetYears = domain.DefaultTargetYears
	}
	if config.Run.MaxYears == 0 {
		config.Run.MaxYears = DefaultMaxYears
	}
}

// ValidateConfiguration validates the loaded document. The calculation
// core deliberately accepts degenerate numbers; this boundary rejects
// documents that are obviously broken.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := ip.validatePlan(&config.Plan); err != nil {
		return fmt.Errorf("plan validation failed: %w", err)
	}
	if err := ip.validateRunOptions(&config.Run); err != nil {
		return fmt.Errorf("run options validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validatePlan(plan *domain.PlanParameters) error {
	if !plan.Timing.Valid() {
		return fmt.Errorf("withdrawal_timing must be %q or %q", domain.TimingStart, domain.TimingEnd)
	}
	if plan.CurrentSavings.IsNegative() {
		return fmt.Errorf("current_savings cannot be negative")
	}
	if plan.MonthlyWithdrawal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly_withdrawal must be positive")
	}
	if plan.AnnualInflation.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("annual_inflation cannot be less than -10%% (extreme deflation)")
	}
	if plan.AnnualReturnNominal.LessThan(decimal.NewFromFloat(-1.0)) {
		return fmt.Errorf("annual_return_nominal cannot be less than -100%%")
	}
	if plan.TargetYears <= 0 || plan.TargetYears > DefaultMaxYears {
		return fmt.Errorf("target_years must be between 1 and %d", DefaultMaxYears)
	}
	if plan.EffectiveTaxRateOnReturns != nil {
		rate := *plan.EffectiveTaxRateOnReturns
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("effective_tax_rate_on_returns must be between 0 and 1")
		}
	}
	if plan.YearlyWithdrawal != nil && plan.YearlyWithdrawal.IsNegative() {
		return fmt.Errorf("yearly_withdrawal cannot be negative")
	}
	if plan.StartAge != nil && plan.StartAge.IsNegative() {
		return fmt.Errorf("start_age cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateRunOptions(run *RunOptions) error {
	if run.MaxYears <= 0 || run.MaxYears > 200 {
		return fmt.Errorf("max_years must be between 1 and 200")
	}
	if run.HorizonYears < 0 || run.HorizonYears > run.MaxYears {
		return fmt.Errorf("horizon_years must be between 0 and max_years")
	}
	return nil
}

// CreateExampleConfiguration returns a starter plan document: a retiree
// drawing 4000/month plus a 30000 yearly lump from 350k savings at a
// 12.5% nominal return and 4.7% inflation.
func (ip *InputParser) CreateExampleConfiguration() *Configuration {
	yearly := decimal.NewFromInt(30000)
	startAge := decimal.NewFromInt(80)

	return &Configuration{
		Plan: domain.PlanParameters{
			CurrentSavings:      decimal.NewFromInt(350000),
			AnnualReturnNominal: decimal.NewFromFloat(0.125),
			AnnualInflation:     decimal.NewFromFloat(0.047),
			MonthlyWithdrawal:   decimal.NewFromInt(4000),
			TargetYears:         20,
			Timing:              domain.TimingStart,
			StartAge:            &startAge,
			YearlyWithdrawal:    &yearly,
		},
		Run: RunOptions{
			MaxYears: 60,
		},
	}
}
