package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// ConsoleFormatter renders the plan summary and the month-by-month
// schedule as a github-style pipe table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	plan := report.Plan
	result := report.Result

	fmt.Fprintln(&buf, "DRAWDOWN PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Starting balance:       %s\n", FormatCurrency(plan.CurrentSavings))
	fmt.Fprintf(&buf, "Monthly withdrawal:     %s\n", FormatCurrency(plan.MonthlyWithdrawal))
	if plan.YearlyWithdrawal != nil {
		fmt.Fprintf(&buf, "Yearly withdrawal:      %s\n", FormatCurrency(*plan.YearlyWithdrawal))
	}
	fmt.Fprintf(&buf, "Withdrawal timing:      %s of month\n", plan.Timing)
	fmt.Fprintf(&buf, "Nominal annual return:  %s\n", FormatPercentage(plan.AnnualReturnNominal))
	if plan.EffectiveTaxRateOnReturns != nil {
		fmt.Fprintf(&buf, "Tax rate on returns:    %s\n", FormatPercentage(*plan.EffectiveTaxRateOnReturns))
	}
	fmt.Fprintf(&buf, "Annual inflation:       %s\n", FormatPercentage(plan.AnnualInflation))
	fmt.Fprintln(&buf)

	if result.Depleted {
		fmt.Fprintf(&buf, "Savings last ~%s years (%d months); final balance %s\n",
			result.YearsLasted.StringFixed(1), result.MonthsLasted, FormatCurrency(result.FinalBalance))
	} else {
		fmt.Fprintf(&buf, "Savings not depleted within %s years; final balance %s\n",
			result.YearsLasted.StringFixed(1), FormatCurrency(result.FinalBalance))
	}
	fmt.Fprintln(&buf)

	writeScheduleTable(&buf, result.Snapshots)

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Required initial to last %d years:\n", report.HorizonYears)
	fmt.Fprintf(&buf, "  Closed-form estimate: %s\n", FormatCurrency(report.RequiredInitialClosedForm))
	fmt.Fprintf(&buf, "  Simulation-based:     %s\n", FormatCurrency(report.RequiredInitialSimulated))

	return buf.Bytes(), nil
}

func writeScheduleTable(buf *bytes.Buffer, snapshots []domain.SimulationSnapshot) {
	headers := []string{"Month", "Age", "Balance", "Monthly Wd", "Yearly Wd", "Monthly Return"}
	rows := make([][]string, 0, len(snapshots))
	for _, snap := range snapshots {
		age := "-"
		if snap.Age != nil {
			age = snap.Age.StringFixed(2)
		}
		yearly := "-"
		if !snap.YearlyWithdrawal.IsZero() {
			yearly = FormatCurrency(snap.YearlyWithdrawal)
		}
		rows = append(rows, []string{
			strconv.Itoa(snap.MonthIndex),
			age,
			FormatCurrency(snap.Balance),
			FormatCurrency(snap.MonthlyWithdrawal),
			yearly,
			FormatCurrency(snap.InvestmentReturn),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			fmt.Fprintf(buf, "| %-*s ", widths[i], cell)
		}
		fmt.Fprintln(buf, "|")
	}

	writeRow(headers)
	for i := range headers {
		fmt.Fprintf(buf, "|%s", strings.Repeat("-", widths[i]+2))
	}
	fmt.Fprintln(buf, "|")
	for _, row := range rows {
		writeRow(row)
	}
}
