package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// PDFFormatter renders the plan summary and the full withdrawal schedule
// as a printable A4 document.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Drawdown Plan Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	plan := report.Plan
	result := report.Result

	pdf.SetFont("Arial", "", 11)
	summary := []string{
		fmt.Sprintf("Starting balance: %s", FormatCurrency(plan.CurrentSavings)),
		fmt.Sprintf("Monthly withdrawal: %s (%s of month)", FormatCurrency(plan.MonthlyWithdrawal), plan.Timing),
		fmt.Sprintf("Nominal annual return: %s, inflation: %s",
			FormatPercentage(plan.AnnualReturnNominal), FormatPercentage(plan.AnnualInflation)),
	}
	if plan.YearlyWithdrawal != nil {
		summary = append(summary, fmt.Sprintf("Yearly withdrawal: %s", FormatCurrency(*plan.YearlyWithdrawal)))
	}
	if result.Depleted {
		summary = append(summary, fmt.Sprintf("Savings last ~%s years (%d months), final balance %s",
			result.YearsLasted.StringFixed(1), result.MonthsLasted, FormatCurrency(result.FinalBalance)))
	} else {
		summary = append(summary, fmt.Sprintf("Savings not depleted within %s years, final balance %s",
			result.YearsLasted.StringFixed(1), FormatCurrency(result.FinalBalance)))
	}
	summary = append(summary,
		fmt.Sprintf("Required initial to last %d years: closed-form %s, simulation-based %s",
			report.HorizonYears,
			FormatCurrency(report.RequiredInitialClosedForm),
			FormatCurrency(report.RequiredInitialSimulated)))
	for _, line := range summary {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{16, 16, 38, 32, 32, 36}
	headers := []string{"Month", "Age", "Balance", "Monthly Wd", "Yearly Wd", "Return"}

	writeHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	pdf.SetFillColor(230, 230, 230)
	writeHeader()
	for _, snap := range result.Snapshots {
		age := "-"
		if snap.Age != nil {
			age = snap.Age.StringFixed(2)
		}
		yearly := "-"
		if !snap.YearlyWithdrawal.IsZero() {
			yearly = FormatCurrency(snap.YearlyWithdrawal)
		}
		cells := []string{
			strconv.Itoa(snap.MonthIndex),
			age,
			FormatCurrency(snap.Balance),
			FormatCurrency(snap.MonthlyWithdrawal),
			yearly,
			FormatCurrency(snap.InvestmentReturn),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
