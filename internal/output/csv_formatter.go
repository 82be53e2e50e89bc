package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// CSVFormatter exports the monthly schedule, one row per simulated month.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Month", "Age", "Balance", "MonthlyWithdrawal", "YearlyWithdrawal", "InvestmentReturn"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, snap := range report.Result.Snapshots {
		age := ""
		if snap.Age != nil {
			age = snap.Age.StringFixed(2)
		}
		row := []string{
			strconv.Itoa(snap.MonthIndex),
			age,
			snap.Balance.StringFixed(2),
			snap.MonthlyWithdrawal.StringFixed(2),
			snap.YearlyWithdrawal.StringFixed(2),
			snap.InvestmentReturn.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
