package output

import (
	json "github.com/goccy/go-json"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// JSONFormatter serializes the full plan report as pretty-printed JSON,
// using the same codec as the HTTP API.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
