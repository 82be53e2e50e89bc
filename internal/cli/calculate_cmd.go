package cli

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drawplan/drawdown-calculator/internal/calculation"
	"github.com/drawplan/drawdown-calculator/internal/config"
	"github.com/drawplan/drawdown-calculator/internal/output"
)

// stderrLogger routes solver debug traces through the standard logger.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

func newCalculateCmd() *cobra.Command {
	var (
		inputFile  string
		formatName string
		outputFile string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run the drawdown analysis for a plan file",
		Long: `Loads a YAML plan document, simulates the month-by-month drawdown,
and reports how long the savings last together with the initial amount
required to sustain the plan for the target horizon.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}

			engine := calculation.NewEngine()
			if debug {
				engine.Debug = true
				engine.SetLogger(stderrLogger{})
			}

			if !cfg.Run.AdjustForInflation() {
				// BuildPlanReport always inflation-adjusts; honor the
				// option by running the simulation directly.
				result, err := engine.Simulate(cfg.Plan, cfg.Run.MaxYears, false)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Savings last ~%s years (%d months); final balance %s\n",
					result.YearsLasted.StringFixed(1), result.MonthsLasted,
					output.FormatCurrency(result.FinalBalance))
				return nil
			}

			report, err := engine.BuildPlanReport(cfg.Plan, cfg.Run.MaxYears, cfg.Run.HorizonYears)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %s)",
					formatName, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			rendered, err := formatter.Format(report)
			if err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}

			if outputFile == "" {
				_, err = cmd.OutOrStdout().Write(rendered)
				return err
			}
			if err := os.WriteFile(outputFile, rendered, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "plan document (YAML)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format (console, csv, json, pdf)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write report to file instead of stdout")
	cmd.Flags().BoolVar(&debug, "debug", false, "log solver iterations to stderr")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
