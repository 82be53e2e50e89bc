package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/drawplan/drawdown-calculator/internal/calculation"
	"github.com/drawplan/drawdown-calculator/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the drawdown calculator as an HTTP API",
		Long: `Starts a stateless HTTP API exposing the simulation and the
required-initial solvers. Endpoints:

  POST /api/v1/simulate
  POST /api/v1/required-initial
  GET  /healthz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(calculation.NewEngine())
			log.Printf("drawplan API listening on %s", addr)
			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
