package server

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/drawplan/drawdown-calculator/internal/calculation"
	"github.com/drawplan/drawdown-calculator/internal/config"
	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// Server exposes the calculation engine over HTTP.
type Server struct {
	engine *calculation.Engine
}

func New(engine *calculation.Engine) *Server {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &Server{engine: engine}
}

// Handler routes all API requests; pass it to fasthttp.ListenAndServe.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		s.handleHealth(ctx)
	case "/api/v1/simulate":
		s.handleSimulate(ctx)
	case "/api/v1/required-initial":
		s.handleRequiredInitial(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	return fasthttp.ListenAndServe(addr, s.Handler)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSimulate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SimulateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	normalizePlan(&req.Plan)

	maxYears := req.MaxYears
	if maxYears <= 0 {
		maxYears = config.DefaultMaxYears
	}
	adjust := true
	if req.AdjustWithdrawalForInflation != nil {
		adjust = *req.AdjustWithdrawalForInflation
	}

	result, err := s.engine.Simulate(req.Plan, maxYears, adjust)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleRequiredInitial(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RequiredInitialRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	normalizePlan(&req.Plan)

	horizon := req.Plan.HorizonOrDefault(req.Years)
	closedForm := calculation.RequiredInitialClosedForm(req.Plan, horizon)
	simulated, err := s.engine.RequiredInitialForHorizon(req.Plan, horizon)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, RequiredInitialResponse{
		HorizonYears: horizon,
		ClosedForm:   closedForm,
		Simulated:    simulated,
	})
}

func normalizePlan(plan *domain.PlanParameters) {
	if plan.Timing == "" {
		plan.Timing = domain.TimingStart
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(fmt.Sprintf(`{"status":500,"message":%q}`, err.Error()))
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
