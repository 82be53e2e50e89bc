package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/drawplan/drawdown-calculator/internal/calculation"
	"github.com/drawplan/drawdown-calculator/internal/domain"
)

func doRequest(t *testing.T, method, path string, body []byte) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		ctx.Request.SetBody(body)
	}

	New(calculation.NewEngine()).Handler(ctx)
	return ctx
}

func TestHealthEndpoint(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/healthz", nil)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"ok"`)
}

func TestUnknownPath(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/api/v2/nope", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestSimulateEndpoint(t *testing.T) {
	body, err := json.Marshal(SimulateRequest{
		Plan: domain.PlanParameters{
			CurrentSavings:      decimal.NewFromInt(350000),
			AnnualReturnNominal: decimal.NewFromFloat(0.125),
			AnnualInflation:     decimal.NewFromFloat(0.047),
			MonthlyWithdrawal:   decimal.NewFromInt(4000),
			TargetYears:         20,
			Timing:              domain.TimingStart,
		},
		MaxYears: 60,
	})
	require.NoError(t, err)

	ctx := doRequest(t, fasthttp.MethodPost, "/api/v1/simulate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var result domain.SimulationResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.True(t, result.Depleted)
	assert.Equal(t, 123, result.MonthsLasted)
}

func TestSimulateEndpointDefaultsTiming(t *testing.T) {
	// Omitted timing must default to start-of-month rather than fail
	// validation.
	body := []byte(`{"plan":{"current_savings":"120500","monthly_withdrawal":"1000","annual_return_nominal":"0","annual_inflation":"0"}}`)

	ctx := doRequest(t, fasthttp.MethodPost, "/api/v1/simulate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var result domain.SimulationResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.Equal(t, 120, result.MonthsLasted)
}

func TestSimulateEndpointRejectsBadBody(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodPost, "/api/v1/simulate", []byte("{not json"))
	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	assert.Equal(t, fasthttp.StatusBadRequest, errResp.Status)
	assert.Contains(t, errResp.Message, "Invalid request body")
}

func TestSimulateEndpointRejectsBadTiming(t *testing.T) {
	body := []byte(`{"plan":{"current_savings":"100000","monthly_withdrawal":"1000","withdrawal_timing":"quarterly"}}`)

	ctx := doRequest(t, fasthttp.MethodPost, "/api/v1/simulate", body)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSimulateEndpointRejectsGet(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/api/v1/simulate", nil)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestRequiredInitialEndpoint(t *testing.T) {
	body, err := json.Marshal(RequiredInitialRequest{
		Plan: domain.PlanParameters{
			AnnualReturnNominal: decimal.NewFromFloat(0.125),
			AnnualInflation:     decimal.NewFromFloat(0.047),
			MonthlyWithdrawal:   decimal.NewFromInt(4000),
			TargetYears:         20,
			Timing:              domain.TimingStart,
		},
		Years: 20,
	})
	require.NoError(t, err)

	ctx := doRequest(t, fasthttp.MethodPost, "/api/v1/required-initial", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp RequiredInitialResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 20, resp.HorizonYears)

	// 507762.01 closed-form, 511762.31 simulated; both near 510k.
	assert.True(t, resp.ClosedForm.Sub(decimal.NewFromFloat(507762.01)).Abs().LessThan(decimal.NewFromInt(1)),
		"closed form %s", resp.ClosedForm.String())
	assert.True(t, resp.Simulated.Sub(decimal.NewFromFloat(511762.31)).Abs().LessThan(decimal.NewFromInt(100)),
		"simulated %s", resp.Simulated.String())
}

func TestRequiredInitialEndpointDefaultsHorizon(t *testing.T) {
	body := []byte(`{"plan":{"monthly_withdrawal":"1000","annual_return_nominal":"0.05","annual_inflation":"0.02"}}`)

	ctx := doRequest(t, fasthttp.MethodPost, "/api/v1/required-initial", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp RequiredInitialResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, domain.DefaultTargetYears, resp.HorizonYears)
	assert.True(t, resp.ClosedForm.IsPositive())
}
