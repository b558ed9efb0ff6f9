package handler

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"npv-engine/internal/cache"
	"npv-engine/internal/model"
)

func doRequest(h *Handler, method, path, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	ctx.Request.SetBodyString(body)
	h.Route(&ctx)
	return &ctx
}

const validBody = `{
	"tenant_id": "test-tenant",
	"calculation_instructions": {
		"discount_rate": "0.1",
		"cash_flows": [-1000, "300", 300, 300, 300],
		"calculations": ["npv", "irr"]
	}
}`

func decode(t *testing.T, ctx *fasthttp.RequestCtx) model.CalculationResponse {
	t.Helper()
	var resp model.CalculationResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("invalid response body: %v\n%s", err, ctx.Response.Body())
	}
	return resp
}

func TestHandleCalculationOK(t *testing.T) {
	ctx := doRequest(New(nil), fasthttp.MethodPost, "/calculate", validBody)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	if ct := string(ctx.Response.Header.ContentType()); ct != "application/json" {
		t.Fatalf("expected application/json, got %s", ct)
	}

	resp := decode(t, ctx)
	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.CalculationMetadata.TenantID)
	}
	calcs := resp.CalculationResult.Calculations
	if len(calcs) != 2 || calcs[0].Npv == nil || calcs[1].Irr == nil {
		t.Fatalf("expected npv and irr outcomes, got %+v", calcs)
	}
}

func TestHandleCalculationNonFinite(t *testing.T) {
	body := `{"calculation_instructions": {"discount_rate": -1, "cash_flows": [-100, 50, 0, 0, 0], "calculations": ["npv"]}}`
	ctx := doRequest(New(nil), fasthttp.MethodPost, "/calculate", body)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	if !strings.Contains(string(ctx.Response.Body()), `"value":"NaN"`) {
		t.Fatalf("expected NaN value in body, got %s", ctx.Response.Body())
	}
	resp := decode(t, ctx)
	if resp.CalculationResult.Messages[0].Code != "NON_FINITE_RESULT" {
		t.Fatalf("expected NON_FINITE_RESULT warning, got %+v", resp.CalculationResult.Messages)
	}
}

func TestHandleCalculationMethodNotAllowed(t *testing.T) {
	ctx := doRequest(New(nil), fasthttp.MethodGet, "/calculate", "")

	if ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", ctx.Response.StatusCode())
	}
}

func TestHandleCalculationBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{invalid-json}`},
		{"no calculations", `{"calculation_instructions": {"discount_rate": 0.1, "cash_flows": [1, 2, 3, 4, 5]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := doRequest(New(nil), fasthttp.MethodPost, "/calculate", tt.body)
			if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
				t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
			}
			var errResp model.ErrorResponse
			if err := json.Unmarshal(ctx.Response.Body(), &errResp); err != nil || errResp.Status != 400 {
				t.Fatalf("expected error response, got %s", ctx.Response.Body())
			}
		})
	}
}

func TestHandleCalculationCached(t *testing.T) {
	mem := cache.NewMemory()
	h := New(mem)

	first := decode(t, doRequest(h, fasthttp.MethodPost, "/calculate", validBody))
	if mem.Len() != 1 {
		t.Fatalf("expected 1 cached result, got %d", mem.Len())
	}
	second := decode(t, doRequest(h, fasthttp.MethodPost, "/calculate", validBody))

	if first.CalculationMetadata.CalculationID == second.CalculationMetadata.CalculationID {
		t.Fatal("expected fresh calculation_id for cached result")
	}
	if first.CalculationResult.Calculations[0].Report != second.CalculationResult.Calculations[0].Report {
		t.Fatal("expected identical report from cache")
	}
	if *first.CalculationResult.Calculations[1].Irr != *second.CalculationResult.Calculations[1].Irr {
		t.Fatal("expected identical IRR from cache")
	}
}

func TestRoute(t *testing.T) {
	h := New(nil)

	if ctx := doRequest(h, fasthttp.MethodGet, "/health", ""); ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", ctx.Response.StatusCode())
	}
	if ctx := doRequest(h, fasthttp.MethodGet, "/nope", ""); ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}
