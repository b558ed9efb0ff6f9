package handler

import (
	"context"
	"log"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"npv-engine/internal/cache"
	"npv-engine/internal/engine"
	"npv-engine/internal/model"
)

// Handler serves calculation requests. A nil cache disables memoisation.
type Handler struct {
	cache cache.Repository
}

func New(c cache.Repository) *Handler {
	return &Handler{cache: c}
}

// Route dispatches on the request path.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate":
		h.HandleCalculation(ctx)
	case "/health":
		HandleHealth(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.CalculationInstructions.Calculations) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one calculation is required")
		return
	}

	resp := h.process(ctx, &req)

	body, err := json.Marshal(resp)
	if err != nil {
		log.Printf("encode response: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (h *Handler) process(ctx context.Context, req *model.CalculationRequest) *model.CalculationResponse {
	if h.cache == nil {
		return engine.Process(req)
	}

	start := time.Now()
	instr := &req.CalculationInstructions
	if result, ok := cache.Load(ctx, h.cache, instr); ok {
		return engine.Respond(req, result, start)
	}

	result := engine.Evaluate(instr)
	if err := cache.Store(ctx, h.cache, instr, result); err != nil {
		log.Printf("Warning: failed to cache calculation result: %v", err)
	}
	return engine.Respond(req, result, start)
}

func HandleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"status":"ok"}`)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, err := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetStatusCode(status)
	if err != nil {
		log.Printf("encode error response: %v", err)
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString(message)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
