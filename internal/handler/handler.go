package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"water-advisor/internal/engine"
	"water-advisor/internal/model"
	"water-advisor/internal/observability"
)

// Handler routes requests of the advisor's web front-end.
type Handler struct {
	logger  zerolog.Logger
	metrics *observability.Metrics
	prom    fasthttp.RequestHandler
}

func New(logger zerolog.Logger, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		metrics: metrics,
		prom:    fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	route := string(ctx.Path())

	switch route {
	case "/":
		switch {
		case ctx.IsGet():
			h.handleForm(ctx)
		case ctx.IsPost():
			h.handleFormSubmit(ctx)
		default:
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		}
	case "/api/audit":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			break
		}
		h.handleAudit(ctx)
	case "/healthz":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "healthy"})
	case "/metrics":
		h.prom(ctx)
	default:
		route = "other"
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	elapsed := time.Since(start)
	h.metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
	h.logger.Debug().
		Bytes("method", ctx.Method()).
		Bytes("path", ctx.Path()).
		Int("status", ctx.Response.StatusCode()).
		Dur("duration", elapsed).
		Msg("request handled")
}

func (h *Handler) handleForm(ctx *fasthttp.RequestCtx) {
	h.renderPage(ctx, fasthttp.StatusOK, defaultPage())
}

func (h *Handler) handleFormSubmit(ctx *fasthttp.RequestCtx) {
	req, err := parseForm(ctx)
	if err != nil {
		h.metrics.BadRequests.Inc()
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid form: "+err.Error())
		return
	}

	resp := h.audit(req)
	h.renderPage(ctx, fasthttp.StatusOK, pageFromRequest(req, resp.AuditResult.Report))
}

func (h *Handler) handleAudit(ctx *fasthttp.RequestCtx) {
	var req model.AuditRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.metrics.BadRequests.Inc()
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, h.audit(&req))
}

func (h *Handler) audit(req *model.AuditRequest) *model.AuditResponse {
	resp := engine.Process(req)

	outcome := resp.AuditMetadata.AuditOutcome
	status := string(resp.AuditResult.Status)
	h.metrics.Audits.WithLabelValues(outcome, status).Inc()
	h.logger.Info().
		Str("audit_id", resp.AuditMetadata.AuditID).
		Str("outcome", outcome).
		Str("status", status).
		Int("family_size", req.FamilySize).
		Msg("audit completed")

	return resp
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	json.NewEncoder(ctx).Encode(v) //nolint:errcheck // body write to an in-memory buffer
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
