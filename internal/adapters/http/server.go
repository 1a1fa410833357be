// Package http exposes the calculator engine over a small JSON API.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	tancalc "github.com/hardikgohil73253/SEP-D3"
	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/observability"
	"github.com/hardikgohil73253/SEP-D3/pkg/trig"
)

//go:embed openapi.yaml
var openAPISpec []byte

// Engine is the calculator surface the server exposes.
type Engine interface {
	Calculate(ctx context.Context, input string) (float64, error)
	History(ctx context.Context, limit int) ([]domain.Calculation, error)
}

// Server routes API requests to the engine.
type Server struct {
	engine  Engine
	logger  *slog.Logger
	stats   *observability.Collector
	metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStats enables GET /v1/stats backed by the given collector.
func WithStats(c *observability.Collector) Option {
	return func(s *Server) { s.stats = c }
}

// WithMetrics replaces the default /metrics handler, for callers that
// register their collectors on a private prometheus registry.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		if h != nil {
			s.metrics = h
		}
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		engine:  engine,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		metrics: promhttp.Handler(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/health", server.getHealth)
	r.Get("/info", server.getInfo)

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openAPISpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Handle("/metrics", server.metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/calculations", server.createCalculation)
		r.Get("/calculations", server.listCalculations)
		r.Post("/evaluate", server.evaluate)
		r.Get("/stats", server.getStats)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>tancalc API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

type calculationRequest struct {
	Input string `json:"input"`
}

type calculationResponse struct {
	Input   string  `json:"input"`
	Result  float64 `json:"result"`
	Outcome string  `json:"outcome"`
}

type historyResponse struct {
	Calculations []domain.Calculation `json:"calculations"`
	Count        int                  `json:"count"`
}

type evaluateRequest struct {
	Op    string  `json:"op"`
	Value float64 `json:"value"`
}

type evaluateResponse struct {
	Op     string  `json:"op"`
	Value  float64 `json:"value"`
	Result float64 `json:"result"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Outcome string `json:"outcome,omitempty"`
}

// createCalculation handles the POST /v1/calculations request.
func (s *Server) createCalculation(w http.ResponseWriter, r *http.Request) {
	var body calculationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("Calculate: invalid request body", "error", err)
		s.writeError(w, http.StatusBadRequest, "invalid request body", domain.OutcomeInvalidInput)
		return
	}

	input, err := tancalc.SanitizeInput(body.Input)
	if err != nil {
		s.logger.Warn("Calculate: input rejected", "error", err, "size", len(body.Input))
		s.writeError(w, http.StatusBadRequest, err.Error(), domain.OutcomeInvalidInput)
		return
	}

	result, err := s.engine.Calculate(r.Context(), input)
	if err != nil {
		outcome := domain.OutcomeForError(err)
		switch {
		case errors.Is(err, trig.ErrInvalidInput):
			s.writeError(w, http.StatusBadRequest, err.Error(), outcome)
		case errors.Is(err, trig.ErrUndefinedTangent):
			s.writeError(w, http.StatusUnprocessableEntity, err.Error(), outcome)
		default:
			s.logger.Error("Calculate failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, err.Error(), outcome)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, calculationResponse{
		Input:   input,
		Result:  result,
		Outcome: string(domain.OutcomeOK),
	})
}

// listCalculations handles the GET /v1/calculations request.
func (s *Server) listCalculations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", raw), "")
			return
		}
		limit = n
	}

	calculations, err := s.engine.History(r.Context(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrNoHistory) {
			s.writeError(w, http.StatusNotFound, "history not configured", "")
			return
		}
		s.logger.Error("History failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	s.writeJSON(w, http.StatusOK, historyResponse{
		Calculations: calculations,
		Count:        len(calculations),
	})
}

// evaluate handles the POST /v1/evaluate request. It operates on raw
// floats, bypassing input parsing: sin, cos, tan and normalize take
// radians, radians takes degrees.
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	var body evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("Evaluate: invalid request body", "error", err)
		s.writeError(w, http.StatusBadRequest, "invalid request body", domain.OutcomeInvalidInput)
		return
	}

	var result float64
	switch body.Op {
	case "sin":
		result = trig.Sin(body.Value)
	case "cos":
		result = trig.Cos(body.Value)
	case "tan":
		var err error
		result, err = trig.Tan(body.Value)
		if err != nil {
			s.writeError(w, http.StatusUnprocessableEntity, err.Error(), domain.OutcomeUndefinedTangent)
			return
		}
	case "radians":
		result = trig.ToRadians(body.Value)
	case "normalize":
		result = trig.NormalizeRadians(body.Value)
	default:
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unknown op %q (want sin, cos, tan, radians or normalize)", body.Op),
			domain.OutcomeInvalidInput)
		return
	}

	s.writeJSON(w, http.StatusOK, evaluateResponse{
		Op:     body.Op,
		Value:  body.Value,
		Result: result,
	})
}

// getStats handles the GET /v1/stats request.
func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		s.writeError(w, http.StatusNotFound, "stats not configured", "")
		return
	}
	s.writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

// getHealth handles the GET /health request.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getInfo handles the GET /info request.
func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "tancalc-http",
		"version":     strings.TrimSpace(tancalc.Version),
		"api_version": apiVersion,
	})
}

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	return doc, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string, outcome domain.Outcome) {
	s.writeJSON(w, status, errorResponse{Error: msg, Outcome: string(outcome)})
}
