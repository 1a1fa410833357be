// Package mcp exposes the calculator engine to AI agents over the
// Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	tancalc "github.com/hardikgohil73253/SEP-D3"
	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/trig"
)

// CalculationResult mirrors the HTTP response envelope so agents see
// one shape across adapters.
type CalculationResult struct {
	Input   string  `json:"input" jsonschema_description:"The angle in degrees, as given"`
	Result  float64 `json:"result" jsonschema_description:"The tangent, when the outcome is ok"`
	Outcome string  `json:"outcome" jsonschema_description:"ok, invalid_input, undefined_tangent or error"`
	Error   string  `json:"error,omitempty" jsonschema_description:"Failure detail, when the outcome is not ok"`
}

// EvaluateResult carries a single trigonometric operation result.
type EvaluateResult struct {
	Op     string  `json:"op"`
	Value  float64 `json:"value"`
	Result float64 `json:"result"`
}

// ParseResult carries a parsed numeric input.
type ParseResult struct {
	Input string  `json:"input"`
	Value float64 `json:"value"`
}

// Engine is the calculator surface the MCP server exposes.
type Engine interface {
	Calculate(ctx context.Context, input string) (float64, error)
	History(ctx context.Context, limit int) ([]domain.Calculation, error)
}

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("tancalc-mcp", strings.TrimSpace(tancalc.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: calculate_tangent
	calculateTool := mcp.NewTool("calculate_tangent",
		mcp.WithDescription("Calculate the tangent of an angle given in degrees. The outcome field reports invalid or undefined inputs."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Angle in degrees, as typed (e.g. \"45\" or \"-30.5\")")),
		mcp.WithOutputSchema[CalculationResult](),
	)
	s.mcpServer.AddTool(calculateTool, mcp.NewStructuredToolHandler(s.handleCalculate))

	// TOOL: evaluate
	evaluateTool := mcp.NewTool("evaluate",
		mcp.WithDescription("Evaluate a single trigonometric operation on a raw float. sin, cos, tan and normalize take radians; radians takes degrees."),
		mcp.WithString("op", mcp.Required(), mcp.Description("One of sin, cos, tan, radians, normalize")),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("The operand")),
		mcp.WithOutputSchema[EvaluateResult](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: parse_input
	parseTool := mcp.NewTool("parse_input",
		mcp.WithDescription("Parse a user-typed string into a finite number, applying the calculator's validation rules."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The string to parse")),
		mcp.WithOutputSchema[ParseResult](),
	)
	s.mcpServer.AddTool(parseTool, mcp.NewStructuredToolHandler(s.handleParse))

	// TOOL: history
	s.mcpServer.AddTool(mcp.NewTool("history",
		mcp.WithDescription("List recent calculations, newest first."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of entries to return (optional)")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := 0
		if args, ok := request.GetArguments()["limit"].(float64); ok {
			limit = int(args)
		}
		calculations, err := s.engine.History(ctx, limit)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("history failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(calculations)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleCalculate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CalculationResult, error) {
	raw, _ := args["input"].(string)

	input, err := tancalc.SanitizeInput(raw)
	if err != nil {
		slog.Warn("MCP Calculate: input rejected", "error", err, "size", len(raw))
		return CalculationResult{}, fmt.Errorf("input rejected: %w", err)
	}

	result, err := s.engine.Calculate(ctx, input)
	outcome := domain.OutcomeForError(err)
	if err != nil {
		return CalculationResult{
			Input:   input,
			Outcome: string(outcome),
			Error:   err.Error(),
		}, nil
	}
	return CalculationResult{
		Input:   input,
		Result:  result,
		Outcome: string(outcome),
	}, nil
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EvaluateResult, error) {
	var params struct {
		Op    string  `mapstructure:"op"`
		Value float64 `mapstructure:"value"`
	}
	if err := mapstructure.Decode(args, &params); err != nil {
		return EvaluateResult{}, fmt.Errorf("decode arguments: %w", err)
	}

	var result float64
	switch params.Op {
	case "sin":
		result = trig.Sin(params.Value)
	case "cos":
		result = trig.Cos(params.Value)
	case "tan":
		var err error
		result, err = trig.Tan(params.Value)
		if err != nil {
			return EvaluateResult{}, fmt.Errorf("tan(%v): %w", params.Value, err)
		}
	case "radians":
		result = trig.ToRadians(params.Value)
	case "normalize":
		result = trig.NormalizeRadians(params.Value)
	default:
		return EvaluateResult{}, fmt.Errorf("unknown op %q (want sin, cos, tan, radians or normalize)", params.Op)
	}

	return EvaluateResult{Op: params.Op, Value: params.Value, Result: result}, nil
}

func (s *Server) handleParse(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ParseResult, error) {
	raw, _ := args["input"].(string)

	input, err := tancalc.SanitizeInput(raw)
	if err != nil {
		return ParseResult{}, fmt.Errorf("input rejected: %w", err)
	}
	value, err := trig.ParseInput(input)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Input: strings.TrimSpace(input), Value: value}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: tancalc://constants
	s.mcpServer.AddResource(mcp.NewResource("tancalc://constants", "Calculator Constants",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		constants := map[string]any{
			"pi":           trig.Pi,
			"epsilon":      trig.Epsilon,
			"series_terms": trig.SeriesTerms,
		}
		jsonBytes, _ := json.Marshal(constants)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "tancalc://constants",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
