package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	tancalc "github.com/hardikgohil73253/SEP-D3"
	mcpAdapter "github.com/hardikgohil73253/SEP-D3/internal/adapters/mcp"
	"github.com/hardikgohil73253/SEP-D3/internal/cli"
	"github.com/hardikgohil73253/SEP-D3/internal/config"
	"github.com/hardikgohil73253/SEP-D3/internal/logging"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the calculator as an MCP server so AI agents can calculate
tangents as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		historyBackend, _ := cmd.Flags().GetString("history")

		// Logs must stay off Stdout: stdio transport speaks JSON-RPC there.
		logger := logging.New(slog.LevelInfo)
		slog.SetDefault(logger)

		store, closeStore, err := cli.BuildHistoryStore(config.HistoryConfig{Backend: historyBackend})
		if err != nil {
			log.Fatalf("Error building history store: %v", err)
		}
		defer closeStore()

		engine := tancalc.New(
			tancalc.WithLogger(logger),
			tancalc.WithHistory(store),
		)
		srv := mcpAdapter.NewServer(engine)

		switch transport {
		case "stdio":
			log.SetOutput(os.Stderr)
			slog.Info("Starting tancalc MCP server (stdio)...")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting tancalc MCP server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					slog.Error("MCP server execution failed", "error", err)
					os.Exit(1)
				}
			}
			slog.Info("MCP server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	mcpCmd.Flags().String("history", "memory", "History backend: memory, file, redis or none")
}
