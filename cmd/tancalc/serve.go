package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	tancalc "github.com/hardikgohil73253/SEP-D3"
	httpAdapter "github.com/hardikgohil73253/SEP-D3/internal/adapters/http"
	"github.com/hardikgohil73253/SEP-D3/internal/cli"
	"github.com/hardikgohil73253/SEP-D3/internal/config"
	"github.com/hardikgohil73253/SEP-D3/internal/logging"
	"github.com/hardikgohil73253/SEP-D3/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Starts the calculator engine in server mode, exposing a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		// Flags override file settings.
		if cmd.Flags().Changed("port") {
			port, _ := cmd.Flags().GetString("port")
			cfg.Listen = ":" + port
		}
		if cmd.Flags().Changed("history") {
			cfg.History.Backend, _ = cmd.Flags().GetString("history")
		}
		if cmd.Flags().Changed("history-limit") {
			cfg.History.Limit, _ = cmd.Flags().GetInt("history-limit")
		}
		if cmd.Flags().Changed("redis-addr") {
			cfg.History.Redis.Addr, _ = cmd.Flags().GetString("redis-addr")
		}
		if cmd.Flags().Changed("redis-db") {
			cfg.History.Redis.DB, _ = cmd.Flags().GetInt("redis-db")
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		store, closeStore, err := cli.BuildHistoryStore(cfg.History)
		if err != nil {
			fmt.Printf("Error building history store: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if err := closeStore(); err != nil {
				logger.Warn("closing history store", "error", err)
			}
		}()

		collector := observability.NewCollector()
		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		engine := tancalc.New(
			tancalc.WithLogger(logger),
			tancalc.WithHistory(store),
			tancalc.WithLifecycleHooks(cli.MergeHooks(collector.Hooks(), metrics.Hooks())),
		)

		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithStats(collector),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting tancalc server on %s\n", srv.Addr)
			if cfg.History.Backend != "" && cfg.History.Backend != "none" {
				fmt.Printf("History backend: %s\n", cfg.History.Backend)
			}
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("tancalc server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("config", "", "Path to a YAML or JSON config file")
	serveCmd.Flags().String("history", "", "History backend: memory, file, redis or none")
	serveCmd.Flags().Int("history-limit", 0, "Maximum calculations to retain (0 for the backend default)")
	serveCmd.Flags().String("redis-addr", "", "Redis address (redis backend only)")
	serveCmd.Flags().Int("redis-db", 0, "Redis database number (redis backend only)")
}
