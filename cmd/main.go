package main

//
//  @title           dcapulse API
//  @version         1.0
//  @description     Daily dollar-cost-averaging simulator over Binance daily candles.
//  @termsOfService  https://github.com/guttosm/dcapulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/dcapulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:3000
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        simulation
//  @tag.description DCA back-testing endpoints
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/dcapulse/config"
	_ "github.com/guttosm/dcapulse/docs" // swagger docs
	"github.com/guttosm/dcapulse/internal/app"
	"github.com/guttosm/dcapulse/internal/domain/dto"
	"github.com/guttosm/dcapulse/internal/logger"
	"github.com/guttosm/dcapulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      3 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., Redis connection).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runSimulation validates the arguments, runs one simulation and writes the
// JSON response to out. It goes through the same validator and simulator as
// the HTTP handler.
func runSimulation(ctx context.Context, svc service.DCAService, symbol, amount, start, end string, out io.Writer) error {
	req, err := service.ParseRequest(symbol, amount, start, end)
	if err != nil {
		return err
	}

	res, err := svc.Simulate(ctx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewSimulationResponse(res))
}

// main is the entry point of the dcapulse application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API exposing POST /calculate.
//   - simulate: Runs a single simulation and prints the result as JSON.
//
// Flags:
//   - --mode:   Execution mode ("api" or "simulate"). Default: "api".
//   - --port:   Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --symbol, --amount, --start, --end: Simulation inputs for simulate mode.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or simulate")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	symbol := flag.String("symbol", "BTCUSDT", "Trading pair for simulate mode")
	amount := flag.String("amount", "", "Daily investment for simulate mode")
	start := flag.String("start", "", "Start date (YYYY-MM-DD) for simulate mode")
	end := flag.String("end", "", "End date (YYYY-MM-DD) for simulate mode")
	flag.Parse()

	switch *mode {
	case "simulate":
		deps, err := app.NewDependencies(ctx, config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		defer deps.Close()

		if err := runSimulation(ctx, deps.Service, *symbol, *amount, *start, *end, os.Stdout); err != nil {
			deps.Close()
			logger.L().Fatal().Err(err).Msg("simulation failed")
		}

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
