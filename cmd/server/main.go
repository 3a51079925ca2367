package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rpggio/tradeledger/internal/app"
	"github.com/rpggio/tradeledger/internal/auth"
	"github.com/rpggio/tradeledger/internal/config"
	"github.com/rpggio/tradeledger/internal/logging"
	"github.com/rpggio/tradeledger/internal/mcp"
	"github.com/rpggio/tradeledger/internal/rpc"
	"github.com/rpggio/tradeledger/internal/telemetry"
	"github.com/rpggio/tradeledger/internal/transport"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logger, logCloser, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Stderr: cfg.MCP.Mode == "stdio",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "log setup error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName, logger)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	db, err := app.OpenStore(ctx, cfg.DB, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	revoker, closeRevoker, err := newRevoker(ctx, cfg.Auth.RedisURL)
	if err != nil {
		return err
	}
	defer closeRevoker()

	var metrics *telemetry.Metrics
	var observer rpc.Observer
	if cfg.Telemetry.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = telemetry.NewMetrics(reg)
		observer = metrics
	}

	application := app.New(db, app.Options{
		OwnerOpenID:   cfg.Auth.OwnerOpenID,
		TokenSecret:   cfg.Auth.TokenSecret,
		TokenTTL:      cfg.Auth.TokenTTL,
		Revoker:       revoker,
		DegradedReads: cfg.DB.DegradedReads,
		Observer:      observer,
		Logger:        logger,
	})

	var mcpServer *sdkmcp.Server
	if cfg.MCP.Mode != "off" {
		mcpServer = mcp.NewServer(mcp.Config{
			Services: mcp.Services{
				Clients:   application.Services.Clients,
				Projects:  application.Services.Projects,
				Invoices:  application.Services.Invoices,
				Dashboard: application.Services.Dashboard,
			},
			Users:         application.Users,
			OwnerOpenID:   cfg.Auth.OwnerOpenID,
			Authenticator: application.Authenticator,
			CookieName:    cfg.Auth.CookieName,
			TransportMode: cfg.MCP.Mode,
			Logger:        logger,
		})
	}

	if cfg.MCP.Mode == "stdio" {
		logger.Info("starting stdio transport", "owner", cfg.Auth.OwnerOpenID)
		// Run blocks until stdin closes or the context is canceled.
		if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio server: %w", err)
		}
		return nil
	}

	serverCfg := transport.ServerConfig{
		CORSOrigins:  cfg.Server.CORSOrigins,
		CookieName:   cfg.Auth.CookieName,
		SecureCookie: cfg.Server.SecureCookie,
		Logger:       logger,
	}
	if metrics != nil {
		serverCfg.Metrics = metrics.Handler()
		serverCfg.Instrument = metrics.Middleware
	}
	if mcpServer != nil {
		serverCfg.MCP = sdkmcp.NewStreamableHTTPHandler(
			func(*http.Request) *sdkmcp.Server { return mcpServer },
			&sdkmcp.StreamableHTTPOptions{SessionTimeout: 30 * time.Minute},
		)
	}
	router := transport.NewServer(application.Router, application.Authenticator, serverCfg)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           otelhttp.NewHandler(router, cfg.Telemetry.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", httpServer.Addr, "db", cfg.DB.Driver, "mcp", cfg.MCP.Mode)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newRevoker(ctx context.Context, redisURL string) (auth.Revoker, func(), error) {
	if redisURL == "" {
		return auth.NewMemoryRevoker(), func() {}, nil
	}
	r, err := auth.NewRedisRevoker(ctx, redisURL)
	if err != nil {
		return nil, nil, err
	}
	return r, func() { _ = r.Close() }, nil
}
