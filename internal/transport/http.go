package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rpggio/tradeledger/internal/auth"
)

const maxBodyBytes = 1 << 20

// Dispatcher executes a named procedure. Returned errors of type *Error are
// written as-is; anything else is an internal error.
type Dispatcher interface {
	Dispatch(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// ServerConfig holds the optional parts of the HTTP surface.
type ServerConfig struct {
	CORSOrigins  []string
	CookieName   string
	SecureCookie bool
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// MCP serves /mcp for authenticated callers when set.
	MCP http.Handler
	// Instrument wraps every request, e.g. with request metrics.
	Instrument func(http.Handler) http.Handler
	Logger     *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	dispatcher Dispatcher
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(dispatcher Dispatcher, authn Authenticator, cfg ServerConfig) *chi.Mux {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Instrument != nil {
		r.Use(cfg.Instrument)
	}
	r.Use(CORS(cfg.CORSOrigins))
	r.Use(SessionMiddleware(authn, cfg.CookieName, cfg.Logger))

	srv := &Server{
		dispatcher: dispatcher,
		cookieName: cfg.CookieName,
		secure:     cfg.SecureCookie,
		logger:     cfg.Logger,
	}

	r.Post("/rpc", srv.handleRPC)
	r.Get("/health", srv.handleHealth)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}
	if cfg.MCP != nil {
		r.With(RequireSession).Handle("/mcp", cfg.MCP)
		r.With(RequireSession).Handle("/mcp/*", cfg.MCP)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		WriteParseError(w, err)
		return
	}

	result, err := s.dispatcher.Dispatch(r.Context(), req.Method, req.Params)

	if session, ok := auth.SessionFromContext(r.Context()); ok && session.LoggedOut() {
		ClearSessionCookie(w, s.cookieName, s.secure)
	}

	if err != nil {
		var rpcErr *Error
		if errors.As(err, &rpcErr) {
			WriteError(w, req.ID, rpcErr.Code, rpcErr.Message, rpcErr.Data)
			return
		}
		s.logger.Error("dispatch failed", "method", req.Method, "error", err)
		WriteError(w, req.ID, ErrInternal, err.Error(), nil)
		return
	}

	WriteResult(w, req.ID, result)
}
