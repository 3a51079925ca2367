// Package rpc dispatches named procedures with schema-validated params to
// the domain services.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rpggio/tradeledger/internal/apperr"
	"github.com/rpggio/tradeledger/internal/auth"
	"github.com/rpggio/tradeledger/internal/transport"
)

// Kind separates reads from writes.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Access controls whether a procedure needs a signed-in caller.
type Access int

const (
	AccessProtected Access = iota
	AccessPublic
)

const unavailableMessage = "database not available"

// Call carries the caller of a procedure.
type Call struct {
	Session *auth.Session
}

// UserID returns the caller's user id. Protected procedures always have a
// session.
func (c Call) UserID() int64 {
	if c.Session == nil {
		return 0
	}
	return c.Session.UserID()
}

// Handler executes a procedure with decoded params.
type Handler[P, R any] func(ctx context.Context, call Call, params P) (R, error)

// unknownMethod is the metric and span label for unregistered methods.
const unknownMethod = "unknown"

// Observer records per-call outcomes.
type Observer interface {
	ObserveCall(method string, code int, elapsed time.Duration)
}

// Options configures a Router.
type Options struct {
	// DegradedReads answers queries with their empty result when the store
	// is unavailable.
	DegradedReads bool
	Logger        *slog.Logger
	Observer      Observer
}

type procedure struct {
	name   string
	kind   Kind
	access Access
	schema *jsonschema.Resolved
	empty  any
	invoke func(ctx context.Context, call Call, raw json.RawMessage) (any, error)
}

// Router holds the registered procedures.
type Router struct {
	procs    map[string]*procedure
	degraded bool
	logger   *slog.Logger
	observer Observer
	tracer   trace.Tracer
}

// NewRouter creates an empty router.
func NewRouter(opts Options) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		procs:    make(map[string]*procedure),
		degraded: opts.DegradedReads,
		logger:   logger,
		observer: opts.Observer,
		tracer:   otel.Tracer("github.com/rpggio/tradeledger/internal/rpc"),
	}
}

// ProcedureOption adjusts a procedure at registration.
type ProcedureOption func(*procedureConfig)

type procedureConfig struct {
	access Access
	enums  map[string][]any
}

// Public lets callers without a session invoke the procedure.
func Public() ProcedureOption {
	return func(c *procedureConfig) { c.access = AccessPublic }
}

// Enum restricts a params field to the given values.
func Enum(field string, values []any) ProcedureOption {
	return func(c *procedureConfig) { c.enums[field] = values }
}

// Query registers a read. empty is answered in degraded mode.
func Query[P, R any](r *Router, name string, empty R, h Handler[P, R], opts ...ProcedureOption) {
	register(r, name, KindQuery, empty, h, opts)
}

// Mutation registers a write.
func Mutation[P, R any](r *Router, name string, h Handler[P, R], opts ...ProcedureOption) {
	var zero R
	register(r, name, KindMutation, zero, h, opts)
}

// register panics on programming errors: duplicate names, params types
// without a schema, or enums on unknown fields.
func register[P, R any](r *Router, name string, kind Kind, empty R, h Handler[P, R], opts []ProcedureOption) {
	if _, exists := r.procs[name]; exists {
		panic(fmt.Sprintf("rpc: procedure %q registered twice", name))
	}

	cfg := procedureConfig{enums: make(map[string][]any)}
	for _, opt := range opts {
		opt(&cfg)
	}

	schema, err := paramsSchema[P](cfg.enums)
	if err != nil {
		panic(fmt.Sprintf("rpc: procedure %q: %v", name, err))
	}

	r.procs[name] = &procedure{
		name:   name,
		kind:   kind,
		access: cfg.access,
		schema: schema,
		empty:  empty,
		invoke: func(ctx context.Context, call Call, raw json.RawMessage) (any, error) {
			var params P
			if err := json.Unmarshal(raw, &params); err != nil {
				return nil, transport.NewError(transport.ErrInvalidParams, fmt.Sprintf("invalid params: %v", err))
			}
			return h(ctx, call, params)
		},
	}
}

func paramsSchema[P any](enums map[string][]any) (*jsonschema.Resolved, error) {
	schema, err := jsonschema.For[P](nil)
	if err != nil {
		return nil, fmt.Errorf("infer params schema: %w", err)
	}
	// Unknown keys are ignored rather than rejected.
	schema.AdditionalProperties = nil

	for field, values := range enums {
		prop, ok := schema.Properties[field]
		if !ok {
			return nil, fmt.Errorf("enum on unknown field %q", field)
		}
		prop.Enum = values
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve params schema: %w", err)
	}
	return resolved, nil
}

// Methods returns the registered procedure names.
func (r *Router) Methods() []string {
	names := make([]string, 0, len(r.procs))
	for name := range r.procs {
		names = append(names, name)
	}
	return names
}

// Dispatch runs method with params on behalf of the session in ctx. Errors
// are always *transport.Error.
func (r *Router) Dispatch(ctx context.Context, method string, params json.RawMessage) (any, error) {
	start := time.Now()
	// Unregistered names come from the caller and would grow label sets without bound.
	label := method
	if _, ok := r.procs[method]; !ok {
		label = unknownMethod
	}
	ctx, span := r.tracer.Start(ctx, "rpc "+label,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("rpc.method", method)),
	)
	defer span.End()

	session, _ := auth.SessionFromContext(ctx)
	result, rpcErr := r.call(ctx, session, method, params)
	elapsed := time.Since(start)

	code := 0
	if rpcErr != nil {
		code = rpcErr.Code
		span.SetStatus(codes.Error, rpcErr.Message)
	}
	if r.observer != nil {
		r.observer.ObserveCall(label, code, elapsed)
	}

	attrs := []any{"method", method, "duration", elapsed}
	if session != nil {
		attrs = append(attrs, "user_id", session.UserID())
	}
	switch {
	case rpcErr == nil:
		r.logger.Debug("rpc call", attrs...)
		return result, nil
	case rpcErr.Code == transport.ErrInternal:
		r.logger.Error("rpc call failed", append(attrs, "code", code, "error", rpcErr.Message)...)
	default:
		r.logger.Info("rpc call rejected", append(attrs, "code", code, "error", rpcErr.Message)...)
	}
	return nil, rpcErr
}

func (r *Router) call(ctx context.Context, session *auth.Session, method string, raw json.RawMessage) (any, *transport.Error) {
	proc, ok := r.procs[method]
	if !ok {
		return nil, transport.NewError(transport.ErrMethodNotFound, fmt.Sprintf("method not found: %s", method))
	}
	if proc.access == AccessProtected && session == nil {
		return nil, transport.NewError(transport.ErrUnauthorizedCode, "please login")
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = json.RawMessage("{}")
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, transport.NewError(transport.ErrInvalidParams, fmt.Sprintf("invalid params: %v", err))
	}
	if err := proc.schema.Validate(instance); err != nil {
		return nil, transport.NewError(transport.ErrInvalidParams, fmt.Sprintf("invalid params: %v", err))
	}

	result, err := proc.invoke(ctx, Call{Session: session}, raw)
	if err == nil {
		return result, nil
	}
	if proc.kind == KindQuery && r.degraded && apperr.CodeOf(err) == apperr.CodeUnavailable {
		r.logger.Warn("serving empty result", "method", method, "error", err)
		return proc.empty, nil
	}
	return nil, toError(err)
}

func toError(err error) *transport.Error {
	if rpcErr, ok := err.(*transport.Error); ok {
		return rpcErr
	}
	switch apperr.CodeOf(err) {
	case apperr.CodeInvalidInput:
		return transport.NewError(transport.ErrInvalidParams, err.Error())
	case apperr.CodeNotFound:
		return transport.NewError(transport.ErrNotFoundCode, err.Error())
	case apperr.CodeConflict:
		return transport.NewError(transport.ErrConflictCode, err.Error())
	case apperr.CodeUnavailable:
		return transport.NewError(transport.ErrUnavailableCode, unavailableMessage)
	case apperr.CodeUnauthorized:
		return transport.NewError(transport.ErrUnauthorizedCode, err.Error())
	default:
		return transport.NewError(transport.ErrInternal, err.Error())
	}
}
