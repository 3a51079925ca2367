package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/apperr"
	"github.com/rpggio/tradeledger/internal/auth"
	"github.com/rpggio/tradeledger/internal/repository"
	"github.com/rpggio/tradeledger/internal/transport"
)

type widgetParams struct {
	Name   string  `json:"name"`
	Count  *int64  `json:"count,omitempty"`
	Status *string `json:"status,omitempty"`
}

type recordingObserver struct {
	method string
	code   int
	seen   map[string]int
}

func (o *recordingObserver) ObserveCall(method string, code int, _ time.Duration) {
	o.method, o.code = method, code
	if o.seen == nil {
		o.seen = map[string]int{}
	}
	o.seen[method]++
}

func newTestRouter(degraded bool, fail error) (*Router, *recordingObserver) {
	obs := &recordingObserver{}
	r := NewRouter(Options{DegradedReads: degraded, Observer: obs})

	Query(r, "widgets.list", []string{}, func(_ context.Context, call Call, _ NoParams) ([]string, error) {
		if fail != nil {
			return nil, fail
		}
		return []string{fmt.Sprintf("widget-of-%d", call.UserID())}, nil
	})
	Mutation(r, "widgets.create", func(_ context.Context, _ Call, p widgetParams) (widgetParams, error) {
		if fail != nil {
			return widgetParams{}, fail
		}
		return p, nil
	}, Enum("status", []any{"new", "old"}))
	Query(r, "widgets.public", "", func(_ context.Context, _ Call, _ NoParams) (string, error) {
		return "hello", nil
	}, Public())

	return r, obs
}

func sessionContext(userID int64) context.Context {
	return auth.WithSession(context.Background(), &auth.Session{Claims: &auth.Claims{UserID: userID, OpenID: "oid"}})
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	var rpcErr *transport.Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, code, rpcErr.Code, rpcErr.Message)
}

func TestRouter_Dispatch(t *testing.T) {
	r, obs := newTestRouter(false, nil)

	result, err := r.Dispatch(sessionContext(7), "widgets.list", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"widget-of-7"}, result)
	require.Equal(t, "widgets.list", obs.method)
	require.Zero(t, obs.code)
}

func TestRouter_MethodNotFound(t *testing.T) {
	r, _ := newTestRouter(false, nil)

	_, err := r.Dispatch(sessionContext(1), "widgets.explode", nil)
	requireCode(t, err, transport.ErrMethodNotFound)
}

func TestRouter_UnknownMethodsShareOneLabel(t *testing.T) {
	r, obs := newTestRouter(false, nil)

	for i := range 50 {
		_, err := r.Dispatch(sessionContext(1), fmt.Sprintf("bogus.%d", i), nil)
		requireCode(t, err, transport.ErrMethodNotFound)
	}
	_, err := r.Dispatch(sessionContext(1), "widgets.list", nil)
	require.NoError(t, err)

	require.Equal(t, map[string]int{"unknown": 50, "widgets.list": 1}, obs.seen)
}

func TestRouter_ProtectedRequiresSession(t *testing.T) {
	r, obs := newTestRouter(false, nil)

	_, err := r.Dispatch(context.Background(), "widgets.list", nil)
	requireCode(t, err, transport.ErrUnauthorizedCode)
	require.Equal(t, transport.ErrUnauthorizedCode, obs.code)

	result, err := r.Dispatch(context.Background(), "widgets.public", nil)
	require.NoError(t, err)
	require.Equal(t, "hello", result)
}

func TestRouter_ValidatesParams(t *testing.T) {
	r, _ := newTestRouter(false, nil)
	ctx := sessionContext(1)

	tests := []struct {
		name   string
		params string
	}{
		{"missing required field", `{}`},
		{"wrong type", `{"name": 42}`},
		{"fractional integer", `{"name": "a", "count": 1.5}`},
		{"unknown enum member", `{"name": "a", "status": "shiny"}`},
		{"not an object", `["a"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Dispatch(ctx, "widgets.create", json.RawMessage(tt.params))
			requireCode(t, err, transport.ErrInvalidParams)
		})
	}

	result, err := r.Dispatch(ctx, "widgets.create", json.RawMessage(`{"name": "a", "status": "new", "extra": true}`))
	require.NoError(t, err)
	require.Equal(t, "a", result.(widgetParams).Name)
}

func TestRouter_DegradedReads(t *testing.T) {
	unavailable := fmt.Errorf("listing widgets: %w", repository.ErrUnavailable)
	r, _ := newTestRouter(true, unavailable)
	ctx := sessionContext(1)

	result, err := r.Dispatch(ctx, "widgets.list", nil)
	require.NoError(t, err)
	require.Equal(t, []string{}, result)

	_, err = r.Dispatch(ctx, "widgets.create", json.RawMessage(`{"name": "a"}`))
	requireCode(t, err, transport.ErrUnavailableCode)
	require.EqualError(t, err, "database not available")
}

func TestRouter_DegradedReadsDisabled(t *testing.T) {
	r, _ := newTestRouter(false, repository.ErrUnavailable)

	_, err := r.Dispatch(sessionContext(1), "widgets.list", nil)
	requireCode(t, err, transport.ErrUnavailableCode)
}

func TestRouter_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{apperr.New(apperr.CodeNotFound, "widget not found"), transport.ErrNotFoundCode},
		{fmt.Errorf("creating widget: %w", repository.ErrConflict), transport.ErrConflictCode},
		{apperr.Invalid("name", "is required"), transport.ErrInvalidParams},
		{apperr.New(apperr.CodeUnauthorized, "nope"), transport.ErrUnauthorizedCode},
		{fmt.Errorf("boom"), transport.ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r, _ := newTestRouter(false, tt.err)
			_, err := r.Dispatch(sessionContext(1), "widgets.create", json.RawMessage(`{"name": "a"}`))
			requireCode(t, err, tt.code)
		})
	}
}

func TestRouter_DuplicateRegistrationPanics(t *testing.T) {
	r, _ := newTestRouter(false, nil)

	require.Panics(t, func() {
		Query(r, "widgets.list", []string{}, func(context.Context, Call, NoParams) ([]string, error) { return nil, nil })
	})
}

func TestRouter_EnumOnUnknownFieldPanics(t *testing.T) {
	r := NewRouter(Options{})

	require.Panics(t, func() {
		Mutation(r, "widgets.bad", func(context.Context, Call, widgetParams) (bool, error) { return true, nil },
			Enum("colour", []any{"red"}))
	})
}
