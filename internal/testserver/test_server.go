// Package testserver runs the full HTTP stack over an in-memory database
// for end-to-end tests.
package testserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/app"
	"github.com/rpggio/tradeledger/internal/domain/user"
	"github.com/rpggio/tradeledger/internal/mcp"
	"github.com/rpggio/tradeledger/internal/store"
	"github.com/rpggio/tradeledger/internal/transport"
)

const testSecret = "test-secret"

// TestServer is a running server plus the handles tests need.
type TestServer struct {
	Server *httptest.Server
	DB     *store.DB
	App    *app.App
}

// New starts a server backed by a migrated in-memory SQLite database.
func New(t *testing.T) *TestServer {
	t.Helper()

	db, err := store.Open(context.Background(), store.Options{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))

	return start(t, db)
}

// NewUnavailable starts a server whose store is unreachable.
func NewUnavailable(t *testing.T) *TestServer {
	t.Helper()
	return start(t, store.Unavailable())
}

func start(t *testing.T, db *store.DB) *TestServer {
	a := app.New(db, app.Options{
		OwnerOpenID:   "owner",
		TokenSecret:   testSecret,
		TokenTTL:      time.Hour,
		DegradedReads: true,
	})
	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Clients:   a.Services.Clients,
			Projects:  a.Services.Projects,
			Invoices:  a.Services.Invoices,
			Dashboard: a.Services.Dashboard,
		},
		Authenticator: a.Authenticator,
		CookieName:    transport.DefaultCookieName,
		TransportMode: "http",
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		nil,
	)

	server := httptest.NewServer(transport.NewServer(a.Router, a.Authenticator, transport.ServerConfig{
		MCP: mcpHandler,
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{Server: server, DB: db, App: a}
}

// SignIn upserts a user and returns a session token for it.
func (ts *TestServer) SignIn(t *testing.T, openID string) string {
	t.Helper()

	u, err := ts.App.Users.Upsert(context.Background(), user.UpsertRequest{OpenID: openID})
	require.NoError(t, err)

	token, _, err := ts.App.Tokens.Issue(u.ID, u.OpenID, "")
	require.NoError(t, err)
	return token
}

// Token issues a token for an identity without touching the store.
func (ts *TestServer) Token(t *testing.T, userID int64, openID string) string {
	t.Helper()

	token, _, err := ts.App.Tokens.Issue(userID, openID, "")
	require.NoError(t, err)
	return token
}

// Call posts one JSON-RPC request and decodes the envelope.
func (ts *TestServer) Call(t *testing.T, token, method string, params any) transport.Response {
	t.Helper()

	body := map[string]any{"jsonrpc": "2.0", "method": method, "id": 1}
	if params != nil {
		body["params"] = params
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/rpc", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out transport.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// MustCall is Call that fails the test on an error response and decodes the
// result into out.
func (ts *TestServer) MustCall(t *testing.T, token, method string, params, out any) {
	t.Helper()

	resp := ts.Call(t, token, method, params)
	require.Nil(t, resp.Error, "%s failed: %+v", method, resp.Error)
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Result, out))
	}
}
