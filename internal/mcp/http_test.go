package mcp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/testserver"
)

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (b bearerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	if b.token != "" {
		r.Header.Set("Authorization", "Bearer "+b.token)
	}
	return b.base.RoundTrip(r)
}

func connectHTTP(ctx context.Context, ts *testserver.TestServer, token string) (*sdkmcp.ClientSession, error) {
	transport := &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL + "/mcp",
		HTTPClient: &http.Client{Transport: bearerTransport{token: token, base: http.DefaultTransport}},
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	return client.Connect(ctx, transport, nil)
}

func TestHTTP_ListClientsForSession(t *testing.T) {
	ts := testserver.New(t)
	owner := ts.SignIn(t, "owner")
	other := ts.SignIn(t, "other")
	ts.MustCall(t, owner, "clients.create", map[string]any{"name": "Ada", "email": "ada@example.com"}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := connectHTTP(ctx, ts, owner)
	require.NoError(t, err)
	defer session.Close()

	initResult := session.InitializeResult()
	require.NotNil(t, initResult)
	require.Equal(t, "tradeledger", initResult.ServerInfo.Name)

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "list_clients", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, result.IsError)
	data, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	require.JSONEq(t, `{"clients":[{"id":1,"name":"Ada","email":"ada@example.com"}]}`, string(data))

	otherSession, err := connectHTTP(ctx, ts, other)
	require.NoError(t, err)
	defer otherSession.Close()

	result, err = otherSession.CallTool(ctx, &sdkmcp.CallToolParams{Name: "list_clients", Arguments: map[string]any{}})
	require.NoError(t, err)
	data, err = json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	require.JSONEq(t, `{"clients":[]}`, string(data))
}

func TestHTTP_DashboardStats(t *testing.T) {
	ts := testserver.New(t)
	token := ts.SignIn(t, "owner")

	var c struct {
		ID int64 `json:"id"`
	}
	ts.MustCall(t, token, "clients.create", map[string]any{"name": "Ada"}, &c)
	ts.MustCall(t, token, "invoices.create", map[string]any{"clientId": c.ID, "status": "paid", "total": "120.50"}, nil)
	ts.MustCall(t, token, "invoices.create", map[string]any{"clientId": c.ID, "status": "sent", "total": "80"}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := connectHTTP(ctx, ts, token)
	require.NoError(t, err)
	defer session.Close()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "dashboard_stats", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, result.IsError)
	data, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	require.JSONEq(t, `{"total_revenue":"120.5","pending_invoices":1,"active_projects":0}`, string(data))
}

func TestHTTP_RequiresSession(t *testing.T) {
	ts := testserver.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := connectHTTP(ctx, ts, "")
	require.Error(t, err)
}
