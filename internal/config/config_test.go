package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TRADELEDGER_AUTH_TOKEN_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.DB.Driver)
	require.True(t, cfg.DB.DegradedReads)
	require.Equal(t, "app_session_id", cfg.Auth.CookieName)
	require.Equal(t, "off", cfg.MCP.Mode)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  cors_origins: ["http://localhost:5173"]
db:
  driver: postgres
  dsn: postgres://localhost/tradeledger
  degraded_reads: false
auth:
  token_secret: from-file
  token_ttl: 24h
log:
  format: json
`), 0o644))

	t.Setenv("TRADELEDGER_CONFIG_PATH", path)
	t.Setenv("TRADELEDGER_AUTH_TOKEN_SECRET", "from-env")
	t.Setenv("TRADELEDGER_MCP_MODE", "http")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	require.Equal(t, "postgres", cfg.DB.Driver)
	require.False(t, cfg.DB.DegradedReads)
	require.Equal(t, "from-env", cfg.Auth.TokenSecret)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "http", cfg.MCP.Mode)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Auth.TokenSecret = "s"
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.DB.Driver = "mysql"
	bad.MCP.Mode = "grpc"
	bad.Auth.TokenSecret = ""
	err := bad.Validate()
	require.ErrorContains(t, err, `unknown db.driver "mysql"`)
	require.ErrorContains(t, err, `unknown mcp.mode "grpc"`)
	require.ErrorContains(t, err, "auth.token_secret is required")

	pg := cfg
	pg.DB.Driver = "postgres"
	require.ErrorContains(t, pg.Validate(), "db.dsn is required")
}
