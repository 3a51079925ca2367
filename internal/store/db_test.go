package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/repository"
)

// NewTestDB creates a migrated in-memory SQLite database for testing.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), Options{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err, "failed to create test database")

	err = db.Migrate(context.Background())
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"users",
		"business_settings",
		"clients",
		"projects",
		"invoices",
		"invoice_items",
		"bids",
		"bid_items",
		"payments",
		"time_entries",
		"photos",
		"timeline",
		"recurring_invoices",
		"job_costs",
		"team_members",
		"templates",
		"notifications",
		"schema_migrations",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Migrate(ctx))

	var applied int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&applied)
	require.NoError(t, err)
	require.Equal(t, 1, applied)
}

func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRowContext(context.Background(), "PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "oracle"})
	require.Error(t, err)
}

func TestUnavailableDB(t *testing.T) {
	db := Unavailable()
	ctx := context.Background()

	require.False(t, db.Available())

	_, err := db.ExecContext(ctx, "SELECT 1")
	require.ErrorIs(t, err, repository.ErrUnavailable)

	_, err = db.QueryContext(ctx, "SELECT 1")
	require.ErrorIs(t, err, repository.ErrUnavailable)

	var one int
	err = db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
	require.ErrorIs(t, err, repository.ErrUnavailable)

	require.ErrorIs(t, db.PingContext(ctx), repository.ErrUnavailable)
	require.NoError(t, db.Close())

	_, err = NewClientRepository(db).List(ctx, 1)
	require.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestRebind(t *testing.T) {
	pg := &DB{dialect: DialectPostgres}
	require.Equal(t,
		"SELECT * FROM clients WHERE id = $1 AND user_id = $2",
		pg.rebind("SELECT * FROM clients WHERE id = ? AND user_id = ?"))

	lite := &DB{dialect: DialectSQLite}
	require.Equal(t, "SELECT ?", lite.rebind("SELECT ?"))
}

func TestExtractUpMigration(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;\n"
	require.Equal(t, "\nCREATE TABLE a (id INTEGER);\n", ExtractUpMigration(content))
	require.Equal(t, "SELECT 1;", ExtractUpMigration("SELECT 1;"))
}

func TestQueryRow_NotFound(t *testing.T) {
	db := NewTestDB(t)

	var id int64
	err := db.QueryRowContext(context.Background(), "SELECT id FROM clients WHERE id = ?", 42).Scan(&id)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
