package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/rpggio/tradeledger/internal/repository"
)

// Dialect selects SQL syntax differences between supported databases.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Options configures a connection.
type Options struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB wraps a SQL connection. A DB opened with Unavailable answers every
// statement with repository.ErrUnavailable.
type DB struct {
	conn    *sql.DB
	dialect Dialect
}

// Open connects to the database described by opts and verifies it with a ping.
func Open(ctx context.Context, opts Options) (*DB, error) {
	var dialect Dialect
	var driverName string
	switch opts.Driver {
	case "", "sqlite":
		dialect, driverName = DialectSQLite, "sqlite"
	case "postgres":
		dialect, driverName = DialectPostgres, "postgres"
	default:
		return nil, fmt.Errorf("unknown database driver %q", opts.Driver)
	}

	conn, err := sql.Open(driverName, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == DialectSQLite {
		// A single connection keeps :memory: databases shared and serializes writers.
		conn.SetMaxOpenConns(1)
	} else {
		if opts.MaxOpenConns > 0 {
			conn.SetMaxOpenConns(opts.MaxOpenConns)
		} else {
			conn.SetMaxOpenConns(25)
		}
		if opts.MaxIdleConns > 0 {
			conn.SetMaxIdleConns(opts.MaxIdleConns)
		} else {
			conn.SetMaxIdleConns(5)
		}
		if opts.ConnMaxLifetime > 0 {
			conn.SetConnMaxLifetime(opts.ConnMaxLifetime)
		} else {
			conn.SetConnMaxLifetime(5 * time.Minute)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if dialect == DialectSQLite {
		if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return &DB{conn: conn, dialect: dialect}, nil
}

// Unavailable returns a DB with no connection behind it.
func Unavailable() *DB {
	return &DB{dialect: DialectSQLite}
}

// Available reports whether a connection is configured.
func (db *DB) Available() bool {
	return db != nil && db.conn != nil
}

// Dialect returns the SQL dialect in use.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// SQL exposes the underlying handle, or nil when unavailable.
func (db *DB) SQL() *sql.DB {
	if db == nil {
		return nil
	}
	return db.conn
}

// Close closes the connection.
func (db *DB) Close() error {
	if !db.Available() {
		return nil
	}
	return db.conn.Close()
}

// PingContext checks connectivity.
func (db *DB) PingContext(ctx context.Context) error {
	if !db.Available() {
		return repository.ErrUnavailable
	}
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return nil
}

// ExecContext runs a statement written with ? placeholders.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if !db.Available() {
		return nil, repository.ErrUnavailable
	}
	res, err := db.conn.ExecContext(ctx, db.rebind(query), args...)
	if err != nil {
		return nil, classify(err)
	}
	return res, nil
}

// QueryContext runs a query written with ? placeholders.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if !db.Available() {
		return nil, repository.ErrUnavailable
	}
	rows, err := db.conn.QueryContext(ctx, db.rebind(query), args...)
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// Row is a single-row result whose Scan maps driver errors onto the
// repository sentinels.
type Row struct {
	row *sql.Row
	err error
}

// Scan copies the row into dest. sql.ErrNoRows becomes repository.ErrNotFound.
func (r *Row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	err := r.row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if err != nil {
		return classify(err)
	}
	return nil
}

// QueryRowContext runs a query expected to return at most one row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *Row {
	if !db.Available() {
		return &Row{err: repository.ErrUnavailable}
	}
	return &Row{row: db.conn.QueryRowContext(ctx, db.rebind(query), args...)}
}

// rebind rewrites ? placeholders to $n for postgres. Queries in this package
// never contain literal question marks.
func (db *DB) rebind(query string) string {
	if db.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
