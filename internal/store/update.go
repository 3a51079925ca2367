package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/tradeledger/internal/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

// update accumulates the SET clause of a partial update.
type update struct {
	table     string
	updatedAt time.Time
	sets      []string
	args      []any
}

// newUpdate starts an update on table. A non-zero updatedAt is written to
// the updated_at column whenever at least one other column changes.
func newUpdate(table string, updatedAt time.Time) *update {
	return &update{table: table, updatedAt: updatedAt}
}

func (u *update) set(column string, value any) {
	u.sets = append(u.sets, column+" = ?")
	u.args = append(u.args, value)
}

// setIfPresent adds column to the update when v is non-nil.
func setIfPresent[T any](u *update, column string, v *T) {
	if v != nil {
		u.set(column, *v)
	}
}

// exec runs the update against rows matching where. An update with nothing
// to set only checks that a matching row exists.
func (u *update) exec(ctx context.Context, db *DB, where string, whereArgs ...any) error {
	if len(u.sets) == 0 {
		var one int
		return db.QueryRowContext(ctx, "SELECT 1 FROM "+u.table+" WHERE "+where, whereArgs...).Scan(&one)
	}

	sets, args := u.sets, u.args
	if !u.updatedAt.IsZero() {
		sets = append(sets, "updated_at = ?")
		args = append(args, u.updatedAt)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", u.table, strings.Join(sets, ", "), where)

	result, err := db.ExecContext(ctx, query, append(args, whereArgs...)...)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func requireAffected(result rowsAffecter) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// deleteOwned removes the row with id from table when it belongs to userID.
func deleteOwned(ctx context.Context, db *DB, table string, userID, id int64) error {
	result, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// requireOwned fails with repository.ErrNotFound unless the row with id in
// table belongs to userID. Creates call it for every parent they reference.
func requireOwned(ctx context.Context, db *DB, table string, userID, id int64) error {
	var one int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ? AND user_id = ?", id, userID).Scan(&one)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", table, id, repository.ErrNotFound)
	}
	return err
}

// requireOwnedIfSet is requireOwned for optional references.
func requireOwnedIfSet(ctx context.Context, db *DB, table string, userID int64, id *int64) error {
	if id == nil {
		return nil
	}
	return requireOwned(ctx, db, table, userID, *id)
}

// queryList runs query and scans every row with scan. It never returns a
// nil slice on success.
func queryList[T any](ctx context.Context, db *DB, scan func(scanner) (*T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}
