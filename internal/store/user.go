package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpggio/tradeledger/internal/domain/user"
)

const userColumns = "id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in"

// UserRepository implements user.Repository.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(s scanner) (*user.User, error) {
	var u user.User
	err := s.Scan(
		&u.ID,
		&u.OpenID,
		&u.Name,
		&u.Email,
		&u.LoginMethod,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastSignedIn,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert inserts the user or updates the existing row with the same open ID
// in a single statement.
func (r *UserRepository) Upsert(ctx context.Context, in user.Upsert) (*user.User, error) {
	sets := []string{"updated_at = excluded.updated_at", "last_signed_in = excluded.last_signed_in"}
	if in.Name != nil {
		sets = append(sets, "name = excluded.name")
	}
	if in.Email != nil {
		sets = append(sets, "email = excluded.email")
	}
	if in.LoginMethod != nil {
		sets = append(sets, "login_method = excluded.login_method")
	}
	if in.OverwriteRole {
		sets = append(sets, "role = excluded.role")
	}

	query := `
		INSERT INTO users (open_id, name, email, login_method, role, created_at, updated_at, last_signed_in)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (open_id) DO UPDATE SET ` + strings.Join(sets, ", ") + `
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		in.OpenID,
		in.Name,
		in.Email,
		in.LoginMethod,
		in.Role,
		in.SignedInAt,
		in.SignedInAt,
		in.SignedInAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return u, nil
}

// Get retrieves a user by ID.
func (r *UserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetByOpenID retrieves a user by external identity.
func (r *UserRepository) GetByOpenID(ctx context.Context, openID string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE open_id = ?", openID))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by open id: %w", err)
	}
	return u, nil
}
