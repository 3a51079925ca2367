package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/client"
)

const clientColumns = `id, user_id, name, email, phone, address, city, state, zip_code, country,
	tax_id, notes, created_at, updated_at`

// ClientRepository implements client.Repository.
type ClientRepository struct {
	db *DB
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func scanClient(s scanner) (*client.Client, error) {
	var c client.Client
	err := s.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.City,
		&c.State,
		&c.ZipCode,
		&c.Country,
		&c.TaxID,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns the user's clients in creation order.
func (r *ClientRepository) List(ctx context.Context, userID int64) ([]client.Client, error) {
	clients, err := queryList(ctx, r.db, scanClient,
		"SELECT "+clientColumns+" FROM clients WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// Get retrieves a client owned by the user.
func (r *ClientRepository) Get(ctx context.Context, userID, id int64) (*client.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE id = ? AND user_id = ?", id, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// Create inserts c and sets its ID.
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (user_id, name, email, phone, address, city, state, zip_code, country,
			tax_id, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		c.UserID,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.City,
		c.State,
		c.ZipCode,
		c.Country,
		c.TaxID,
		c.Notes,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// Update applies a partial update to a client owned by the user.
func (r *ClientRepository) Update(ctx context.Context, userID, id int64, patch client.Patch) error {
	u := newUpdate("clients", patch.UpdatedAt)
	setIfPresent(u, "name", patch.Name)
	setIfPresent(u, "email", patch.Email)
	setIfPresent(u, "phone", patch.Phone)
	setIfPresent(u, "address", patch.Address)
	setIfPresent(u, "city", patch.City)
	setIfPresent(u, "state", patch.State)
	setIfPresent(u, "zip_code", patch.ZipCode)
	setIfPresent(u, "country", patch.Country)
	setIfPresent(u, "tax_id", patch.TaxID)
	setIfPresent(u, "notes", patch.Notes)

	if err := u.exec(ctx, r.db, "id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// Delete removes a client owned by the user.
func (r *ClientRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "clients", userID, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
