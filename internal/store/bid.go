package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/bid"
)

const bidColumns = `id, user_id, client_id, project_id, bid_number, status, issue_date, expiry_date,
	subtotal, tax_amount, total, notes, created_at, updated_at`

const bidItemColumns = "i.id, i.bid_id, i.description, i.quantity, i.unit_price, i.total, i.created_at"

// BidRepository implements bid.Repository.
type BidRepository struct {
	db *DB
}

// NewBidRepository creates a new BidRepository.
func NewBidRepository(db *DB) *BidRepository {
	return &BidRepository{db: db}
}

func scanBid(s scanner) (*bid.Bid, error) {
	var b bid.Bid
	err := s.Scan(
		&b.ID,
		&b.UserID,
		&b.ClientID,
		&b.ProjectID,
		&b.BidNumber,
		&b.Status,
		&b.IssueDate,
		&b.ExpiryDate,
		&b.Subtotal,
		&b.TaxAmount,
		&b.Total,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBidItem(s scanner) (*bid.Item, error) {
	var item bid.Item
	err := s.Scan(
		&item.ID,
		&item.BidID,
		&item.Description,
		&item.Quantity,
		&item.UnitPrice,
		&item.Total,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns the user's bids in creation order.
func (r *BidRepository) List(ctx context.Context, userID int64) ([]bid.Bid, error) {
	list, err := queryList(ctx, r.db, scanBid,
		"SELECT "+bidColumns+" FROM bids WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return list, nil
}

// Get retrieves a bid owned by the user.
func (r *BidRepository) Get(ctx context.Context, userID, id int64) (*bid.Bid, error) {
	b, err := scanBid(r.db.QueryRowContext(ctx,
		"SELECT "+bidColumns+" FROM bids WHERE id = ? AND user_id = ?", id, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}
	return b, nil
}

// Create inserts b and sets its ID. A duplicate number for the same user
// yields repository.ErrConflict.
func (r *BidRepository) Create(ctx context.Context, b *bid.Bid) error {
	if err := requireOwned(ctx, r.db, "clients", b.UserID, b.ClientID); err != nil {
		return fmt.Errorf("failed to create bid: %w", err)
	}
	if err := requireOwnedIfSet(ctx, r.db, "projects", b.UserID, b.ProjectID); err != nil {
		return fmt.Errorf("failed to create bid: %w", err)
	}

	query := `
		INSERT INTO bids (user_id, client_id, project_id, bid_number, status, issue_date, expiry_date,
			subtotal, tax_amount, total, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		b.UserID,
		b.ClientID,
		b.ProjectID,
		b.BidNumber,
		b.Status,
		b.IssueDate,
		b.ExpiryDate,
		b.Subtotal,
		b.TaxAmount,
		b.Total,
		b.Notes,
		b.CreatedAt,
		b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to create bid: %w", err)
	}
	return nil
}

// Update applies a partial update to a bid owned by the user.
func (r *BidRepository) Update(ctx context.Context, userID, id int64, patch bid.Patch) error {
	u := newUpdate("bids", patch.UpdatedAt)
	setIfPresent(u, "status", patch.Status)
	setIfPresent(u, "expiry_date", patch.ExpiryDate)
	setIfPresent(u, "subtotal", patch.Subtotal)
	setIfPresent(u, "tax_amount", patch.TaxAmount)
	setIfPresent(u, "total", patch.Total)
	setIfPresent(u, "notes", patch.Notes)

	if err := u.exec(ctx, r.db, "id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to update bid: %w", err)
	}
	return nil
}

// Delete removes a bid owned by the user along with its items.
func (r *BidRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "bids", userID, id); err != nil {
		return fmt.Errorf("failed to delete bid: %w", err)
	}
	return nil
}

// ListItems returns the items of a bid owned by the user.
func (r *BidRepository) ListItems(ctx context.Context, userID, bidID int64) ([]bid.Item, error) {
	query := `
		SELECT ` + bidItemColumns + `
		FROM bid_items i
		JOIN bids p ON p.id = i.bid_id
		WHERE i.bid_id = ? AND p.user_id = ?
		ORDER BY i.id ASC
	`

	items, err := queryList(ctx, r.db, scanBidItem, query, bidID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bid items: %w", err)
	}
	return items, nil
}

// AddItem inserts item and sets its ID. Callers check bid ownership.
func (r *BidRepository) AddItem(ctx context.Context, item *bid.Item) error {
	query := `
		INSERT INTO bid_items (bid_id, description, quantity, unit_price, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		item.BidID,
		item.Description,
		item.Quantity,
		item.UnitPrice,
		item.Total,
		item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to add bid item: %w", err)
	}
	return nil
}

// RemoveItem deletes an item whose bid belongs to the user.
func (r *BidRepository) RemoveItem(ctx context.Context, userID, itemID int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM bid_items
		WHERE id = ? AND bid_id IN (SELECT id FROM bids WHERE user_id = ?)
	`, itemID, userID)
	if err == nil {
		err = requireAffected(result)
	}
	if err != nil {
		return fmt.Errorf("failed to remove bid item: %w", err)
	}
	return nil
}
