package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/doctemplate"
)

const templateColumns = "id, user_id, name, type, content, created_at, updated_at"

// TemplateRepository implements doctemplate.Repository.
type TemplateRepository struct {
	db *DB
}

// NewTemplateRepository creates a new TemplateRepository.
func NewTemplateRepository(db *DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func scanTemplate(s scanner) (*doctemplate.Template, error) {
	var t doctemplate.Template
	if err := s.Scan(&t.ID, &t.UserID, &t.Name, &t.Type, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) List(ctx context.Context, userID int64) ([]doctemplate.Template, error) {
	templates, err := queryList(ctx, r.db, scanTemplate,
		"SELECT "+templateColumns+" FROM templates WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (r *TemplateRepository) Get(ctx context.Context, userID, id int64) (*doctemplate.Template, error) {
	t, err := scanTemplate(r.db.QueryRowContext(ctx,
		"SELECT "+templateColumns+" FROM templates WHERE id = ? AND user_id = ?", id, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return t, nil
}

func (r *TemplateRepository) Create(ctx context.Context, t *doctemplate.Template) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO templates (user_id, name, type, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, t.UserID, t.Name, t.Type, t.Content, t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) Update(ctx context.Context, userID, id int64, patch doctemplate.Patch) error {
	u := newUpdate("templates", patch.UpdatedAt)
	setIfPresent(u, "name", patch.Name)
	setIfPresent(u, "type", patch.Type)
	setIfPresent(u, "content", patch.Content)

	if err := u.exec(ctx, r.db, "id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "templates", userID, id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}
