package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/project"
)

const projectColumns = `id, user_id, client_id, name, description, status, start_date, end_date,
	budget, progress, created_at, updated_at`

// ProjectRepository implements project.Repository.
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func scanProject(s scanner) (*project.Project, error) {
	var p project.Project
	err := s.Scan(
		&p.ID,
		&p.UserID,
		&p.ClientID,
		&p.Name,
		&p.Description,
		&p.Status,
		&p.StartDate,
		&p.EndDate,
		&p.Budget,
		&p.Progress,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns the user's projects in creation order.
func (r *ProjectRepository) List(ctx context.Context, userID int64) ([]project.Project, error) {
	projects, err := queryList(ctx, r.db, scanProject,
		"SELECT "+projectColumns+" FROM projects WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get retrieves a project owned by the user.
func (r *ProjectRepository) Get(ctx context.Context, userID, id int64) (*project.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = ? AND user_id = ?", id, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// Create inserts proj and sets its ID.
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	if err := requireOwned(ctx, r.db, "clients", proj.UserID, proj.ClientID); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	query := `
		INSERT INTO projects (user_id, client_id, name, description, status, start_date, end_date,
			budget, progress, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		proj.UserID,
		proj.ClientID,
		proj.Name,
		proj.Description,
		proj.Status,
		proj.StartDate,
		proj.EndDate,
		proj.Budget,
		proj.Progress,
		proj.CreatedAt,
		proj.UpdatedAt,
	).Scan(&proj.ID)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update applies a partial update to a project owned by the user.
func (r *ProjectRepository) Update(ctx context.Context, userID, id int64, patch project.Patch) error {
	u := newUpdate("projects", patch.UpdatedAt)
	setIfPresent(u, "name", patch.Name)
	setIfPresent(u, "description", patch.Description)
	setIfPresent(u, "status", patch.Status)
	setIfPresent(u, "start_date", patch.StartDate)
	setIfPresent(u, "end_date", patch.EndDate)
	setIfPresent(u, "budget", patch.Budget)
	setIfPresent(u, "progress", patch.Progress)

	if err := u.exec(ctx, r.db, "id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes a project owned by the user. Dependent rows are left in place.
func (r *ProjectRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "projects", userID, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
