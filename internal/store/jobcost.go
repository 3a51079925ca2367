package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/jobcost"
)

const jobCostColumns = "id, user_id, project_id, category, description, amount, cost_date, created_at, updated_at"

// JobCostRepository implements jobcost.Repository.
type JobCostRepository struct {
	db *DB
}

// NewJobCostRepository creates a new JobCostRepository.
func NewJobCostRepository(db *DB) *JobCostRepository {
	return &JobCostRepository{db: db}
}

func scanJobCost(s scanner) (*jobcost.JobCost, error) {
	var c jobcost.JobCost
	err := s.Scan(
		&c.ID,
		&c.UserID,
		&c.ProjectID,
		&c.Category,
		&c.Description,
		&c.Amount,
		&c.CostDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *JobCostRepository) List(ctx context.Context, userID int64) ([]jobcost.JobCost, error) {
	costs, err := queryList(ctx, r.db, scanJobCost,
		"SELECT "+jobCostColumns+" FROM job_costs WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job costs: %w", err)
	}
	return costs, nil
}

func (r *JobCostRepository) ListByProject(ctx context.Context, userID, projectID int64) ([]jobcost.JobCost, error) {
	costs, err := queryList(ctx, r.db, scanJobCost,
		"SELECT "+jobCostColumns+" FROM job_costs WHERE user_id = ? AND project_id = ? ORDER BY id ASC",
		userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project job costs: %w", err)
	}
	return costs, nil
}

func (r *JobCostRepository) Get(ctx context.Context, userID, id int64) (*jobcost.JobCost, error) {
	c, err := scanJobCost(r.db.QueryRowContext(ctx,
		"SELECT "+jobCostColumns+" FROM job_costs WHERE id = ? AND user_id = ?", id, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get job cost: %w", err)
	}
	return c, nil
}

func (r *JobCostRepository) Create(ctx context.Context, c *jobcost.JobCost) error {
	if err := requireOwned(ctx, r.db, "projects", c.UserID, c.ProjectID); err != nil {
		return fmt.Errorf("failed to create job cost: %w", err)
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO job_costs (user_id, project_id, category, description, amount, cost_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`,
		c.UserID,
		c.ProjectID,
		c.Category,
		c.Description,
		c.Amount,
		c.CostDate,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create job cost: %w", err)
	}
	return nil
}

func (r *JobCostRepository) Update(ctx context.Context, userID, id int64, patch jobcost.Patch) error {
	u := newUpdate("job_costs", patch.UpdatedAt)
	setIfPresent(u, "category", patch.Category)
	setIfPresent(u, "description", patch.Description)
	setIfPresent(u, "amount", patch.Amount)
	setIfPresent(u, "cost_date", patch.CostDate)

	if err := u.exec(ctx, r.db, "id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to update job cost: %w", err)
	}
	return nil
}

func (r *JobCostRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "job_costs", userID, id); err != nil {
		return fmt.Errorf("failed to delete job cost: %w", err)
	}
	return nil
}
