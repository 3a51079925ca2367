package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/team"
)

const teamColumns = "id, user_id, name, email, phone, role, hourly_rate, bio, created_at, updated_at"

// TeamRepository implements team.Repository.
type TeamRepository struct {
	db *DB
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func scanMember(s scanner) (*team.Member, error) {
	var m team.Member
	err := s.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Role,
		&m.HourlyRate,
		&m.Bio,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TeamRepository) List(ctx context.Context, userID int64) ([]team.Member, error) {
	members, err := queryList(ctx, r.db, scanMember,
		"SELECT "+teamColumns+" FROM team_members WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

func (r *TeamRepository) Get(ctx context.Context, userID, id int64) (*team.Member, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx,
		"SELECT "+teamColumns+" FROM team_members WHERE id = ? AND user_id = ?", id, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return m, nil
}

func (r *TeamRepository) Create(ctx context.Context, m *team.Member) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO team_members (user_id, name, email, phone, role, hourly_rate, bio, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`,
		m.UserID,
		m.Name,
		m.Email,
		m.Phone,
		m.Role,
		m.HourlyRate,
		m.Bio,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, userID, id int64, patch team.Patch) error {
	u := newUpdate("team_members", patch.UpdatedAt)
	setIfPresent(u, "name", patch.Name)
	setIfPresent(u, "email", patch.Email)
	setIfPresent(u, "phone", patch.Phone)
	setIfPresent(u, "role", patch.Role)
	setIfPresent(u, "hourly_rate", patch.HourlyRate)
	setIfPresent(u, "bio", patch.Bio)

	if err := u.exec(ctx, r.db, "id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "team_members", userID, id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}
