package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/photo"
)

// PhotoRepository implements photo.Repository.
type PhotoRepository struct {
	db *DB
}

// NewPhotoRepository creates a new PhotoRepository.
func NewPhotoRepository(db *DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func scanPhoto(s scanner) (*photo.Photo, error) {
	var p photo.Photo
	if err := s.Scan(&p.ID, &p.UserID, &p.ProjectID, &p.URL, &p.Caption, &p.UploadedAt, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotoRepository) ListByProject(ctx context.Context, userID, projectID int64) ([]photo.Photo, error) {
	photos, err := queryList(ctx, r.db, scanPhoto, `
		SELECT id, user_id, project_id, url, caption, uploaded_at, created_at
		FROM photos
		WHERE user_id = ? AND project_id = ?
		ORDER BY id ASC
	`, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

func (r *PhotoRepository) Create(ctx context.Context, p *photo.Photo) error {
	if err := requireOwned(ctx, r.db, "projects", p.UserID, p.ProjectID); err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO photos (user_id, project_id, url, caption, uploaded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, p.UserID, p.ProjectID, p.URL, p.Caption, p.UploadedAt, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "photos", userID, id); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}
