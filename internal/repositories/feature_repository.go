package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/drilathedev/virtual-view-estate/internal/models"
)

type FeatureRepository interface {
	Create(ctx context.Context, f *models.PropertyFeature) error
	ListAll(ctx context.Context) ([]*models.PropertyFeature, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type featureRepo struct {
	db DB
}

func NewFeatureRepository(db DB) FeatureRepository {
	return &featureRepo{db: db}
}

func (r *featureRepo) Create(ctx context.Context, f *models.PropertyFeature) error {
	row := r.db.QueryRow(ctx, `
        INSERT INTO property_features (id, name, created_at)
        VALUES ($1, $2, NOW())
        RETURNING created_at
    `, f.ID, f.Name)
	return row.Scan(&f.CreatedAt)
}

func (r *featureRepo) ListAll(ctx context.Context) ([]*models.PropertyFeature, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at FROM property_features ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PropertyFeature
	for rows.Next() {
		var f models.PropertyFeature
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *featureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM property_features WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
