package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/drilathedev/virtual-view-estate/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListAll(ctx context.Context) ([]*models.Property, error)
	ListMissingCoordinates(ctx context.Context, limit int) ([]*models.Property, error)

	Update(ctx context.Context, p *models.Property) error
	UpdateCoordinates(ctx context.Context, id uuid.UUID, lat, lng float64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	row := r.db.QueryRow(ctx, `
        INSERT INTO properties (
            id, title, location, price, beds, baths, area,
            property_type, media_type, for_rent,
            image, video_url, tour_id, gallery,
            description, contact_phone, contact_email, features,
            display_order, latitude, longitude,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21, NOW(), NOW())
        RETURNING created_at, updated_at
    `,
		p.ID,
		p.Title,
		p.Location,
		p.Price,
		p.Beds,
		p.Baths,
		p.Area,
		p.PropertyType,
		string(p.MediaType),
		p.ForRent,
		p.Image,
		p.VideoURL,
		p.TourID,
		p.Gallery,
		p.Description,
		p.ContactPhone,
		p.ContactEmail,
		p.Features,
		p.DisplayOrder,
		p.Latitude,
		p.Longitude,
	)
	return row.Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	row := r.db.QueryRow(ctx, basePropertySelect()+" WHERE id=$1", id)
	return scanProperty(row)
}

func (r *propertyRepo) ListAll(ctx context.Context) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, basePropertySelect()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *propertyRepo) ListMissingCoordinates(ctx context.Context, limit int) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx,
		basePropertySelect()+` WHERE latitude IS NULL OR longitude IS NULL ORDER BY created_at LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE properties SET
            title=$1, location=$2, price=$3, beds=$4, baths=$5, area=$6,
            property_type=$7, media_type=$8, for_rent=$9,
            image=$10, video_url=$11, tour_id=$12, gallery=$13,
            description=$14, contact_phone=$15, contact_email=$16, features=$17,
            display_order=$18, latitude=$19, longitude=$20,
            updated_at=NOW()
        WHERE id=$21
    `,
		p.Title, p.Location, p.Price, p.Beds, p.Baths, p.Area,
		p.PropertyType, string(p.MediaType), p.ForRent,
		p.Image, p.VideoURL, p.TourID, p.Gallery,
		p.Description, p.ContactPhone, p.ContactEmail, p.Features,
		p.DisplayOrder, p.Latitude, p.Longitude,
		p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *propertyRepo) UpdateCoordinates(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE properties SET latitude=$1, longitude=$2, updated_at=NOW() WHERE id=$3`,
		lat, lng, id,
	)
	return err
}

func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func basePropertySelect() string {
	return `
        SELECT
            id, title, location, price, beds, baths, area,
            property_type, media_type, for_rent,
            image, video_url, tour_id, gallery,
            description, contact_phone, contact_email, features,
            display_order, latitude, longitude,
            created_at, updated_at
        FROM properties
    `
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var (
		p         models.Property
		mediaType string
		gallery   pgtype.TextArray
		features  pgtype.TextArray
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Location,
		&p.Price,
		&p.Beds,
		&p.Baths,
		&p.Area,
		&p.PropertyType,
		&mediaType,
		&p.ForRent,
		&p.Image,
		&p.VideoURL,
		&p.TourID,
		&gallery,
		&p.Description,
		&p.ContactPhone,
		&p.ContactEmail,
		&features,
		&p.DisplayOrder,
		&p.Latitude,
		&p.Longitude,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.MediaType = models.MediaType(mediaType)
	if gallery.Status == pgtype.Present {
		if err := gallery.AssignTo(&p.Gallery); err != nil {
			return nil, err
		}
	}
	if features.Status == pgtype.Present {
		if err := features.AssignTo(&p.Features); err != nil {
			return nil, err
		}
	}
	return &p, nil
}
