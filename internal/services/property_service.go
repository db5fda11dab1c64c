package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/drilathedev/virtual-view-estate/internal/config"
	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/repositories"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

// PropertyService is the admin write path. Every operation runs under a fixed
// client-side timeout and invalidates the listing cache on success; a write
// that times out is reported as failed even if the statement later lands.
type PropertyService interface {
	CreateProperty(ctx context.Context, req dtos.CreatePropertyRequest) (*models.Property, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, req dtos.UpdatePropertyRequest) (*models.Property, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
}

type propertyService struct {
	repo  repositories.PropertyRepository
	cache *utils.Cache
}

func NewPropertyService(repo repositories.PropertyRepository, cache *utils.Cache) PropertyService {
	return &propertyService{repo: repo, cache: cache}
}

func (s *propertyService) CreateProperty(ctx context.Context, req dtos.CreatePropertyRequest) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, config.WriteTimeout)
	defer cancel()

	p := &models.Property{
		ID:           uuid.New(),
		Title:        req.Title,
		Location:     req.Location,
		Price:        req.Price,
		Beds:         req.Beds,
		Baths:        req.Baths,
		Area:         req.Area,
		PropertyType: req.PropertyType,
		MediaType:    models.MediaType(req.MediaType),
		ForRent:      req.ForRent,
		Image:        req.Image,
		VideoURL:     req.VideoURL,
		TourID:       req.TourID,
		Gallery:      req.Gallery,
		Description:  req.Description,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Features:     req.Features,
		DisplayOrder: req.DisplayOrder,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, s.writeErr("create property", err)
	}

	s.invalidateListing(p.ID)
	return p, nil
}

// UpdateProperty reads, merges the partial payload, writes the full row back
// (read-modify-invalidate; no optimistic locking on a one-admin console).
func (s *propertyService) UpdateProperty(ctx context.Context, id uuid.UUID, req dtos.UpdatePropertyRequest) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, config.WriteTimeout)
	defer cancel()

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.writeErr("load property for update", err)
	}
	if p == nil {
		return nil, utils.ErrNotFound
	}

	applyPatch(p, req)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, s.writeErr("update property", err)
	}

	s.invalidateListing(id)
	return p, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, config.WriteTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.ErrNotFound
		}
		return s.writeErr("delete property", err)
	}

	s.invalidateListing(id)
	return nil
}

func applyPatch(p *models.Property, req dtos.UpdatePropertyRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Location != nil {
		p.Location = *req.Location
		// The stored coordinates described the old location string.
		if req.Latitude == nil && req.Longitude == nil {
			p.Latitude = nil
			p.Longitude = nil
		}
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Beds != nil {
		p.Beds = *req.Beds
	}
	if req.Baths != nil {
		p.Baths = *req.Baths
	}
	if req.Area != nil {
		p.Area = *req.Area
	}
	if req.PropertyType != nil {
		p.PropertyType = req.PropertyType
	}
	if req.MediaType != nil {
		p.MediaType = models.MediaType(*req.MediaType)
	}
	if req.ForRent != nil {
		p.ForRent = *req.ForRent
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.VideoURL != nil {
		p.VideoURL = req.VideoURL
	}
	if req.TourID != nil {
		p.TourID = req.TourID
	}
	if req.Gallery != nil {
		p.Gallery = *req.Gallery
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.ContactPhone != nil {
		p.ContactPhone = req.ContactPhone
	}
	if req.ContactEmail != nil {
		p.ContactEmail = req.ContactEmail
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.DisplayOrder != nil {
		p.DisplayOrder = req.DisplayOrder
	}
	if req.Latitude != nil {
		p.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		p.Longitude = req.Longitude
	}
}

func (s *propertyService) writeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", utils.ErrWriteTimeout, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *propertyService) invalidateListing(id uuid.UUID) {
	// Invalidation runs on a fresh context: the write already landed and the
	// request context may be past its deadline.
	if err := s.cache.Invalidate(context.Background(), listingCacheKey); err != nil {
		utils.Logger.WithError(err).Warnf("cache invalidation failed after write to %s", id)
	}
}
