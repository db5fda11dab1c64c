package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/drilathedev/virtual-view-estate/internal/config"
	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/repositories"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

// FeatureService manages the feature-tag reference list behind the admin
// tag picker.
type FeatureService interface {
	ListFeatures(ctx context.Context) ([]*models.PropertyFeature, error)
	CreateFeature(ctx context.Context, name string) (*models.PropertyFeature, error)
	DeleteFeature(ctx context.Context, id uuid.UUID) error
}

type featureService struct {
	repo repositories.FeatureRepository
}

func NewFeatureService(repo repositories.FeatureRepository) FeatureService {
	return &featureService{repo: repo}
}

func (s *featureService) ListFeatures(ctx context.Context) ([]*models.PropertyFeature, error) {
	features, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrLoadFailed, err)
	}
	return features, nil
}

func (s *featureService) CreateFeature(ctx context.Context, name string) (*models.PropertyFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, config.WriteTimeout)
	defer cancel()

	f := &models.PropertyFeature{ID: uuid.New(), Name: name}
	if err := s.repo.Create(ctx, f); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: create feature", utils.ErrWriteTimeout)
		}
		return nil, fmt.Errorf("create feature: %w", err)
	}
	return f, nil
}

func (s *featureService) DeleteFeature(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, config.WriteTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.ErrNotFound
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: delete feature", utils.ErrWriteTimeout)
		}
		return fmt.Errorf("delete feature: %w", err)
	}
	return nil
}
