package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/repositories"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

const (
	listingCacheKey = "properties:all"
	listingCacheTTL = 5 * time.Minute
)

// ListingService is the read path of the catalog: fetch everything once per
// request (through the cache), order, then filter.
type ListingService interface {
	ListProperties(ctx context.Context, q dtos.ListPropertiesQuery) ([]*models.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)
}

type listingService struct {
	repo  repositories.PropertyRepository
	cache *utils.Cache
}

func NewListingService(repo repositories.PropertyRepository, cache *utils.Cache) ListingService {
	return &listingService{repo: repo, cache: cache}
}

func (s *listingService) ListProperties(ctx context.Context, q dtos.ListPropertiesQuery) ([]*models.Property, error) {
	props, err := s.fetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrLoadFailed, err)
	}

	ordered := SortForDisplay(props)
	return ApplyFilters(ordered, q), nil
}

func (s *listingService) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrLoadFailed, err)
	}
	if p == nil {
		return nil, utils.ErrNotFound
	}
	return p, nil
}

func (s *listingService) fetchAll(ctx context.Context) ([]*models.Property, error) {
	var cached []*models.Property
	hit, err := s.cache.Get(ctx, listingCacheKey, &cached)
	if err != nil {
		utils.Logger.WithError(err).Warn("listing cache read failed; falling through to store")
	} else if hit {
		return cached, nil
	}

	props, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, listingCacheKey, props, listingCacheTTL); err != nil {
		utils.Logger.WithError(err).Warn("listing cache write failed")
	}
	return props, nil
}

/* ------------------------------------------------------------------
   Ordering
------------------------------------------------------------------ */

// SortForDisplay applies the site's display ordering to a copy of the input:
// listings without an explicit display order come first, newest first; then
// the explicitly ordered ones, smallest order value first.
func SortForDisplay(props []*models.Property) []*models.Property {
	out := make([]*models.Property, len(props))
	copy(out, props)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aOrdered := a.DisplayOrder != nil
		bOrdered := b.DisplayOrder != nil
		if aOrdered != bOrdered {
			return !aOrdered
		}
		if !aOrdered {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return *a.DisplayOrder < *b.DisplayOrder
	})
	return out
}

/* ------------------------------------------------------------------
   Filtering
------------------------------------------------------------------ */

// ApplyFilters keeps the listings passing every supplied filter (logical AND).
// Unsupplied filters pass everything; filtering never reorders.
func ApplyFilters(props []*models.Property, q dtos.ListPropertiesQuery) []*models.Property {
	f := compileFilters(q)

	out := make([]*models.Property, 0, len(props))
	for _, p := range props {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

type compiledFilters struct {
	query     string
	location  string
	propType  string
	mediaType string
	feature   string

	priceMin, priceMax *float64
	areaMin, areaMax   *float64
	forRent            *bool
}

// compileFilters normalizes the raw query params once. Numeric and boolean
// params that fail to parse are treated as absent.
func compileFilters(q dtos.ListPropertiesQuery) compiledFilters {
	f := compiledFilters{
		query:     strings.ToLower(strings.TrimSpace(q.Query)),
		location:  strings.ToLower(strings.TrimSpace(q.Location)),
		propType:  strings.ToLower(strings.TrimSpace(q.Type)),
		mediaType: strings.ToLower(strings.TrimSpace(q.MediaType)),
		feature:   strings.ToLower(strings.TrimSpace(q.Feature)),
	}
	f.priceMin = parseFloatParam(q.PriceMin)
	f.priceMax = parseFloatParam(q.PriceMax)
	f.areaMin = parseFloatParam(q.AreaMin)
	f.areaMax = parseFloatParam(q.AreaMax)
	if q.ForRent != "" {
		if v, err := strconv.ParseBool(q.ForRent); err == nil {
			f.forRent = &v
		}
	}
	return f
}

func parseFloatParam(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (f compiledFilters) matches(p *models.Property) bool {
	if f.query != "" &&
		!strings.Contains(strings.ToLower(p.Title), f.query) &&
		!strings.Contains(strings.ToLower(p.Location), f.query) {
		return false
	}
	if f.location != "" && !strings.Contains(strings.ToLower(p.Location), f.location) {
		return false
	}
	if f.propType != "" {
		if p.PropertyType == nil || !strings.EqualFold(*p.PropertyType, f.propType) {
			return false
		}
	}
	if f.mediaType != "" && !strings.EqualFold(string(p.MediaType), f.mediaType) {
		return false
	}
	if f.priceMin != nil || f.priceMax != nil {
		// A monthly rent is not a sale price; recurring amounts never
		// satisfy a price bound.
		if utils.IsRecurringPrice(p.Price) {
			return false
		}
		v, ok := utils.ExtractNumericPrice(p.Price)
		if !ok {
			return false
		}
		if f.priceMin != nil && v < *f.priceMin {
			return false
		}
		if f.priceMax != nil && v > *f.priceMax {
			return false
		}
	}
	if f.areaMin != nil && p.Area < *f.areaMin {
		return false
	}
	if f.areaMax != nil && p.Area > *f.areaMax {
		return false
	}
	if f.feature != "" && !matchesFeature(p.Features, f.feature) {
		return false
	}
	if f.forRent != nil && p.ForRent != *f.forRent {
		return false
	}
	return true
}

// matchesFeature: case-insensitive substring match against any entry;
// listings with no features never match.
func matchesFeature(features []string, wanted string) bool {
	for _, feat := range features {
		if strings.Contains(strings.ToLower(feat), wanted) {
			return true
		}
	}
	return false
}
