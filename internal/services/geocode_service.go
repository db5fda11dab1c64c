package services

import (
	"context"
	"fmt"

	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/repositories"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
	"github.com/drilathedev/virtual-view-estate/internal/utils/nominatim"
)

const (
	geocodeCountry = "Kosovo"
	gmapsRegion    = "xk"

	// A "Kosovo-constrained" geocode that lands this far from Prishtina is a
	// mismatch (wrong continent, wrong town of the same name) and is dropped.
	maxKmFromCenter = 200.0

	backfillBatchSize = 50
)

// RemoteGeocoder is the network half of coordinate resolution; the fixed
// place table short-circuits it for common names.
type RemoteGeocoder interface {
	Search(ctx context.Context, location string) (lat, lng float64, ok bool, err error)
}

// GeocodeService resolves properties to map markers and backfills stored
// coordinates in the background.
type GeocodeService interface {
	ResolveMarkers(ctx context.Context, props []*models.Property) dtos.MapMarkersResponse
	BackfillCoordinates(ctx context.Context)
}

type geocodeService struct {
	repo   repositories.PropertyRepository
	cache  *utils.Cache
	remote RemoteGeocoder
	appURL string
}

func NewGeocodeService(
	repo repositories.PropertyRepository,
	cache *utils.Cache,
	remote RemoteGeocoder,
	appURL string,
) GeocodeService {
	return &geocodeService{repo: repo, cache: cache, remote: remote, appURL: appURL}
}

// ResolveMarkers walks the properties in collection order, sequentially. One
// failed lookup drops that property only; the pass itself never fails and an
// empty marker list is a normal outcome.
func (s *geocodeService) ResolveMarkers(ctx context.Context, props []*models.Property) dtos.MapMarkersResponse {
	markers := make([]dtos.MapMarker, 0, len(props))

	for _, p := range props {
		lat, lng, ok := s.resolve(ctx, p)
		if !ok {
			continue
		}
		markers = append(markers, dtos.MapMarker{
			ID:        p.ID.String(),
			Title:     p.Title,
			Location:  p.Location,
			Price:     p.Price,
			Beds:      p.Beds,
			Baths:     p.Baths,
			Area:      p.Area,
			Image:     p.Image,
			DetailURL: fmt.Sprintf("%s/properties/%s", s.appURL, p.ID),
			Latitude:  lat,
			Longitude: lng,
		})
	}

	return dtos.MapMarkersResponse{
		Markers: markers,
		Bounds:  boundsOf(markers),
	}
}

// resolve implements the three-step lookup: stored coordinates (no network
// call), fixed place table, then one remote geocode.
func (s *geocodeService) resolve(ctx context.Context, p *models.Property) (float64, float64, bool) {
	if p.HasCoordinates() {
		return utils.Val(p.Latitude), utils.Val(p.Longitude), true
	}

	if place, ok := utils.LookupKnownPlace(p.Location); ok {
		return place.Latitude, place.Longitude, true
	}

	if p.Location == "" || s.remote == nil {
		return 0, 0, false
	}

	lat, lng, ok, err := s.remote.Search(ctx, p.Location)
	if err != nil {
		utils.Logger.WithError(err).Warnf("geocoding failed for %q; dropping from map", p.Location)
		return 0, 0, false
	}
	if !ok || !utils.IsValidCoordinates(lat, lng) {
		return 0, 0, false
	}

	center := utils.KosovoPlaces[0]
	if utils.DistanceKm(lat, lng, center.Latitude, center.Longitude) > maxKmFromCenter {
		if nearest, km, ok := utils.NearestKnownPlace(lat, lng); ok {
			utils.Logger.Warnf("geocode for %q landed %.0f km from %s; dropping", p.Location, km, nearest.Name)
		}
		return 0, 0, false
	}
	return lat, lng, true
}

// BackfillCoordinates persists coordinates for listings missing them so the
// map's steady state needs no network calls. Runs on a cron schedule.
func (s *geocodeService) BackfillCoordinates(ctx context.Context) {
	props, err := s.repo.ListMissingCoordinates(ctx, backfillBatchSize)
	if err != nil {
		utils.Logger.WithError(err).Warn("geocode backfill: listing fetch failed")
		return
	}
	if len(props) == 0 {
		return
	}

	var updated int
	for _, p := range props {
		lat, lng, ok := s.resolve(ctx, p)
		if !ok {
			continue
		}
		if err := s.repo.UpdateCoordinates(ctx, p.ID, lat, lng); err != nil {
			utils.Logger.WithError(err).Warnf("geocode backfill: persist failed for %s", p.ID)
			continue
		}
		updated++
	}

	if updated > 0 {
		if err := s.cache.Invalidate(ctx, listingCacheKey); err != nil {
			utils.Logger.WithError(err).Warn("geocode backfill: cache invalidation failed")
		}
		utils.Logger.Infof("geocode backfill: resolved coordinates for %d of %d listings", updated, len(props))
	}
}

func boundsOf(markers []dtos.MapMarker) *dtos.MapBounds {
	if len(markers) == 0 {
		return nil
	}
	b := dtos.MapBounds{
		MinLat: markers[0].Latitude,
		MaxLat: markers[0].Latitude,
		MinLng: markers[0].Longitude,
		MaxLng: markers[0].Longitude,
	}
	for _, m := range markers[1:] {
		if m.Latitude < b.MinLat {
			b.MinLat = m.Latitude
		}
		if m.Latitude > b.MaxLat {
			b.MaxLat = m.Latitude
		}
		if m.Longitude < b.MinLng {
			b.MinLng = m.Longitude
		}
		if m.Longitude > b.MaxLng {
			b.MaxLng = m.Longitude
		}
	}
	return &b
}

/* ------------------------------------------------------------------
   Remote geocoder wiring
------------------------------------------------------------------ */

type nominatimGeocoder struct {
	client *nominatim.Client
}

func (g *nominatimGeocoder) Search(ctx context.Context, location string) (float64, float64, bool, error) {
	return g.client.Search(ctx, location, geocodeCountry)
}

type gmapsGeocoder struct {
	apiKey   string
	fallback RemoteGeocoder
}

// Search tries the Google Geocoding API first and falls back to Nominatim on
// client failure (same degradation pattern the rest of the codebase uses for
// Google Maps calls).
func (g *gmapsGeocoder) Search(ctx context.Context, location string) (float64, float64, bool, error) {
	lat, lng, ok, err := utils.GeocodeWithGMaps(ctx, g.apiKey, location+", "+geocodeCountry, gmapsRegion)
	if err == nil {
		return lat, lng, ok, nil
	}
	utils.Logger.WithError(err).Warn("Google geocoding failed; falling back to Nominatim")
	if g.fallback == nil {
		return 0, 0, false, err
	}
	return g.fallback.Search(ctx, location)
}

// NewRemoteGeocoder picks the Google geocoder when an API key is configured,
// plain Nominatim otherwise.
func NewRemoteGeocoder(gmapsAPIKey, nominatimBaseURL, userAgent string) RemoteGeocoder {
	nom := &nominatimGeocoder{client: nominatim.NewClient(nominatimBaseURL, userAgent)}
	if gmapsAPIKey == "" {
		return nom
	}
	return &gmapsGeocoder{apiKey: gmapsAPIKey, fallback: nom}
}
