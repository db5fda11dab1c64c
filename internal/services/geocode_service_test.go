package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

type fakeGeocoder struct {
	calls   int
	results map[string][2]float64
	err     error
}

func (f *fakeGeocoder) Search(_ context.Context, location string) (float64, float64, bool, error) {
	f.calls++
	if f.err != nil {
		return 0, 0, false, f.err
	}
	if coords, ok := f.results[location]; ok {
		return coords[0], coords[1], true, nil
	}
	return 0, 0, false, nil
}

type fakePropertyRepo struct {
	missing     []*models.Property
	coordsSaved map[uuid.UUID][2]float64
}

func (f *fakePropertyRepo) Create(context.Context, *models.Property) error { return nil }
func (f *fakePropertyRepo) GetByID(context.Context, uuid.UUID) (*models.Property, error) {
	return nil, nil
}
func (f *fakePropertyRepo) ListAll(context.Context) ([]*models.Property, error) { return nil, nil }
func (f *fakePropertyRepo) ListMissingCoordinates(context.Context, int) ([]*models.Property, error) {
	return f.missing, nil
}
func (f *fakePropertyRepo) Update(context.Context, *models.Property) error { return nil }
func (f *fakePropertyRepo) UpdateCoordinates(_ context.Context, id uuid.UUID, lat, lng float64) error {
	if f.coordsSaved == nil {
		f.coordsSaved = map[uuid.UUID][2]float64{}
	}
	f.coordsSaved[id] = [2]float64{lat, lng}
	return nil
}
func (f *fakePropertyRepo) Delete(context.Context, uuid.UUID) error { return nil }

func markerProp(location string, lat, lng *float64) *models.Property {
	return &models.Property{
		ID:        uuid.New(),
		Title:     "t",
		Location:  location,
		Price:     "€100,000",
		MediaType: models.MediaTypePhoto,
		Latitude:  lat,
		Longitude: lng,
	}
}

func newTestGeocodeService(remote RemoteGeocoder) GeocodeService {
	return NewGeocodeService(&fakePropertyRepo{}, nil, remote, "https://example.com")
}

func TestResolveMarkersStoredCoordinatesSkipNetwork(t *testing.T) {
	remote := &fakeGeocoder{}
	svc := newTestGeocodeService(remote)

	p := markerProp("Anywhere", utils.Ptr(42.65), utils.Ptr(21.16))
	resp := svc.ResolveMarkers(context.Background(), []*models.Property{p})

	require.Len(t, resp.Markers, 1)
	require.Equal(t, 42.65, resp.Markers[0].Latitude)
	require.Zero(t, remote.calls)
}

func TestResolveMarkersKnownPlaceSkipsNetwork(t *testing.T) {
	remote := &fakeGeocoder{}
	svc := newTestGeocodeService(remote)

	resp := svc.ResolveMarkers(context.Background(), []*models.Property{
		markerProp("Prizren, Kosovë", nil, nil),
	})

	require.Len(t, resp.Markers, 1)
	require.InDelta(t, 42.2133, resp.Markers[0].Latitude, 0.001)
	require.Zero(t, remote.calls)
}

func TestResolveMarkersRemoteFallback(t *testing.T) {
	remote := &fakeGeocoder{results: map[string][2]float64{
		"Lagjja Kalabria, Prishtinë": {42.64, 21.14},
	}}
	svc := newTestGeocodeService(remote)

	resp := svc.ResolveMarkers(context.Background(), []*models.Property{
		markerProp("Lagjja Kalabria, Prishtinë", nil, nil),
	})

	require.Len(t, resp.Markers, 1)
	require.Equal(t, 1, remote.calls)
}

func TestResolveMarkersPerItemFailure(t *testing.T) {
	remote := &fakeGeocoder{err: errors.New("boom")}
	svc := newTestGeocodeService(remote)

	good := markerProp("stored", utils.Ptr(42.6), utils.Ptr(21.1))
	bad := markerProp("Rruga pa emër 42", nil, nil)

	resp := svc.ResolveMarkers(context.Background(), []*models.Property{bad, good})

	// The failing lookup drops its listing only.
	require.Len(t, resp.Markers, 1)
	require.Equal(t, good.ID.String(), resp.Markers[0].ID)
}

func TestResolveMarkersDropsFarAwayGeocode(t *testing.T) {
	// Same-named town on another continent: out of the regional sanity radius.
	remote := &fakeGeocoder{results: map[string][2]float64{
		"Novo Selo": {40.71, -74.0},
	}}
	svc := newTestGeocodeService(remote)

	resp := svc.ResolveMarkers(context.Background(), []*models.Property{
		markerProp("Novo Selo", nil, nil),
	})
	require.Empty(t, resp.Markers)
}

func TestResolveMarkersEmptyLocationNoNetworkCall(t *testing.T) {
	remote := &fakeGeocoder{}
	svc := newTestGeocodeService(remote)

	resp := svc.ResolveMarkers(context.Background(), []*models.Property{
		markerProp("", nil, nil),
	})
	require.Empty(t, resp.Markers)
	require.Zero(t, remote.calls)
}

func TestResolveMarkersBounds(t *testing.T) {
	svc := newTestGeocodeService(&fakeGeocoder{})

	resp := svc.ResolveMarkers(context.Background(), []*models.Property{
		markerProp("a", utils.Ptr(42.0), utils.Ptr(21.5)),
		markerProp("b", utils.Ptr(43.0), utils.Ptr(20.5)),
	})

	require.NotNil(t, resp.Bounds)
	require.Equal(t, 42.0, resp.Bounds.MinLat)
	require.Equal(t, 43.0, resp.Bounds.MaxLat)
	require.Equal(t, 20.5, resp.Bounds.MinLng)
	require.Equal(t, 21.5, resp.Bounds.MaxLng)
}

func TestResolveMarkersNoMarkersNoBounds(t *testing.T) {
	svc := newTestGeocodeService(&fakeGeocoder{})

	resp := svc.ResolveMarkers(context.Background(), nil)
	require.Empty(t, resp.Markers)
	require.Nil(t, resp.Bounds)
}

func TestBackfillCoordinatesPersists(t *testing.T) {
	repo := &fakePropertyRepo{
		missing: []*models.Property{
			markerProp("Gjakova", nil, nil),
			markerProp("Rruga pa emër 42", nil, nil),
		},
	}
	svc := NewGeocodeService(repo, nil, &fakeGeocoder{}, "https://example.com")

	svc.BackfillCoordinates(context.Background())

	// Only the place-table hit got persisted; the unknown location is left for
	// a later pass.
	require.Len(t, repo.coordsSaved, 1)
	saved := repo.coordsSaved[repo.missing[0].ID]
	require.InDelta(t, 42.4767, saved[0], 0.001)
}
