package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/routes"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

type fakeListingService struct {
	props   []*models.Property
	listErr error
	byID    map[uuid.UUID]*models.Property
}

func (f *fakeListingService) ListProperties(_ context.Context, _ dtos.ListPropertiesQuery) ([]*models.Property, error) {
	return f.props, f.listErr
}

func (f *fakeListingService) GetProperty(_ context.Context, id uuid.UUID) (*models.Property, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, utils.ErrNotFound
}

func newListingRouter(ls *fakeListingService) *mux.Router {
	ctrl := NewPropertyController(ls, nil)
	r := mux.NewRouter()
	r.HandleFunc(routes.Properties, ctrl.ListPropertiesHandler).Methods(http.MethodGet)
	r.HandleFunc(routes.PropertyByID, ctrl.GetPropertyHandler).Methods(http.MethodGet)
	return r
}

func TestListPropertiesEmptyIsOK(t *testing.T) {
	router := newListingRouter(&fakeListingService{props: []*models.Property{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, routes.Properties, nil))

	// No matches is a 200 with an empty array, never an error.
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestListPropertiesLoadFailure(t *testing.T) {
	router := newListingRouter(&fakeListingService{
		listErr: fmt.Errorf("%w: connection refused", utils.ErrLoadFailed),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, routes.Properties, nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, utils.ErrCodeLoadFailed, body.Code)
}

func TestGetPropertyNotFound(t *testing.T) {
	router := newListingRouter(&fakeListingService{byID: map[uuid.UUID]*models.Property{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, utils.ErrCodeNotFound, body.Code)
}

func TestGetPropertyInvalidID(t *testing.T) {
	router := newListingRouter(&fakeListingService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties/not-a-uuid", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPropertyFound(t *testing.T) {
	id := uuid.New()
	router := newListingRouter(&fakeListingService{
		byID: map[uuid.UUID]*models.Property{
			id: {ID: id, Title: "Penthouse", MediaType: models.MediaTypeVideo},
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+id.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Penthouse", got.Title)
}
