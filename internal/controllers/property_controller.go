package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/services"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

// PropertyController serves the public read side of the catalog.
type PropertyController struct {
	listingService services.ListingService
	geocodeService services.GeocodeService
}

func NewPropertyController(ls services.ListingService, gs services.GeocodeService) *PropertyController {
	return &PropertyController{listingService: ls, geocodeService: gs}
}

// ----------------------------------------------------------------
// GET /api/v1/properties
// ----------------------------------------------------------------
func (c *PropertyController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)

	props, err := c.listingService.ListProperties(r.Context(), q)
	if err != nil {
		// Store failure is an error; an empty result set is a 200.
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// ----------------------------------------------------------------
// GET /api/v1/properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) GetPropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property ID", nil,
		)
		return
	}

	p, svcErr := c.listingService.GetProperty(r.Context(), id)
	if svcErr != nil {
		respondServiceError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// ----------------------------------------------------------------
// GET /api/v1/properties/map
// ----------------------------------------------------------------
func (c *PropertyController) MapMarkersHandler(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)

	props, err := c.listingService.ListProperties(r.Context(), q)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := c.geocodeService.ResolveMarkers(r.Context(), props)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func parseListQuery(r *http.Request) dtos.ListPropertiesQuery {
	qs := r.URL.Query()
	return dtos.ListPropertiesQuery{
		Query:     qs.Get("q"),
		Location:  qs.Get("location"),
		Type:      qs.Get("type"),
		MediaType: qs.Get("mediaType"),
		PriceMin:  qs.Get("priceMin"),
		PriceMax:  qs.Get("priceMax"),
		AreaMin:   qs.Get("areaMin"),
		AreaMax:   qs.Get("areaMax"),
		Feature:   qs.Get("feature"),
		ForRent:   qs.Get("forRent"),
	}
}
