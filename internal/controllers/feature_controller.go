package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/services"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

// FeatureController serves the feature-tag reference list. Listing is public;
// create and delete sit behind the admin middleware.
type FeatureController struct {
	featureService services.FeatureService
}

func NewFeatureController(fs services.FeatureService) *FeatureController {
	return &FeatureController{featureService: fs}
}

// ----------------------------------------------------------------
// GET /api/v1/features
// ----------------------------------------------------------------
func (c *FeatureController) ListFeaturesHandler(w http.ResponseWriter, r *http.Request) {
	features, err := c.featureService.ListFeatures(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, features)
}

// ----------------------------------------------------------------
// POST /api/v1/admin/features
// ----------------------------------------------------------------
func (c *FeatureController) CreateFeatureHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateFeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Feature name required", err.Error(),
		)
		return
	}

	feature, err := c.featureService.CreateFeature(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, feature)
}

// ----------------------------------------------------------------
// DELETE /api/v1/admin/features/{id}
// ----------------------------------------------------------------
func (c *FeatureController) DeleteFeatureHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid feature ID", nil,
		)
		return
	}

	if err := c.featureService.DeleteFeature(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
