package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/middleware"
	"github.com/drilathedev/virtual-view-estate/internal/services"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

// AdminPropertyController is the write side of the catalog. Every handler runs
// behind the admin middleware, so a request reaching here carries a verified
// allowlisted email in its context.
type AdminPropertyController struct {
	propertyService services.PropertyService
}

func NewAdminPropertyController(ps services.PropertyService) *AdminPropertyController {
	return &AdminPropertyController{propertyService: ps}
}

// ----------------------------------------------------------------
// POST /api/v1/admin/properties
// ----------------------------------------------------------------
func (c *AdminPropertyController) CreatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing or malformed fields", err.Error(),
		)
		return
	}

	p, err := c.propertyService.CreateProperty(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.Logger.Infof("property %s created by %s", p.ID, adminEmail(r))
	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// ----------------------------------------------------------------
// PATCH /api/v1/admin/properties/{id}
// ----------------------------------------------------------------
func (c *AdminPropertyController) UpdatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property ID", nil,
		)
		return
	}

	var req dtos.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Malformed fields", err.Error(),
		)
		return
	}

	p, svcErr := c.propertyService.UpdateProperty(r.Context(), id, req)
	if svcErr != nil {
		respondServiceError(w, svcErr)
		return
	}

	utils.Logger.Infof("property %s updated by %s", id, adminEmail(r))
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// ----------------------------------------------------------------
// DELETE /api/v1/admin/properties/{id}
// ----------------------------------------------------------------
func (c *AdminPropertyController) DeletePropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property ID", nil,
		)
		return
	}

	if err := c.propertyService.DeleteProperty(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.Logger.Infof("property %s deleted by %s", id, adminEmail(r))
	w.WriteHeader(http.StatusNoContent)
}

func adminEmail(r *http.Request) string {
	if email, ok := r.Context().Value(middleware.ContextKeyAdminEmail).(string); ok {
		return email
	}
	return "unknown"
}
