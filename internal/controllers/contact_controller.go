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

// ContactController relays contact-form and property-inquiry submissions.
// Payloads are fully validated before any network call is made.
type ContactController struct {
	notifyService  services.NotifyService
	listingService services.ListingService
}

func NewContactController(ns services.NotifyService, ls services.ListingService) *ContactController {
	return &ContactController{notifyService: ns, listingService: ls}
}

// ----------------------------------------------------------------
// POST /api/v1/contact
// ----------------------------------------------------------------
func (c *ContactController) SubmitContactHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ContactRequest
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

	if err := c.notifyService.SendContactMessage(r.Context(), req); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NotifyResponse{Success: true})
}

// ----------------------------------------------------------------
// POST /api/v1/properties/{id}/inquiry
// ----------------------------------------------------------------
func (c *ContactController) SubmitInquiryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property ID", nil,
		)
		return
	}

	var req dtos.InquiryRequest
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

	property, svcErr := c.listingService.GetProperty(r.Context(), id)
	if svcErr != nil {
		respondServiceError(w, svcErr)
		return
	}

	if err := c.notifyService.SendPropertyInquiry(r.Context(), req, property); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NotifyResponse{Success: true})
}
