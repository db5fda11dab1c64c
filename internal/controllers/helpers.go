package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

var validate = validator.New()

// respondServiceError maps service-layer sentinel errors onto the HTTP
// contract: not-found, load-failed, timeout and relay failures each keep a
// distinct code so the client never collapses them.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Not found", nil)
	case errors.Is(err, utils.ErrLoadFailed):
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeLoadFailed, "Failed to load data", nil, err)
	case errors.Is(err, utils.ErrWriteTimeout):
		utils.RespondErrorWithCode(w, http.StatusGatewayTimeout, utils.ErrCodeWriteTimeout, "The operation timed out; it may still complete", nil, err)
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil)
	case errors.Is(err, utils.ErrNotifierDisabled):
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeExternalServiceFailure, "Messaging is not configured", nil)
	case errors.Is(err, utils.ErrExternalServiceFailure):
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeExternalServiceFailure, "Failed to deliver message", nil, err)
	case errors.Is(err, utils.ErrUploadTooLarge):
		utils.RespondErrorWithCode(w, http.StatusRequestEntityTooLarge, utils.ErrCodeUploadTooLarge, "File exceeds the upload limit", nil)
	default:
		utils.HandleAppError(w, err)
	}
}
