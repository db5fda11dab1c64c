package utils

import (
	"errors"
	"net/http"
)

// Sentinel errors for the service layer. Controllers branch with errors.Is.
var (
	ErrNotFound           = errors.New("not_found")
	ErrLoadFailed         = errors.New("load_failed")
	ErrWriteTimeout       = errors.New("write_timeout")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrNotifierDisabled   = errors.New("notifier_disabled")

	// External delivery failures (Telegram, SendGrid, geocoders).
	ErrExternalServiceFailure = errors.New("external_service_failure")
	ErrUploadTooLarge         = errors.New("upload_too_large")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
