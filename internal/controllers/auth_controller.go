package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/services"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(as services.AuthService) *AuthController {
	return &AuthController{authService: as}
}

// ----------------------------------------------------------------
// POST /api/v1/auth/login
// ----------------------------------------------------------------
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Email and password required", err.Error(),
		)
		return
	}

	resp, err := c.authService.Login(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
