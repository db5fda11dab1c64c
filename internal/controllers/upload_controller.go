package controllers

import (
	"net/http"

	"github.com/drilathedev/virtual-view-estate/internal/services"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

// UploadController accepts admin media uploads (multipart form, one file per
// request) and returns the public URL to reference from a listing.
type UploadController struct {
	mediaService   services.MediaService
	maxUploadBytes int64
}

func NewUploadController(ms services.MediaService, maxUploadBytes int64) *UploadController {
	return &UploadController{mediaService: ms, maxUploadBytes: maxUploadBytes}
}

// ----------------------------------------------------------------
// POST /api/v1/admin/uploads
// ----------------------------------------------------------------
func (c *UploadController) UploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadBytes+1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Expected a multipart form with a \"file\" field", nil, err,
		)
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	contentType := header.Header.Get("Content-Type")

	resp, svcErr := c.mediaService.SaveUpload(r.Context(), folder, header.Filename, contentType, header.Size, file)
	if svcErr != nil {
		respondServiceError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}
