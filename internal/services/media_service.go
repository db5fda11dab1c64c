package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/drilathedev/virtual-view-estate/internal/config"
	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

// MediaService stores uploaded files under the media root and hands back the
// publicly resolvable URL the catalog references.
type MediaService interface {
	SaveUpload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (*dtos.UploadResponse, error)
}

type mediaService struct {
	cfg *config.Config
}

func NewMediaService(cfg *config.Config) MediaService {
	return &mediaService{cfg: cfg}
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
var safeFolder = regexp.MustCompile(`^[a-z0-9-]+$`)

// SaveUpload sanitizes the client filename, prefixes it with a millisecond
// timestamp and streams the body to disk under the requested folder.
func (s *mediaService) SaveUpload(_ context.Context, folder, filename, contentType string, size int64, r io.Reader) (*dtos.UploadResponse, error) {
	if size > s.cfg.MaxUploadBytes {
		return nil, utils.ErrUploadTooLarge
	}
	if !safeFolder.MatchString(folder) {
		folder = "uploads"
	}

	safeName := unsafeNameChars.ReplaceAllString(filepath.Base(filename), "_")
	storedName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), safeName)

	dir := filepath.Join(s.cfg.MediaDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, storedName))
	if err != nil {
		return nil, fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(r, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("write media file: %w", err)
	}
	if written > s.cfg.MaxUploadBytes {
		_ = os.Remove(dst.Name())
		return nil, utils.ErrUploadTooLarge
	}

	utils.Logger.Infof("stored upload %s/%s (%d bytes, %s)", folder, storedName, written, contentType)

	return &dtos.UploadResponse{
		URL:         fmt.Sprintf("%s/media/%s/%s", s.cfg.AppUrl, folder, storedName),
		ContentType: normalizeContentType(contentType),
		Size:        written,
	}, nil
}

func normalizeContentType(ct string) string {
	ct = strings.TrimSpace(strings.ToLower(ct))
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}
