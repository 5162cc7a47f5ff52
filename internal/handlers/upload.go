package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/lookbook/internal/config"
)

// UploadHandler accepts image blobs and returns publicly fetchable URLs.
// Files land on local disk under the configured upload directory, which the
// server exposes at /uploads.
type UploadHandler struct {
	cfg *config.Config
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

var allowedUploadFolders = map[string]bool{
	"main":        true,
	"gallery":     true,
	"collections": true,
	"content":     true,
}

// UploadImage stores one image and returns its URL.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	folder := c.FormValue("folder", "main")
	if !allowedUploadFolders[folder] {
		return fiber.NewError(fiber.StatusBadRequest, "invalid folder")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}

	name := sanitizeFilename(file.Filename)
	filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), name)

	dir := filepath.Join(h.cfg.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/uploads/%s/%s", strings.TrimRight(h.cfg.PublicBaseURL, "/"), folder, filename)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"url": url}})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}
