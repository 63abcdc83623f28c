package handlers

import (
	"net/http"
	"os"

	"github.com/m1z23r/drift/pkg/drift"
)

const apiVersion = "1.0.0"

type HealthHandler struct {
	backend string
	logoDir string
}

func NewHealthHandler(backend, logoDir string) *HealthHandler {
	return &HealthHandler{backend: backend, logoDir: logoDir}
}

func (h *HealthHandler) Root(c *drift.Context) {
	_ = c.JSON(http.StatusOK, map[string]string{
		"service": "AI Logo Generator API",
		"status":  "running",
		"version": apiVersion,
	})
}

func (h *HealthHandler) Health(c *drift.Context) {
	dirExists := false
	if info, err := os.Stat(h.logoDir); err == nil && info.IsDir() {
		dirExists = true
	}

	_ = c.JSON(http.StatusOK, map[string]any{
		"status":          "healthy",
		"backend":         h.backend,
		"version":         apiVersion,
		"logo_dir":        h.logoDir,
		"logo_dir_exists": dirExists,
	})
}
