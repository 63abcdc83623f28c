package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/Jeffery-byte/AI-logo-generator/internal/services"
	"github.com/Jeffery-byte/AI-logo-generator/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type LogoHandler struct {
	service  LogoServiceInterface
	feedback FeedbackServiceInterface
}

func NewLogoHandler(service LogoServiceInterface, feedback FeedbackServiceInterface) *LogoHandler {
	return &LogoHandler{service: service, feedback: feedback}
}

func (h *LogoHandler) Generate(c *drift.Context) {
	var req dto.GenerateLogosRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrAllVariationsFailed) {
			c.BadGateway("Logo generation backend is unavailable")
			return
		}
		c.InternalServerError("Failed to generate logos")
		return
	}

	_ = c.JSON(http.StatusOK, resp)
}

func (h *LogoHandler) History(c *drift.Context) {
	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.BadRequest("limit must be a positive integer")
			return
		}
		limit = parsed
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	items, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		c.InternalServerError("Failed to load logo history")
		return
	}
	if items == nil {
		items = []dto.LogoHistoryItem{}
	}
	for i := range items {
		if rating, ok := h.feedback.LatestRating(items[i].ID); ok {
			items[i].Rating = &rating
		}
	}

	_ = c.JSON(http.StatusOK, map[string]any{
		"logos": items,
		"count": len(items),
	})
}

func (h *LogoHandler) Download(c *drift.Context) {
	logoID := c.Param("logoId")
	format := c.Param("format")

	data, contentType, filename, err := h.service.LoadImage(c.Request.Context(), logoID, format)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedFormat):
			c.BadRequest("Format must be png, jpg or jpeg")
		case errors.Is(err, services.ErrLogoNotFound):
			c.NotFound("Logo not found")
		default:
			c.InternalServerError("Failed to load logo")
		}
		return
	}

	c.Response.Header().Set("Content-Type", contentType)
	c.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Response.WriteHeader(http.StatusOK)
	_, _ = c.Response.Write(data)
	c.Abort()
}

func (h *LogoHandler) ServeImage(c *drift.Context) {
	data, contentType, err := h.service.ReadFile(c.Param("filename"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.NotFound("Image not found")
			return
		}
		c.BadRequest("Invalid image filename")
		return
	}

	c.Response.Header().Set("Content-Type", contentType)
	c.Response.Header().Set("Cache-Control", "public, max-age=86400")
	c.Response.WriteHeader(http.StatusOK)
	_, _ = c.Response.Write(data)
	c.Abort()
}

func (h *LogoHandler) Statistics(c *drift.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		c.InternalServerError("Failed to load statistics")
		return
	}

	_ = c.JSON(http.StatusOK, stats)
}
