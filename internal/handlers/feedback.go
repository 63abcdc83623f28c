package handlers

import (
	"errors"
	"net/http"

	"github.com/Jeffery-byte/AI-logo-generator/internal/services"
	"github.com/Jeffery-byte/AI-logo-generator/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type FeedbackHandler struct {
	service FeedbackServiceInterface
}

func NewFeedbackHandler(service FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) Submit(c *drift.Context) {
	var req dto.FeedbackRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrLogoNotFound) {
			c.NotFound("Logo not found")
			return
		}
		c.InternalServerError("Failed to save feedback")
		return
	}

	_ = c.JSON(http.StatusCreated, resp)
}
