package handlers

import (
	"net/http"

	"github.com/Jeffery-byte/AI-logo-generator/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AnalysisHandler struct {
	service AnalysisServiceInterface
}

func NewAnalysisHandler(service AnalysisServiceInterface) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

func (h *AnalysisHandler) Analyze(c *drift.Context) {
	var req dto.AnalyzeBusinessRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	resp, err := h.service.Analyze(req.Business)
	if err != nil {
		c.InternalServerError("Failed to analyze business")
		return
	}

	_ = c.JSON(http.StatusOK, resp)
}
