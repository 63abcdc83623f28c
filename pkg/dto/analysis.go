package dto

import (
	"errors"
	"strings"
)

type AnalyzeBusinessRequest struct {
	Business BusinessInfo `json:"business"`
}

func (r *AnalyzeBusinessRequest) Validate() error {
	if strings.TrimSpace(r.Business.Name) == "" {
		return errors.New("business name is required")
	}
	if len(r.Business.Name) > maxNameLength {
		return errors.New("business name must be at most 50 characters")
	}
	if strings.TrimSpace(r.Business.Industry) == "" {
		return errors.New("industry is required")
	}
	if len(r.Business.Description) > maxDescriptionLength {
		return errors.New("description must be at most 200 characters")
	}
	return nil
}

type AnalyzeBusinessResponse struct {
	RecommendedColors []string       `json:"recommended_colors"`
	RecommendedStyle  string         `json:"recommended_style"`
	StyleConfidence   map[string]int `json:"style_confidence"`
	BusinessKeywords  []string       `json:"business_keywords"`
	Cached            bool           `json:"cached"`
}
