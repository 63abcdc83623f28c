package models

import (
	"time"

	"github.com/google/uuid"
)

type LogoGeneration struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"business_name"`
	Industry     string    `json:"industry"`
	StyleType    string    `json:"style_type"`
	Colors       []string  `json:"colors"`
	Prompt       string    `json:"prompt"`
	ImagePath    string    `json:"image_path"`
	Model        string    `json:"model"`
	GenerationMS int64     `json:"generation_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

type LogoFeedback struct {
	ID        uuid.UUID `json:"id"`
	LogoID    string    `json:"logo_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"feedback_text,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UsageStats struct {
	TotalLogos          int64            `json:"total_logos"`
	AverageGenerationMS float64          `json:"average_generation_ms"`
	PopularStyles       map[string]int64 `json:"popular_styles"`
	AverageRating       float64          `json:"average_rating"`
}
