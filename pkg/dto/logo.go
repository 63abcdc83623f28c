package dto

import (
	"errors"
	"regexp"
	"strings"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 200
	maxAudienceLength    = 100
	maxPaletteSize       = 3
	maxVariations        = 6
	defaultVariations    = 3
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var validStyles = map[string]bool{
	"modern":       true,
	"vintage":      true,
	"bold":         true,
	"elegant":      true,
	"playful":      true,
	"professional": true,
}

type BusinessInfo struct {
	Name           string `json:"name"`
	Industry       string `json:"industry"`
	Description    string `json:"description"`
	TargetAudience string `json:"target_audience"`
}

type LogoStyle struct {
	StyleType      string   `json:"style_type"`
	ColorPalette   []string `json:"color_palette"`
	FontPreference string   `json:"font_preference,omitempty"`
}

type GenerateLogosRequest struct {
	Business   BusinessInfo `json:"business"`
	Style      LogoStyle    `json:"style"`
	Variations int          `json:"variations"`
}

// Validate checks field constraints and fills in defaults. It mutates the
// request: a zero variation count becomes the default.
func (r *GenerateLogosRequest) Validate() error {
	name := strings.TrimSpace(r.Business.Name)
	if name == "" {
		return errors.New("business name is required")
	}
	if len(name) > maxNameLength {
		return errors.New("business name must be at most 50 characters")
	}
	if strings.TrimSpace(r.Business.Industry) == "" {
		return errors.New("industry is required")
	}
	if len(r.Business.Description) > maxDescriptionLength {
		return errors.New("description must be at most 200 characters")
	}
	if len(r.Business.TargetAudience) > maxAudienceLength {
		return errors.New("target audience must be at most 100 characters")
	}

	if !validStyles[r.Style.StyleType] {
		return errors.New("style_type must be one of: modern, vintage, bold, elegant, playful, professional")
	}
	if len(r.Style.ColorPalette) == 0 {
		return errors.New("color_palette must contain at least one color")
	}
	if len(r.Style.ColorPalette) > maxPaletteSize {
		return errors.New("color_palette must contain at most 3 colors")
	}
	for _, c := range r.Style.ColorPalette {
		if !hexColorPattern.MatchString(c) {
			return errors.New("color_palette entries must be hex colors like #3b82f6")
		}
	}

	if r.Variations == 0 {
		r.Variations = defaultVariations
	}
	if r.Variations < 1 || r.Variations > maxVariations {
		return errors.New("variations must be between 1 and 6")
	}

	return nil
}

type LogoResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ImageURL         string   `json:"image_url"`
	LocalPath        string   `json:"local_path"`
	PromptUsed       string   `json:"prompt_used"`
	StyleType        string   `json:"style_type"`
	ColorPalette     []string `json:"color_palette"`
	Model            string   `json:"model"`
	GenerationTimeMS int64    `json:"generation_time_ms"`
	ConfidenceScore  float64  `json:"confidence_score"`
	CreatedAt        string   `json:"created_at"`
}

type GenerationStats struct {
	Requested       int    `json:"requested"`
	Generated       int    `json:"generated"`
	Failed          int    `json:"failed"`
	TotalTimeMS     int64  `json:"total_time_ms"`
	AverageMS       int64  `json:"average_ms"`
	Model           string `json:"model"`
	RealAIGenerated bool   `json:"real_ai_generated"`
}

type GenerateLogosResponse struct {
	Logos []LogoResponse  `json:"logos"`
	Stats GenerationStats `json:"stats"`
}

type LogoHistoryItem struct {
	ID           string   `json:"id"`
	BusinessName string   `json:"business_name"`
	StyleType    string   `json:"style_type"`
	ColorPalette []string `json:"color_palette"`
	ImageURL     string   `json:"image_url"`
	Model        string   `json:"model"`
	Rating       *int     `json:"rating,omitempty"`
	CreatedAt    string   `json:"created_at"`
}
