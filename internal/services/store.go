package services

import (
	"context"
	"errors"

	"github.com/Jeffery-byte/AI-logo-generator/internal/models"
)

var (
	ErrLogoNotFound        = errors.New("logo not found")
	ErrUnsupportedFormat   = errors.New("unsupported download format")
	ErrAllVariationsFailed = errors.New("all logo variations failed to generate")
)

// LogoStore persists generation records and feedback. Backed by Postgres
// when DATABASE_URL is configured, by an in-memory store otherwise.
type LogoStore interface {
	SaveGeneration(ctx context.Context, gen *models.LogoGeneration) error
	ListRecent(ctx context.Context, limit int) ([]models.LogoGeneration, error)
	GetByID(ctx context.Context, id string) (*models.LogoGeneration, error)
	SaveFeedback(ctx context.Context, fb *models.LogoFeedback) error
	Stats(ctx context.Context) (*models.UsageStats, error)
}
