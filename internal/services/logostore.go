package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Jeffery-byte/AI-logo-generator/internal/database"
	"github.com/Jeffery-byte/AI-logo-generator/internal/models"
	"github.com/jackc/pgx/v5"
)

// PostgresLogoStore implements LogoStore on top of Postgres.
type PostgresLogoStore struct {
	db *database.DB
}

func NewPostgresLogoStore(db *database.DB) *PostgresLogoStore {
	return &PostgresLogoStore{db: db}
}

func (s *PostgresLogoStore) SaveGeneration(ctx context.Context, gen *models.LogoGeneration) error {
	colors, err := json.Marshal(gen.Colors)
	if err != nil {
		return fmt.Errorf("failed to encode colors: %w", err)
	}

	query := `
		INSERT INTO logo_generations (id, business_name, industry, style_type, colors, prompt, image_path, model, generation_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = s.db.Pool.Exec(ctx, query,
		gen.ID, gen.BusinessName, gen.Industry, gen.StyleType, colors,
		gen.Prompt, gen.ImagePath, gen.Model, gen.GenerationMS, gen.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save logo generation: %w", err)
	}

	return nil
}

func (s *PostgresLogoStore) ListRecent(ctx context.Context, limit int) ([]models.LogoGeneration, error) {
	query := `
		SELECT id, business_name, industry, style_type, colors, prompt, image_path, model, generation_ms, created_at
		FROM logo_generations
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := s.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list logo generations: %w", err)
	}
	defer rows.Close()

	var gens []models.LogoGeneration
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		gens = append(gens, *gen)
	}

	return gens, rows.Err()
}

func (s *PostgresLogoStore) GetByID(ctx context.Context, id string) (*models.LogoGeneration, error) {
	query := `
		SELECT id, business_name, industry, style_type, colors, prompt, image_path, model, generation_ms, created_at
		FROM logo_generations
		WHERE id = $1
	`

	row := s.db.Pool.QueryRow(ctx, query, id)
	gen, err := scanGeneration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogoNotFound
		}
		return nil, err
	}

	return gen, nil
}

func (s *PostgresLogoStore) SaveFeedback(ctx context.Context, fb *models.LogoFeedback) error {
	query := `
		INSERT INTO logo_feedback (id, logo_id, rating, feedback_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Pool.Exec(ctx, query, fb.ID, fb.LogoID, fb.Rating, fb.Text, fb.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	return nil
}

func (s *PostgresLogoStore) Stats(ctx context.Context) (*models.UsageStats, error) {
	stats := &models.UsageStats{PopularStyles: map[string]int64{}}

	query := `SELECT COUNT(*), COALESCE(AVG(generation_ms), 0) FROM logo_generations`
	if err := s.db.Pool.QueryRow(ctx, query).Scan(&stats.TotalLogos, &stats.AverageGenerationMS); err != nil {
		return nil, fmt.Errorf("failed to load generation stats: %w", err)
	}

	query = `SELECT style_type, COUNT(*) FROM logo_generations GROUP BY style_type ORDER BY COUNT(*) DESC`
	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load style stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var style string
		var count int64
		if err := rows.Scan(&style, &count); err != nil {
			return nil, fmt.Errorf("failed to scan style stats: %w", err)
		}
		stats.PopularStyles[style] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query = `SELECT COALESCE(AVG(rating), 0) FROM logo_feedback`
	if err := s.db.Pool.QueryRow(ctx, query).Scan(&stats.AverageRating); err != nil {
		return nil, fmt.Errorf("failed to load rating stats: %w", err)
	}

	return stats, nil
}

func scanGeneration(row pgx.Row) (*models.LogoGeneration, error) {
	var gen models.LogoGeneration
	var colors []byte

	err := row.Scan(&gen.ID, &gen.BusinessName, &gen.Industry, &gen.StyleType, &colors,
		&gen.Prompt, &gen.ImagePath, &gen.Model, &gen.GenerationMS, &gen.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("failed to scan logo generation: %w", err)
	}

	if len(colors) > 0 {
		if err := json.Unmarshal(colors, &gen.Colors); err != nil {
			return nil, fmt.Errorf("failed to decode colors: %w", err)
		}
	}

	return &gen, nil
}
