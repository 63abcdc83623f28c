package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS logo_generations (
		id VARCHAR(64) PRIMARY KEY,
		business_name VARCHAR(100) NOT NULL,
		industry VARCHAR(50) NOT NULL,
		style_type VARCHAR(20) NOT NULL,
		colors JSONB NOT NULL DEFAULT '[]',
		prompt TEXT NOT NULL,
		image_path VARCHAR(500) NOT NULL,
		model VARCHAR(100) NOT NULL,
		generation_ms BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS logo_feedback (
		id UUID PRIMARY KEY,
		logo_id VARCHAR(64) NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		feedback_text TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_logo_generations_created_at ON logo_generations(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_logo_generations_style_type ON logo_generations(style_type)`,
	`CREATE INDEX IF NOT EXISTS idx_logo_feedback_logo_id ON logo_feedback(logo_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
