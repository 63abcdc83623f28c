package services

import (
	"context"
	"sync"

	"github.com/Jeffery-byte/AI-logo-generator/internal/models"
)

// MemoryLogoStore keeps generation records in memory. Used when no
// database is configured; records are lost on restart.
type MemoryLogoStore struct {
	mu       sync.RWMutex
	gens     []models.LogoGeneration
	byID     map[string]int
	feedback []models.LogoFeedback
}

func NewMemoryLogoStore() *MemoryLogoStore {
	return &MemoryLogoStore{byID: map[string]int{}}
}

func (s *MemoryLogoStore) SaveGeneration(_ context.Context, gen *models.LogoGeneration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[gen.ID] = len(s.gens)
	s.gens = append(s.gens, *gen)
	return nil
}

func (s *MemoryLogoStore) ListRecent(_ context.Context, limit int) ([]models.LogoGeneration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit > len(s.gens) {
		limit = len(s.gens)
	}

	// Newest first.
	out := make([]models.LogoGeneration, 0, limit)
	for i := len(s.gens) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.gens[i])
	}
	return out, nil
}

func (s *MemoryLogoStore) GetByID(_ context.Context, id string) (*models.LogoGeneration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, ErrLogoNotFound
	}

	gen := s.gens[idx]
	return &gen, nil
}

func (s *MemoryLogoStore) SaveFeedback(_ context.Context, fb *models.LogoFeedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feedback = append(s.feedback, *fb)
	return nil
}

func (s *MemoryLogoStore) Stats(_ context.Context) (*models.UsageStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &models.UsageStats{
		TotalLogos:    int64(len(s.gens)),
		PopularStyles: map[string]int64{},
	}

	var totalMS int64
	for _, gen := range s.gens {
		totalMS += gen.GenerationMS
		stats.PopularStyles[gen.StyleType]++
	}
	if len(s.gens) > 0 {
		stats.AverageGenerationMS = float64(totalMS) / float64(len(s.gens))
	}

	var totalRating int
	for _, fb := range s.feedback {
		totalRating += fb.Rating
	}
	if len(s.feedback) > 0 {
		stats.AverageRating = float64(totalRating) / float64(len(s.feedback))
	}

	return stats, nil
}
