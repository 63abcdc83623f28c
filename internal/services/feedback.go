package services

import (
	"context"
	"time"

	"github.com/Jeffery-byte/AI-logo-generator/internal/models"
	"github.com/Jeffery-byte/AI-logo-generator/pkg/dto"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const feedbackCacheTTL = 24 * time.Hour

// FeedbackService records user ratings for generated logos. A short-lived
// cache mirror keeps the latest rating per logo available without a store
// round trip.
type FeedbackService struct {
	store  LogoStore
	recent *cache.Cache
}

func NewFeedbackService(store LogoStore) *FeedbackService {
	return &FeedbackService{
		store:  store,
		recent: cache.New(feedbackCacheTTL, cacheSweep),
	}
}

func (s *FeedbackService) Submit(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if _, err := s.store.GetByID(ctx, req.LogoID); err != nil {
		return nil, err
	}

	fb := &models.LogoFeedback{
		ID:        uuid.New(),
		LogoID:    req.LogoID,
		Rating:    req.Rating,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.SaveFeedback(ctx, fb); err != nil {
		return nil, err
	}

	s.recent.Set("feedback:"+req.LogoID, req.Rating, cache.DefaultExpiration)

	return &dto.FeedbackResponse{
		ID:        fb.ID.String(),
		LogoID:    fb.LogoID,
		Rating:    fb.Rating,
		CreatedAt: fb.CreatedAt.Format(time.RFC3339),
	}, nil
}

// LatestRating returns the most recent cached rating for a logo.
func (s *FeedbackService) LatestRating(logoID string) (int, bool) {
	v, ok := s.recent.Get("feedback:" + logoID)
	if !ok {
		return 0, false
	}
	return v.(int), true
}
