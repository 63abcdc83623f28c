package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/Jeffery-byte/AI-logo-generator/internal/prompt"
	"github.com/Jeffery-byte/AI-logo-generator/pkg/dto"
	"github.com/patrickmn/go-cache"
)

const (
	analysisCacheTTL = time.Hour
	cacheSweep       = 10 * time.Minute
)

// AnalysisService recommends colors and styles for a business, caching
// results per business profile for an hour.
type AnalysisService struct {
	cache *cache.Cache
}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{cache: cache.New(analysisCacheTTL, cacheSweep)}
}

func (s *AnalysisService) Analyze(biz dto.BusinessInfo) (*dto.AnalyzeBusinessResponse, error) {
	key := analysisCacheKey(biz)

	if cached, ok := s.cache.Get(key); ok {
		resp := cached.(dto.AnalyzeBusinessResponse)
		resp.Cached = true
		return &resp, nil
	}

	analysis := prompt.Analyze(prompt.BusinessContext{
		Name:           biz.Name,
		Industry:       biz.Industry,
		Description:    biz.Description,
		TargetAudience: biz.TargetAudience,
	})

	resp := dto.AnalyzeBusinessResponse{
		RecommendedColors: analysis.RecommendedColors,
		RecommendedStyle:  analysis.RecommendedStyle,
		StyleConfidence:   analysis.StyleConfidence,
		BusinessKeywords:  analysis.BusinessKeywords,
	}

	s.cache.Set(key, resp, cache.DefaultExpiration)
	return &resp, nil
}

func analysisCacheKey(biz dto.BusinessInfo) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(biz.Name))))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(strings.TrimSpace(biz.Industry))))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(strings.TrimSpace(biz.Description))))
	return "analysis:" + hex.EncodeToString(h.Sum(nil))
}
