package services

import (
	"testing"

	"github.com/Jeffery-byte/AI-logo-generator/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisServiceRecommends(t *testing.T) {
	svc := NewAnalysisService()

	resp, err := svc.Analyze(dto.BusinessInfo{
		Name:        "CloudTech Solutions",
		Industry:    "technology",
		Description: "modern software platform for startups",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RecommendedColors)
	assert.NotEmpty(t, resp.RecommendedStyle)
	assert.False(t, resp.Cached)
}

func TestAnalysisServiceCachesByProfile(t *testing.T) {
	svc := NewAnalysisService()
	biz := dto.BusinessInfo{Name: "Acme", Industry: "finance"}

	first, err := svc.Analyze(biz)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.Analyze(biz)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.RecommendedStyle, second.RecommendedStyle)
	assert.Equal(t, first.RecommendedColors, second.RecommendedColors)

	other, err := svc.Analyze(dto.BusinessInfo{Name: "Acme", Industry: "health"})
	require.NoError(t, err)
	assert.False(t, other.Cached)
}

func TestAnalysisServiceCacheKeyIgnoresCase(t *testing.T) {
	svc := NewAnalysisService()

	_, err := svc.Analyze(dto.BusinessInfo{Name: "Acme Corp"})
	require.NoError(t, err)

	resp, err := svc.Analyze(dto.BusinessInfo{Name: "  ACME CORP "})
	require.NoError(t, err)
	assert.True(t, resp.Cached)
}
