package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBasePrompt(t *testing.T) {
	prompts := Build(BusinessContext{Name: "Acme Corp"}, "modern", []string{"#3B82F6"}, 1)
	require.Len(t, prompts, 1)

	assert.Contains(t, prompts[0], "Acme Corp")
	assert.Contains(t, prompts[0], "minimalist logo")
	assert.Contains(t, prompts[0], "blue colors")
	assert.Contains(t, prompts[0], "white background")
}

func TestBuildSanitizesAmpersand(t *testing.T) {
	prompts := Build(BusinessContext{Name: "Fish & Chips"}, "modern", nil, 1)
	require.Len(t, prompts, 1)

	assert.Contains(t, prompts[0], "Fish and Chips")
	assert.NotContains(t, prompts[0], "&")
}

func TestBuildUsesFirstTwoColors(t *testing.T) {
	colors := []string{"#EF4444", "#10B981", "#F59E0B"}
	prompts := Build(BusinessContext{Name: "Acme"}, "modern", colors, 1)

	assert.Contains(t, prompts[0], "red and green colors")
	assert.NotContains(t, prompts[0], "orange")
}

func TestBuildUnknownColorFallsBack(t *testing.T) {
	prompts := Build(BusinessContext{Name: "Acme"}, "modern", []string{"#123456"}, 1)
	assert.Contains(t, prompts[0], "blue colors")
}

func TestBuildUnknownStyleFallsBack(t *testing.T) {
	prompts := Build(BusinessContext{Name: "Acme"}, "cyberpunk", nil, 1)
	assert.Contains(t, prompts[0], "minimalist logo")
}

func TestBuildVariationsDiffer(t *testing.T) {
	prompts := Build(BusinessContext{Name: "Acme"}, "modern", nil, 3)
	require.Len(t, prompts, 3)

	assert.NotContains(t, prompts[0], "gradients")
	assert.Contains(t, prompts[1], "with subtle gradients and modern typography")
	assert.Contains(t, prompts[2], "featuring clean geometric shapes")
}

func TestBuildApproachesWrapAround(t *testing.T) {
	prompts := Build(BusinessContext{Name: "Acme"}, "modern", nil, 9)
	require.Len(t, prompts, 9)

	// Nine variations exhaust the approach list and wrap to the first.
	assert.Equal(t, prompts[0], prompts[8])
}

func TestBuildDescriptionContext(t *testing.T) {
	biz := BusinessContext{
		Name:        "Acme",
		Description: "a software platform for developers",
	}
	prompts := Build(biz, "modern", nil, 1)

	assert.Contains(t, prompts[0], "tech-inspired elements")
}

func TestBuildUnmatchedDescriptionEchoed(t *testing.T) {
	biz := BusinessContext{
		Name:        "Acme",
		Description: "handmade alpaca wool scarves",
	}
	prompts := Build(biz, "modern", nil, 1)

	assert.Contains(t, prompts[0], "reflecting the essence of handmade alpaca wool scarves")
}

func TestBuildIndustryGuardSkipsDuplicateTheme(t *testing.T) {
	biz := BusinessContext{
		Name:        "Acme",
		Industry:    "technology",
		Description: "a software platform",
	}
	prompts := Build(biz, "modern", nil, 1)

	// The description already contributed the tech phrase, so the industry
	// phrase is suppressed.
	assert.Contains(t, prompts[0], "tech-inspired elements")
	assert.NotContains(t, prompts[0], "modern technology aesthetics")
}

func TestBuildIndustryContextWithoutGuard(t *testing.T) {
	biz := BusinessContext{Name: "Acme", Industry: "technology"}
	prompts := Build(biz, "modern", nil, 1)

	assert.Contains(t, prompts[0], "modern technology aesthetics")
}

func TestBuildIndustryFirstMatchWins(t *testing.T) {
	biz := BusinessContext{Name: "Acme", Industry: "food technology"}
	prompts := Build(biz, "modern", nil, 1)

	// Only the first matching industry rule contributes a phrase.
	assert.Contains(t, prompts[0], "modern technology aesthetics")
	assert.NotContains(t, prompts[0], "appetizing and welcoming elements")
}

func TestBuildAudienceContext(t *testing.T) {
	biz := BusinessContext{
		Name:           "Acme",
		TargetAudience: "young professionals and millennials",
	}
	prompts := Build(biz, "modern", nil, 2)

	joined := strings.Join(prompts, " ")
	assert.Contains(t, joined, "younger demographics")
}

func TestBuildTruncatesLongPrompts(t *testing.T) {
	biz := BusinessContext{
		Name:        strings.Repeat("Very Long Business Name ", 20),
		Description: "luxury premium exclusive goods",
	}
	prompts := Build(biz, "elegant", []string{"#8B5CF6", "#7C3AED"}, 4)

	for _, p := range prompts {
		assert.LessOrEqual(t, len(p), maxLength+3)
		if len(p) > maxLength {
			assert.True(t, strings.HasSuffix(p, "..."))
		}
	}
}

func TestBuildNormalizesWhitespace(t *testing.T) {
	prompts := Build(BusinessContext{Name: "  Acme   Corp  "}, "modern", nil, 1)
	assert.NotContains(t, prompts[0], "  ")
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "blue", ColorName("#3B82F6"))
	assert.Equal(t, "blue", ColorName("#3b82f6"))
	assert.Equal(t, "deep pink", ColorName("#BE185D"))
	assert.Equal(t, "blue", ColorName("#ABCDEF"))
}
