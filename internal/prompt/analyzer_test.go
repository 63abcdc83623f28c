package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeIndustryPalette(t *testing.T) {
	analysis := Analyze(BusinessContext{Name: "Acme", Industry: "Healthcare"})
	assert.Equal(t, []string{"#00a86b", "#228b22", "#32cd32", "#87ceeb"}, analysis.RecommendedColors)
}

func TestAnalyzeUnknownIndustryDefaultPalette(t *testing.T) {
	analysis := Analyze(BusinessContext{Name: "Acme", Industry: "aerospace"})
	assert.Equal(t, defaultPalette, analysis.RecommendedColors)
}

func TestAnalyzeStyleFromKeywords(t *testing.T) {
	analysis := Analyze(BusinessContext{
		Name:        "FitPower Gym",
		Description: "sports and fitness training with raw energy",
	})

	assert.Equal(t, "bold", analysis.RecommendedStyle)
	assert.Equal(t, 3, analysis.StyleConfidence["bold"])
}

func TestAnalyzeNoKeywordsDefaultsToModern(t *testing.T) {
	analysis := Analyze(BusinessContext{Name: "Plain Business"})
	assert.Equal(t, "modern", analysis.RecommendedStyle)
}

func TestAnalyzeTieBreakIsDeterministic(t *testing.T) {
	// One keyword hit each for modern and vintage; modern wins the tie.
	biz := BusinessContext{Name: "Heritage Tech", Description: "heritage tech goods"}

	first := Analyze(biz)
	require.Equal(t, first.StyleConfidence["modern"], first.StyleConfidence["vintage"])

	for i := 0; i < 10; i++ {
		assert.Equal(t, "modern", Analyze(biz).RecommendedStyle)
	}
}

func TestAnalyzeKeywordsCapped(t *testing.T) {
	analysis := Analyze(BusinessContext{
		Name:        "one two three four five",
		Description: "six seven eight nine ten eleven twelve",
	})

	assert.Len(t, analysis.BusinessKeywords, 10)
	assert.Equal(t, "one", analysis.BusinessKeywords[0])
}
