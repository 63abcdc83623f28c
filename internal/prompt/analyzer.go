package prompt

import (
	"regexp"
	"strings"
)

type Analysis struct {
	RecommendedColors []string       `json:"recommended_colors"`
	RecommendedStyle  string         `json:"recommended_style"`
	StyleConfidence   map[string]int `json:"style_confidence"`
	BusinessKeywords  []string       `json:"business_keywords"`
}

var industryPalettes = map[string][]string{
	"technology": {"#007acc", "#0066cc", "#4a90e2", "#5cb3cc"},
	"healthcare": {"#00a86b", "#228b22", "#32cd32", "#87ceeb"},
	"finance":    {"#1e3a5f", "#2c5f2d", "#8b4513", "#708090"},
	"food":       {"#ff6347", "#ffa500", "#ffd700", "#32cd32"},
	"education":  {"#4169e1", "#8a2be2", "#dc143c", "#228b22"},
	"creative":   {"#ff1493", "#ff4500", "#ffd700", "#9370db"},
}

var defaultPalette = []string{"#3b82f6", "#1e40af", "#10b981"}

var styleKeywords = map[string][]string{
	"modern":       {"tech", "digital", "software", "app", "innovation"},
	"professional": {"consulting", "finance", "law", "corporate"},
	"playful":      {"kids", "games", "entertainment", "creative"},
	"elegant":      {"luxury", "premium", "boutique", "fashion"},
	"bold":         {"sports", "fitness", "energy", "power"},
	"vintage":      {"craft", "artisan", "traditional", "heritage"},
}

// styleOrder fixes the tie-break when several styles score equally.
var styleOrder = []string{"modern", "professional", "playful", "elegant", "bold", "vintage"}

var wordPattern = regexp.MustCompile(`\w+`)

// Analyze recommends a color palette and logo style from the business
// metadata: the palette comes from an industry lookup, the style from keyword
// hits in the business name and description.
func Analyze(biz BusinessContext) Analysis {
	colors, ok := industryPalettes[strings.ToLower(biz.Industry)]
	if !ok {
		colors = defaultPalette
	}

	words := wordPattern.FindAllString(strings.ToLower(biz.Name), -1)
	words = append(words, wordPattern.FindAllString(strings.ToLower(biz.Description), -1)...)

	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	scores := make(map[string]int, len(styleKeywords))
	for style, keywords := range styleKeywords {
		for _, kw := range keywords {
			if wordSet[kw] {
				scores[style]++
			}
		}
	}

	recommended := "modern"
	best := -1
	for _, style := range styleOrder {
		if scores[style] > best {
			best = scores[style]
			recommended = style
		}
	}

	keywords := words
	if len(keywords) > 10 {
		keywords = keywords[:10]
	}

	return Analysis{
		RecommendedColors: colors,
		RecommendedStyle:  recommended,
		StyleConfidence:   scores,
		BusinessKeywords:  keywords,
	}
}
