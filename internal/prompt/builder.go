package prompt

import (
	"fmt"
	"strings"
)

// maxLength is the prompt ceiling accepted by the hosted image models.
const maxLength = 400

type BusinessContext struct {
	Name           string
	Industry       string
	Description    string
	TargetAudience string
}

var styleTemplates = map[string]string{
	"modern":       "A clean, minimalist logo for %s. Simple geometric design with %s colors on white background. Professional vector style, high contrast, crisp edges.",
	"vintage":      "A vintage-style logo for %s. Classic retro design with %s colors on white background. Traditional typography, decorative elements.",
	"bold":         "A bold, impactful logo for %s. Strong, powerful design with %s colors on white background. Thick lines, dramatic contrast.",
	"elegant":      "An elegant, sophisticated logo for %s. Refined luxury design with %s colors on white background. Graceful curves, premium feel.",
	"playful":      "A fun, creative logo for %s. Playful design with %s colors on white background. Friendly, approachable style.",
	"professional": "A professional, corporate logo for %s. Business-appropriate design with %s colors on white background. Trustworthy, reliable appearance.",
}

var colorNames = map[string]string{
	"#3B82F6": "blue", "#1E40AF": "navy blue",
	"#EF4444": "red", "#DC2626": "dark red",
	"#10B981": "green", "#059669": "emerald green",
	"#F59E0B": "orange", "#D97706": "amber orange",
	"#8B5CF6": "purple", "#7C3AED": "violet purple",
	"#6B7280": "gray", "#374151": "dark gray",
	"#EC4899": "pink", "#BE185D": "deep pink",
	"#14B8A6": "teal", "#0D9488": "dark teal",
	"#000000": "black", "#FFFFFF": "white",
}

// variationApproaches differentiate the prompts of a multi-variation request.
// Index i uses approach i % len(variationApproaches); the empty first entry
// keeps the base prompt untouched.
var variationApproaches = []string{
	"",
	"with subtle gradients and modern typography",
	"featuring clean geometric shapes and professional styling",
	"incorporating elegant design elements and premium finish",
	"with contemporary aesthetics and refined details",
	"emphasizing brand recognition and memorability",
	"with balanced composition and visual hierarchy",
	"featuring distinctive character and market appeal",
}

type contextRule struct {
	keywords []string
	phrase   string
}

var descriptionRules = []contextRule{
	{[]string{"tech", "software", "digital", "app", "platform", "system"}, "incorporating subtle tech-inspired elements"},
	{[]string{"food", "restaurant", "cafe", "kitchen", "dining"}, "with food-related symbolic elements"},
	{[]string{"health", "medical", "wellness", "fitness", "care"}, "featuring health and wellness symbolism"},
	{[]string{"finance", "money", "investment", "banking", "financial"}, "with financial stability and trust symbols"},
	{[]string{"education", "school", "learning", "teaching", "training"}, "incorporating educational and growth elements"},
	{[]string{"creative", "design", "art", "artistic", "studio"}, "with creative and artistic flair"},
	{[]string{"service", "consulting", "professional", "expert"}, "emphasizing professionalism and expertise"},
	{[]string{"eco", "green", "sustainable", "environment", "natural"}, "with eco-friendly and natural elements"},
	{[]string{"luxury", "premium", "high-end", "exclusive"}, "with luxury and premium aesthetics"},
	{[]string{"fun", "entertainment", "game", "play", "joy"}, "with playful and entertaining elements"},
}

// industryRules add a second context phrase keyed off the industry field.
// The guard skips a rule when the description already produced a phrase
// covering the same theme.
var industryRules = []struct {
	industry string
	guard    string
	phrase   string
}{
	{"technology", "tech-inspired", "with modern technology aesthetics"},
	{"healthcare", "health", "conveying trust and care"},
	{"finance", "financial", "symbolizing stability and growth"},
	{"retail", "", "appealing to consumers with inviting design"},
	{"education", "educational", "inspiring learning and development"},
	{"real estate", "", "representing stability and home"},
	{"consulting", "professional", "projecting expertise and reliability"},
	{"food", "food-related", "with appetizing and welcoming elements"},
	{"creative", "creative", "showcasing creativity and innovation"},
	{"manufacturing", "", "representing quality and precision"},
}

var audienceRules = []contextRule{
	{[]string{"young", "millennial", "gen z", "youth"}, "with contemporary appeal for younger demographics"},
	{[]string{"professional", "business", "corporate"}, "tailored for professional audiences"},
	{[]string{"family", "parent", "children", "kids"}, "family-friendly and approachable"},
	{[]string{"luxury", "affluent", "premium", "high-income"}, "designed for discerning, upscale clientele"},
}

// Build assembles one prompt per requested variation. Each prompt is the
// style template with business name and color names substituted, plus a
// context phrase derived from the business metadata and a rotating variation
// approach, truncated to the model's length ceiling.
func Build(biz BusinessContext, styleType string, colors []string, variations int) []string {
	safeName := strings.TrimSpace(strings.ReplaceAll(biz.Name, "&", "and"))

	template, ok := styleTemplates[styleType]
	if !ok {
		template = styleTemplates["modern"]
	}
	base := fmt.Sprintf(template, safeName, colorText(colors))

	contextElements := contextElements(biz)

	prompts := make([]string, 0, variations)
	for i := 0; i < variations; i++ {
		parts := []string{base}
		if len(contextElements) > 0 {
			parts = append(parts, contextElements[i%len(contextElements)])
		}
		if approach := variationApproaches[i%len(variationApproaches)]; approach != "" {
			parts = append(parts, approach)
		}
		prompts = append(prompts, truncate(strings.Join(parts, " ")))
	}
	return prompts
}

// ColorName maps a hex color code to a natural-language name understood by
// the image models. Unknown codes fall back to "blue".
func ColorName(hex string) string {
	if name, ok := colorNames[strings.ToUpper(hex)]; ok {
		return name
	}
	return "blue"
}

func colorText(colors []string) string {
	if len(colors) > 2 {
		colors = colors[:2]
	}
	names := make([]string, 0, len(colors))
	for _, c := range colors {
		names = append(names, ColorName(c))
	}
	if len(names) == 0 {
		return "blue"
	}
	return strings.Join(names, " and ")
}

func contextElements(biz BusinessContext) []string {
	var elements []string

	desc := strings.ToLower(strings.TrimSpace(biz.Description))
	if desc != "" {
		if phrase := matchRule(descriptionRules, desc); phrase != "" {
			elements = append(elements, phrase)
		} else {
			short := desc
			if len(short) > 50 {
				short = short[:50]
			}
			elements = append(elements, fmt.Sprintf("reflecting the essence of %s...", short))
		}
	}

	industry := strings.ToLower(biz.Industry)
	for _, rule := range industryRules {
		if !strings.Contains(industry, rule.industry) {
			continue
		}
		if rule.guard != "" && covered(elements, rule.guard) {
			continue
		}
		elements = append(elements, rule.phrase)
		break
	}

	audience := strings.ToLower(strings.TrimSpace(biz.TargetAudience))
	if audience != "" {
		if phrase := matchRule(audienceRules, audience); phrase != "" {
			elements = append(elements, phrase)
		}
	}

	return elements
}

func matchRule(rules []contextRule, text string) string {
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.phrase
			}
		}
	}
	return ""
}

func covered(elements []string, marker string) bool {
	for _, e := range elements {
		if strings.Contains(e, marker) {
			return true
		}
	}
	return false
}

func truncate(prompt string) string {
	prompt = strings.Join(strings.Fields(prompt), " ")
	if len(prompt) > maxLength {
		return prompt[:maxLength] + "..."
	}
	return prompt
}
