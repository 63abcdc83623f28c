package generator

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SVGGenerator renders template-based placeholder logos locally. It needs no
// credentials and is the default backend for development.
type SVGGenerator struct{}

func NewSVGGenerator() *SVGGenerator {
	return &SVGGenerator{}
}

func (g *SVGGenerator) Name() string {
	return "svg-template"
}

func (g *SVGGenerator) MaxVariations() int {
	return 4
}

func (g *SVGGenerator) RealAI() bool {
	return false
}

type svgTemplate func(name string, colors []string) string

var svgTemplates = map[string][]svgTemplate{
	"modern":       {modernCircle, modernBars},
	"professional": {professionalShield},
	"playful":      {playfulBadge},
}

func (g *SVGGenerator) Generate(_ context.Context, req Request) (*Image, error) {
	name := strings.TrimSpace(req.BusinessName)
	if name == "" {
		return nil, fmt.Errorf("business name is required for svg generation")
	}

	templates, ok := svgTemplates[req.StyleType]
	if !ok {
		templates = svgTemplates["modern"]
	}

	tmpl := templates[req.Variation%len(templates)]
	svg := tmpl(name, req.Colors)

	return &Image{Data: []byte(svg), MimeType: "image/svg+xml"}, nil
}

// colorAt returns the i-th palette color, falling back when the palette is
// shorter than the template needs.
func colorAt(colors []string, i int, fallback string) string {
	if i < len(colors) && colors[i] != "" {
		return colors[i]
	}
	return fallback
}

func initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "?"
	}
	var b strings.Builder
	for i, f := range fields {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(f)
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}

func modernCircle(name string, colors []string) string {
	primary := colorAt(colors, 0, "#3b82f6")
	secondary := colorAt(colors, 1, "#1e40af")
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512" viewBox="0 0 512 512">
<rect width="512" height="512" fill="#ffffff"/>
<circle cx="256" cy="200" r="110" fill="%s"/>
<circle cx="256" cy="200" r="70" fill="%s"/>
<text x="256" y="215" font-family="Helvetica, Arial, sans-serif" font-size="48" font-weight="bold" fill="#ffffff" text-anchor="middle">%s</text>
<text x="256" y="400" font-family="Helvetica, Arial, sans-serif" font-size="36" fill="#111827" text-anchor="middle">%s</text>
</svg>`, primary, secondary, initials(name), escapeXML(name))
}

func modernBars(name string, colors []string) string {
	primary := colorAt(colors, 0, "#3b82f6")
	secondary := colorAt(colors, 1, "#10b981")
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512" viewBox="0 0 512 512">
<rect width="512" height="512" fill="#ffffff"/>
<rect x="156" y="140" width="50" height="160" rx="12" fill="%s"/>
<rect x="231" y="100" width="50" height="200" rx="12" fill="%s"/>
<rect x="306" y="170" width="50" height="130" rx="12" fill="%s"/>
<text x="256" y="400" font-family="Helvetica, Arial, sans-serif" font-size="36" fill="#111827" text-anchor="middle">%s</text>
</svg>`, primary, secondary, primary, escapeXML(name))
}

func professionalShield(name string, colors []string) string {
	primary := colorAt(colors, 0, "#1e3a8a")
	accent := colorAt(colors, 1, "#d4af37")
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512" viewBox="0 0 512 512">
<rect width="512" height="512" fill="#ffffff"/>
<path d="M256 80 L360 120 L360 230 Q360 310 256 340 Q152 310 152 230 L152 120 Z" fill="%s" stroke="%s" stroke-width="6"/>
<text x="256" y="225" font-family="Georgia, serif" font-size="64" font-weight="bold" fill="#ffffff" text-anchor="middle">%s</text>
<text x="256" y="420" font-family="Georgia, serif" font-size="34" fill="#111827" text-anchor="middle">%s</text>
</svg>`, primary, accent, initials(name), escapeXML(name))
}

func playfulBadge(name string, colors []string) string {
	primary := colorAt(colors, 0, "#f59e0b")
	secondary := colorAt(colors, 1, "#ec4899")
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512" viewBox="0 0 512 512">
<rect width="512" height="512" fill="#fffbeb"/>
<circle cx="200" cy="190" r="90" fill="%s" opacity="0.9"/>
<circle cx="300" cy="210" r="75" fill="%s" opacity="0.8"/>
<text x="256" y="215" font-family="Verdana, sans-serif" font-size="52" font-weight="bold" fill="#ffffff" text-anchor="middle">%s</text>
<text x="256" y="400" font-family="Verdana, sans-serif" font-size="34" fill="#78350f" text-anchor="middle">%s</text>
</svg>`, primary, secondary, initials(name), escapeXML(name))
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
