package generator

import "context"

// Request carries everything a backend needs for a single variation. Hosted
// backends only look at Prompt; the SVG renderer uses the raw business fields
// and the variation index for template selection.
type Request struct {
	Prompt       string
	BusinessName string
	StyleType    string
	Colors       []string
	Variation    int
}

// Image is one produced logo. Backends either return the bytes inline or a
// URL the caller must fetch.
type Image struct {
	Data     []byte
	MimeType string
	URL      string
}

type Generator interface {
	// Name identifies the backing model for logging and stored history.
	Name() string
	// MaxVariations caps how many variations one request may produce.
	MaxVariations() int
	// RealAI reports whether images come from a hosted model rather than
	// local templating.
	RealAI() bool
	Generate(ctx context.Context, req Request) (*Image, error)
}
