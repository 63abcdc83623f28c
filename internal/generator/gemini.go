package generator

import (
	"context"
	"fmt"

	"github.com/Jeffery-byte/AI-logo-generator/internal/config"
	"google.golang.org/genai"
)

// GeminiGenerator produces logos with a hosted Gemini image model.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini backend")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: cfg.Model}, nil
}

func (g *GeminiGenerator) Name() string {
	return g.model
}

func (g *GeminiGenerator) MaxVariations() int {
	return 6
}

func (g *GeminiGenerator) RealAI() bool {
	return true
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (*Image, error) {
	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: req.Prompt}}},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}

	return extractImage(resp)
}

// extractImage pulls the first image part out of a generation response.
// Inline bytes are preferred; a file reference is passed through as a URL
// for the caller to download.
func extractImage(resp *genai.GenerateContentResponse) (*Image, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty gemini response")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &Image{Data: part.InlineData.Data, MimeType: part.InlineData.MIMEType}, nil
		}
		if part.FileData != nil && part.FileData.FileURI != "" {
			return &Image{URL: part.FileData.FileURI, MimeType: part.FileData.MIMEType}, nil
		}
	}

	return nil, fmt.Errorf("no image data in gemini response")
}
