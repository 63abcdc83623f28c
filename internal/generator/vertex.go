package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/Jeffery-byte/AI-logo-generator/internal/config"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const vertexScope = "https://www.googleapis.com/auth/cloud-platform"

// VertexGenerator produces logos with an Imagen model on Vertex AI via the
// REST predict endpoint.
type VertexGenerator struct {
	client      *resty.Client
	tokenSource oauth2.TokenSource
	endpoint    string
	model       string
}

type vertexPredictRequest struct {
	Instances  []vertexInstance `json:"instances"`
	Parameters vertexParameters `json:"parameters"`
}

type vertexInstance struct {
	Prompt string `json:"prompt"`
}

type vertexParameters struct {
	SampleCount       int    `json:"sampleCount"`
	AspectRatio       string `json:"aspectRatio"`
	SafetyFilterLevel string `json:"safetyFilterLevel"`
	PersonGeneration  string `json:"personGeneration"`
}

type vertexPredictResponse struct {
	Predictions []vertexPrediction `json:"predictions"`
}

type vertexPrediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType"`
}

func NewVertexGenerator(ctx context.Context, cfg config.VertexConfig) (*VertexGenerator, error) {
	if cfg.Project == "" {
		return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT is required for the vertex backend")
	}

	ts, err := google.DefaultTokenSource(ctx, vertexScope)
	if err != nil {
		return nil, fmt.Errorf("failed to load google credentials: %w", err)
	}

	endpoint := fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models/%s:predict",
		cfg.Location, cfg.Project, cfg.Location, cfg.Model,
	)

	client := resty.New().SetTimeout(60 * time.Second)

	return &VertexGenerator{
		client:      client,
		tokenSource: ts,
		endpoint:    endpoint,
		model:       cfg.Model,
	}, nil
}

func (g *VertexGenerator) Name() string {
	return g.model
}

func (g *VertexGenerator) MaxVariations() int {
	return 2
}

func (g *VertexGenerator) RealAI() bool {
	return true
}

func (g *VertexGenerator) Generate(ctx context.Context, req Request) (*Image, error) {
	token, err := g.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain access token: %w", err)
	}

	body := vertexPredictRequest{
		Instances: []vertexInstance{{Prompt: req.Prompt}},
		Parameters: vertexParameters{
			SampleCount:       1,
			AspectRatio:       "1:1",
			SafetyFilterLevel: "block_some",
			PersonGeneration:  "dont_allow",
		},
	}

	var result vertexPredictResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(g.endpoint)
	if err != nil {
		return nil, fmt.Errorf("vertex request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("vertex returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(result.Predictions) == 0 {
		return nil, fmt.Errorf("vertex returned no predictions")
	}

	data, err := base64.StdEncoding.DecodeString(result.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode vertex image data: %w", err)
	}

	mimeType := result.Predictions[0].MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &Image{Data: data, MimeType: mimeType}, nil
}
