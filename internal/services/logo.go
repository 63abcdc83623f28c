package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/Jeffery-byte/AI-logo-generator/internal/generator"
	"github.com/Jeffery-byte/AI-logo-generator/internal/imgutil"
	"github.com/Jeffery-byte/AI-logo-generator/internal/models"
	"github.com/Jeffery-byte/AI-logo-generator/internal/prompt"
	"github.com/Jeffery-byte/AI-logo-generator/internal/storage"
	"github.com/Jeffery-byte/AI-logo-generator/pkg/dto"
	"github.com/google/uuid"
)

const confidenceScore = 0.95

// LogoService orchestrates prompt construction, image generation, file
// storage and record keeping for logo requests.
type LogoService struct {
	gen     generator.Generator
	fetcher *generator.Fetcher
	files   *storage.FileStore
	store   LogoStore
	baseURL string
	delay   time.Duration
}

func NewLogoService(gen generator.Generator, fetcher *generator.Fetcher, files *storage.FileStore, store LogoStore, baseURL string, delay time.Duration) *LogoService {
	return &LogoService{
		gen:     gen,
		fetcher: fetcher,
		files:   files,
		store:   store,
		baseURL: baseURL,
		delay:   delay,
	}
}

// Generate produces the requested logo variations sequentially. A failed
// variation is logged and skipped; the call fails only when every
// variation fails.
func (s *LogoService) Generate(ctx context.Context, req dto.GenerateLogosRequest) (*dto.GenerateLogosResponse, error) {
	variations := req.Variations
	if max := s.gen.MaxVariations(); variations > max {
		variations = max
	}

	biz := prompt.BusinessContext{
		Name:           req.Business.Name,
		Industry:       req.Business.Industry,
		Description:    req.Business.Description,
		TargetAudience: req.Business.TargetAudience,
	}
	prompts := prompt.Build(biz, req.Style.StyleType, req.Style.ColorPalette, variations)
	palettes := prompt.PaletteVariations(req.Style.ColorPalette, variations)

	baseID := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	started := time.Now()

	var logos []dto.LogoResponse
	for i, p := range prompts {
		if i > 0 && s.delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.delay):
			}
		}

		logoID := fmt.Sprintf("%s_v%d", baseID, i+1)
		logo, err := s.generateOne(ctx, logoID, p, palettes[i], req, i)
		if err != nil {
			log.Printf("Logo variation %d failed for %q: %v", i+1, req.Business.Name, err)
			continue
		}
		logos = append(logos, *logo)
	}

	if len(logos) == 0 {
		return nil, ErrAllVariationsFailed
	}

	totalMS := time.Since(started).Milliseconds()
	return &dto.GenerateLogosResponse{
		Logos: logos,
		Stats: dto.GenerationStats{
			Requested:       variations,
			Generated:       len(logos),
			Failed:          variations - len(logos),
			TotalTimeMS:     totalMS,
			AverageMS:       totalMS / int64(variations),
			Model:           s.gen.Name(),
			RealAIGenerated: s.gen.RealAI(),
		},
	}, nil
}

// generateOne produces and stores a single variation. Each variation gets
// its own hue-rotated palette so single-template backends still differ.
func (s *LogoService) generateOne(ctx context.Context, logoID, promptText string, colors []string, req dto.GenerateLogosRequest, variation int) (*dto.LogoResponse, error) {
	started := time.Now()

	img, err := s.gen.Generate(ctx, generator.Request{
		Prompt:       promptText,
		BusinessName: req.Business.Name,
		StyleType:    req.Style.StyleType,
		Colors:       colors,
		Variation:    variation,
	})
	if err != nil {
		return nil, err
	}

	data := img.Data
	if len(data) == 0 && img.URL != "" {
		data, err = s.fetcher.Fetch(ctx, img.URL)
		if err != nil {
			return nil, err
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("backend returned no image data")
	}

	filename, err := s.files.Save(logoID, data, img.MimeType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	generationMS := time.Since(started).Milliseconds()
	gen := &models.LogoGeneration{
		ID:           logoID,
		BusinessName: req.Business.Name,
		Industry:     req.Business.Industry,
		StyleType:    req.Style.StyleType,
		Colors:       colors,
		Prompt:       promptText,
		ImagePath:    filename,
		Model:        s.gen.Name(),
		GenerationMS: generationMS,
		CreatedAt:    now,
	}
	if err := s.store.SaveGeneration(ctx, gen); err != nil {
		// The image is already on disk, so serve it anyway.
		log.Printf("Failed to record logo %s: %v", logoID, err)
	}

	return &dto.LogoResponse{
		ID:               logoID,
		Name:             fmt.Sprintf("%s Logo v%d", req.Business.Name, variation+1),
		ImageURL:         s.imageURL(filename),
		LocalPath:        filename,
		PromptUsed:       promptText,
		StyleType:        req.Style.StyleType,
		ColorPalette:     colors,
		Model:            s.gen.Name(),
		GenerationTimeMS: generationMS,
		ConfidenceScore:  confidenceScore,
		CreatedAt:        now.Format(time.RFC3339),
	}, nil
}

func (s *LogoService) History(ctx context.Context, limit int) ([]dto.LogoHistoryItem, error) {
	gens, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LogoHistoryItem, 0, len(gens))
	for _, gen := range gens {
		items = append(items, dto.LogoHistoryItem{
			ID:           gen.ID,
			BusinessName: gen.BusinessName,
			StyleType:    gen.StyleType,
			ColorPalette: gen.Colors,
			ImageURL:     s.imageURL(gen.ImagePath),
			Model:        gen.Model,
			CreatedAt:    gen.CreatedAt.Format(time.RFC3339),
		})
	}
	return items, nil
}

// LoadImage returns the stored image for a logo converted to the requested
// format. Supported formats are png, jpg and jpeg; jpg and jpeg re-encode
// a stored PNG, while SVG sources cannot be converted.
func (s *LogoService) LoadImage(ctx context.Context, logoID, format string) ([]byte, string, string, error) {
	format = strings.ToLower(format)
	if format != "png" && format != "jpg" && format != "jpeg" {
		return nil, "", "", ErrUnsupportedFormat
	}

	gen, err := s.store.GetByID(ctx, logoID)
	if err != nil {
		return nil, "", "", err
	}

	data, err := s.files.Read(gen.ImagePath)
	if err != nil {
		return nil, "", "", ErrLogoNotFound
	}

	ext := strings.ToLower(filepath.Ext(gen.ImagePath))
	filename := logoID + "." + format

	switch format {
	case "png":
		if ext == ".svg" {
			return data, "image/svg+xml", logoID + ".svg", nil
		}
		return data, "image/png", filename, nil
	default:
		if ext == ".svg" {
			return nil, "", "", ErrUnsupportedFormat
		}
		jpg, err := imgutil.ToJPEG(data)
		if err != nil {
			return nil, "", "", err
		}
		return jpg, "image/jpeg", filename, nil
	}
}

// ReadFile serves a raw stored file for the static logo route.
func (s *LogoService) ReadFile(filename string) ([]byte, string, error) {
	data, err := s.files.Read(filename)
	if err != nil {
		return nil, "", err
	}
	return data, contentTypeFor(filename), nil
}

func (s *LogoService) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatisticsResponse{
		TotalLogos:          stats.TotalLogos,
		AverageGenerationMS: stats.AverageGenerationMS,
		PopularStyles:       stats.PopularStyles,
		AverageRating:       stats.AverageRating,
	}, nil
}

func (s *LogoService) imageURL(filename string) string {
	return s.baseURL + "/static/logos/" + filename
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".svg":
		return "image/svg+xml"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "image/png"
	}
}
