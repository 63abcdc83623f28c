package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Env     string
	BaseURL string

	DatabaseURL string

	// Backend selects the image generator: "gemini", "vertex" or "svg".
	Backend string

	Gemini GeminiConfig
	Vertex VertexConfig

	LogoDir           string
	GenerationDelay   time.Duration
	RateLimitInterval time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type VertexConfig struct {
	Project  string
	Location string
	Model    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	generationDelay, err := time.ParseDuration(getEnv("GENERATION_DELAY", "2s"))
	if err != nil {
		generationDelay = 2 * time.Second
	}

	rateLimitInterval, err := time.ParseDuration(getEnv("RATE_LIMIT_INTERVAL", "30s"))
	if err != nil {
		rateLimitInterval = 30 * time.Second
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		Env:     getEnv("ENV", "development"),
		BaseURL: getEnv("BASE_URL", "http://localhost:8080"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Backend: getEnv("GENERATOR_BACKEND", "svg"),

		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		},
		Vertex: VertexConfig{
			Project:  getEnv("GOOGLE_CLOUD_PROJECT", ""),
			Location: getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
			Model:    getEnv("VERTEX_IMAGEN_MODEL", "imagegeneration@006"),
		},

		LogoDir:           getEnv("LOGO_DIR", "generated_logos"),
		GenerationDelay:   generationDelay,
		RateLimitInterval: rateLimitInterval,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
