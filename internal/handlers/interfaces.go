package handlers

import (
	"context"

	"github.com/Jeffery-byte/AI-logo-generator/pkg/dto"
)

type LogoServiceInterface interface {
	Generate(ctx context.Context, req dto.GenerateLogosRequest) (*dto.GenerateLogosResponse, error)
	History(ctx context.Context, limit int) ([]dto.LogoHistoryItem, error)
	LoadImage(ctx context.Context, logoID, format string) ([]byte, string, string, error)
	ReadFile(filename string) ([]byte, string, error)
	Statistics(ctx context.Context) (*dto.StatisticsResponse, error)
}

type AnalysisServiceInterface interface {
	Analyze(biz dto.BusinessInfo) (*dto.AnalyzeBusinessResponse, error)
}

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	LatestRating(logoID string) (int, bool)
}
