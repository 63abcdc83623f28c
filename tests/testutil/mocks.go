package testutil

import (
	"context"

	"github.com/Jeffery-byte/AI-logo-generator/internal/generator"
	"github.com/Jeffery-byte/AI-logo-generator/internal/models"
	"github.com/Jeffery-byte/AI-logo-generator/pkg/dto"
	"github.com/stretchr/testify/mock"
)

type MockLogoService struct {
	mock.Mock
}

func (m *MockLogoService) Generate(ctx context.Context, req dto.GenerateLogosRequest) (*dto.GenerateLogosResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenerateLogosResponse), args.Error(1)
}

func (m *MockLogoService) History(ctx context.Context, limit int) ([]dto.LogoHistoryItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LogoHistoryItem), args.Error(1)
}

func (m *MockLogoService) LoadImage(ctx context.Context, logoID, format string) ([]byte, string, string, error) {
	args := m.Called(ctx, logoID, format)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).([]byte), args.String(1), args.String(2), args.Error(3)
}

func (m *MockLogoService) ReadFile(filename string) ([]byte, string, error) {
	args := m.Called(filename)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockLogoService) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatisticsResponse), args.Error(1)
}

type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(biz dto.BusinessInfo) (*dto.AnalyzeBusinessResponse, error) {
	args := m.Called(biz)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnalyzeBusinessResponse), args.Error(1)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FeedbackResponse), args.Error(1)
}

func (m *MockFeedbackService) LatestRating(logoID string) (int, bool) {
	args := m.Called(logoID)
	return args.Int(0), args.Bool(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Name() string {
	return m.Called().String(0)
}

func (m *MockGenerator) MaxVariations() int {
	return m.Called().Int(0)
}

func (m *MockGenerator) RealAI() bool {
	return m.Called().Bool(0)
}

func (m *MockGenerator) Generate(ctx context.Context, req generator.Request) (*generator.Image, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generator.Image), args.Error(1)
}

type MockLogoStore struct {
	mock.Mock
}

func (m *MockLogoStore) SaveGeneration(ctx context.Context, gen *models.LogoGeneration) error {
	return m.Called(ctx, gen).Error(0)
}

func (m *MockLogoStore) ListRecent(ctx context.Context, limit int) ([]models.LogoGeneration, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LogoGeneration), args.Error(1)
}

func (m *MockLogoStore) GetByID(ctx context.Context, id string) (*models.LogoGeneration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LogoGeneration), args.Error(1)
}

func (m *MockLogoStore) SaveFeedback(ctx context.Context, fb *models.LogoFeedback) error {
	return m.Called(ctx, fb).Error(0)
}

func (m *MockLogoStore) Stats(ctx context.Context) (*models.UsageStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UsageStats), args.Error(1)
}
