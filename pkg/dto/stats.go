package dto

type StatisticsResponse struct {
	TotalLogos          int64            `json:"total_logos"`
	AverageGenerationMS float64          `json:"average_generation_ms"`
	PopularStyles       map[string]int64 `json:"popular_styles"`
	AverageRating       float64          `json:"average_rating"`
}
