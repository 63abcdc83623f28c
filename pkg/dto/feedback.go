package dto

import (
	"errors"
	"strings"
)

type FeedbackRequest struct {
	LogoID string `json:"logo_id"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func (r *FeedbackRequest) Validate() error {
	if strings.TrimSpace(r.LogoID) == "" {
		return errors.New("logo_id is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

type FeedbackResponse struct {
	ID        string `json:"id"`
	LogoID    string `json:"logo_id"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}
