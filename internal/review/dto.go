package review

import (
	"strings"

	"github.com/dwisusanto/perf-tracker/internal"
)

type CreateReviewDTO struct {
	Summary    string `json:"summary"`
	Rating     int    `json:"rating"`
	UserID     int64  `json:"user_id"`
	ReviewerID int64  `json:"reviewer_id"`
}

func (dto CreateReviewDTO) Validate() error {
	if strings.TrimSpace(dto.Summary) == "" {
		return internal.NewValidationFieldError("summary", "summary is required", internal.ErrCodeValidationFailed)
	}
	if dto.Rating < 1 || dto.Rating > 5 {
		return internal.NewValidationFieldError("rating", "rating must be between 1 and 5", internal.ErrCodeInvalidRating)
	}
	if dto.UserID <= 0 {
		return internal.NewValidationFieldError("user_id", "user_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.ReviewerID <= 0 {
		return internal.NewValidationFieldError("reviewer_id", "reviewer_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateReviewDTO patches summary and rating only; the subject and
// reviewer references are fixed at creation.
type UpdateReviewDTO struct {
	Summary *string `json:"summary"`
	Rating  *int    `json:"rating"`
}

func (dto UpdateReviewDTO) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if dto.Summary != nil {
		if strings.TrimSpace(*dto.Summary) == "" {
			return nil, internal.NewValidationFieldError("summary", "summary cannot be empty", internal.ErrCodeValidationFailed)
		}
		fields["summary"] = *dto.Summary
	}
	if dto.Rating != nil {
		if *dto.Rating < 1 || *dto.Rating > 5 {
			return nil, internal.NewValidationFieldError("rating", "rating must be between 1 and 5", internal.ErrCodeInvalidRating)
		}
		fields["rating"] = *dto.Rating
	}
	return fields, nil
}
