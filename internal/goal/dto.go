package goal

import (
	"strings"

	"github.com/dwisusanto/perf-tracker/internal"
)

type CreateGoalDTO struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	UserID      int64   `json:"user_id"`
}

func (dto CreateGoalDTO) Validate() error {
	if strings.TrimSpace(dto.Title) == "" {
		return internal.NewValidationFieldError("title", "title is required", internal.ErrCodeValidationFailed)
	}
	if dto.UserID <= 0 {
		return internal.NewValidationFieldError("user_id", "user_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateGoalDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (dto UpdateGoalDTO) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, internal.NewValidationFieldError("title", "title cannot be empty", internal.ErrCodeValidationFailed)
		}
		fields["title"] = *dto.Title
	}
	if dto.Description != nil {
		fields["description"] = *dto.Description
	}
	if dto.Completed != nil {
		fields["completed"] = *dto.Completed
	}
	return fields, nil
}
