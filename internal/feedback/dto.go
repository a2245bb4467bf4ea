package feedback

import (
	"strings"
	"time"

	"github.com/dwisusanto/perf-tracker/internal"
)

type CreateFeedbackDTO struct {
	Content   string     `json:"content"`
	UserID    int64      `json:"user_id"`
	GivenByID int64      `json:"given_by_id"`
	CreatedAt *time.Time `json:"created_at"`
}

func (dto CreateFeedbackDTO) Validate() error {
	if strings.TrimSpace(dto.Content) == "" {
		return internal.NewValidationFieldError("content", "content is required", internal.ErrCodeValidationFailed)
	}
	if dto.UserID <= 0 {
		return internal.NewValidationFieldError("user_id", "user_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.GivenByID <= 0 {
		return internal.NewValidationFieldError("given_by_id", "given_by_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateFeedbackDTO struct {
	Content *string `json:"content"`
}

func (dto UpdateFeedbackDTO) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if dto.Content != nil {
		if strings.TrimSpace(*dto.Content) == "" {
			return nil, internal.NewValidationFieldError("content", "content cannot be empty", internal.ErrCodeValidationFailed)
		}
		fields["content"] = *dto.Content
	}
	return fields, nil
}
