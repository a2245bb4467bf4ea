package skill

import (
	"strings"

	"github.com/dwisusanto/perf-tracker/internal"
)

type CreateSkillDTO struct {
	Name   string `json:"name"`
	Level  *int   `json:"level"`
	UserID int64  `json:"user_id"`
}

func (dto CreateSkillDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Level != nil && (*dto.Level < 1 || *dto.Level > 5) {
		return internal.NewValidationFieldError("level", "level must be between 1 and 5", internal.ErrCodeInvalidLevel)
	}
	if dto.UserID <= 0 {
		return internal.NewValidationFieldError("user_id", "user_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateSkillDTO struct {
	Name  *string `json:"name"`
	Level *int    `json:"level"`
}

func (dto UpdateSkillDTO) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, internal.NewValidationFieldError("name", "name cannot be empty", internal.ErrCodeValidationFailed)
		}
		fields["name"] = *dto.Name
	}
	if dto.Level != nil {
		if *dto.Level < 1 || *dto.Level > 5 {
			return nil, internal.NewValidationFieldError("level", "level must be between 1 and 5", internal.ErrCodeInvalidLevel)
		}
		fields["level"] = *dto.Level
	}
	return fields, nil
}
