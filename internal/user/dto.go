package user

import (
	"strings"

	"github.com/dwisusanto/perf-tracker/internal"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHR       = "hr"
)

func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleHR:
		return true
	}
	return false
}

type CreateUserDTO struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func (dto CreateUserDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Role == "" {
		return internal.NewValidationFieldError("role", "role is required", internal.ErrCodeValidationFailed)
	}
	if !ValidRole(dto.Role) {
		return internal.NewValidationFieldError("role", "role must be one of employee, manager, hr", internal.ErrCodeInvalidRole)
	}
	return nil
}

// UpdateUserDTO carries a partial update; nil fields are left untouched.
type UpdateUserDTO struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

func (dto UpdateUserDTO) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, internal.NewValidationFieldError("name", "name cannot be empty", internal.ErrCodeValidationFailed)
		}
		fields["name"] = *dto.Name
	}
	if dto.Role != nil {
		if !ValidRole(*dto.Role) {
			return nil, internal.NewValidationFieldError("role", "role must be one of employee, manager, hr", internal.ErrCodeInvalidRole)
		}
		fields["role"] = *dto.Role
	}
	return fields, nil
}
