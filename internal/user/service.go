package user

import (
	"log/slog"

	"github.com/dwisusanto/perf-tracker/internal"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/crud"
)

// DependentsAPI counts the records that reference a user, keyed by
// collection name. Used to enforce the delete policy.
type DependentsAPI interface {
	CountForUser(userID int64) (map[string]int64, error)
}

type Service struct {
	*crud.Service[userDatamodel.User]
	dependents DependentsAPI
}

func NewService(repo crud.Repository[userDatamodel.User], dependents DependentsAPI, logger *slog.Logger) *Service {
	return &Service{
		Service:    crud.NewService(repo, logger, "user", internal.ErrUserNotFound),
		dependents: dependents,
	}
}

func (s *Service) Create(dto CreateUserDTO) (*userDatamodel.User, error) {
	if err := dto.Validate(); err != nil {
		s.Logger.Error("user validation failed", "error", err)
		return nil, err
	}

	u := &userDatamodel.User{
		Name: dto.Name,
		Role: dto.Role,
	}
	return s.Insert(u)
}

func (s *Service) Update(id int64, dto UpdateUserDTO) (*userDatamodel.User, error) {
	fields, err := dto.Fields()
	if err != nil {
		return nil, err
	}
	return s.UpdateFields(id, fields)
}

// Delete refuses to remove a user that still owns goals, skills, reviews
// or feedback; callers must remove the dependents first.
func (s *Service) Delete(id int64) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	counts, err := s.dependents.CountForUser(id)
	if err != nil {
		s.Logger.Error("failed to count user dependents", "user_id", id, "error", err)
		return internal.NewInternalError("failed to delete user", err)
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	if total > 0 {
		s.Logger.Warn("user delete blocked by dependents", "user_id", id, "dependents", counts)
		return internal.NewConflictError("user has dependent records", internal.ErrCodeUserHasDependents).WithDetails(counts)
	}

	return s.Service.Delete(id)
}
