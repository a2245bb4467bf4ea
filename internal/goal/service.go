package goal

import (
	"log/slog"

	"github.com/dwisusanto/perf-tracker/internal"
	goalDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/goal"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/crud"
)

type Service struct {
	*crud.Service[goalDatamodel.Goal]
	users crud.Repository[userDatamodel.User]
}

func NewService(repo crud.Repository[goalDatamodel.Goal], users crud.Repository[userDatamodel.User], logger *slog.Logger) *Service {
	return &Service{
		Service: crud.NewService(repo, logger, "goal", internal.ErrGoalNotFound),
		users:   users,
	}
}

func (s *Service) Create(dto CreateGoalDTO) (*goalDatamodel.Goal, error) {
	if err := dto.Validate(); err != nil {
		s.Logger.Error("goal validation failed", "error", err)
		return nil, err
	}

	owner, err := s.users.GetByID(dto.UserID)
	if err != nil {
		s.Logger.Error("failed to resolve goal owner", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("failed to resolve user reference", err)
	}
	if owner == nil {
		return nil, internal.ErrUserNotFound
	}

	g := &goalDatamodel.Goal{
		Title:       dto.Title,
		Description: dto.Description,
		UserID:      dto.UserID,
	}
	if dto.Completed != nil {
		g.Completed = *dto.Completed
	}
	return s.Insert(g)
}

func (s *Service) Update(id int64, dto UpdateGoalDTO) (*goalDatamodel.Goal, error) {
	fields, err := dto.Fields()
	if err != nil {
		return nil, err
	}
	return s.UpdateFields(id, fields)
}
