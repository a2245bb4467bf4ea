package skill

import (
	"log/slog"

	"github.com/dwisusanto/perf-tracker/internal"
	skillDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/skill"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/crud"
)

const DefaultLevel = 1

type Service struct {
	*crud.Service[skillDatamodel.Skill]
	users crud.Repository[userDatamodel.User]
}

func NewService(repo crud.Repository[skillDatamodel.Skill], users crud.Repository[userDatamodel.User], logger *slog.Logger) *Service {
	return &Service{
		Service: crud.NewService(repo, logger, "skill", internal.ErrSkillNotFound),
		users:   users,
	}
}

func (s *Service) Create(dto CreateSkillDTO) (*skillDatamodel.Skill, error) {
	if err := dto.Validate(); err != nil {
		s.Logger.Error("skill validation failed", "error", err)
		return nil, err
	}

	owner, err := s.users.GetByID(dto.UserID)
	if err != nil {
		s.Logger.Error("failed to resolve skill owner", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("failed to resolve user reference", err)
	}
	if owner == nil {
		return nil, internal.ErrUserNotFound
	}

	level := DefaultLevel
	if dto.Level != nil {
		level = *dto.Level
	}

	sk := &skillDatamodel.Skill{
		Name:   dto.Name,
		Level:  level,
		UserID: dto.UserID,
	}
	return s.Insert(sk)
}

func (s *Service) Update(id int64, dto UpdateSkillDTO) (*skillDatamodel.Skill, error) {
	fields, err := dto.Fields()
	if err != nil {
		return nil, err
	}
	return s.UpdateFields(id, fields)
}
