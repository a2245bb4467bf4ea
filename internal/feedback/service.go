package feedback

import (
	"log/slog"

	"github.com/dwisusanto/perf-tracker/internal"
	feedbackDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/feedback"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/crud"
)

type Service struct {
	*crud.Service[feedbackDatamodel.Feedback]
	users crud.Repository[userDatamodel.User]
}

func NewService(repo crud.Repository[feedbackDatamodel.Feedback], users crud.Repository[userDatamodel.User], logger *slog.Logger) *Service {
	return &Service{
		Service: crud.NewService(repo, logger, "feedback", internal.ErrFeedbackNotFound),
		users:   users,
	}
}

// Create resolves recipient and giver before writing; a missing reference
// aborts with nothing persisted.
func (s *Service) Create(dto CreateFeedbackDTO) (*feedbackDatamodel.Feedback, error) {
	if err := dto.Validate(); err != nil {
		s.Logger.Error("feedback validation failed", "error", err)
		return nil, err
	}

	recipient, err := s.resolveUser(dto.UserID)
	if err != nil {
		return nil, err
	}
	giver, err := s.resolveUser(dto.GivenByID)
	if err != nil {
		return nil, err
	}

	fb := &feedbackDatamodel.Feedback{
		Content:   dto.Content,
		UserID:    dto.UserID,
		GivenByID: dto.GivenByID,
	}
	if dto.CreatedAt != nil {
		fb.CreatedAt = *dto.CreatedAt
	}
	if _, err := s.Insert(fb); err != nil {
		return nil, err
	}

	fb.User = recipient
	fb.GivenBy = giver
	return fb, nil
}

func (s *Service) Update(id int64, dto UpdateFeedbackDTO) (*feedbackDatamodel.Feedback, error) {
	fields, err := dto.Fields()
	if err != nil {
		return nil, err
	}
	return s.UpdateFields(id, fields)
}

func (s *Service) resolveUser(id int64) (*userDatamodel.User, error) {
	u, err := s.users.GetByID(id)
	if err != nil {
		s.Logger.Error("failed to resolve user reference", "user_id", id, "error", err)
		return nil, internal.NewInternalError("failed to resolve user reference", err)
	}
	if u == nil {
		s.Logger.Warn("feedback references missing user", "user_id", id)
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}
