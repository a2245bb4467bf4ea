package review

import (
	"log/slog"

	"github.com/dwisusanto/perf-tracker/internal"
	reviewDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/review"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/crud"
)

type Service struct {
	*crud.Service[reviewDatamodel.Review]
	users crud.Repository[userDatamodel.User]
}

func NewService(repo crud.Repository[reviewDatamodel.Review], users crud.Repository[userDatamodel.User], logger *slog.Logger) *Service {
	return &Service{
		Service: crud.NewService(repo, logger, "review", internal.ErrReviewNotFound),
		users:   users,
	}
}

// Create resolves both user references before anything is written, so a
// dangling reference aborts with nothing persisted.
func (s *Service) Create(dto CreateReviewDTO) (*reviewDatamodel.Review, error) {
	if err := dto.Validate(); err != nil {
		s.Logger.Error("review validation failed", "error", err)
		return nil, err
	}

	subject, err := s.resolveUser(dto.UserID)
	if err != nil {
		return nil, err
	}
	reviewer, err := s.resolveUser(dto.ReviewerID)
	if err != nil {
		return nil, err
	}

	rev := &reviewDatamodel.Review{
		Summary:    dto.Summary,
		Rating:     dto.Rating,
		UserID:     dto.UserID,
		ReviewerID: dto.ReviewerID,
	}
	if _, err := s.Insert(rev); err != nil {
		return nil, err
	}

	rev.User = subject
	rev.Reviewer = reviewer

	s.Logger.Info("review created", "review_id", rev.ID, "user_id", rev.UserID, "reviewer_id", rev.ReviewerID)
	return rev, nil
}

func (s *Service) Update(id int64, dto UpdateReviewDTO) (*reviewDatamodel.Review, error) {
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
		s.Logger.Warn("review references missing user", "user_id", id)
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}
