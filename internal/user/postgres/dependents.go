package postgres

import (
	feedbackDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/feedback"
	goalDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/goal"
	reviewDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/review"
	skillDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/skill"
	"github.com/dwisusanto/perf-tracker/internal/user"
	"gorm.io/gorm"
)

type DependentsRepository struct {
	db *gorm.DB
}

func NewDependentsRepository(db *gorm.DB) user.DependentsAPI {
	return &DependentsRepository{db: db}
}

// CountForUser reports how many records still reference the user, either
// as owner or as the second party (reviewer, feedback giver).
func (r *DependentsRepository) CountForUser(userID int64) (map[string]int64, error) {
	counts := make(map[string]int64)

	var n int64
	if err := r.db.Model(&goalDatamodel.Goal{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		counts["goals"] = n
	}

	if err := r.db.Model(&skillDatamodel.Skill{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		counts["skills"] = n
	}

	if err := r.db.Model(&reviewDatamodel.Review{}).Where("user_id = ? OR reviewer_id = ?", userID, userID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		counts["reviews"] = n
	}

	if err := r.db.Model(&feedbackDatamodel.Feedback{}).Where("user_id = ? OR given_by_id = ?", userID, userID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		counts["feedbacks"] = n
	}

	return counts, nil
}
