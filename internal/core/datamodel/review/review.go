package review

import (
	"time"

	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
)

// Review is a performance review of a subject user written by a reviewer.
// Both references must point at existing users; they are fixed at creation.
type Review struct {
	ID         int64               `json:"id" gorm:"primaryKey"`
	Summary    string              `json:"summary" gorm:"not null"`
	Rating     int                 `json:"rating" gorm:"not null"`
	UserID     int64               `json:"user_id" gorm:"column:user_id;not null"`
	ReviewerID int64               `json:"reviewer_id" gorm:"column:reviewer_id;not null"`
	User       *userDatamodel.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Reviewer   *userDatamodel.User `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
	CreatedAt  time.Time           `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time           `json:"updated_at" gorm:"column:updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
