package feedback

import (
	"time"

	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
)

// Feedback is a free-form note given to a recipient user by another user.
// CreatedAt may be supplied by the caller; it defaults to server time.
type Feedback struct {
	ID        int64               `json:"id" gorm:"primaryKey"`
	Content   string              `json:"content" gorm:"not null"`
	UserID    int64               `json:"user_id" gorm:"column:user_id;not null"`
	GivenByID int64               `json:"given_by_id" gorm:"column:given_by_id;not null"`
	User      *userDatamodel.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	GivenBy   *userDatamodel.User `json:"given_by,omitempty" gorm:"foreignKey:GivenByID"`
	CreatedAt time.Time           `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time           `json:"updated_at" gorm:"column:updated_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
