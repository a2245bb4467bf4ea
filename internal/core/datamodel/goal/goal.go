package goal

import "time"

type Goal struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description,omitempty" gorm:"column:description"`
	Completed   bool      `json:"completed" gorm:"column:completed;default:false"`
	UserID      int64     `json:"user_id" gorm:"column:user_id;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Goal) TableName() string {
	return "goals"
}
