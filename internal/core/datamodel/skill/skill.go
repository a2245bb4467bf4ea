package skill

import "time"

type Skill struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Level     int       `json:"level" gorm:"column:level;default:1"`
	UserID    int64     `json:"user_id" gorm:"column:user_id;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Skill) TableName() string {
	return "skills"
}
