package models

import (
	"time"
)

// User 用户模型
type User struct {
	UserID     string    `gorm:"column:user_id;type:varchar(50);primaryKey" json:"user_id"`
	Username   string    `gorm:"type:varchar(100)" json:"username"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`

	// 关联的评估记录
	Assessments []AssessmentHistory `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.UserID
}
