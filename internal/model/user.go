package model

import "time"

type User struct {
	ID           uint64    `gorm:"column:user_id;primaryKey" json:"user_id"`
	Email        string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Name         string    `gorm:"size:128" json:"name"`
	Username     string    `gorm:"size:64" json:"username"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	ProfileImage []byte    `json:"profile_image"` // JSON 输出为 base64
	PhoneNumber  string    `gorm:"size:32" json:"phone_number"`
	Birthday     string    `gorm:"size:32" json:"birthday"`
	Biography    string    `gorm:"type:text" json:"biography"`
	RoleID       int       `gorm:"not null;default:1" json:"role_id"` // 1=普通用户
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
