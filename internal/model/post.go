package model

import "time"

// Post 帖子，post_id 自增，越大越新
type Post struct {
	ID         uint64    `gorm:"column:post_id;primaryKey" json:"post_id"`
	GroupID    uint64    `gorm:"not null;index" json:"group_id"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	Heading    string    `gorm:"size:255;not null" json:"heading"`
	Caption    string    `gorm:"size:255" json:"caption"`
	Text       string    `gorm:"type:text" json:"text"`
	TitleImage []byte    `json:"title_image"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}
