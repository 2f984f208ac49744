package model

import "time"

type Event struct {
	ID         uint64    `gorm:"column:event_id;primaryKey" json:"event_id"`
	GroupID    uint64    `gorm:"not null;index" json:"group_id"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Date       string    `gorm:"size:32;not null" json:"date"`
	Time       string    `gorm:"size:32;not null" json:"time"`
	Location   string    `gorm:"size:255;not null" json:"location"`
	TitleImage []byte    `json:"title_image"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}
