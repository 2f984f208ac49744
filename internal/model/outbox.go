package model

import (
	"time"

	"gorm.io/datatypes"
)

// 订阅事件类型
const (
	EventSubscribeMainGroups  = "subscribe_maingroups"
	EventSubscribeSubgroup    = "subscribe_subgroup"
	EventUnsubscribeMainGroup = "unsubscribe_maingroup"
	EventUnsubscribeSubgroup  = "unsubscribe_subgroup"
)

// outbox 状态
const (
	OutboxPending = 0
	OutboxSent    = 1
	OutboxFailed  = 2
)

// SubscriptionOutbox 订阅变更事件表，与变更在同一事务内写入
type SubscriptionOutbox struct {
	ID          uint64         `gorm:"primaryKey"`
	EventID     string         `gorm:"size:36;not null;uniqueIndex"`
	EventType   string         `gorm:"size:32;not null"`
	UserID      uint64         `gorm:"not null;index"`
	MainGroupID uint64         `gorm:"not null;default:0"`
	Payload     datatypes.JSON `gorm:"not null"` // mysql JSON / postgres JSONB
	Status      int8           `gorm:"not null;default:0;index"`
	Retry       int            `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SubscriptionOutbox) TableName() string { return "subscription_outbox" }
