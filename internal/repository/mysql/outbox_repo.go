package mysql

import (
	"context"
	"encoding/json"
	"time"

	"UAsync_Community/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// OutboxEvent 写入 payload 的事件内容
type OutboxEvent struct {
	EventID     string   `json:"event_id"`
	EventType   string   `json:"event_type"`
	EventTime   string   `json:"event_time"`
	UserID      uint64   `json:"user_id"`
	MainGroupID uint64   `json:"main_group_id,omitempty"`
	MainGroups  []uint64 `json:"main_group_ids,omitempty"`
	Subgroups   []uint64 `json:"subgroup_ids,omitempty"`
}

// insertOutbox 必须在变更所在的事务内调用
func insertOutbox(tx *gorm.DB, ev OutboxEvent) error {
	ev.EventID = uuid.NewString()
	ev.EventTime = time.Now().UTC().Format(time.RFC3339Nano)
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return tx.Create(&model.SubscriptionOutbox{
		EventID:     ev.EventID,
		EventType:   ev.EventType,
		UserID:      ev.UserID,
		MainGroupID: ev.MainGroupID,
		Payload:     datatypes.JSON(payload),
		Status:      model.OutboxPending,
	}).Error
}

// ListPending 按 id 顺序取待投递事件
func (r *OutboxRepository) ListPending(ctx context.Context, batchSize int) ([]model.SubscriptionOutbox, error) {
	var list []model.SubscriptionOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = ?", model.OutboxPending).
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// MarkFailed 投递失败，记录重试次数
func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.SubscriptionOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": model.OutboxFailed, "retry": gorm.Expr("retry + 1")}).Error
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.SubscriptionOutbox{}).Where("id = ?", id).
		Update("status", model.OutboxSent).Error
}

// Requeue 将失败次数未超过 maxRetry 的事件重新置为待投递
func (r *OutboxRepository) Requeue(ctx context.Context, maxRetry int) (int64, error) {
	tx := r.DB.WithContext(ctx).Model(&model.SubscriptionOutbox{}).
		Where("status = ? AND retry < ?", model.OutboxFailed, maxRetry).
		Update("status", model.OutboxPending)
	return tx.RowsAffected, tx.Error
}
