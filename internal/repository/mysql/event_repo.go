package mysql

import (
	"context"

	"UAsync_Community/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func (r *EventRepository) Create(ctx context.Context, ev *model.Event) error {
	return r.DB.WithContext(ctx).Create(ev).Error
}

func (r *EventRepository) ListBySubgroup(ctx context.Context, subgroupID uint64) ([]model.Event, error) {
	list := make([]model.Event, 0)
	err := r.DB.WithContext(ctx).
		Where("group_id = ?", subgroupID).
		Order("event_id ASC").
		Find(&list).Error
	return list, err
}

// DeleteByOwner 只有创建者本人能删除，条件为 event_id + user_id
func (r *EventRepository) DeleteByOwner(ctx context.Context, eventID, userID uint64) (int64, error) {
	tx := r.DB.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.Event{})
	return tx.RowsAffected, tx.Error
}
