package mysql

import (
	"context"

	"UAsync_Community/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

// SubscribeMainGroups 一条批量 INSERT 写入所有主分组订阅，不去重
func (r *SubscriptionRepository) SubscribeMainGroups(ctx context.Context, userID uint64, mainGroupIDs []uint64) error {
	rows := make([]model.SubscribedMainGroup, 0, len(mainGroupIDs))
	for _, id := range mainGroupIDs {
		rows = append(rows, model.SubscribedMainGroup{UserID: userID, MainGroupID: id})
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		return insertOutbox(tx, OutboxEvent{
			EventType:  model.EventSubscribeMainGroups,
			UserID:     userID,
			MainGroups: mainGroupIDs,
		})
	})
}

// SubscribeSubgroup 按调用方给出的父级写入，不校验 subgroup 是否真的属于该主分组
func (r *SubscriptionRepository) SubscribeSubgroup(ctx context.Context, userID, subgroupID, mainGroupID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.SubscribedSubGroup{
			UserID:      userID,
			SubgroupID:  subgroupID,
			MainGroupID: mainGroupID,
		}).Error; err != nil {
			return err
		}
		return insertOutbox(tx, OutboxEvent{
			EventType:   model.EventSubscribeSubgroup,
			UserID:      userID,
			MainGroupID: mainGroupID,
			Subgroups:   []uint64{subgroupID},
		})
	})
}

// UnsubscribeMainGroup 退出主分组并级联删除该用户在其下的子分组订阅。
// 查询、删除子分组订阅、删除主分组订阅在同一事务内，任一步失败整体回滚。
// 返回被级联删除的子分组 id。
func (r *SubscriptionRepository) UnsubscribeMainGroup(ctx context.Context, userID, mainGroupID uint64) ([]uint64, error) {
	var subgroupIDs []uint64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 冗余的 main_group_id 可能与真实父级不一致，两者都要覆盖
		parentOf := tx.Model(&model.SubGroup{}).Select("group_id").Where("main_group_id = ?", mainGroupID)
		if err := tx.Model(&model.SubscribedSubGroup{}).
			Where("user_id = ? AND (main_group_id = ? OR subgroup_id IN (?))", userID, mainGroupID, parentOf).
			Distinct().
			Pluck("subgroup_id", &subgroupIDs).Error; err != nil {
			return err
		}

		if len(subgroupIDs) > 0 {
			if err := tx.Where("user_id = ? AND subgroup_id IN ?", userID, subgroupIDs).
				Delete(&model.SubscribedSubGroup{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ? AND main_group_id = ?", userID, mainGroupID).
			Delete(&model.SubscribedMainGroup{}).Error; err != nil {
			return err
		}

		return insertOutbox(tx, OutboxEvent{
			EventType:   model.EventUnsubscribeMainGroup,
			UserID:      userID,
			MainGroupID: mainGroupID,
			Subgroups:   subgroupIDs,
		})
	})
	if err != nil {
		return nil, err
	}
	return subgroupIDs, nil
}

// UnsubscribeSubgroup 只删除这一条订阅，子分组没有下级，不级联
func (r *SubscriptionRepository) UnsubscribeSubgroup(ctx context.Context, userID, subgroupID uint64) (int64, error) {
	var affected int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND subgroup_id = ?", userID, subgroupID).
			Delete(&model.SubscribedSubGroup{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return insertOutbox(tx, OutboxEvent{
			EventType: model.EventUnsubscribeSubgroup,
			UserID:    userID,
			Subgroups: []uint64{subgroupID},
		})
	})
	return affected, err
}

func (r *SubscriptionRepository) ListMainGroups(ctx context.Context, userID uint64) ([]model.SubscribedMainGroup, error) {
	list := make([]model.SubscribedMainGroup, 0)
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *SubscriptionRepository) ListSubGroups(ctx context.Context, userID uint64) ([]model.SubscribedSubGroup, error) {
	list := make([]model.SubscribedSubGroup, 0)
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&list).Error
	return list, err
}

// DeleteBySubgroup 删除所有用户对某个子分组的订阅
func (r *SubscriptionRepository) DeleteBySubgroup(ctx context.Context, subgroupID uint64) (int64, error) {
	tx := r.DB.WithContext(ctx).Where("subgroup_id = ?", subgroupID).Delete(&model.SubscribedSubGroup{})
	return tx.RowsAffected, tx.Error
}
