package mysql

import (
	"context"
	"time"

	"UAsync_Community/internal/model"

	"gorm.io/gorm"
)

type MainGroupRepository struct {
	DB *gorm.DB
}

type SubGroupRepository struct {
	DB *gorm.DB
}

// mainGroupRow LEFT JOIN 的一行，子分组列可能为 NULL
type mainGroupRow struct {
	MainGroupID         uint64
	MainGroupName       string
	MainGroupTitleImage []byte
	UserID              *uint64
	SubgroupID          *uint64
	SubgroupName        *string
	SubgroupTitleImage  []byte
	Members             *int
	Events              *int
	Threads             *int
	CreatedAt           *time.Time
	SubgroupCaption     *string
}

// ListWithSubgroups 所有主分组及其子分组；没有子分组的主分组返回空列表
func (r *MainGroupRepository) ListWithSubgroups(ctx context.Context) ([]model.MainGroupWithSubgroups, error) {
	var rows []mainGroupRow
	err := r.DB.WithContext(ctx).
		Table("maingroup").
		Select(`maingroup.group_id AS main_group_id,
			maingroup.name AS main_group_name,
			maingroup.title_image AS main_group_title_image,
			subgroups.user_id AS user_id,
			subgroups.group_id AS subgroup_id,
			subgroups.name AS subgroup_name,
			subgroups.title_image AS subgroup_title_image,
			subgroups.members AS members,
			subgroups.events AS events,
			subgroups.threads AS threads,
			subgroups.created_at AS created_at,
			subgroups.caption AS subgroup_caption`).
		Joins("LEFT JOIN subgroups ON maingroup.group_id = subgroups.main_group_id").
		Order("maingroup.group_id ASC, subgroups.group_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]model.MainGroupWithSubgroups, 0)
	index := make(map[uint64]int)
	for _, row := range rows {
		i, ok := index[row.MainGroupID]
		if !ok {
			out = append(out, model.MainGroupWithSubgroups{
				MainGroupID:         row.MainGroupID,
				MainGroupName:       row.MainGroupName,
				MainGroupTitleImage: row.MainGroupTitleImage,
				Subgroups:           make([]model.SubgroupSummary, 0),
			})
			i = len(out) - 1
			index[row.MainGroupID] = i
		}
		if row.SubgroupID == nil {
			continue
		}
		sub := model.SubgroupSummary{
			SubgroupID:         *row.SubgroupID,
			SubgroupTitleImage: row.SubgroupTitleImage,
		}
		if row.UserID != nil {
			sub.UserID = *row.UserID
		}
		if row.SubgroupName != nil {
			sub.SubgroupName = *row.SubgroupName
		}
		if row.Members != nil {
			sub.Members = *row.Members
		}
		if row.Events != nil {
			sub.Events = *row.Events
		}
		if row.Threads != nil {
			sub.Threads = *row.Threads
		}
		if row.CreatedAt != nil {
			sub.CreatedAt = *row.CreatedAt
		}
		if row.SubgroupCaption != nil {
			sub.SubgroupCaption = *row.SubgroupCaption
		}
		out[i].Subgroups = append(out[i].Subgroups, sub)
	}
	return out, nil
}

func (r *MainGroupRepository) FindByID(ctx context.Context, id uint64) (*model.MainGroup, error) {
	var g model.MainGroup
	err := r.DB.WithContext(ctx).First(&g, "group_id = ?", id).Error
	return &g, err
}

func (r *MainGroupRepository) UpdateTitleImage(ctx context.Context, id uint64, image []byte) (int64, error) {
	tx := r.DB.WithContext(ctx).Model(&model.MainGroup{}).
		Where("group_id = ?", id).
		Update("title_image", image)
	return tx.RowsAffected, tx.Error
}

// CountByName 同一主分组下同名子分组数量（创建前的检查）
func (r *SubGroupRepository) CountByName(ctx context.Context, mainGroupID uint64, name string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.SubGroup{}).
		Where("name = ? AND main_group_id = ?", name, mainGroupID).
		Count(&count).Error
	return count, err
}

func (r *SubGroupRepository) Create(ctx context.Context, g *model.SubGroup) error {
	return r.DB.WithContext(ctx).Create(g).Error
}

func (r *SubGroupRepository) FindByID(ctx context.Context, id uint64) (*model.SubGroup, error) {
	var g model.SubGroup
	err := r.DB.WithContext(ctx).First(&g, "group_id = ?", id).Error
	return &g, err
}

// Delete 幂等硬删除
func (r *SubGroupRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	tx := r.DB.WithContext(ctx).Where("group_id = ?", id).Delete(&model.SubGroup{})
	return tx.RowsAffected, tx.Error
}
