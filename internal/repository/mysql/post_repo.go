package mysql

import (
	"context"

	"UAsync_Community/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.DB.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) FindByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.WithContext(ctx).First(&post, "post_id = ?", id).Error
	return &post, err
}

// ListBySubgroup 子分组下的帖子，最新在前
func (r *PostRepository) ListBySubgroup(ctx context.Context, subgroupID uint64) ([]model.Post, error) {
	list := make([]model.Post, 0)
	err := r.DB.WithContext(ctx).
		Where("group_id = ?", subgroupID).
		Order("post_id DESC").
		Find(&list).Error
	return list, err
}

// Delete 硬删除，不存在也视为成功
func (r *PostRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	tx := r.DB.WithContext(ctx).Where("post_id = ?", id).Delete(&model.Post{})
	return tx.RowsAffected, tx.Error
}

func (r *PostRepository) DeleteBySubgroup(ctx context.Context, subgroupID uint64) (int64, error) {
	tx := r.DB.WithContext(ctx).Where("group_id = ?", subgroupID).Delete(&model.Post{})
	return tx.RowsAffected, tx.Error
}
