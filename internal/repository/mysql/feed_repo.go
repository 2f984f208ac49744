package mysql

import (
	"context"

	"UAsync_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/hints"
)

// feedQueryHint 毫秒
const feedQueryHint = "MAX_EXECUTION_TIME(5000)"

type FeedRepository struct {
	DB *gorm.DB
}

// ListForUser 用户已订阅子分组下的全部帖子，按 post_id 倒序（最新在前）。
// 用半连接而不是 INNER JOIN，重复的订阅行不会让同一帖子出现多次。
// 结果不分页，MySQL 下用优化器提示限制执行时间；其他方言把它当作注释。
func (r *FeedRepository) ListForUser(ctx context.Context, userID uint64) ([]model.Post, error) {
	db := r.DB.WithContext(ctx)
	subscribed := db.Model(&model.SubscribedSubGroup{}).Select("subgroup_id").Where("user_id = ?", userID)

	list := make([]model.Post, 0)
	err := db.Model(&model.Post{}).
		Clauses(hints.New(feedQueryHint)).
		Where("group_id IN (?)", subscribed).
		Order("post_id DESC").
		Find(&list).Error
	return list, err
}
