package service

import (
	"context"
	"log/slog"

	"UAsync_Community/internal/model"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type FeedService struct {
	repo *mysql.FeedRepository
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{
		repo: &mysql.FeedRepository{DB: db},
	}
}

// FetchFeed 用户订阅的所有子分组下的帖子，新帖在前；没有订阅时返回空列表
func (s *FeedService) FetchFeed(ctx context.Context, userID uint64) ([]model.Post, error) {
	if userID == 0 {
		return nil, pkg.Validationf("user id not provided")
	}
	posts, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		slog.Error("feed: query failed", "user_id", userID, "err", err)
		return nil, pkg.Storage("fetch feed", err)
	}
	return posts, nil
}
