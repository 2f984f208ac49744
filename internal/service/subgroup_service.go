package service

import (
	"context"
	"errors"
	"log/slog"

	"UAsync_Community/internal/model"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/repository/mysql"
	"UAsync_Community/internal/repository/redis"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Locker 跨进程互斥；未配置 Redis 时为 nil，此时只依赖唯一索引
type Locker interface {
	Acquire(ctx context.Context, key, token string) (bool, error)
	Release(ctx context.Context, key, token string) error
}

type SubgroupService struct {
	subgroups     *mysql.SubGroupRepository
	posts         *mysql.PostRepository
	events        *mysql.EventRepository
	subscriptions *mysql.SubscriptionRepository
	lock          Locker
}

type CreateSubgroupInput struct {
	UserID       uint64
	MainGroupID  uint64
	Name         string
	Caption      string
	Introduction string
	TitleImage   []byte
}

func NewSubgroupService(db *gorm.DB, lock Locker) *SubgroupService {
	return &SubgroupService{
		subgroups:     &mysql.SubGroupRepository{DB: db},
		posts:         &mysql.PostRepository{DB: db},
		events:        &mysql.EventRepository{DB: db},
		subscriptions: &mysql.SubscriptionRepository{DB: db},
		lock:          lock,
	}
}

// Create 同一主分组下名称唯一：先加锁（可选），再 COUNT 预检查，最后由唯一索引兜底
func (s *SubgroupService) Create(ctx context.Context, in CreateSubgroupInput) (uint64, error) {
	switch {
	case in.Name == "":
		return 0, pkg.Validationf("subgroup name not provided")
	case in.MainGroupID == 0:
		return 0, pkg.Validationf("main group id not provided")
	case in.Caption == "":
		return 0, pkg.Validationf("caption not provided")
	}

	if s.lock != nil {
		key := redis.SubgroupNameKey(in.MainGroupID, in.Name)
		token := uuid.NewString()
		got, err := s.lock.Acquire(ctx, key, token)
		switch {
		case err != nil:
			slog.Warn("subgroup: lock unavailable, falling back to unique index", "key", key, "err", err)
		case !got:
			return 0, pkg.Conflictf("subgroup %q is being created in main group %d", in.Name, in.MainGroupID)
		default:
			defer func() {
				if err := s.lock.Release(context.WithoutCancel(ctx), key, token); err != nil {
					slog.Warn("subgroup: lock release failed", "key", key, "err", err)
				}
			}()
		}
	}

	count, err := s.subgroups.CountByName(ctx, in.MainGroupID, in.Name)
	if err != nil {
		slog.Error("subgroup: name check failed", "main_group_id", in.MainGroupID, "err", err)
		return 0, pkg.Storage("check subgroup name", err)
	}
	if count > 0 {
		return 0, pkg.Conflictf("subgroup with the same name already exists in the main group")
	}

	g := &model.SubGroup{
		UserID:      in.UserID,
		MainGroupID: in.MainGroupID,
		Name:        in.Name,
		Caption:     in.Caption,
		Description: in.Introduction,
		TitleImage:  in.TitleImage,
	}
	if err := s.subgroups.Create(ctx, g); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, pkg.Conflictf("subgroup with the same name already exists in the main group")
		}
		slog.Error("subgroup: insert failed", "main_group_id", in.MainGroupID, "err", err)
		return 0, pkg.Storage("create subgroup", err)
	}
	return g.ID, nil
}

func (s *SubgroupService) ListPosts(ctx context.Context, subgroupID uint64) ([]model.Post, error) {
	if subgroupID == 0 {
		return nil, pkg.Validationf("subgroup id not provided")
	}
	list, err := s.posts.ListBySubgroup(ctx, subgroupID)
	if err != nil {
		slog.Error("subgroup: list posts failed", "subgroup_id", subgroupID, "err", err)
		return nil, pkg.Storage("list posts", err)
	}
	return list, nil
}

func (s *SubgroupService) ListEvents(ctx context.Context, subgroupID uint64) ([]model.Event, error) {
	if subgroupID == 0 {
		return nil, pkg.Validationf("subgroup id not provided")
	}
	list, err := s.events.ListBySubgroup(ctx, subgroupID)
	if err != nil {
		slog.Error("subgroup: list events failed", "subgroup_id", subgroupID, "err", err)
		return nil, pkg.Storage("list events", err)
	}
	return list, nil
}

// RemoveFromJoined 删除所有用户对该子分组的订阅
func (s *SubgroupService) RemoveFromJoined(ctx context.Context, subgroupID uint64) (int64, error) {
	if subgroupID == 0 {
		return 0, pkg.Validationf("subgroup id not provided")
	}
	n, err := s.subscriptions.DeleteBySubgroup(ctx, subgroupID)
	if err != nil {
		slog.Error("subgroup: delete subscriptions failed", "subgroup_id", subgroupID, "err", err)
		return 0, pkg.Storage("delete subgroup subscriptions", err)
	}
	return n, nil
}

func (s *SubgroupService) DeletePosts(ctx context.Context, subgroupID uint64) (int64, error) {
	if subgroupID == 0 {
		return 0, pkg.Validationf("subgroup id not provided")
	}
	n, err := s.posts.DeleteBySubgroup(ctx, subgroupID)
	if err != nil {
		slog.Error("subgroup: delete posts failed", "subgroup_id", subgroupID, "err", err)
		return 0, pkg.Storage("delete subgroup posts", err)
	}
	return n, nil
}

// Delete 只删除子分组本身，订阅和帖子由调用方分别清理
func (s *SubgroupService) Delete(ctx context.Context, subgroupID uint64) (int64, error) {
	if subgroupID == 0 {
		return 0, pkg.Validationf("subgroup id not provided")
	}
	n, err := s.subgroups.Delete(ctx, subgroupID)
	if err != nil {
		slog.Error("subgroup: delete failed", "subgroup_id", subgroupID, "err", err)
		return 0, pkg.Storage("delete subgroup", err)
	}
	return n, nil
}
