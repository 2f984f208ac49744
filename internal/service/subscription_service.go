package service

import (
	"context"
	"log/slog"

	"UAsync_Community/internal/model"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type SubscriptionService struct {
	repo *mysql.SubscriptionRepository
}

// Subscriptions 用户的主分组订阅和子分组订阅，两个列表互不关联
type Subscriptions struct {
	MainGroups []model.SubscribedMainGroup `json:"mainGroups"`
	SubGroups  []model.SubscribedSubGroup  `json:"subGroups"`
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{
		repo: &mysql.SubscriptionRepository{DB: db},
	}
}

// SubscribeMainGroups 批量订阅主分组；同一请求内的 id 必须非零且不重复，跨请求重复订阅会产生重复行
func (s *SubscriptionService) SubscribeMainGroups(ctx context.Context, userID uint64, mainGroupIDs []uint64) error {
	if userID == 0 {
		return pkg.Validationf("user id not provided")
	}
	if len(mainGroupIDs) == 0 {
		return pkg.Validationf("main group ids not provided or invalid")
	}
	seen := make(map[uint64]struct{}, len(mainGroupIDs))
	for _, id := range mainGroupIDs {
		if id == 0 {
			return pkg.Validationf("main group ids not provided or invalid")
		}
		if _, ok := seen[id]; ok {
			return pkg.Validationf("duplicate main group id %d", id)
		}
		seen[id] = struct{}{}
	}

	if err := s.repo.SubscribeMainGroups(ctx, userID, mainGroupIDs); err != nil {
		return subscriptionFailed("subscribe_maingroups", err, "user_id", userID, "main_group_ids", mainGroupIDs)
	}
	pkg.SubscriptionOps.WithLabelValues("subscribe_maingroups", "ok").Inc()
	return nil
}

func (s *SubscriptionService) SubscribeSubgroup(ctx context.Context, userID, subgroupID, mainGroupID uint64) error {
	switch {
	case userID == 0:
		return pkg.Validationf("user id not provided")
	case subgroupID == 0:
		return pkg.Validationf("subgroup id not provided")
	case mainGroupID == 0:
		return pkg.Validationf("main group id not provided")
	}

	if err := s.repo.SubscribeSubgroup(ctx, userID, subgroupID, mainGroupID); err != nil {
		return subscriptionFailed("subscribe_subgroup", err, "user_id", userID, "subgroup_id", subgroupID)
	}
	pkg.SubscriptionOps.WithLabelValues("subscribe_subgroup", "ok").Inc()
	return nil
}

// UnsubscribeMainGroup 退出主分组，同时移除该用户在其下的全部子分组订阅，返回被移除的子分组 id
func (s *SubscriptionService) UnsubscribeMainGroup(ctx context.Context, userID, mainGroupID uint64) ([]uint64, error) {
	if userID == 0 {
		return nil, pkg.Validationf("user id not provided")
	}
	if mainGroupID == 0 {
		return nil, pkg.Validationf("main group id not provided")
	}

	removed, err := s.repo.UnsubscribeMainGroup(ctx, userID, mainGroupID)
	if err != nil {
		return nil, subscriptionFailed("unsubscribe_maingroup", err, "user_id", userID, "main_group_id", mainGroupID)
	}
	slog.Debug("subscription: left main group", "user_id", userID, "main_group_id", mainGroupID, "cascaded", removed)
	pkg.SubscriptionOps.WithLabelValues("unsubscribe_maingroup", "ok").Inc()
	return removed, nil
}

func (s *SubscriptionService) UnsubscribeSubgroup(ctx context.Context, userID, subgroupID uint64) error {
	if userID == 0 {
		return pkg.Validationf("user id not provided")
	}
	if subgroupID == 0 {
		return pkg.Validationf("subgroup id not provided")
	}

	if _, err := s.repo.UnsubscribeSubgroup(ctx, userID, subgroupID); err != nil {
		return subscriptionFailed("unsubscribe_subgroup", err, "user_id", userID, "subgroup_id", subgroupID)
	}
	pkg.SubscriptionOps.WithLabelValues("unsubscribe_subgroup", "ok").Inc()
	return nil
}

func (s *SubscriptionService) ListSubscriptions(ctx context.Context, userID uint64) (*Subscriptions, error) {
	if userID == 0 {
		return nil, pkg.Validationf("user id not provided")
	}

	mains, err := s.repo.ListMainGroups(ctx, userID)
	if err != nil {
		slog.Error("subscription: list main groups failed", "user_id", userID, "err", err)
		return nil, pkg.Storage("list main groups", err)
	}
	subs, err := s.repo.ListSubGroups(ctx, userID)
	if err != nil {
		slog.Error("subscription: list subgroups failed", "user_id", userID, "err", err)
		return nil, pkg.Storage("list subgroups", err)
	}
	return &Subscriptions{MainGroups: mains, SubGroups: subs}, nil
}

// subscriptionFailed 记录一次存储失败并转换为 ErrStorage，不重试
func subscriptionFailed(op string, err error, attrs ...any) error {
	slog.Error("subscription: "+op+" failed", append(attrs, "err", err)...)
	pkg.SubscriptionOps.WithLabelValues(op, "error").Inc()
	return pkg.Storage(op, err)
}
