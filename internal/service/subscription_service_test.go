package service

import (
	"context"
	"testing"

	"UAsync_Community/internal/model"
	"UAsync_Community/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeMainGroupsValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)

	cases := []struct {
		name   string
		userID uint64
		ids    []uint64
	}{
		{"missing user", 0, []uint64{1}},
		{"nil ids", 42, nil},
		{"empty ids", 42, []uint64{}},
		{"zero id", 42, []uint64{1, 0}},
		{"duplicate id", 42, []uint64{1, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.SubscribeMainGroups(context.Background(), tc.userID, tc.ids)
			assert.ErrorIs(t, err, pkg.ErrValidation)
		})
	}

	var n int64
	require.NoError(t, db.Model(&model.SubscribedMainGroup{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSubscribeSubgroupValidation(t *testing.T) {
	svc := NewSubscriptionService(newTestDB(t))
	ctx := context.Background()

	assert.ErrorIs(t, svc.SubscribeSubgroup(ctx, 0, 12, 3), pkg.ErrValidation)
	assert.ErrorIs(t, svc.SubscribeSubgroup(ctx, 7, 0, 3), pkg.ErrValidation)
	assert.ErrorIs(t, svc.SubscribeSubgroup(ctx, 7, 12, 0), pkg.ErrValidation)
}

func TestUnsubscribeValidation(t *testing.T) {
	svc := NewSubscriptionService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.UnsubscribeMainGroup(ctx, 0, 1)
	assert.ErrorIs(t, err, pkg.ErrValidation)
	_, err = svc.UnsubscribeMainGroup(ctx, 7, 0)
	assert.ErrorIs(t, err, pkg.ErrValidation)
	assert.ErrorIs(t, svc.UnsubscribeSubgroup(ctx, 0, 1), pkg.ErrValidation)
	assert.ErrorIs(t, svc.UnsubscribeSubgroup(ctx, 7, 0), pkg.ErrValidation)
	_, err = svc.ListSubscriptions(ctx, 0)
	assert.ErrorIs(t, err, pkg.ErrValidation)
}

func TestSubscriptionStorageFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(db)
	require.NoError(t, db.Migrator().DropTable(&model.SubscribedMainGroup{}))

	err := svc.SubscribeMainGroups(context.Background(), 42, []uint64{1})
	assert.ErrorIs(t, err, pkg.ErrStorage)
	assert.NotErrorIs(t, err, pkg.ErrValidation)
}

func TestSubscriptionScenario(t *testing.T) {
	svc := NewSubscriptionService(newTestDB(t))
	ctx := context.Background()

	// 未加入主分组 3 直接加入子分组 12
	require.NoError(t, svc.SubscribeSubgroup(ctx, 7, 12, 3))
	subs, err := svc.ListSubscriptions(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, subs.MainGroups)
	require.Len(t, subs.SubGroups, 1)
	assert.Equal(t, uint64(12), subs.SubGroups[0].SubgroupID)

	// 退出主分组 3 后子分组订阅随之移除
	removed, err := svc.UnsubscribeMainGroup(ctx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint64{12}, removed)

	subs, err = svc.ListSubscriptions(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, subs.MainGroups)
	assert.Empty(t, subs.SubGroups)
}

func TestFetchFeed(t *testing.T) {
	db := newTestDB(t)
	feed := NewFeedService(db)
	ctx := context.Background()

	_, err := feed.FetchFeed(ctx, 0)
	assert.ErrorIs(t, err, pkg.ErrValidation)

	posts, err := feed.FetchFeed(ctx, 7)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}
