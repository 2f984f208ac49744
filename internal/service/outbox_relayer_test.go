package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"UAsync_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRelayerDrain(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	subs := NewSubscriptionService(db)
	require.NoError(t, subs.SubscribeMainGroups(ctx, 1, []uint64{1, 2}))
	require.NoError(t, subs.SubscribeSubgroup(ctx, 2, 10, 1))

	var seen []string
	fail := true
	sender := func(ctx context.Context, ob *model.SubscriptionOutbox) error {
		seen = append(seen, ob.EventType)
		if fail && ob.UserID == 2 {
			return errors.New("broker unavailable")
		}
		return nil
	}
	r := NewOutboxRelayer(db, sender, time.Millisecond)

	assert.Equal(t, 1, r.drainOnce(ctx))
	assert.Equal(t, []string{model.EventSubscribeMainGroups, model.EventSubscribeSubgroup}, seen)

	var failed model.SubscriptionOutbox
	require.NoError(t, db.Where("user_id = ?", 2).First(&failed).Error)
	assert.Equal(t, int8(model.OutboxFailed), failed.Status)
	assert.Equal(t, 1, failed.Retry)

	// 下一轮失败事件重新入队并投递成功
	fail = false
	seen = nil
	assert.Equal(t, 1, r.drainOnce(ctx))
	assert.Equal(t, []string{model.EventSubscribeSubgroup}, seen)
	assert.Zero(t, r.drainOnce(ctx))
}

func TestOutboxRelayerRunStopsOnCancel(t *testing.T) {
	r := NewOutboxRelayer(newTestDB(t), LogSender, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relayer did not stop")
	}
}
