package service

import (
	"context"
	"log/slog"
	"time"

	"UAsync_Community/internal/model"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

const (
	outboxBatchSize = 200
	outboxMaxRetry  = 5
)

type Sender func(ctx context.Context, ob *model.SubscriptionOutbox) error

// OutboxRelayer 轮询订阅事件表，把待投递事件交给 sender
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	maxRetry  int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender, interval time.Duration) *OutboxRelayer {
	if interval <= 0 {
		interval = time.Second
	}
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: outboxBatchSize,
		maxRetry:  outboxMaxRetry,
		interval:  interval,
		sender:    sender,
	}
}

// Run 阻塞直到 ctx 取消
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

// drainOnce 失败事件先重新入队，再按批投递；返回成功投递的条数
func (r *OutboxRelayer) drainOnce(ctx context.Context) int {
	if _, err := r.repo.Requeue(ctx, r.maxRetry); err != nil {
		slog.Error("outbox: requeue failed", "err", err)
	}

	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		slog.Error("outbox: query failed", "err", err)
		return 0
	}
	sent := 0
	for i := range rows {
		ob := rows[i]
		if err := r.sender(ctx, &ob); err != nil {
			slog.Warn("outbox: send failed", "id", ob.ID, "event_type", ob.EventType, "retry", ob.Retry, "err", err)
			pkg.OutboxDelivered.WithLabelValues("error").Inc()
			if err := r.repo.MarkFailed(ctx, ob.ID); err != nil {
				slog.Error("outbox: mark failed", "id", ob.ID, "err", err)
			}
			continue
		}
		pkg.OutboxDelivered.WithLabelValues("ok").Inc()
		if err := r.repo.MarkSent(ctx, ob.ID); err != nil {
			slog.Error("outbox: mark sent", "id", ob.ID, "err", err)
			continue
		}
		sent++
	}
	return sent
}

// LogSender 未配置 Kafka 时使用，只打印事件
func LogSender(ctx context.Context, ob *model.SubscriptionOutbox) error {
	slog.Info("outbox: event", "type", ob.EventType, "user_id", ob.UserID, "main_group_id", ob.MainGroupID, "payload", ob.Payload)
	return nil
}

func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.SubscriptionOutbox) error {
		return p.PublishSubscriptionEvent(ctx, ob.UserID, ob.EventType, ob.Payload)
	}
}
