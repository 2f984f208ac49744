package pkg

import (
	"context"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// HeaderEventType 消费方不解析 payload 即可按事件类型过滤
const HeaderEventType = "event_type"

// KafkaProducer 发布订阅变更事件
type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaProducer(cfg KafkaConfig) *KafkaProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		// relayer 逐条同步发送，不等待攒批
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}
}

func (p *KafkaProducer) Topic() string {
	return p.topic
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// PublishSubscriptionEvent 以 user_id 作为 key，同一用户的事件落在同一分区并保持顺序
func (p *KafkaProducer) PublishSubscriptionEvent(ctx context.Context, userID uint64, eventType string, payload []byte) error {
	return p.writer.WriteMessages(ctx, subscriptionMessage(userID, eventType, payload))
}

func subscriptionMessage(userID uint64, eventType string, payload []byte) kafka.Message {
	return kafka.Message{
		Key:     []byte(strconv.FormatUint(userID, 10)),
		Value:   payload,
		Headers: []kafka.Header{{Key: HeaderEventType, Value: []byte(eventType)}},
	}
}
