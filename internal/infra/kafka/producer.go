package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"btube-go/internal/config"
	"btube-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// ViewEvent 播放事件消息体
// API 侧每确认一次有效播放（已通过 Redis 去重）就发送一条，
// 由单一消费组的账本 worker 串行计收，保证余额变更只有一个写入方
type ViewEvent struct {
	VideoID    int64 `json:"video_id"`
	ViewerID   int64 `json:"viewer_id"`
	OccurredAt int64 `json:"occurred_at"` // Unix 秒
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendViewEvent 发送播放事件到 Kafka
func SendViewEvent(ctx context.Context, topic string, event *ViewEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal view event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		// 以视频 ID 为 key，同一视频的播放事件落在同一分区内有序
		Key:   []byte(fmt.Sprintf("video-%d", event.VideoID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send view event: %w", err)
	}

	logger.Debug("View event sent",
		zap.Int64("video_id", event.VideoID),
		zap.Int64("viewer_id", event.ViewerID),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
