package kafka

import (
	"context"
	"encoding/json"
	"time"

	"btube-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ViewEventHandler 处理播放事件的回调函数
type ViewEventHandler func(event *ViewEvent) error

// StartViewEventConsumer 启动播放事件消费者（阻塞，需在 goroutine 或独立进程中运行）
// ctx 取消后会自动停止
func StartViewEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler ViewEventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka view event consumer stopped")
	}()

	logger.Info("Kafka view event consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var event ViewEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("Failed to unmarshal view event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(&event); err != nil {
			logger.Error("Failed to handle view event",
				zap.Int64("video_id", event.VideoID),
				zap.Error(err),
			)
		}
	}
}
