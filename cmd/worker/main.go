package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"btube-go/internal/config"
	"btube-go/internal/infra/database"
	infraKafka "btube-go/internal/infra/kafka"
	"btube-go/internal/model"
	"btube-go/internal/repository"
	"btube-go/internal/service"
	"btube-go/pkg/logger"

	"go.uber.org/zap"
)

// 账本 worker：作为唯一消费组串行消费播放事件，
// 保证视频播放量与作者余额只有这一个写入方。
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// API 进程负责建表，worker 只做兜底迁移
	if err := database.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.PayoutRequest{},
		&model.Setting{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	engagementService := service.NewEngagementService(db, videoRepo, userRepo, settingRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	viewTopic := cfg.Kafka.Topics["view_events"]
	groupID := "btube-ledger-worker"

	logger.Info("Ledger worker started",
		zap.String("topic", viewTopic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartViewEventConsumer(ctx, cfg.Kafka.Brokers, viewTopic, groupID,
		engagementService.ApplyViewCredit)
}
