package redis

import (
	"context"
	"fmt"
	"time"

	"btube-go/internal/config"
	"btube-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var Client *redis.Client

// Init 初始化Redis客户端
func Init(cfg *config.RedisConfig) error {
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", cfg.PoolSize),
	)

	return nil
}

// Close 关闭Redis连接
func Close() error {
	if Client == nil {
		return nil
	}
	logger.Info("Redis connection closed")
	return Client.Close()
}

// Get 获取Redis客户端实例
func Get() *redis.Client {
	return Client
}

// MarkViewOnce 播放去重：同一用户对同一视频在窗口期内只计一次播放。
// 返回 true 表示这是窗口内的第一次播放，应当计收。
func MarkViewOnce(ctx context.Context, viewerID, videoID int64, window time.Duration) (bool, error) {
	key := fmt.Sprintf("view:%d:%d", viewerID, videoID)
	ok, err := Client.SetNX(ctx, key, 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark view: %w", err)
	}
	return ok, nil
}

// CacheSet 写入带 TTL 的缓存值
func CacheSet(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return Client.Set(ctx, key, value, ttl).Err()
}

// CacheGet 读取缓存值，未命中返回 (nil, nil)
func CacheGet(ctx context.Context, key string) ([]byte, error) {
	val, err := Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// CacheDel 删除缓存键
func CacheDel(ctx context.Context, keys ...string) error {
	return Client.Del(ctx, keys...).Err()
}
