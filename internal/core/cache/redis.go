package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisKeyPrefix = "recipe-browser:"

// RedisService Redis 快取後端，多個實例共用快取時使用
type RedisService struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisService 建立 Redis 連線並測試
func NewRedisService(cfg *config.CacheConfig) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已連線", zap.String("addr", cfg.RedisAddr))

	return &RedisService{
		client: client,
		config: cfg,
	}, nil
}

// Get 取得快取
func (s *RedisService) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	return data, nil
}

// Set 寫入快取
func (s *RedisService) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Stats Redis 連線池統計
func (s *RedisService) Stats() map[string]interface{} {
	pool := s.client.PoolStats()
	return map[string]interface{}{
		"backend":     "redis",
		"addr":        s.config.RedisAddr,
		"hits":        pool.Hits,
		"misses":      pool.Misses,
		"timeouts":    pool.Timeouts,
		"total_conns": pool.TotalConns,
		"idle_conns":  pool.IdleConns,
	}
}

// Close 關閉連線
func (s *RedisService) Close() error {
	return s.client.Close()
}
