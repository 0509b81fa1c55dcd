package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"

	"go.uber.org/zap"
)

// Store 快取介面
// 值一律為字串，結構化資料透過 GetJSON / SetJSON 存取
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Stats() map[string]interface{}
	Close() error
}

// NewStore 依設定建立快取後端
func NewStore(cfg *config.CacheConfig) (Store, error) {
	if !cfg.Enabled {
		common.LogInfo("Cache disabled")
		return disabledStore{}, nil
	}

	switch cfg.Backend {
	case "redis":
		return NewRedisService(cfg)
	case "memory", "":
		return NewManager(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// GetJSON 讀取並解析 JSON 值，未命中時回傳 false
func GetJSON(ctx context.Context, s Store, key string, v interface{}) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrCacheMiss) || errors.Is(err, common.ErrCacheDisabled) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		common.LogWarn("快取內容無法解析",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, nil
	}
	return true, nil
}

// SetJSON 序列化後寫入快取
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.Set(ctx, key, string(data))
}

// disabledStore 停用快取時使用
type disabledStore struct{}

func (disabledStore) Get(context.Context, string) (string, error) {
	return "", common.ErrCacheDisabled
}

func (disabledStore) Set(context.Context, string, string) error {
	return nil
}

func (disabledStore) Stats() map[string]interface{} {
	return map[string]interface{}{"backend": "disabled"}
}

func (disabledStore) Close() error {
	return nil
}
