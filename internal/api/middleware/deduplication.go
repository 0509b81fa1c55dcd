package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-browser/internal/infrastructure/config"
	"recipe-browser/internal/pkg/common"
)

const (
	defaultDedupWindow   = time.Second
	dedupCleanupInterval = 10 * time.Minute
)

// deduplicator 記錄近期 POST 請求的指紋
type deduplicator struct {
	mu          sync.Mutex
	window      time.Duration
	requests    map[string]time.Time
	lastCleanup time.Time
}

// seen 指紋在時間窗內出現過則回傳 true，否則記錄本次請求
func (d *deduplicator) seen(fingerprint string, now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if now.Sub(d.lastCleanup) > dedupCleanupInterval {
		for k, t := range d.requests {
			if now.Sub(t) > 10*d.window {
				delete(d.requests, k)
			}
		}
		d.lastCleanup = now
	}

	if last, exists := d.requests[fingerprint]; exists && now.Sub(last) <= d.window {
		return true
	}
	d.requests[fingerprint] = now
	return false
}

// Deduplication 請求去重中間件，時間窗取自 config.DedupWindow
func Deduplication(cfg *config.Config) gin.HandlerFunc {
	d := &deduplicator{
		window:      defaultDedupWindow,
		requests:    make(map[string]time.Time),
		lastCleanup: time.Now(),
	}
	if cfg != nil && cfg.DedupWindow > 0 {
		d.window = cfg.DedupWindow
	}

	return func(c *gin.Context) {
		// 只處理 POST 請求
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		bodyHash := ""
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("讀取請求體失敗", zap.Error(err))
				c.Next()
				return
			}

			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if bodyHash != "" {
			fingerprint += ":" + bodyHash
		}

		if d.seen(fingerprint, time.Now()) {
			common.LogInfo("重複請求",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.ErrTooManyRequests.Response(false))
			return
		}

		c.Next()
	}
}
