package ai

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"recipe-browser/internal/pkg/common"

	"go.uber.org/zap"
)

var (
	// ErrQueueFull 隊列已滿
	ErrQueueFull = errors.New("ai request queue is full")
	// ErrQueueClosed 隊列已關閉
	ErrQueueClosed = errors.New("ai request queue is closed")
)

// queuedRequest 隊列請求
type queuedRequest struct {
	ctx    context.Context
	req    *Request
	result chan queuedResult
}

// queuedResult 處理結果
type queuedResult struct {
	resp *Response
	err  error
}

// QueueStatus 隊列狀態
type QueueStatus struct {
	QueueLength    int   `json:"queue_length"`
	ProcessedCount int64 `json:"processed_count"`
	MaxQueueSize   int   `json:"max_queue_size"`
	Workers        int   `json:"workers"`
}

// QueuedProvider 以固定數量的 worker 呼叫上游模型，避免同時送出過多請求
type QueuedProvider struct {
	inner     Provider
	queue     chan *queuedRequest
	done      chan struct{}
	workers   int
	processed int64
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewQueuedProvider 建立隊列並啟動 worker
func NewQueuedProvider(inner Provider, workers, maxSize int) *QueuedProvider {
	if workers < 1 {
		workers = 1
	}
	if maxSize < 1 {
		maxSize = workers
	}

	q := &QueuedProvider{
		inner:   inner,
		queue:   make(chan *queuedRequest, maxSize),
		done:    make(chan struct{}),
		workers: workers,
	}

	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}

	common.LogInfo("AI 請求隊列已啟動",
		zap.Int("workers", workers),
		zap.Int("max_queue_size", maxSize),
	)
	return q
}

func (q *QueuedProvider) worker(id int) {
	defer q.wg.Done()

	for {
		select {
		case item := <-q.queue:
			if err := item.ctx.Err(); err != nil {
				item.result <- queuedResult{err: err}
				continue
			}
			resp, err := q.inner.Generate(item.ctx, item.req)
			atomic.AddInt64(&q.processed, 1)
			item.result <- queuedResult{resp: resp, err: err}
		case <-q.done:
			common.LogDebug("AI worker 結束", zap.Int("worker", id))
			return
		}
	}
}

// Generate 將請求放入隊列並等待結果
func (q *QueuedProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	item := &queuedRequest{
		ctx:    ctx,
		req:    req,
		result: make(chan queuedResult, 1),
	}

	select {
	case <-q.done:
		return nil, ErrQueueClosed
	default:
	}

	select {
	case q.queue <- item:
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		common.LogWarn("AI 請求隊列已滿", zap.Int("queue_length", len(q.queue)))
		return nil, ErrQueueFull
	}

	select {
	case res := <-item.result:
		return res.resp, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-q.done:
		return nil, ErrQueueClosed
	}
}

// GetModel 目前使用的模型名稱
func (q *QueuedProvider) GetModel() string {
	return q.inner.GetModel()
}

// Status 隊列狀態
func (q *QueuedProvider) Status() QueueStatus {
	return QueueStatus{
		QueueLength:    len(q.queue),
		ProcessedCount: atomic.LoadInt64(&q.processed),
		MaxQueueSize:   cap(q.queue),
		Workers:        q.workers,
	}
}

// Close 停止 worker 並關閉上游連線
func (q *QueuedProvider) Close() error {
	var err error
	q.closeOnce.Do(func() {
		close(q.done)
		q.wg.Wait()
		err = q.inner.Close()
	})
	return err
}
