package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingProvider 直到 release 關閉才回應
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingProvider) Generate(ctx context.Context, _ *Request) (*Response, error) {
	b.started <- struct{}{}
	select {
	case <-b.release:
		return &Response{Content: "done"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (b *blockingProvider) GetModel() string { return "blocking" }
func (b *blockingProvider) Close() error     { return nil }

func TestQueuedProviderGenerate(t *testing.T) {
	inner := &fakeProvider{content: `["step"]`}
	q := NewQueuedProvider(inner, 2, 4)
	defer q.Close()

	resp, err := q.Generate(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, `["step"]`, resp.Content)
	assert.Equal(t, "fake", q.GetModel())

	status := q.Status()
	assert.Equal(t, int64(1), status.ProcessedCount)
	assert.Equal(t, 4, status.MaxQueueSize)
	assert.Equal(t, 2, status.Workers)
}

func TestQueuedProviderFull(t *testing.T) {
	inner := &blockingProvider{started: make(chan struct{}, 4), release: make(chan struct{})}
	q := NewQueuedProvider(inner, 1, 1)
	defer q.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results := make(chan error, 2)
	go func() {
		_, err := q.Generate(ctx, &Request{})
		results <- err
	}()
	<-inner.started

	go func() {
		_, err := q.Generate(ctx, &Request{})
		results <- err
	}()
	require.Eventually(t, func() bool { return q.Status().QueueLength == 1 }, time.Second, 5*time.Millisecond)

	_, err := q.Generate(ctx, &Request{})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(inner.release)
	assert.NoError(t, <-results)
	assert.NoError(t, <-results)
}

func TestQueuedProviderClosed(t *testing.T) {
	q := NewQueuedProvider(&fakeProvider{}, 1, 1)
	require.NoError(t, q.Close())
	require.NoError(t, q.Close())

	_, err := q.Generate(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrQueueClosed)
}
