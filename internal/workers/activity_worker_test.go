package workers_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"masterblog/internal/adapters/memory"
	"masterblog/internal/core/activity"
	"masterblog/internal/workers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublisher struct {
	mu      sync.Mutex
	batches [][]activity.Event
	err     error
}

func (p *fakePublisher) Publish(ctx context.Context, events []activity.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, events)
	return p.err
}

func (p *fakePublisher) total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.batches {
		n += len(b)
	}
	return n
}

func fill(t *testing.T, q *memory.ActivityQueueMemory, n int) {
	for i := 1; i <= n; i++ {
		require.NoError(t, q.Enqueue(context.Background(), activity.NewEvent(activity.Created, i)))
	}
}

func TestProcessBatch(t *testing.T) {
	q := memory.NewActivityQueueMemory(10)
	pub := &fakePublisher{}
	w := workers.NewActivityWorker(q, pub, 2, time.Millisecond, zap.NewNop())
	fill(t, q, 3)

	n, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.Len(t, pub.batches, 2, "empty batches are not published")
	assert.Equal(t, 3, pub.batches[1][0].PostID)
}

func TestProcessBatchPublisherError(t *testing.T) {
	q := memory.NewActivityQueueMemory(10)
	pub := &fakePublisher{err: errors.New("boom")}
	w := workers.NewActivityWorker(q, pub, 5, time.Millisecond, zap.NewNop())
	fill(t, q, 2)

	n, err := w.ProcessBatch(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 2, n)
}

func TestRunDrainsQueueAndStops(t *testing.T) {
	q := memory.NewActivityQueueMemory(100)
	pub := &fakePublisher{}
	w := workers.NewActivityWorker(q, pub, 10, 5*time.Millisecond, zap.NewNop())
	fill(t, q, 25)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return pub.total() == 25 }, time.Second, 5*time.Millisecond)

	fill(t, q, 3)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, 28, pub.total(), "pending events are flushed on shutdown")
}

func TestNewActivityWorkerDefaults(t *testing.T) {
	w := workers.NewActivityWorker(memory.NewActivityQueueMemory(1), &fakePublisher{}, 0, 0, zap.NewNop())
	assert.Equal(t, 100, w.BatchSize)
	assert.Equal(t, time.Second, w.Interval)
}
