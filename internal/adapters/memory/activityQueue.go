package memory

import (
	"context"

	"masterblog/internal/core/activity"
	activityPort "masterblog/internal/ports/activity"
)

// ActivityQueueMemory صف محدود مبتنی بر channel
type ActivityQueueMemory struct {
	ch chan activity.Event
}

func NewActivityQueueMemory(size int) *ActivityQueueMemory {
	if size <= 0 {
		size = 1
	}
	return &ActivityQueueMemory{ch: make(chan activity.Event, size)}
}

// Enqueue هیچ‌وقت بلاک نمی‌شود؛ اگر صف پر باشد ErrQueueFull برمی‌گرداند
func (q *ActivityQueueMemory) Enqueue(ctx context.Context, ev activity.Event) error {
	select {
	case q.ch <- ev:
		return nil
	default:
		return activityPort.ErrQueueFull
	}
}

func (q *ActivityQueueMemory) Dequeue(ctx context.Context, limit int) ([]activity.Event, error) {
	var events []activity.Event
	for len(events) < limit {
		select {
		case ev := <-q.ch:
			events = append(events, ev)
		case <-ctx.Done():
			return events, ctx.Err()
		default:
			return events, nil
		}
	}
	return events, nil
}

func (q *ActivityQueueMemory) Len() int {
	return len(q.ch)
}
