package activity

import (
	"context"
	"errors"
	"masterblog/internal/core/activity"
)

var ErrQueueFull = errors.New("activity queue is full")

// ActivityQueue صف رویدادهای تغییر پست‌ها بین سرویس و worker
type ActivityQueue interface {
	Enqueue(ctx context.Context, ev activity.Event) error
	// Dequeue حداکثر limit رویداد برمی‌گرداند و منتظر نمی‌ماند
	Dequeue(ctx context.Context, limit int) ([]activity.Event, error)
}

// ActivityPublisher مقصد نهایی رویدادها (Redis یا لاگ)
type ActivityPublisher interface {
	Publish(ctx context.Context, events []activity.Event) error
}
