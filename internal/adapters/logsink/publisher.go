package logsink

import (
	"context"

	"masterblog/internal/core/activity"

	"go.uber.org/zap"
)

// Publisher وقتی Redis تنظیم نشده، رویدادها فقط لاگ می‌شوند
type Publisher struct {
	Logger *zap.Logger
}

func NewPublisher(logger *zap.Logger) *Publisher {
	return &Publisher{Logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, events []activity.Event) error {
	for _, ev := range events {
		p.Logger.Info("📝 Post activity",
			zap.String("action", string(ev.Action)),
			zap.Int("postID", ev.PostID),
			zap.Time("at", ev.At),
		)
	}
	return nil
}
