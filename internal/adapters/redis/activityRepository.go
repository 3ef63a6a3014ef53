package redis

import (
	"context"
	"fmt"

	"masterblog/internal/core/activity"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const ActivityKey = "posts:activity"

type ActivityRepositoryRedis struct {
	Client redis.Cmdable
	MaxLen int64 // تعداد رویدادهای نگه‌داشته‌شده در ZSET
	Logger *zap.Logger
}

func NewActivityRepositoryRedis(client redis.Cmdable, maxLen int64, logger *zap.Logger) *ActivityRepositoryRedis {
	return &ActivityRepositoryRedis{
		Client: client,
		MaxLen: maxLen,
		Logger: logger,
	}
}

// Publish: اضافه کردن رویدادها به ZSET فید فعالیت و حذف قدیمی‌ترها
func (r *ActivityRepositoryRedis) Publish(ctx context.Context, events []activity.Event) error {
	if len(events) == 0 {
		return nil
	}

	members := make([]*redis.Z, 0, len(events))
	for _, ev := range events {
		members = append(members, &redis.Z{
			Score:  float64(ev.At.UnixNano()),
			Member: ev.Member(),
		})
	}

	pipe := r.Client.TxPipeline()
	pipe.ZAdd(ctx, ActivityKey, members...)
	if r.MaxLen > 0 {
		// فقط MaxLen رویداد آخر باقی می‌ماند
		pipe.ZRemRangeByRank(ctx, ActivityKey, 0, -r.MaxLen-1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish %d activity events: %w", len(events), err)
	}

	r.Logger.Debug("Added events to activity feed", zap.String("key", ActivityKey), zap.Int("count", len(events)))
	return nil
}

// Recent آخرین رویدادها، جدیدترین اول
func (r *ActivityRepositoryRedis) Recent(ctx context.Context, limit int64) ([]string, error) {
	return r.Client.ZRevRange(ctx, ActivityKey, 0, limit-1).Result()
}
