package workers

import (
	"context"
	"time"

	activityPort "masterblog/internal/ports/activity"

	"go.uber.org/zap"
)

type ActivityWorker struct {
	Queue     activityPort.ActivityQueue
	Publisher activityPort.ActivityPublisher
	BatchSize int // حداکثر تعداد رویداد در هر بار ارسال
	Interval  time.Duration
	Logger    *zap.Logger
}

func NewActivityWorker(
	queue activityPort.ActivityQueue,
	publisher activityPort.ActivityPublisher,
	batchSize int,
	interval time.Duration,
	logger *zap.Logger,
) *ActivityWorker {
	if batchSize <= 0 {
		batchSize = 100 // مقدار پیش‌فرض
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &ActivityWorker{
		Queue:     queue,
		Publisher: publisher,
		BatchSize: batchSize,
		Interval:  interval,
		Logger:    logger,
	}
}

// Run خالی کردن صف و ارسال رویدادها تا زمان لغو context
func (w *ActivityWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 ActivityWorker started")
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// رویدادهای باقی‌مانده قبل از خروج ارسال می‌شوند
			w.drain(context.Background())
			w.Logger.Info("🛑 Activity worker stopped")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain تا وقتی صف خالی نشده batch به batch ارسال می‌کند
func (w *ActivityWorker) drain(ctx context.Context) {
	for {
		n, err := w.ProcessBatch(ctx)
		if err != nil || n < w.BatchSize {
			return
		}
	}
}

// ProcessBatch یک batch را از صف برداشته و ارسال می‌کند
func (w *ActivityWorker) ProcessBatch(ctx context.Context) (int, error) {
	events, err := w.Queue.Dequeue(ctx, w.BatchSize)
	if err != nil {
		w.Logger.Error("❌ Error fetching activity events:", zap.Error(err))
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	w.Logger.Info("📦 Processing batch", zap.Int("Count", len(events)))
	if err := w.Publisher.Publish(ctx, events); err != nil {
		w.Logger.Error("❌ Error publishing activity batch:", zap.Int("Count", len(events)), zap.Error(err))
		return len(events), err
	}
	return len(events), nil
}
