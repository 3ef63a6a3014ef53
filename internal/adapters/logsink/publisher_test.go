package logsink

import (
	"context"
	"testing"

	"masterblog/internal/core/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublishLogsEachEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewPublisher(zap.New(core))

	err := p.Publish(context.Background(), []activity.Event{
		activity.NewEvent(activity.Created, 4),
		activity.NewEvent(activity.Deleted, 2),
	})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "created", entries[0].ContextMap()["action"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["postID"])
}
