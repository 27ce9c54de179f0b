package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := NewWithLogrus(base, RequestIDKey, UserIDKey)

	t.Run("key value args become fields", func(t *testing.T) {
		hook.Reset()
		l.Info(context.Background(), "comment added", "blog_id", "b1", "err", errors.New("boom"))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "comment added", entry.Message)
		assert.Equal(t, "b1", entry.Data["blog_id"])
		assert.Equal(t, "boom", entry.Data["err"])
	})

	t.Run("context values are copied", func(t *testing.T) {
		hook.Reset()
		userID := uuid.New()
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
		ctx = context.WithValue(ctx, UserIDKey, userID)

		l.Warn(ctx, "cache invalidation failed")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, "req-1", entry.Data[RequestIDKey])
		assert.Equal(t, userID.String(), entry.Data[UserIDKey])
	})

	t.Run("odd args keep the dangling value", func(t *testing.T) {
		hook.Reset()
		l.Error(context.Background(), "dangling", "only-key")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "only-key", entry.Data["extra"])
	})
}

func TestNewCopiesRequestMetadata(t *testing.T) {
	l := New("debug")
	assert.Equal(t, []string{RequestIDKey, UserIDKey, ClientIPKey, UserAgentKey}, l.keys)
	assert.Equal(t, logrus.DebugLevel, l.log.GetLevel())
}
