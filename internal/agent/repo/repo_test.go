package repo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust-ai/server/internal/agent/model"
	errx "github.com/wanderlust-ai/server/internal/core/error"
	"github.com/wanderlust-ai/server/internal/travel/trip"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

func newRedisRepo(t *testing.T, ttl time.Duration) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisRepository(rdb, ttl), mr
}

func stores(t *testing.T) map[string]model.Store {
	logx.Disable()
	r, _ := newRedisRepo(t, time.Hour)
	return map[string]model.Store{
		"redis":  r,
		"memory": NewMemoryRepository(time.Hour),
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.AddMessage(ctx, "c1", schema.UserMessage("visa from uk to usa")))
			require.NoError(t, store.AddMessage(ctx, "c1", schema.AssistantMessage("**ESTA Required**", nil)))
			require.NoError(t, store.AddMessage(ctx, "c2", schema.UserMessage("hello")))

			h, err := store.LoadHistory(ctx, "c1")
			require.NoError(t, err)
			require.Len(t, h.Messages, 2)
			assert.Equal(t, "c1", h.ConversationID)
			assert.Equal(t, schema.User, h.Messages[0].Role)
			assert.Equal(t, "visa from uk to usa", h.Messages[0].Content)
			assert.Equal(t, schema.Assistant, h.Messages[1].Role)

			n, err := store.GetMessageCount(ctx, "c2")
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestEmptyHistory(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			h, err := store.LoadHistory(context.Background(), "nobody")
			require.NoError(t, err)
			assert.Empty(t, h.Messages)

			n, err := store.GetMessageCount(context.Background(), "nobody")
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestTrimAndClearHistory(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, q := range []string{"one", "two", "three", "four", "five"} {
				require.NoError(t, store.AddMessage(ctx, "c", schema.UserMessage(q)))
			}

			require.NoError(t, store.TrimHistory(ctx, "c", 0))
			n, _ := store.GetMessageCount(ctx, "c")
			assert.Equal(t, 5, n)

			require.NoError(t, store.TrimHistory(ctx, "c", 2))
			h, err := store.LoadHistory(ctx, "c")
			require.NoError(t, err)
			require.Len(t, h.Messages, 2)
			assert.Equal(t, "four", h.Messages[0].Content)
			assert.Equal(t, "five", h.Messages[1].Content)

			require.NoError(t, store.ClearHistory(ctx, "c"))
			n, _ = store.GetMessageCount(ctx, "c")
			assert.Zero(t, n)
		})
	}
}

func TestSessionRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.LoadSession(ctx, "c")
			require.Error(t, err)
			assert.True(t, errx.IsNotFound(err))

			s := trip.NewSession()
			s.State = trip.StatePlanningPackage
			s.Draft = trip.Draft{Country: "poland", People: 2}
			s.Pending = trip.SlotBudget
			require.NoError(t, store.SaveSession(ctx, "c", s))

			// later changes to the caller's copy are not stored
			s.Draft.People = 9

			got, err := store.LoadSession(ctx, "c")
			require.NoError(t, err)
			assert.Equal(t, trip.StatePlanningPackage, got.State)
			assert.Equal(t, trip.Draft{Country: "poland", People: 2}, got.Draft)
			assert.Equal(t, trip.SlotBudget, got.Pending)

			require.NoError(t, store.DeleteSession(ctx, "c"))
			_, err = store.LoadSession(ctx, "c")
			assert.True(t, errx.IsNotFound(err))
		})
	}
}

func TestRedisKeysCarryTTL(t *testing.T) {
	logx.Disable()
	r, mr := newRedisRepo(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, r.AddMessage(ctx, "c", schema.UserMessage("hi")))
	require.NoError(t, r.SaveSession(ctx, "c", trip.NewSession()))

	assert.Equal(t, 10*time.Minute, mr.TTL("conversation:c:messages"))
	assert.Equal(t, 10*time.Minute, mr.TTL("conversation:c:session"))

	mr.FastForward(11 * time.Minute)
	_, err := r.LoadSession(ctx, "c")
	assert.True(t, errx.IsNotFound(err))
	n, err := r.GetMessageCount(ctx, "c")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisCorruptSession(t *testing.T) {
	logx.Disable()
	r, mr := newRedisRepo(t, 0)
	require.NoError(t, mr.Set("conversation:c:session", "{not json"))

	_, err := r.LoadSession(context.Background(), "c")
	require.Error(t, err)
	assert.Equal(t, errx.CodeCodec, errx.CodeOf(err))
}

func TestRedisUnavailable(t *testing.T) {
	logx.Disable()
	r, mr := newRedisRepo(t, time.Minute)
	mr.Close()

	err := r.SaveSession(context.Background(), "c", trip.NewSession())
	require.Error(t, err)
	assert.Equal(t, errx.CodeStore, errx.CodeOf(err))
}

func TestMemoryRepositoryExpires(t *testing.T) {
	m := NewMemoryRepository(20 * time.Millisecond)
	ctx := context.Background()
	require.NoError(t, m.SaveSession(ctx, "c", trip.NewSession()))

	time.Sleep(40 * time.Millisecond)
	_, err := m.LoadSession(ctx, "c")
	assert.True(t, errx.IsNotFound(err))
}

func TestMemoryRejectsNil(t *testing.T) {
	m := NewMemoryRepository(0)
	assert.Equal(t, errx.CodeInvalid, errx.CodeOf(m.AddMessage(context.Background(), "c", nil)))
	assert.Equal(t, errx.CodeInvalid, errx.CodeOf(m.SaveSession(context.Background(), "c", nil)))
}
