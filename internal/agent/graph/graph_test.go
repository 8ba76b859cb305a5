package graph

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust-ai/server/internal/agent/graph/conversations"
	"github.com/wanderlust-ai/server/internal/agent/model"
	"github.com/wanderlust-ai/server/internal/agent/repo"
	errx "github.com/wanderlust-ai/server/internal/core/error"
	"github.com/wanderlust-ai/server/internal/travel/planner"
	"github.com/wanderlust-ai/server/internal/travel/trip"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

func newRunner(t *testing.T) (Runner, *repo.MemoryRepository) {
	t.Helper()
	logx.Disable()
	store := repo.NewMemoryRepository(time.Hour)
	var conv model.ConversationConfig
	conv.History.MaxTurns = 20

	r, err := BuildRunner(context.Background(), Config{
		Conversation: conv,
		Planner:      planner.DefaultConfig(),
		Store:        store,
	})
	require.NoError(t, err)
	return r, store
}

func ask(t *testing.T, r Runner, id, query string) string {
	t.Helper()
	reply, err := r.Invoke(context.Background(), model.QueryInput{ConversationID: id, Query: query})
	require.NoError(t, err)
	return reply
}

func TestRunnerMultiTurnPackage(t *testing.T) {
	r, store := newRunner(t)

	assert.Contains(t, ask(t, r, "c1", "Create a travel package for Poland"), "how many people")
	ask(t, r, "c1", "2")

	s, err := store.LoadSession(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, trip.StatePlanningPackage, s.State)
	assert.Equal(t, 2, s.Draft.People)

	ask(t, r, "c1", "900")
	reply := ask(t, r, "c1", "3-7 nights")
	assert.Contains(t, reply, "**Recommended Stay:** 5 Nights")

	s, err = store.LoadSession(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, trip.StateIdle, s.State)
}

func TestRunnerKeepsConversationsApart(t *testing.T) {
	r, _ := newRunner(t)

	ask(t, r, "a", "package for japan")
	assert.Equal(t, "Hello! I can help with **Travel Packages**, **Visas**, **Packing**, **Currency**, or **Suggestions**.",
		ask(t, r, "b", "hello"))
	assert.Contains(t, ask(t, r, "a", "4 people"), "What is your total budget")
}

func TestRunnerTranscript(t *testing.T) {
	r, store := newRunner(t)

	ask(t, r, "c", "Visa from UK to USA")
	h, err := store.LoadHistory(context.Background(), "c")
	require.NoError(t, err)
	require.Len(t, h.Messages, 3)
	assert.Equal(t, conversations.WelcomeMessage, h.Messages[0].Content)

	text, err := r.Transcript(context.Background(), "c")
	require.NoError(t, err)
	assert.Contains(t, text, "you: Visa from UK to USA\n")
	assert.Contains(t, text, "bot: **ESTA Required:**")
}

func TestRunnerOpenGreetsOnce(t *testing.T) {
	r, _ := newRunner(t)

	greeting, err := r.Open(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, conversations.WelcomeMessage, greeting)

	greeting, err = r.Open(context.Background(), "c")
	require.NoError(t, err)
	assert.Empty(t, greeting)
}

func TestRunnerReset(t *testing.T) {
	r, store := newRunner(t)

	ask(t, r, "c", "plan a package for france")
	require.NoError(t, r.Reset(context.Background(), "c"))

	_, err := store.LoadSession(context.Background(), "c")
	assert.True(t, errx.IsNotFound(err))
	n, err := store.GetMessageCount(context.Background(), "c")
	require.NoError(t, err)
	assert.Zero(t, n)

	// the old plan is gone, so "2" is no longer slot data
	assert.Contains(t, ask(t, r, "c", "2"), "I can help with")
}

func TestRunnerTrimsHistory(t *testing.T) {
	logx.Disable()
	store := repo.NewMemoryRepository(0)
	var conv model.ConversationConfig
	conv.History.MaxTurns = 2
	r, err := BuildRunner(context.Background(), Config{Conversation: conv, Planner: planner.DefaultConfig(), Store: store})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		ask(t, r, "c", "hello")
	}
	n, err := store.GetMessageCount(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRunnerRejectsEmptyConversationID(t *testing.T) {
	r, _ := newRunner(t)
	_, err := r.Invoke(context.Background(), model.QueryInput{Query: "hello"})
	require.Error(t, err)
	assert.Equal(t, errx.CodeInvalid, errx.CodeOf(err))
}

func TestRunnerRequiresStore(t *testing.T) {
	_, err := BuildRunner(context.Background(), Config{})
	assert.Error(t, err)
}

func TestRunnerConcurrentConversations(t *testing.T) {
	r, _ := newRunner(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			ctx := context.Background()
			for _, q := range []string{"package for poland", "2", "900", "3-7 nights"} {
				reply, err := r.Invoke(ctx, model.QueryInput{ConversationID: id, Query: q})
				assert.NoError(t, err)
				if q == "3-7 nights" {
					assert.Contains(t, reply, "5 Nights")
				}
			}
		}(fmt.Sprintf("conv-%d", i))
	}
	wg.Wait()
}

func TestKeyedMutexReleasesEntries(t *testing.T) {
	k := newKeyedMutex()
	unlock := k.Lock("a")
	assert.Equal(t, 1, k.size())

	done := make(chan struct{})
	go func() {
		u := k.Lock("a")
		u()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second lock acquired while held")
	case <-time.After(20 * time.Millisecond):
	}
	unlock()
	<-done
	assert.Zero(t, k.size())
}
