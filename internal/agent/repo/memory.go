package repo

import (
	"context"
	"sync"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/patrickmn/go-cache"

	"github.com/wanderlust-ai/server/internal/agent/model"
	errx "github.com/wanderlust-ai/server/internal/core/error"
	"github.com/wanderlust-ai/server/internal/travel/trip"
)

// MemoryRepository is the in-process store used when Redis is not configured.
// Entries expire after ttl without a write; ttl <= 0 keeps them forever.
type MemoryRepository struct {
	mu    sync.Mutex // guards read-modify-write of message lists
	cache *cache.Cache
}

func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	cleanup := time.Duration(0)
	if ttl > 0 {
		cleanup = ttl
	}
	return &MemoryRepository{cache: cache.New(ttl, cleanup)}
}

func memoryMessagesKey(conversationID string) string { return "messages:" + conversationID }
func memorySessionKey(conversationID string) string { return "session:" + conversationID }

func (m *MemoryRepository) messages(conversationID string) []*schema.Message {
	if v, ok := m.cache.Get(memoryMessagesKey(conversationID)); ok {
		return v.([]*schema.Message)
	}
	return nil
}

func (m *MemoryRepository) AddMessage(_ context.Context, conversationID string, message *schema.Message) error {
	if message == nil {
		return errx.Invalid("message is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *message
	current := m.messages(conversationID)
	next := make([]*schema.Message, len(current), len(current)+1)
	copy(next, current)
	m.cache.Set(memoryMessagesKey(conversationID), append(next, &cp), cache.DefaultExpiration)
	return nil
}

func (m *MemoryRepository) LoadHistory(_ context.Context, conversationID string) (*model.ConversationHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.messages(conversationID)
	msgs := make([]*schema.Message, 0, len(current))
	for _, msg := range current {
		cp := *msg
		msgs = append(msgs, &cp)
	}
	return &model.ConversationHistory{ConversationID: conversationID, Messages: msgs}, nil
}

func (m *MemoryRepository) TrimHistory(_ context.Context, conversationID string, keep int) error {
	if keep <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.messages(conversationID)
	if len(current) <= keep {
		return nil
	}
	tail := make([]*schema.Message, keep)
	copy(tail, current[len(current)-keep:])
	m.cache.Set(memoryMessagesKey(conversationID), tail, cache.DefaultExpiration)
	return nil
}

func (m *MemoryRepository) ClearHistory(_ context.Context, conversationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Delete(memoryMessagesKey(conversationID))
	return nil
}

func (m *MemoryRepository) GetMessageCount(_ context.Context, conversationID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages(conversationID)), nil
}

func (m *MemoryRepository) LoadSession(_ context.Context, conversationID string) (*trip.Session, error) {
	v, ok := m.cache.Get(memorySessionKey(conversationID))
	if !ok {
		return nil, errx.New(nil, errx.CodeNotFound, errx.NotFoundMessage)
	}
	s := v.(trip.Session)
	return &s, nil
}

func (m *MemoryRepository) SaveSession(_ context.Context, conversationID string, session *trip.Session) error {
	if session == nil {
		return errx.Invalid("session is nil")
	}
	m.cache.Set(memorySessionKey(conversationID), *session, cache.DefaultExpiration)
	return nil
}

func (m *MemoryRepository) DeleteSession(_ context.Context, conversationID string) error {
	m.cache.Delete(memorySessionKey(conversationID))
	return nil
}

var _ model.Store = (*MemoryRepository)(nil)
