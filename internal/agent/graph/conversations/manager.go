package conversations

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/wanderlust-ai/server/internal/agent/model"
	errx "github.com/wanderlust-ai/server/internal/core/error"
	"github.com/wanderlust-ai/server/internal/travel/trip"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

const WelcomeMessage = "Hello! I'm your Wanderlust AI. How can I help you plan your trip today?"

// QuickTips are example prompts, one per main topic.
var QuickTips = []string{
	"**Plan a Trip:** 'Package for Italy, $2000, 2 people'",
	"**Check Visas:** 'Visa from USA to Japan'",
	"**Local Info:** 'Best time to visit Thailand'",
}

// MessagesManager owns everything persisted for a conversation: the
// transcript kept as Eino messages and the dialogue session.
type MessagesManager struct {
	store         model.Store
	historyWindow int
}

func NewMessagesManager(store model.Store, config model.ConversationConfig) *MessagesManager {
	return &MessagesManager{
		store:         store,
		historyWindow: config.HistoryWindow(),
	}
}

// Open greets a conversation that has no transcript yet. It reports whether
// the welcome message was added.
func (cm *MessagesManager) Open(ctx context.Context, conversationID string) (bool, error) {
	n, err := cm.store.GetMessageCount(ctx, conversationID)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := cm.store.AddMessage(ctx, conversationID, schema.AssistantMessage(WelcomeMessage, nil)); err != nil {
		return false, err
	}
	return true, nil
}

// LoadSession returns the stored session. Nothing stored, or a store that
// cannot be read, yields a fresh idle session so the turn can still be answered.
func (cm *MessagesManager) LoadSession(ctx context.Context, conversationID string) *trip.Session {
	s, err := cm.store.LoadSession(ctx, conversationID)
	if err == nil {
		return s
	}
	if !errx.IsNotFound(err) {
		logx.Warn().Err(err).Str("conversation_id", conversationID).Msg("session unreadable, starting fresh")
	}
	return trip.NewSession()
}

func (cm *MessagesManager) SaveSession(ctx context.Context, conversationID string, s *trip.Session) error {
	return cm.store.SaveSession(ctx, conversationID, s)
}

func (cm *MessagesManager) SaveQuery(ctx context.Context, conversationID string, query string) error {
	return cm.store.AddMessage(ctx, conversationID, schema.UserMessage(query))
}

// SaveResponse records the reply and trims the transcript to the window.
func (cm *MessagesManager) SaveResponse(ctx context.Context, conversationID string, content string) error {
	if err := cm.store.AddMessage(ctx, conversationID, schema.AssistantMessage(content, nil)); err != nil {
		return err
	}
	return cm.store.TrimHistory(ctx, conversationID, cm.historyWindow)
}

func (cm *MessagesManager) History(ctx context.Context, conversationID string) ([]*schema.Message, error) {
	h, err := cm.store.LoadHistory(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return h.Messages, nil
}

// Transcript renders the history one "role: content" block per message.
func (cm *MessagesManager) Transcript(ctx context.Context, conversationID string) (string, error) {
	msgs, err := cm.History(ctx, conversationID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, msg := range msgs {
		if msg == nil || msg.Content == "" {
			continue
		}
		switch msg.Role {
		case schema.User:
			b.WriteString("you: ")
		case schema.Assistant:
			b.WriteString("bot: ")
		default:
			continue
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Reset drops the session and transcript of a conversation.
func (cm *MessagesManager) Reset(ctx context.Context, conversationID string) error {
	if err := cm.store.DeleteSession(ctx, conversationID); err != nil {
		return err
	}
	return cm.store.ClearHistory(ctx, conversationID)
}
