package model

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/wanderlust-ai/server/internal/travel/trip"
)

type ConversationRepository interface {
	// AddMessage appends a message to the conversation transcript
	AddMessage(ctx context.Context, conversationID string, message *schema.Message) error

	// LoadHistory retrieves the transcript of a conversation
	LoadHistory(ctx context.Context, conversationID string) (*ConversationHistory, error)

	// TrimHistory keeps only the newest keep messages; keep <= 0 keeps everything
	TrimHistory(ctx context.Context, conversationID string, keep int) error

	// ClearHistory removes the whole transcript
	ClearHistory(ctx context.Context, conversationID string) error

	// GetMessageCount returns the number of stored messages
	GetMessageCount(ctx context.Context, conversationID string) (int, error)
}

// SessionRepository stores the dialogue session between turns. LoadSession
// returns an errx not-found error when nothing is stored.
type SessionRepository interface {
	LoadSession(ctx context.Context, conversationID string) (*trip.Session, error)
	SaveSession(ctx context.Context, conversationID string, session *trip.Session) error
	DeleteSession(ctx context.Context, conversationID string) error
}

// Store is everything a conversation needs persisted.
type Store interface {
	ConversationRepository
	SessionRepository
}

// ConversationHistory represents loaded conversation data with metadata.
type ConversationHistory struct {
	ConversationID string
	Messages       []*schema.Message
}
