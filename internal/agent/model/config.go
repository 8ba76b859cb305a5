package model

import "time"

// ================ Config ================
type ConversationConfig struct {
	ID      string        `envconfig:"CONVERSATION_ID"`
	TTL     time.Duration `envconfig:"CONVERSATION_TTL" default:"30m"`
	History struct {
		MaxTurns int `envconfig:"CONVERSATION_HISTORY_MAX_TURNS" default:"20"`
	}
}

// HistoryWindow returns how many messages to keep, two per turn.
func (c ConversationConfig) HistoryWindow() int {
	if c.History.MaxTurns <= 0 {
		return 0
	}
	return c.History.MaxTurns * 2
}
