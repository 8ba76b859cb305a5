package model

import (
	"github.com/wanderlust-ai/server/internal/travel/trip"
)

// AppState stores per-invocation state for the Eino Graph.
//   - Registered as Graph Local State via compose.WithGenLocalState.
//   - Read and written only inside state handlers or compose.ProcessState,
//     which Eino serializes.
//   - Persistence goes through the conversations manager, never through
//     AppState directly.
type AppState struct {
	ConversationID string
	Session        *trip.Session
	StateBefore    trip.State
}

// QueryInput represents the input for processing user queries.
type QueryInput struct {
	ConversationID string `json:"conversation_id"`
	Query          string `json:"query"`
}
