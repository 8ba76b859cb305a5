package nodes

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/wanderlust-ai/server/internal/agent/graph/conversations"
	"github.com/wanderlust-ai/server/internal/agent/model"
	errx "github.com/wanderlust-ai/server/internal/core/error"
	"github.com/wanderlust-ai/server/internal/travel/router"
	"github.com/wanderlust-ai/server/internal/travel/trip"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

const (
	NodeSessionLoader    = "session_loader"
	NodeRuleRouter       = "rule_router"
	NodeSessionPersister = "session_persister"
)

// NewSessionLoaderPreHandler validates the query and pins the conversation ID
// into state.
func NewSessionLoaderPreHandler() func(context.Context, model.QueryInput, *model.AppState) (model.QueryInput, error) {
	return func(ctx context.Context, in model.QueryInput, s *model.AppState) (model.QueryInput, error) {
		in.ConversationID = strings.TrimSpace(in.ConversationID)
		if in.ConversationID == "" {
			return in, errx.Invalid("conversation id is empty")
		}
		s.ConversationID = in.ConversationID
		s.Session = nil
		return in, nil
	}
}

// NewSessionLoaderNode greets new conversations, records the user message and
// puts the stored session into state.
func NewSessionLoaderNode(mm *conversations.MessagesManager) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.QueryInput) (model.QueryInput, error) {
		if _, err := mm.Open(ctx, in.ConversationID); err != nil {
			return in, fmt.Errorf("open conversation: %w", err)
		}
		if err := mm.SaveQuery(ctx, in.ConversationID, in.Query); err != nil {
			return in, fmt.Errorf("save query: %w", err)
		}

		session := mm.LoadSession(ctx, in.ConversationID)
		err := compose.ProcessState(ctx, func(_ context.Context, state *model.AppState) error {
			state.Session = session
			state.StateBefore = session.State
			return nil
		})
		if err != nil {
			return in, fmt.Errorf("failed to access state: %w", err)
		}
		return in, nil
	})
}

// NewRuleRouterNode answers the query against the session held in state.
func NewRuleRouterNode(r *router.Router) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.QueryInput) (*schema.Message, error) {
		var reply string
		err := compose.ProcessState(ctx, func(_ context.Context, state *model.AppState) error {
			if state.Session == nil {
				return fmt.Errorf("missing session in state")
			}
			reply = r.MatchRule(in.Query, state.Session)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to access state: %w", err)
		}
		return schema.AssistantMessage(reply, nil), nil
	})
}

// NewSessionPersisterNode saves the updated session and the reply.
func NewSessionPersisterNode(mm *conversations.MessagesManager) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, out *schema.Message) (*schema.Message, error) {
		var (
			conversationID string
			session        trip.Session
			before         trip.State
		)
		err := compose.ProcessState(ctx, func(_ context.Context, state *model.AppState) error {
			if state.Session == nil {
				return fmt.Errorf("missing session in state")
			}
			conversationID = state.ConversationID
			session = *state.Session
			before = state.StateBefore
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to access state: %w", err)
		}

		if err := mm.SaveSession(ctx, conversationID, &session); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		if err := mm.SaveResponse(ctx, conversationID, out.Content); err != nil {
			return nil, fmt.Errorf("save response: %w", err)
		}

		if before != session.State {
			logx.Debug().
				Str("conversation_id", conversationID).
				Str("from", string(before)).
				Str("to", string(session.State)).
				Msg("session state changed")
		}
		return out, nil
	})
}
