package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/wanderlust-ai/server/internal/agent/graph/conversations"
	"github.com/wanderlust-ai/server/internal/agent/graph/nodes"
	"github.com/wanderlust-ai/server/internal/agent/graph/observers"
	"github.com/wanderlust-ai/server/internal/agent/model"
	errx "github.com/wanderlust-ai/server/internal/core/error"
	"github.com/wanderlust-ai/server/internal/travel/dialogue"
	"github.com/wanderlust-ai/server/internal/travel/planner"
	"github.com/wanderlust-ai/server/internal/travel/router"
	"github.com/wanderlust-ai/server/internal/travel/visa"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

const maxRunSteps = 10

// Runner executes the compiled turn graph. Turns of one conversation run one
// at a time; different conversations run in parallel.
type Runner interface {
	Invoke(ctx context.Context, in model.QueryInput) (string, error)
	// Open greets a conversation without a transcript and returns the greeting, or "".
	Open(ctx context.Context, conversationID string) (string, error)
	Reset(ctx context.Context, conversationID string) error
	Transcript(ctx context.Context, conversationID string) (string, error)
}

// Config holds everything needed to compose the turn graph end-to-end.
type Config struct {
	Conversation  model.ConversationConfig
	Planner       planner.Config
	Store         model.Store
	RouterOptions []router.Option
}

// GraphConfig holds all configuration needed to build the graph
type GraphConfig struct {
	MessagesManager *conversations.MessagesManager
	Router          *router.Router
}

// GraphBuilder handles the construction of the turn graph
type GraphBuilder struct {
	config *GraphConfig
	graph  *compose.Graph[model.QueryInput, *schema.Message]
}

type graphRunner struct {
	runnable compose.Runnable[model.QueryInput, *schema.Message]
	mm       *conversations.MessagesManager
	locks    *keyedMutex
}

func (r *graphRunner) Invoke(ctx context.Context, in model.QueryInput) (string, error) {
	id := strings.TrimSpace(in.ConversationID)
	if id == "" {
		return "", errx.Invalid("conversation id is empty")
	}
	unlock := r.locks.Lock(id)
	defer unlock()

	out, err := r.runnable.Invoke(ctx, model.QueryInput{
		ConversationID: id,
		Query:          in.Query,
	}, compose.WithCallbacks(observers.NewAllCallbacks()))
	if err != nil {
		logx.Error().Err(err).Str("conversation_id", id).Msg("turn failed")
		return "", err
	}
	if out == nil {
		return "", nil
	}
	return out.Content, nil
}

func (r *graphRunner) Open(ctx context.Context, conversationID string) (string, error) {
	unlock := r.locks.Lock(conversationID)
	defer unlock()

	created, err := r.mm.Open(ctx, conversationID)
	if err != nil || !created {
		return "", err
	}
	return conversations.WelcomeMessage, nil
}

func (r *graphRunner) Reset(ctx context.Context, conversationID string) error {
	unlock := r.locks.Lock(conversationID)
	defer unlock()

	if err := r.mm.Reset(ctx, conversationID); err != nil {
		return err
	}
	logx.Info().Str("conversation_id", conversationID).Msg("conversation reset")
	return nil
}

func (r *graphRunner) Transcript(ctx context.Context, conversationID string) (string, error) {
	unlock := r.locks.Lock(conversationID)
	defer unlock()
	return r.mm.Transcript(ctx, conversationID)
}

// BuildRunner wires the travel core and the store into the graph and returns a Runner.
func BuildRunner(ctx context.Context, cfg Config) (Runner, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("conversation store is nil")
	}

	calc := planner.NewCalculator(cfg.Planner)
	rt := router.New(dialogue.NewManager(calc), visa.NewEngine(nil), cfg.RouterOptions...)
	mm := conversations.NewMessagesManager(cfg.Store, cfg.Conversation)

	runnable, err := BuildGraph(ctx, &GraphConfig{
		MessagesManager: mm,
		Router:          rt,
	})
	if err != nil {
		return nil, err
	}

	logx.Debug().Strs("rules", rt.RuleNames()).Msg("Turn graph built successfully")
	return &graphRunner{runnable: runnable, mm: mm, locks: newKeyedMutex()}, nil
}

// BuildGraph constructs and returns the compiled turn graph
func BuildGraph(ctx context.Context, config *GraphConfig) (compose.Runnable[model.QueryInput, *schema.Message], error) {
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.MessagesManager == nil {
		return nil, fmt.Errorf("messages manager is nil")
	}
	if config.Router == nil {
		return nil, fmt.Errorf("router is nil")
	}

	builder := &GraphBuilder{
		config: config,
		graph: compose.NewGraph[model.QueryInput, *schema.Message](
			compose.WithGenLocalState(func(ctx context.Context) *model.AppState {
				return &model.AppState{}
			}),
		),
	}

	if err := builder.addNodes(); err != nil {
		return nil, err
	}
	if err := builder.addEdges(); err != nil {
		return nil, err
	}
	return builder.compile(ctx)
}

// addNodes adds all processing nodes to the graph
func (b *GraphBuilder) addNodes() error {
	if err := b.graph.AddLambdaNode(nodes.NodeSessionLoader,
		nodes.NewSessionLoaderNode(b.config.MessagesManager),
		compose.WithNodeName(nodes.NodeSessionLoader),
		compose.WithStatePreHandler(nodes.NewSessionLoaderPreHandler()),
	); err != nil {
		return fmt.Errorf("error adding %s node: %w", nodes.NodeSessionLoader, err)
	}

	if err := b.graph.AddLambdaNode(nodes.NodeRuleRouter,
		nodes.NewRuleRouterNode(b.config.Router),
		compose.WithNodeName(nodes.NodeRuleRouter),
	); err != nil {
		return fmt.Errorf("error adding %s node: %w", nodes.NodeRuleRouter, err)
	}

	if err := b.graph.AddLambdaNode(nodes.NodeSessionPersister,
		nodes.NewSessionPersisterNode(b.config.MessagesManager),
		compose.WithNodeName(nodes.NodeSessionPersister),
	); err != nil {
		return fmt.Errorf("error adding %s node: %w", nodes.NodeSessionPersister, err)
	}
	return nil
}

// addEdges creates the main flow connections between nodes
func (b *GraphBuilder) addEdges() error {
	edges := [][2]string{
		{compose.START, nodes.NodeSessionLoader},
		{nodes.NodeSessionLoader, nodes.NodeRuleRouter},
		{nodes.NodeRuleRouter, nodes.NodeSessionPersister},
		{nodes.NodeSessionPersister, compose.END},
	}

	for _, edge := range edges {
		if err := b.graph.AddEdge(edge[0], edge[1]); err != nil {
			logx.Error().Err(err).Str("from", edge[0]).Str("to", edge[1]).Msg("Error adding edge")
			return fmt.Errorf("error adding edge %s -> %s: %w", edge[0], edge[1], err)
		}
	}
	return nil
}

// compile finalizes and compiles the graph
func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[model.QueryInput, *schema.Message], error) {
	runnable, err := b.graph.Compile(ctx, compose.WithMaxRunSteps(maxRunSteps))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return runnable, nil
}
