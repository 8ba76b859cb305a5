package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/wanderlust-ai/server/internal/agent/graph"
	"github.com/wanderlust-ai/server/internal/agent/graph/conversations"
	"github.com/wanderlust-ai/server/internal/agent/model"
	"github.com/wanderlust-ai/server/internal/agent/repo"
	"github.com/wanderlust-ai/server/internal/core"
	errx "github.com/wanderlust-ai/server/internal/core/error"
	"github.com/wanderlust-ai/server/internal/travel/planner"
	logx "github.com/wanderlust-ai/server/pkg/logger"
	pkgredis "github.com/wanderlust-ai/server/pkg/redis"
)

// AppConfig defines all configurable parameters of the assistant, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL"`

	// Infrastructure
	Redis pkgredis.Config

	Conversation model.ConversationConfig
	Planner      planner.Config
}

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env file: %v\n", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to process environment config: %v\n", err)
		os.Exit(1)
	}

	logx.Init(logx.LoggerOpts{
		Environment: core.ParseEnvironment(cfg.Env),
		Level:       cfg.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := openStore(ctx, cfg)
	defer closeStore()

	runner, err := graph.BuildRunner(ctx, graph.Config{
		Conversation: cfg.Conversation,
		Planner:      cfg.Planner,
		Store:        store,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build turn graph")
	}

	conversationID := cfg.Conversation.ID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	logx.Info().Str("conversation_id", conversationID).Str("env", cfg.Env).Msg("Wanderlust AI ready")

	if err := repl(ctx, runner, conversationID, os.Stdin, os.Stdout); err != nil {
		logx.Fatal().Err(err).Msg("input loop stopped")
	}
}

// openStore connects to Redis when REDIS_URL is set and falls back to the
// in-process store otherwise.
func openStore(ctx context.Context, cfg AppConfig) (model.Store, func()) {
	if !cfg.Redis.Enabled() {
		logx.Info().Msg("REDIS_URL not set, keeping conversations in memory")
		return repo.NewMemoryRepository(cfg.Conversation.TTL), func() {}
	}

	rdb, err := cfg.Redis.New(ctx)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
	}
	logx.Info().Msg("Connected to Redis successfully")
	return repo.NewRedisRepository(rdb, cfg.Conversation.TTL), func() { _ = rdb.Close() }
}

func repl(ctx context.Context, runner graph.Runner, conversationID string, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Wanderlust AI - plan your next adventure. Commands: /tips /history /reset /quit")
	greeting, err := runner.Open(ctx, conversationID)
	if err != nil {
		logx.Error().Err(err).Msg("could not open conversation")
	} else if greeting != "" {
		fmt.Fprintf(out, "\n%s\n", greeting)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			fmt.Fprintln(out, "Safe travels!")
			return nil
		case "/tips":
			for _, tip := range conversations.QuickTips {
				fmt.Fprintf(out, "- %s\n", tip)
			}
			continue
		case "/history":
			text, err := runner.Transcript(ctx, conversationID)
			if err != nil {
				logx.Error().Err(err).Msg("could not load history")
				fmt.Fprintln(out, errx.SystemErrorMessage)
				continue
			}
			fmt.Fprint(out, text)
			continue
		case "/reset":
			if err := runner.Reset(ctx, conversationID); err != nil {
				fmt.Fprintln(out, errx.SystemErrorMessage)
				continue
			}
			if greeting, err := runner.Open(ctx, conversationID); err == nil && greeting != "" {
				fmt.Fprintln(out, greeting)
			}
			continue
		}

		reply, err := runner.Invoke(ctx, model.QueryInput{ConversationID: conversationID, Query: line})
		if err != nil {
			fmt.Fprintln(out, errx.SystemErrorMessage)
			continue
		}
		fmt.Fprintln(out, reply)
	}
}
