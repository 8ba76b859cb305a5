package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust-ai/server/internal/agent/graph"
	"github.com/wanderlust-ai/server/internal/agent/graph/conversations"
	"github.com/wanderlust-ai/server/internal/agent/repo"
	"github.com/wanderlust-ai/server/internal/travel/planner"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

func TestREPLSession(t *testing.T) {
	logx.Disable()
	runner, err := graph.BuildRunner(context.Background(), graph.Config{
		Planner: planner.DefaultConfig(),
		Store:   repo.NewMemoryRepository(time.Hour),
	})
	require.NoError(t, err)

	input := strings.Join([]string{
		"/tips",
		"Visa from Poland to France",
		"",
		"/history",
		"/reset",
		"/quit",
		"hello",
	}, "\n")
	var out bytes.Buffer
	require.NoError(t, repl(context.Background(), runner, "cli", strings.NewReader(input), &out))

	text := out.String()
	// on open, in the transcript, and again after /reset
	assert.Equal(t, 3, strings.Count(text, conversations.WelcomeMessage+"\n"))
	assert.Contains(t, text, conversations.QuickTips[1])
	assert.Contains(t, text, "Freedom of movement")
	assert.Contains(t, text, "you: Visa from Poland to France")
	assert.Contains(t, text, "Safe travels!")
	assert.NotContains(t, text, "I can help with **Travel Packages**, **Visas**, **Packing**, **Currency**, or **Suggestions**")
}

func TestREPLStopsAtEOF(t *testing.T) {
	logx.Disable()
	runner, err := graph.BuildRunner(context.Background(), graph.Config{Store: repo.NewMemoryRepository(0)})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, repl(context.Background(), runner, "cli", strings.NewReader("hi"), &out))
	assert.Contains(t, out.String(), "Hello! I can help with")
}
