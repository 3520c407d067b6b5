package rules

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bluesky-social/botmod"
)

// fixed evaluation time so rule outputs are reproducible
var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testContext(t *testing.T, profile botmod.Profile) *botmod.ProfileContext {
	t.Helper()
	eng, err := botmod.NewEngine(slog.Default(), botmod.DefaultConfig(), DefaultRules(), nil)
	require.NoError(t, err)
	c := botmod.NewProfileContext(context.Background(), eng, profile, testNow)
	return &c
}

func identicalPosts(text string, n int) []botmod.Post {
	posts := make([]botmod.Post, n)
	for i := range posts {
		posts[i] = botmod.Post{Text: text}
	}
	return posts
}
