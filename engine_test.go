package botmod

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluesky-social/botmod/blockstore"
)

func testProfile() Profile {
	return Profile{
		DID:            "did:plc:abc111",
		Handle:         "handle.example.com",
		CreatedAt:      time.Now().Add(-365 * 24 * time.Hour),
		FollowersCount: 100,
		FollowsCount:   80,
	}
}

func TestEngineBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	res, err := eng.ProcessProfile(ctx, testProfile())
	require.NoError(t, err)

	// fixture rules score 0.9 and 0.1 with equal weight
	assert.InDelta(0.5, res.Score, 0.0001)
	assert.GreaterOrEqual(res.Score, 0.0)
	assert.LessOrEqual(res.Score, 1.0)
	assert.Equal(res.Score >= eng.Config.Threshold, res.Flagged)
	assert.False(res.Flagged)
	assert.Equal(0.9, res.SubScores["always-high"])
	assert.Equal(0.1, res.SubScores["always-low"])

	// nothing below threshold lands in the blocklist
	n, err := eng.Blocklist.Len(ctx)
	assert.NoError(err)
	assert.Equal(0, n)

	_, err = eng.ProcessProfile(ctx, Profile{DID: ""})
	assert.ErrorIs(err, ErrInvalidProfile)
}

func TestEngineFlagsAndOverwrites(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cfg := DefaultConfig()
	cfg.Threshold = 0.4
	rules := RuleSet{
		ProfileRules: []ProfileRule{
			{Name: "always-high", Check: highRule},
			{Name: "always-low", Check: lowRule},
		},
	}
	eng, err := NewEngine(slog.Default(), cfg, rules, blockstore.NewMemBlockStore())
	require.NoError(t, err)

	prof := testProfile()
	res, err := eng.ProcessProfile(ctx, prof)
	require.NoError(t, err)
	assert.True(res.Flagged)

	entry, err := eng.Blocklist.Get(ctx, prof.DID)
	assert.NoError(err)
	require.NotNil(t, entry)
	assert.Equal(res.Score, entry.Score)

	// re-flagging overwrites, does not duplicate
	_, err = eng.ProcessProfile(ctx, prof)
	require.NoError(t, err)
	n, err := eng.Blocklist.Len(ctx)
	assert.NoError(err)
	assert.Equal(1, n)
}

func TestEngineWeightMonotonicity(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	rules := RuleSet{
		ProfileRules: []ProfileRule{
			{Name: "always-high", Check: highRule},
			{Name: "always-low", Check: lowRule},
		},
	}

	base, err := NewEngine(slog.Default(), DefaultConfig(), rules, blockstore.NewMemBlockStore())
	require.NoError(t, err)
	baseRes, err := base.ProcessProfile(ctx, testProfile())
	require.NoError(t, err)

	// shifting weight toward the higher-scoring rule must raise the aggregate
	upCfg := DefaultConfig()
	upCfg.RuleWeights = map[string]float64{"always-high": 3.0}
	up, err := NewEngine(slog.Default(), upCfg, rules, blockstore.NewMemBlockStore())
	require.NoError(t, err)
	upRes, err := up.ProcessProfile(ctx, testProfile())
	require.NoError(t, err)
	assert.Greater(upRes.Score, baseRes.Score)

	// and toward the lower-scoring rule must lower it
	downCfg := DefaultConfig()
	downCfg.RuleWeights = map[string]float64{"always-low": 3.0}
	down, err := NewEngine(slog.Default(), downCfg, rules, blockstore.NewMemBlockStore())
	require.NoError(t, err)
	downRes, err := down.ProcessProfile(ctx, testProfile())
	require.NoError(t, err)
	assert.Less(downRes.Score, baseRes.Score)
}

func TestEngineRuleFailureDegradesGracefully(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	rules := RuleSet{
		ProfileRules: []ProfileRule{
			{Name: "always-high", Check: highRule},
			{Name: "panics", Check: func(c *ProfileContext) (float64, error) {
				panic("rule bug")
			}},
			{Name: "out-of-range", Check: func(c *ProfileContext) (float64, error) {
				return 7.5, nil
			}},
		},
	}
	eng, err := NewEngine(slog.Default(), DefaultConfig(), rules, blockstore.NewMemBlockStore())
	require.NoError(t, err)

	res, err := eng.ProcessProfile(ctx, testProfile())
	require.NoError(t, err)
	assert.Equal(0.0, res.SubScores["panics"])
	assert.Equal(1.0, res.SubScores["out-of-range"])
	assert.InDelta((0.9+0.0+1.0)/3.0, res.Score, 0.0001)
}

func TestEngineResultCache(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	prof := testProfile()

	_, ok := eng.RecentResult(prof.DID)
	assert.False(ok)

	res, err := eng.ProcessProfile(ctx, prof)
	require.NoError(t, err)

	cached, ok := eng.RecentResult(prof.DID)
	assert.True(ok)
	assert.Equal(res.Score, cached.Score)

	eng.PurgeResult(prof.DID)
	_, ok = eng.RecentResult(prof.DID)
	assert.False(ok)
}
