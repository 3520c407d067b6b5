package botmod

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/bluesky-social/botmod/blockstore"
)

// runtime for executing rules against profile snapshots, aggregating sub-scores, and recording flagged accounts in the blocklist.
type Engine struct {
	Logger    *slog.Logger
	Config    Config
	Rules     RuleSet
	Blocklist blockstore.BlockStore

	// recently computed results, keyed by account DID
	results *expirable.LRU[string, Result]
}

// The scored outcome of one detection run. Returned by value from the engine instead of mutating the input Profile, so the profile stays a pure input and score ownership is unambiguous.
type Result struct {
	DID     string
	Score   float64
	Flagged bool
	// per-rule sub-scores, keyed by rule name
	SubScores   map[string]float64
	EvaluatedAt time.Time
}

// Validates configuration and assembles an engine. Weight keys which don't name a configured rule are rejected, and at least one configured rule must carry positive weight.
func NewEngine(logger *slog.Logger, cfg Config, rules RuleSet, blocklist blockstore.BlockStore) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkRuleWeights(cfg, rules); err != nil {
		return nil, err
	}
	if blocklist == nil {
		blocklist = blockstore.NewMemBlockStore()
	}
	return &Engine{
		Logger:    logger,
		Config:    cfg,
		Rules:     rules,
		Blocklist: blocklist,
		results:   expirable.NewLRU[string, Result](cfg.ResultCacheSize, nil, cfg.ResultCacheTTL),
	}, nil
}

func checkRuleWeights(cfg Config, rules RuleSet) error {
	names := make(map[string]bool, len(rules.ProfileRules))
	for _, name := range rules.RuleNames() {
		names[name] = true
	}
	for key := range cfg.RuleWeights {
		if !names[key] {
			return fmt.Errorf("%w: weight for unknown rule %q", ErrInvalidConfig, key)
		}
	}
	if len(rules.ProfileRules) == 0 {
		return nil
	}
	var total float64
	for _, rule := range rules.ProfileRules {
		total += ruleWeight(cfg, rule.Name)
	}
	if total <= 0 {
		return fmt.Errorf("%w: rule weights sum to zero", ErrInvalidConfig)
	}
	return nil
}

// weight for one rule: the configured override if present, else 1.0 (equal split after normalization)
func ruleWeight(cfg Config, name string) float64 {
	if w, ok := cfg.RuleWeights[name]; ok {
		return w
	}
	return 1.0
}

// Runs every configured rule against the profile, using the current time as evaluation time.
func (eng *Engine) ProcessProfile(ctx context.Context, profile Profile) (*Result, error) {
	return eng.ProcessProfileAt(ctx, profile, time.Now())
}

// Runs every configured rule against the profile, blends the sub-scores into an aggregate using normalized weights, and classifies against the threshold. When the account is flagged, a blocklist entry is inserted (overwriting any existing entry for that DID). Valid profiles never fail evaluation: rules which can't compute degrade to neutral sub-scores.
func (eng *Engine) ProcessProfileAt(ctx context.Context, profile Profile, now time.Time) (*Result, error) {
	start := time.Now()
	defer func() {
		profileProcessDuration.Observe(time.Since(start).Seconds())
	}()

	if err := profile.Validate(now); err != nil {
		return nil, err
	}

	c := NewProfileContext(ctx, eng, profile, now)
	eng.Rules.CallProfileRules(&c)
	profileProcessCount.Inc()

	subs := make(map[string]float64, len(c.effects.SubScores))
	for _, ss := range c.effects.SubScores {
		subs[ss.Rule] = ss.Score
	}
	score := eng.aggregate(c.effects.SubScores)
	res := Result{
		DID:         profile.DID,
		Score:       score,
		Flagged:     score >= eng.Config.Threshold,
		SubScores:   subs,
		EvaluatedAt: now,
	}

	if res.Flagged {
		entry := blockstore.Entry{DID: profile.DID, Score: score, FlaggedAt: now}
		if err := eng.Blocklist.Put(ctx, entry); err != nil {
			return nil, fmt.Errorf("persisting blocklist entry: %w", err)
		}
		accountFlagCount.Inc()
		eng.updateBlocklistSizeMetric(ctx)
		c.Logger.Info("account flagged as bot", "score", score, "threshold", eng.Config.Threshold)
	}

	eng.results.Add(profile.DID, res)
	return &res, nil
}

// Weighted average of the recorded sub-scores. Weights are normalized to sum to 1.0, so no single rule can force a classification beyond its configured share; the result is clamped to [0,1].
func (eng *Engine) aggregate(subs []SubScore) float64 {
	if len(subs) == 0 {
		return 0.0
	}
	var total, blended float64
	for _, ss := range subs {
		w := ruleWeight(eng.Config, ss.Rule)
		total += w
		blended += w * ss.Score
	}
	if total <= 0 {
		return 0.0
	}
	return clampScore(blended / total)
}

// Most recent cached result for an account, if it was evaluated within the cache TTL.
func (eng *Engine) RecentResult(did string) (Result, bool) {
	return eng.results.Get(did)
}

// Drops any cached result for the account, eg after new profile data is known to exist.
func (eng *Engine) PurgeResult(did string) {
	eng.results.Remove(did)
}

func (eng *Engine) updateBlocklistSizeMetric(ctx context.Context) {
	n, err := eng.Blocklist.Len(ctx)
	if err != nil {
		eng.Logger.Warn("failed reading blocklist size", "err", err)
		return
	}
	blocklistSize.Set(float64(n))
}
