package botmod

import (
	"log/slog"

	"github.com/bluesky-social/botmod/blockstore"
)

var _ ProfileRuleFunc = highRule
var _ ProfileRuleFunc = lowRule

// static rules for exercising dispatch, aggregation, and persistence without the real rule curves
func highRule(c *ProfileContext) (float64, error) {
	return 0.9, nil
}

func lowRule(c *ProfileContext) (float64, error) {
	return 0.1, nil
}

// Test helper which assembles an engine with a trivial two-rule set and an in-memory blocklist. Intentionally exported, for use in other packages.
func EngineTestFixture() *Engine {
	rules := RuleSet{
		ProfileRules: []ProfileRule{
			{Name: "always-high", Check: highRule},
			{Name: "always-low", Check: lowRule},
		},
	}
	eng, err := NewEngine(slog.Default(), DefaultConfig(), rules, blockstore.NewMemBlockStore())
	if err != nil {
		panic(err)
	}
	return eng
}
