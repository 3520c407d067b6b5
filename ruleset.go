package botmod

import (
	"math"
)

// Holds the configured rules, and dispatches a profile evaluation to each of them. Only dispatches execution; aggregation happens in the engine.
type RuleSet struct {
	ProfileRules []ProfileRule
}

func (r *RuleSet) RuleNames() []string {
	names := make([]string, len(r.ProfileRules))
	for i, rule := range r.ProfileRules {
		names[i] = rule.Name
	}
	return names
}

// Executes all configured rules against the context's profile, recording one sub-score per rule. A rule error or panic degrades that rule to a neutral 0.0 sub-score rather than aborting the run: partial evidence is not a failure.
func (r *RuleSet) CallProfileRules(c *ProfileContext) {
	for _, rule := range r.ProfileRules {
		c.effects.AddSubScore(rule.Name, runProfileRule(c, rule))
	}
}

func runProfileRule(c *ProfileContext, rule ProfileRule) (score float64) {
	// similar to an HTTP server, we want to recover any panics from rule execution
	defer func() {
		if rec := recover(); rec != nil {
			ruleErrorCount.WithLabelValues(rule.Name).Inc()
			c.Logger.Error("rule execution exception", "rule", rule.Name, "err", rec)
			score = 0.0
		}
	}()

	out, err := rule.Check(c)
	if err != nil {
		ruleErrorCount.WithLabelValues(rule.Name).Inc()
		c.Logger.Warn("rule could not compute, counting as neutral", "rule", rule.Name, "err", err)
		return 0.0
	}
	if out < 0.0 || out > 1.0 || math.IsNaN(out) {
		c.Logger.Warn("rule sub-score out of range, clamping", "rule", rule.Name, "score", out)
		return clampScore(out)
	}
	return out
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) || v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
