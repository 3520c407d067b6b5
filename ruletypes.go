package botmod

// A rule is a pure function of a profile (plus evaluation time and engine config, via the context), returning a bot-likelihood sub-score in [0.0, 1.0]. Higher means more bot-like. Rules must not mutate the profile; an error means the rule couldn't compute and is treated as neutral (0.0) evidence, never as a failed run.
type ProfileRuleFunc = func(c *ProfileContext) (float64, error)

type ProfileRule struct {
	Name  string
	Check ProfileRuleFunc
}
