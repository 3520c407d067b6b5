package rules

import (
	"math"

	"github.com/bluesky-social/botmod"
)

var _ botmod.ProfileRuleFunc = PostFrequencyRule

// looks for machine-like posting volume: posts-per-day since account creation, mapped through a linear ramp which saturates at 1.0 at the configured rate. Accounts with zero posts are insufficient evidence, not suspicious, and score 0.0.
func PostFrequencyRule(c *botmod.ProfileContext) (float64, error) {
	if len(c.Account.Posts) == 0 {
		return 0.0, nil
	}
	if !plausibleAccountCreation(c, c.Account.CreatedAt) {
		// can't compute a rate without a creation timestamp
		return 0.0, nil
	}
	daysActive := math.Max(c.AccountAgeDays(), 1.0)
	postsPerDay := float64(len(c.Account.Posts)) / daysActive
	return math.Min(1.0, postsPerDay/c.Config().PostsPerDaySaturation), nil
}
