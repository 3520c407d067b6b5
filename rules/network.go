package rules

import (
	"math"

	"github.com/bluesky-social/botmod"
)

var _ botmod.ProfileRuleFunc = NetworkInteractionRule

// looks for lopsided follow graphs: the follows/followers ratio, mapped through a monotone curve. A ratio at or below 1 (following no more than followed-back) scores low, scaling linearly from 0; above 1 the score ramps toward 1.0, saturating at the configured ratio. The curve is continuous at ratio=1.
func NetworkInteractionRule(c *botmod.ProfileContext) (float64, error) {
	ratio := float64(c.Account.FollowsCount) / math.Max(float64(c.Account.FollowersCount), 1.0)
	if ratio <= 1.0 {
		return 0.1 * ratio, nil
	}
	sat := c.Config().NetworkRatioSaturation
	return 0.1 + 0.9*math.Min(1.0, (ratio-1.0)/(sat-1.0)), nil
}
