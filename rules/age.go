package rules

import (
	"github.com/bluesky-social/botmod"
)

var _ botmod.ProfileRuleFunc = AccountAgeRule

// newer accounts score higher: linear decay from 1.0 at creation to 0.0 at the configured age cutoff. Accounts past the cutoff, or with a missing or implausible creation timestamp, score 0.0.
func AccountAgeRule(c *botmod.ProfileContext) (float64, error) {
	if !plausibleAccountCreation(c, c.Account.CreatedAt) {
		return 0.0, nil
	}
	cutoff := c.Config().AgeCutoffDays
	ageDays := c.AccountAgeDays()
	if ageDays >= cutoff {
		return 0.0, nil
	}
	return 1.0 - ageDays/cutoff, nil
}
