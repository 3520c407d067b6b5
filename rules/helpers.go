package rules

import (
	"time"

	"github.com/bluesky-social/botmod"
)

// no accounts exist before this time
var accountEpoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// returns true if account creation timestamp is plausible: not-zero, not in distant past, not after evaluation time
//
// this is mostly to check for misconfigurations or null values (eg, UNIX epoch zero means "unknown" not actually 1970)
func plausibleAccountCreation(c *botmod.ProfileContext, when time.Time) bool {
	if when.IsZero() {
		return false
	}
	if !when.After(accountEpoch) {
		return false
	}
	if when.After(c.Now) {
		return false
	}
	return true
}
