package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bluesky-social/botmod"
)

func TestNetworkInteractionRule(t *testing.T) {
	assert := assert.New(t)

	profile := func(followers, follows int64) botmod.Profile {
		return botmod.Profile{
			DID:            "did:plc:abc111",
			CreatedAt:      testNow.AddDate(0, 0, -100),
			FollowersCount: followers,
			FollowsCount:   follows,
		}
	}

	// balanced or followed-back accounts score low
	c := testContext(t, profile(100, 80))
	score, err := NetworkInteractionRule(c)
	assert.NoError(err)
	assert.InDelta(0.08, score, 0.0001)

	c = testContext(t, profile(100, 100))
	score, err = NetworkInteractionRule(c)
	assert.NoError(err)
	assert.InDelta(0.1, score, 0.0001)

	// no follows at all means no signal
	c = testContext(t, profile(0, 0))
	score, err = NetworkInteractionRule(c)
	assert.NoError(err)
	assert.Equal(0.0, score)

	// midway between 1 and the saturation ratio
	c = testContext(t, profile(10, 55))
	score, err = NetworkInteractionRule(c)
	assert.NoError(err)
	assert.InDelta(0.55, score, 0.0001)

	// saturates at 1.0 at and beyond the configured ratio
	c = testContext(t, profile(10, 100))
	score, err = NetworkInteractionRule(c)
	assert.NoError(err)
	assert.Equal(1.0, score)

	c = testContext(t, profile(10, 5000))
	score, err = NetworkInteractionRule(c)
	assert.NoError(err)
	assert.Equal(1.0, score)
}
