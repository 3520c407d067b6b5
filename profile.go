package botmod

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidProfile = errors.New("invalid profile")

// One post from the account, as visible at evaluation time. CreatedAt may be nil when the upstream view didn't include a timestamp.
type Post struct {
	Text      string
	CreatedAt *time.Time
}

// Snapshot of one account's observable attributes, used as scoring input. Profiles are caller-constructed, validated once, and never mutated by the engine: scoring output is returned as a separate Result.
type Profile struct {
	DID    string
	Handle string
	// best effort public interpretation of account creation timestamp. may be zero when unknown.
	CreatedAt      time.Time
	FollowersCount int64
	FollowsCount   int64
	Posts          []Post
}

// Constructs a Profile and validates it against the current time.
func NewProfile(did, handle string, createdAt time.Time, followers, follows int64, posts []Post) (Profile, error) {
	p := Profile{
		DID:            did,
		Handle:         handle,
		CreatedAt:      createdAt,
		FollowersCount: followers,
		FollowsCount:   follows,
		Posts:          posts,
	}
	if err := p.Validate(time.Now()); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Checks basic profile invariants relative to the supplied evaluation time. Malformed input is rejected here, never silently corrected.
func (p *Profile) Validate(now time.Time) error {
	if p.DID == "" {
		return fmt.Errorf("%w: empty DID", ErrInvalidProfile)
	}
	if p.CreatedAt.After(now) {
		return fmt.Errorf("%w: creation timestamp in the future (%s)", ErrInvalidProfile, p.CreatedAt.Format(time.RFC3339))
	}
	if p.FollowersCount < 0 || p.FollowsCount < 0 {
		return fmt.Errorf("%w: negative follower/follow counts", ErrInvalidProfile)
	}
	return nil
}
