// Rule-based bot likelihood scoring for social media account profiles.
//
// This package (`github.com/bluesky-social/botmod`) contains a small "rules engine" which assigns a probabilistic bot score to an account profile snapshot. A batch of rules is run against the profile, each producing a bounded sub-score; the engine blends them into a single aggregate score and classifies the account against a configurable threshold. Flagged accounts are recorded in a blocklist which can be snapshotted to (and restored from) a flat file. Fetching raw platform data is out of scope: callers supply validated Profile snapshots.
//
// See `cmd/swatter` for a CLI tool built on this package.
package botmod
