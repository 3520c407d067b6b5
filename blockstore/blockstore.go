package blockstore

import (
	"context"
	"time"
)

// One flagged account: the identifier, the aggregate score at flagging time, and when it was flagged. The blocklist holds at most one entry per DID; re-flagging overwrites.
type Entry struct {
	DID       string
	Score     float64
	FlaggedAt time.Time
}

// Storage for the set of flagged accounts. Implementations must make each mutation atomic with respect to concurrent writers; List and ReplaceAll are whole-state operations.
type BlockStore interface {
	// Get returns (nil, nil) when the DID has no entry.
	Get(ctx context.Context, did string) (*Entry, error)
	Put(ctx context.Context, entry Entry) error
	// Remove does not error when the DID has no entry.
	Remove(ctx context.Context, did string) error
	// List returns all entries, sorted by DID.
	List(ctx context.Context) ([]Entry, error)
	Len(ctx context.Context) (int, error)
	// ReplaceAll swaps the entire blocklist for the supplied entries.
	ReplaceAll(ctx context.Context, entries []Entry) error
}
