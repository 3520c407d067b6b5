package blockstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

var ErrCorruptBlocklist = errors.New("corrupt blocklist snapshot")

// wire shape for one snapshot record, keyed by DID in the enclosing JSON object
type snapshotRecord struct {
	Score     float64 `json:"score"`
	FlaggedAt string  `json:"flagged_at"`
}

// Serializes entries to the snapshot file format: a single JSON object mapping DID to {score, flagged_at}. Map keys are emitted sorted, so the same blocklist state always encodes to the same bytes.
func EncodeSnapshot(entries []Entry) ([]byte, error) {
	out := make(map[string]snapshotRecord, len(entries))
	for _, e := range entries {
		out[e.DID] = snapshotRecord{
			Score:     e.Score,
			FlaggedAt: e.FlaggedAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// Parses and validates snapshot bytes. Any shape or validation problem returns an error wrapping ErrCorruptBlocklist; callers are expected to leave their existing state untouched in that case.
func DecodeSnapshot(raw []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var m map[string]snapshotRecord
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlocklist, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after snapshot object", ErrCorruptBlocklist)
	}

	entries := make([]Entry, 0, len(m))
	for did, rec := range m {
		if did == "" {
			return nil, fmt.Errorf("%w: empty identifier key", ErrCorruptBlocklist)
		}
		if rec.Score < 0.0 || rec.Score > 1.0 {
			return nil, fmt.Errorf("%w: score out of range for %s: %f", ErrCorruptBlocklist, did, rec.Score)
		}
		// RFC3339Nano also accepts timestamps without a fractional second
		when, err := time.Parse(time.RFC3339Nano, rec.FlaggedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: bad timestamp for %s: %v", ErrCorruptBlocklist, did, err)
		}
		entries = append(entries, Entry{DID: did, Score: rec.Score, FlaggedAt: when})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].DID < entries[j].DID })
	return entries, nil
}

// Writes a snapshot file atomically: encode, write to a temp file in the target directory, then rename over the destination. A failure at any point leaves no partial file at the destination path.
func WriteSnapshotFile(p string, entries []Entry) error {
	raw, err := EncodeSnapshot(entries)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(p), ".blocklist-*.json")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(raw); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func ReadSnapshotFile(p string) ([]Entry, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return DecodeSnapshot(raw)
}
