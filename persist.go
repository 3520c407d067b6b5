package botmod

import (
	"context"
	"fmt"

	"github.com/bluesky-social/botmod/blockstore"
)

// Serializes the full current blocklist to a JSON snapshot file. The write is atomic (temp file plus rename), so a failure never leaves a partial file, and the same in-memory state always produces the same bytes.
//
// Export takes a whole-state view of the blocklist; callers must not run it concurrently with detection calls that may mutate the blocklist.
func (eng *Engine) ExportBlocklist(ctx context.Context, p string) error {
	entries, err := eng.Blocklist.List(ctx)
	if err != nil {
		return fmt.Errorf("reading blocklist: %w", err)
	}
	if err := blockstore.WriteSnapshotFile(p, entries); err != nil {
		return fmt.Errorf("exporting blocklist: %w", err)
	}
	eng.Logger.Info("exported blocklist snapshot", "path", p, "entries", len(entries))
	return nil
}

// Reads a JSON snapshot file and replaces the blocklist wholesale. This is deliberate "load snapshot" semantics, not a merge. If the file doesn't parse or fails validation, the error wraps blockstore.ErrCorruptBlocklist and the existing blocklist is left untouched.
func (eng *Engine) ImportBlocklist(ctx context.Context, p string) error {
	entries, err := blockstore.ReadSnapshotFile(p)
	if err != nil {
		return err
	}
	if err := eng.Blocklist.ReplaceAll(ctx, entries); err != nil {
		return fmt.Errorf("replacing blocklist: %w", err)
	}
	eng.updateBlocklistSizeMetric(ctx)
	eng.Logger.Info("imported blocklist snapshot", "path", p, "entries", len(entries))
	return nil
}
