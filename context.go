package botmod

import (
	"context"
	"log/slog"
	"time"
)

// The primary interface exposed to rules: the profile under evaluation, the evaluation time, and read access to engine configuration.
type ProfileContext struct {
	// Actual golang "context.Context", if needed for timeouts etc
	Ctx context.Context
	// slog logger handle, with account-specific structured fields pre-populated. Pointer, but expected to never be nil.
	Logger *slog.Logger

	Account Profile
	// evaluation time for the run. Rules use this instead of time.Now() so results are deterministic for a given input.
	Now time.Time

	engine  *Engine
	effects *Effects
}

func NewProfileContext(ctx context.Context, eng *Engine, profile Profile, now time.Time) ProfileContext {
	return ProfileContext{
		Ctx:     ctx,
		Logger:  eng.Logger.With("did", profile.DID),
		Account: profile,
		Now:     now,
		engine:  eng,
		effects: &Effects{},
	}
}

// Read access to the engine's configuration (rule cutoffs etc). Rules should not reach the engine directly.
func (c *ProfileContext) Config() Config {
	return c.engine.Config
}

// Account age at evaluation time, in (fractional) days. Negative only if the profile was constructed invalid, which validation prevents.
func (c *ProfileContext) AccountAgeDays() float64 {
	return c.Now.Sub(c.Account.CreatedAt).Hours() / 24
}
