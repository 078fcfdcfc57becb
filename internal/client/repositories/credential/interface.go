// Package credential implements the durable single-slot store for the
// bearer credential. The credential is the only client state that survives
// restarts; absence means unauthenticated.
package credential

import "context"

// Store is the three-operation contract every consumer reads through.
//
// Get returns the empty string when no credential is present; absence is not
// an error. Set atomically replaces any prior value. Clear is idempotent.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
