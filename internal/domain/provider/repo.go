package provider

import "context"

// Directory supplies the provider roster. Snapshot returns the full roster
// as of the call; the decision core treats it as a per-request read-only
// snapshot. When the snapshot cannot be produced the directory must return
// an error; the core then fails the request explicitly rather than ranking
// against a partial roster.
type Directory interface {
	Snapshot(ctx context.Context) ([]*Profile, error)
}
