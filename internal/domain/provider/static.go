package provider

import "context"

// StaticDirectory serves a fixed roster. Used in development mode and by
// tests; production wires the Postgres-backed directory instead.
type StaticDirectory struct {
	profiles []*Profile
}

func NewStaticDirectory(profiles []*Profile) *StaticDirectory {
	return &StaticDirectory{profiles: profiles}
}

func (d *StaticDirectory) Snapshot(_ context.Context) ([]*Profile, error) {
	out := make([]*Profile, len(d.profiles))
	copy(out, d.profiles)
	return out, nil
}
