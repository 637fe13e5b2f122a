package selection

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/bodyzone"
)

// Generators over the real registry so every drawn selection resolves.

func terminalZoneIDs(t *testing.T) []string {
	t.Helper()
	reg, err := bodyzone.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	var ids []string
	for _, z := range reg.TerminalZones() {
		ids = append(ids, z.ID)
	}
	return ids
}

func drawSelection(rt *rapid.T, zoneIDs []string) BodySelection {
	return BodySelection{
		ZoneID:    rapid.SampledFrom(zoneIDs).Draw(rt, "zone_id"),
		Intensity: rapid.IntRange(1, 10).Draw(rt, "intensity"),
		Onset:     rapid.SampledFrom([]Onset{OnsetSudden, OnsetGradual}).Draw(rt, "onset"),
		Duration:  rapid.SampledFrom([]string{"", "an hour", "two days"}).Draw(rt, "duration"),
		Timestamp: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}
}

func drawSelectionSet(rt *rapid.T, zoneIDs []string) *SelectionSet {
	n := rapid.IntRange(1, 6).Draw(rt, "num_selections")
	set := &SelectionSet{PrimaryComplaint: "pain"}
	for i := 0; i < n; i++ {
		set.Selections = append(set.Selections, drawSelection(rt, zoneIDs))
	}
	return set
}

// TriageScore must never decrease when one selection's intensity is raised
// and everything else is held fixed.
func TestProperty_TriageScoreMonotonicInIntensity(t *testing.T) {
	zoneIDs := terminalZoneIDs(t)
	reg, _ := bodyzone.NewRegistry()
	v := NewValidator(reg)

	rapid.Check(t, func(rt *rapid.T) {
		set := drawSelectionSet(rt, zoneIDs)
		idx := rapid.IntRange(0, len(set.Selections)-1).Draw(rt, "index")
		if set.Selections[idx].Intensity == 10 {
			return
		}

		lower := v.CalculateTriageScore(set)
		set.Selections[idx].Intensity++
		higher := v.CalculateTriageScore(set)

		if higher < lower {
			rt.Fatalf("score decreased when intensity rose: %v -> %v", lower, higher)
		}
	})
}

// For an otherwise identical selection, sudden onset never scores below
// gradual onset.
func TestProperty_SuddenOnsetScoresAtLeastGradual(t *testing.T) {
	zoneIDs := terminalZoneIDs(t)
	reg, _ := bodyzone.NewRegistry()
	v := NewValidator(reg)

	rapid.Check(t, func(rt *rapid.T) {
		sel := drawSelection(rt, zoneIDs)

		sel.Onset = OnsetGradual
		gradual := v.CalculateTriageScore(&SelectionSet{
			Selections: []BodySelection{sel}, PrimaryComplaint: "pain",
		})
		sel.Onset = OnsetSudden
		sudden := v.CalculateTriageScore(&SelectionSet{
			Selections: []BodySelection{sel}, PrimaryComplaint: "pain",
		})

		if sudden < gradual {
			rt.Fatalf("sudden %v < gradual %v", sudden, gradual)
		}
	})
}

// RequiresEmergencyAttention holds exactly when some selection pairs a
// priority >= 8 zone with intensity >= 7.
func TestProperty_EmergencyAttentionIffThresholds(t *testing.T) {
	zoneIDs := terminalZoneIDs(t)
	reg, _ := bodyzone.NewRegistry()
	v := NewValidator(reg)

	rapid.Check(t, func(rt *rapid.T) {
		set := drawSelectionSet(rt, zoneIDs)

		want := false
		for _, sel := range set.Selections {
			zone, err := reg.Zone(sel.ZoneID)
			if err != nil {
				rt.Fatalf("generator produced unknown zone %q", sel.ZoneID)
			}
			if zone.Priority >= 8 && sel.Intensity >= 7 {
				want = true
			}
		}

		if got := v.RequiresEmergencyAttention(set); got != want {
			rt.Fatalf("RequiresEmergencyAttention = %v, want %v for %+v", got, want, set.Selections)
		}
	})
}

// Whenever the emergency flag fires for a selection in a zone carrying
// red-flag metadata, CheckRedFlags must produce at least one finding for
// that zone.
func TestProperty_EmergencyImpliesRedFlagFinding(t *testing.T) {
	zoneIDs := terminalZoneIDs(t)
	reg, _ := bodyzone.NewRegistry()
	v := NewValidator(reg)

	rapid.Check(t, func(rt *rapid.T) {
		set := drawSelectionSet(rt, zoneIDs)
		findings := v.CheckRedFlags(set)

		for _, sel := range set.Selections {
			zone, _ := reg.Zone(sel.ZoneID)
			if zone.Priority < 8 || sel.Intensity < 7 || !zone.HasRedFlagMetadata() {
				continue
			}
			found := false
			for _, f := range findings {
				if f.ZoneID == sel.ZoneID {
					found = true
					break
				}
			}
			if !found {
				rt.Fatalf("emergency-level selection in %s produced no red-flag finding", sel.ZoneID)
			}
		}
	})
}

// The validator is a pure function: repeated evaluation of the same set
// yields identical output.
func TestProperty_ValidationIsIdempotent(t *testing.T) {
	zoneIDs := terminalZoneIDs(t)
	reg, _ := bodyzone.NewRegistry()
	v := NewValidator(reg)

	rapid.Check(t, func(rt *rapid.T) {
		set := drawSelectionSet(rt, zoneIDs)

		s1 := v.CalculateTriageScore(set)
		s2 := v.CalculateTriageScore(set)
		if s1 != s2 {
			rt.Fatalf("score not stable: %v vs %v", s1, s2)
		}

		f1 := v.CheckRedFlags(set)
		f2 := v.CheckRedFlags(set)
		if len(f1) != len(f2) {
			rt.Fatalf("findings not stable: %d vs %d", len(f1), len(f2))
		}
		for i := range f1 {
			if f1[i] != f2[i] {
				rt.Fatalf("finding %d differs: %+v vs %+v", i, f1[i], f2[i])
			}
		}
	})
}
