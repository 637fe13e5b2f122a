package triage

import (
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/bodyzone"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/selection"
)

// Classifier turns a completed encounter bundle into an urgency level, a
// recommended specialty and a priority score. It is deterministic and
// explainable: a fixed category mapping, a declared rule table and clamped
// arithmetic, no learned components. Stateless and safe for concurrent use.
type Classifier struct {
	rules []SpecialtyRule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: specialtyRules}
}

// Classify produces the TriageResult for a completed encounter.
//
// The override rule is fail-safe-high: a positive emergency screening, any
// CRITICAL red flag, or an IMMEDIATE screening category forces the final
// urgency to emergency. The override can only ever raise urgency.
func (c *Classifier) Classify(b *EncounterBundle) *TriageResult {
	urgency := baseUrgency(b.ScreeningCategory)
	if b.ScreeningPositive || hasSeverity(b.RedFlags, selection.SeverityCritical) || b.ScreeningCategory == CategoryImmediate {
		urgency = UrgencyEmergency
	}

	result := &TriageResult{
		Urgency:              urgency,
		PriorityScore:        c.priorityScore(b),
		RecommendedSpecialty: c.specialty(b),
		RedFlags:             b.RedFlags,
	}
	if urgency == UrgencyEmergency {
		result.EmergencyAction = &bodyzone.Label{
			EN: "call emergency services or go to the nearest emergency department now",
			AR: "اتصل بخدمات الطوارئ أو توجه إلى أقرب قسم طوارئ الآن",
		}
	}
	return result
}

func baseUrgency(cat ScreeningCategory) UrgencyLevel {
	switch cat {
	case CategoryImmediate:
		return UrgencyEmergency
	case CategoryUrgent:
		return UrgencyUrgent
	case CategorySemiUrgent:
		return UrgencySemiUrgent
	default:
		return UrgencyRoutine
	}
}

// specialty evaluates the rule table top to bottom; first match wins. When
// nothing matches the encounter routes to general medicine.
func (c *Classifier) specialty(b *EncounterBundle) Specialty {
	for _, rule := range c.rules {
		if rule.Matches(b) {
			return rule.Specialty
		}
	}
	return SpecialtyGeneralMedicine
}

// priorityScore computes the 0-100 urgency indicator. Every step is a
// max/min clamp: a raise can never be undone by a later step and the score
// never leaves [0,100]. An upstream-supplied score is honored as-is
// (clamped) instead of being recomputed.
func (c *Classifier) priorityScore(b *EncounterBundle) int {
	if b.PriorityScore != nil {
		return clamp(*b.PriorityScore)
	}
	if b.ScreeningPositive {
		return 100
	}

	score := 25
	if hasSeverity(b.RedFlags, selection.SeverityCritical) {
		score = max(score, 90)
	} else if hasSeverity(b.RedFlags, selection.SeverityHigh) {
		score = max(score, 70)
	}
	if b.MaxPainIntensity >= 8 {
		score = max(score, 75)
	} else if b.MaxPainIntensity >= 6 {
		score = max(score, 50)
	}
	if b.Onset == selection.OnsetSudden {
		score = min(score+15, 100)
	}
	if b.Trend == TrendWorsening {
		score = min(score+10, 100)
	}
	return score
}

func hasSeverity(flags []selection.RedFlagFinding, sev selection.Severity) bool {
	for _, f := range flags {
		if f.Severity == sev {
			return true
		}
	}
	return false
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
