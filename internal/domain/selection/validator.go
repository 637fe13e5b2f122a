package selection

import (
	"fmt"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/bodyzone"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/clinicalerr"
)

// Emergency-screening thresholds over zone priority and reported intensity.
const (
	emergencyZonePriority = 8
	emergencyIntensity    = 7
	severePainIntensity   = 7
	highIntensityWarn     = 8
	suddenOnsetFactor     = 1.2
)

// Validator validates body selections against the zone registry and derives
// the triage signals (score, emergency flag, red flags) from a selection set.
// All methods are pure over their inputs: same input, same output, no hidden
// state, safe for concurrent use across requests.
type Validator struct {
	registry *bodyzone.Registry
}

func NewValidator(registry *bodyzone.Registry) *Validator {
	return &Validator{registry: registry}
}

// ValidateSelection checks a single selection. Field errors carry machine
// codes and bilingual messages; the first failing field is reported.
func (v *Validator) ValidateSelection(sel *BodySelection) error {
	if sel.Intensity < 1 || sel.Intensity > 10 {
		return clinicalerr.New(clinicalerr.CodeInvalidIntensity, "intensity",
			fmt.Sprintf("pain intensity %d is outside the allowed range 1-10", sel.Intensity),
			fmt.Sprintf("شدة الألم %d خارج النطاق المسموح 1-10", sel.Intensity))
	}
	if sel.Onset != OnsetSudden && sel.Onset != OnsetGradual {
		return clinicalerr.New(clinicalerr.CodeInvalidOnset, "onset",
			fmt.Sprintf("onset %q must be %q or %q", sel.Onset, OnsetSudden, OnsetGradual),
			fmt.Sprintf("بداية الأعراض %q يجب أن تكون مفاجئة أو تدريجية", sel.Onset))
	}
	if sel.Timestamp.IsZero() {
		return clinicalerr.ErrInvalidTimestamp
	}
	zone, err := v.registry.Zone(sel.ZoneID)
	if err != nil {
		return clinicalerr.New(clinicalerr.CodeInvalidZoneID, "zone_id",
			fmt.Sprintf("selected zone %q does not exist", sel.ZoneID),
			fmt.Sprintf("المنطقة المختارة %q غير موجودة", sel.ZoneID))
	}
	if !zone.Terminal {
		return clinicalerr.New(clinicalerr.CodeInvalidZoneID, "zone_id",
			fmt.Sprintf("zone %q is a category, not a selectable region", sel.ZoneID),
			fmt.Sprintf("المنطقة %q فئة عامة وليست منطقة قابلة للاختيار", sel.ZoneID))
	}
	return nil
}

// ValidateSelectionSet checks the full set. A valid set has at least one
// selection and a non-empty primary complaint, and every selection validates
// independently. The returned warnings are non-fatal; they never block
// progression but must be surfaced to the caller.
func (v *Validator) ValidateSelectionSet(set *SelectionSet) ([]Warning, error) {
	if len(set.Selections) == 0 {
		return nil, clinicalerr.ErrSelectionRequired
	}
	if set.PrimaryComplaint == "" {
		return nil, clinicalerr.ErrComplaintRequired
	}

	var warnings []Warning
	for i := range set.Selections {
		sel := &set.Selections[i]
		if err := v.ValidateSelection(sel); err != nil {
			return nil, fmt.Errorf("selection %d: %w", i, err)
		}

		if sel.Intensity >= highIntensityWarn && sel.Duration == "" {
			warnings = append(warnings, Warning{
				Code:   WarnMissingDuration,
				ZoneID: sel.ZoneID,
				Message: bodyzone.Label{
					EN: "high-intensity pain reported without a duration; please ask how long it has lasted",
					AR: "تم الإبلاغ عن ألم شديد دون تحديد المدة؛ يرجى السؤال عن مدة استمراره",
				},
			})
		}

		// Zone resolved above.
		zone, _ := v.registry.Zone(sel.ZoneID)
		if zone.Priority >= emergencyZonePriority && len(sel.Character) == 0 {
			warnings = append(warnings, Warning{
				Code:   WarnMissingCharacter,
				ZoneID: sel.ZoneID,
				Message: bodyzone.Label{
					EN: "pain in a high-priority zone lacks a character descriptor (e.g. pressure, burning)",
					AR: "الألم في منطقة عالية الأولوية يفتقر إلى وصف طبيعته (مثل ضغط أو حرقان)",
				},
			})
		}
	}
	return warnings, nil
}

// RequiresEmergencyAttention is true iff any selection is both in a zone with
// priority >= 8 and reported at intensity >= 7. A zone id that cannot be
// resolved is treated as maximum priority: a missing signal must bias toward
// the higher urgency, never silently downgrade it.
func (v *Validator) RequiresEmergencyAttention(set *SelectionSet) bool {
	for i := range set.Selections {
		sel := &set.Selections[i]
		if sel.Intensity < emergencyIntensity {
			continue
		}
		if v.zonePriority(sel.ZoneID) >= emergencyZonePriority {
			return true
		}
	}
	return false
}

// CalculateTriageScore returns a score in [0,1]. Each selection contributes
// (priority/10) * (intensity/10) * urgencyFactor, where the factor is 1.2 for
// sudden onset and 1.0 otherwise; the result is the sum divided by the
// selection count, capped at 1.0.
//
// This is a capped average, not a normalized sum, and that is intended: one
// severe selection in a critical zone dominates only when few lower-severity
// selections dilute it. Adding benign selections pulls the average down.
func (v *Validator) CalculateTriageScore(set *SelectionSet) float64 {
	if len(set.Selections) == 0 {
		return 0
	}
	var sum float64
	for i := range set.Selections {
		sel := &set.Selections[i]
		weight := float64(v.zonePriority(sel.ZoneID)) / 10
		factor := 1.0
		if sel.Onset == OnsetSudden {
			factor = suddenOnsetFactor
		}
		sum += weight * (float64(sel.Intensity) / 10) * factor
	}
	score := sum / float64(len(set.Selections))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// CheckRedFlags evaluates each selection against the red-flag rules and
// returns findings in selection order. Only zones carrying red-flag metadata
// produce findings. Findings are deliberately not deduplicated: callers see
// one finding per qualifying selection.
func (v *Validator) CheckRedFlags(set *SelectionSet) []RedFlagFinding {
	var findings []RedFlagFinding
	for i := range set.Selections {
		sel := &set.Selections[i]
		zone, err := v.registry.Zone(sel.ZoneID)
		if err != nil || !zone.HasRedFlagMetadata() {
			continue
		}

		switch {
		case sel.Intensity >= severePainIntensity:
			sev := SeverityHigh
			if zone.Priority >= emergencyZonePriority {
				sev = SeverityCritical
			}
			findings = append(findings, RedFlagFinding{
				ZoneID:   sel.ZoneID,
				Severity: sev,
				Message: bodyzone.Label{
					EN: "severe pain, requires immediate evaluation",
					AR: "ألم شديد، يتطلب تقييماً فورياً",
				},
			})
		case sel.Onset == OnsetSudden && zone.Priority >= emergencyZonePriority:
			findings = append(findings, RedFlagFinding{
				ZoneID:   sel.ZoneID,
				Severity: SeverityHigh,
				Message: bodyzone.Label{
					EN: "sudden onset, urgent assessment needed",
					AR: "بداية مفاجئة، يلزم تقييم عاجل",
				},
			})
		case len(sel.Radiation) >= 2 && zone.Priority >= emergencyZonePriority:
			findings = append(findings, RedFlagFinding{
				ZoneID:   sel.ZoneID,
				Severity: SeverityHigh,
				Message: bodyzone.Label{
					EN: "pain spreading from a high-priority zone to multiple areas",
					AR: "ألم ينتشر من منطقة عالية الأولوية إلى مناطق متعددة",
				},
			})
		}
	}
	return findings
}

// zonePriority resolves a zone's priority, defaulting to the maximum when the
// zone is unknown so an unresolvable id can never lower the urgency signal.
func (v *Validator) zonePriority(zoneID string) int {
	zone, err := v.registry.Zone(zoneID)
	if err != nil {
		return 10
	}
	return zone.Priority
}
