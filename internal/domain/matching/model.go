package matching

import (
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/provider"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
)

// Request describes the patient side of a match. Demographics come from the
// intake collaborator; the requested mode is what the patient asked for, not
// what the safety gate will allow.
type Request struct {
	PatientAgeYears   int                       `json:"patient_age_years"`
	PatientGender     string                    `json:"patient_gender,omitempty"` // "female", "male", "" unknown
	PreferredLanguage string                    `json:"preferred_language,omitempty"`
	RequestedMode     provider.ConsultationMode `json:"requested_mode"`
	Limit             int                       `json:"limit,omitempty"` // 0 means the configured default
}

// ScoreBreakdown itemizes the weighted sum so every ranking decision can be
// audited component by component. Each component is capped at its weight.
type ScoreBreakdown struct {
	Specialty    float64 `json:"specialty"`    // 0..40
	Availability float64 `json:"availability"` // 0..20
	Experience   float64 `json:"experience"`   // 0..20
	Language     float64 `json:"language"`     // 0..10
	Distance     float64 `json:"distance"`     // 0..10
	Rating       float64 `json:"rating"`       // 0..5
}

// Total sums the components, capped at 100.
func (b ScoreBreakdown) Total() float64 {
	return min(b.Specialty+b.Availability+b.Experience+b.Language+b.Distance+b.Rating, 100)
}

// ScoredProvider is one ranked roster entry.
type ScoredProvider struct {
	Provider  *provider.Profile `json:"provider"`
	Score     float64           `json:"score"`
	Breakdown ScoreBreakdown    `json:"breakdown"`
}

// Outcome is the match result. An empty Providers slice is a valid outcome,
// not an error; NoEligibleProviders makes that state explicit for callers.
// BlockedModes lists consultation modes the safety gate removed.
type Outcome struct {
	Providers           []ScoredProvider            `json:"providers"`
	BlockedModes        []provider.ConsultationMode `json:"blocked_modes,omitempty"`
	NoEligibleProviders bool                        `json:"no_eligible_providers"`
	Specialty           triage.Specialty            `json:"specialty"`
}
