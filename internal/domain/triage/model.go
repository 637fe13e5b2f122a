package triage

import (
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/bodyzone"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/selection"
)

// UrgencyLevel drives wait-time guidance and consultation-mode eligibility.
type UrgencyLevel string

const (
	UrgencyEmergency  UrgencyLevel = "emergency"
	UrgencyUrgent     UrgencyLevel = "urgent"
	UrgencySemiUrgent UrgencyLevel = "semi-urgent"
	UrgencyRoutine    UrgencyLevel = "routine"
)

// ScreeningCategory is the category assigned by the emergency-screening
// phase of intake.
type ScreeningCategory string

const (
	CategoryImmediate  ScreeningCategory = "IMMEDIATE"
	CategoryUrgent     ScreeningCategory = "URGENT"
	CategorySemiUrgent ScreeningCategory = "SEMI_URGENT"
	CategoryRoutine    ScreeningCategory = "ROUTINE"
)

// Trend is the reported symptom trajectory.
type Trend string

const (
	TrendWorsening Trend = "worsening"
	TrendStable    Trend = "stable"
	TrendImproving Trend = "improving"
)

// ComplaintType is the structured complaint classification, when intake was
// able to assign one. When present, specialty routing matches on it directly
// and never falls back to keyword matching.
type ComplaintType string

const (
	ComplaintChestPain       ComplaintType = "chest_pain"
	ComplaintBreathing       ComplaintType = "breathing_difficulty"
	ComplaintSkin            ComplaintType = "skin"
	ComplaintAbdominal       ComplaintType = "abdominal"
	ComplaintMusculoskeletal ComplaintType = "musculoskeletal"
	ComplaintENT             ComplaintType = "ent"
	ComplaintNeurological    ComplaintType = "neurological"
	ComplaintMentalHealth    ComplaintType = "mental_health"
	ComplaintGeneral         ComplaintType = "general"
)

// Specialty recommended for the encounter.
type Specialty string

const (
	SpecialtyCardiology       Specialty = "cardiology"
	SpecialtyPediatrics       Specialty = "pediatrics"
	SpecialtyDermatology      Specialty = "dermatology"
	SpecialtyGastroenterology Specialty = "gastroenterology"
	SpecialtyOrthopedics      Specialty = "orthopedics"
	SpecialtyENT              Specialty = "ent"
	SpecialtyNeurology        Specialty = "neurology"
	SpecialtyPsychiatry       Specialty = "psychiatry"
	SpecialtyPulmonology      Specialty = "pulmonology"
	SpecialtyGeneralMedicine  Specialty = "general_medicine"
)

// EncounterBundle is the completed, typed input to the classifier: one
// variant of signal per intake phase, no loosely typed payloads.
type EncounterBundle struct {
	ScreeningCategory ScreeningCategory          `json:"screening_category"`
	ScreeningPositive bool                       `json:"screening_positive"` // emergency screening answered positive
	RedFlags          []selection.RedFlagFinding `json:"red_flags,omitempty"`
	MaxPainIntensity  int                        `json:"max_pain_intensity"` // 0 when no pain reported
	Onset             selection.Onset            `json:"onset,omitempty"`
	Trend             Trend                      `json:"trend,omitempty"`
	ComplaintType     ComplaintType              `json:"complaint_type,omitempty"` // "" when unstructured
	ChiefComplaint    string                     `json:"chief_complaint"`
	PatientAgeYears   int                        `json:"patient_age_years"`
	ZoneIDs           []string                   `json:"zone_ids,omitempty"`
	// PriorityScore overrides the computed score when intake already
	// assigned one upstream. Clamped to [0,100].
	PriorityScore *int `json:"priority_score,omitempty"`
}

// TriageResult is the classifier output. Downstream consumers must treat it
// as read-only; it is produced exactly once per completed encounter.
type TriageResult struct {
	Urgency              UrgencyLevel               `json:"urgency"`
	PriorityScore        int                        `json:"priority_score"` // 0..100
	RecommendedSpecialty Specialty                  `json:"recommended_specialty"`
	RedFlags             []selection.RedFlagFinding `json:"red_flags,omitempty"`
	EmergencyAction      *bodyzone.Label            `json:"emergency_action,omitempty"`
}

// WaitTimeGuidance returns the bilingual wait-time guidance for a level.
func WaitTimeGuidance(u UrgencyLevel) bodyzone.Label {
	switch u {
	case UrgencyEmergency:
		return bodyzone.Label{EN: "seek care immediately", AR: "اطلب الرعاية فوراً"}
	case UrgencyUrgent:
		return bodyzone.Label{EN: "see a doctor within 24 hours", AR: "راجع الطبيب خلال 24 ساعة"}
	case UrgencySemiUrgent:
		return bodyzone.Label{EN: "see a doctor within 72 hours", AR: "راجع الطبيب خلال 72 ساعة"}
	default:
		return bodyzone.Label{EN: "book an appointment within two weeks", AR: "احجز موعداً خلال أسبوعين"}
	}
}
