package intake

import (
	"github.com/google/uuid"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/bodyzone"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/matching"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/provider"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/selection"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
)

// EvaluationRequest is everything the intake collaborator hands over for one
// completed encounter: the body-map selection set, emergency-screening
// answers, the symptom picture, and demographics.
type EvaluationRequest struct {
	SelectionSet      selection.SelectionSet    `json:"selection_set"`
	ScreeningCategory triage.ScreeningCategory  `json:"screening_category"`
	ScreeningPositive bool                      `json:"screening_positive"`
	Trend             triage.Trend              `json:"trend,omitempty"`
	ComplaintType     triage.ComplaintType      `json:"complaint_type,omitempty"` // "" means derive from text
	PatientAgeYears   int                       `json:"patient_age_years"`
	PatientGender     string                    `json:"patient_gender,omitempty"`
	PreferredLanguage string                    `json:"preferred_language,omitempty"`
	RequestedMode     provider.ConsultationMode `json:"requested_mode"`
	Limit             int                       `json:"limit,omitempty"`
}

// AppointmentUrgencyContext is what the booking collaborator needs to frame
// the appointment: the urgency label, bilingual wait-time guidance, and the
// consultation modes the safety gate removed.
type AppointmentUrgencyContext struct {
	Urgency      triage.UrgencyLevel         `json:"urgency"`
	WaitTime     bodyzone.Label              `json:"wait_time"`
	BlockedModes []provider.ConsultationMode `json:"blocked_modes,omitempty"`
}

// EvaluationResult is the full pipeline output for one request.
type EvaluationResult struct {
	CorrelationID uuid.UUID                 `json:"correlation_id"`
	Triage        *triage.TriageResult      `json:"triage"`
	TriageScore   float64                   `json:"triage_score"` // 0..1
	Warnings      []selection.Warning       `json:"warnings,omitempty"`
	Appointment   AppointmentUrgencyContext `json:"appointment"`
	Match         *matching.Outcome         `json:"match"`
}
