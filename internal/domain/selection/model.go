package selection

import (
	"time"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/bodyzone"
)

// Onset is the reported symptom onset. Typed and matched exactly; free-text
// onset values from intake are mapped to these constants before they reach
// the validator.
type Onset string

const (
	OnsetSudden  Onset = "sudden"
	OnsetGradual Onset = "gradual"
)

// Laterality of the selection set as a whole, when the patient reported one.
type Laterality string

const (
	LateralityLeft      Laterality = "left"
	LateralityRight     Laterality = "right"
	LateralityBilateral Laterality = "bilateral"
)

// BodySelection is a single recorded zone selection. Selections are immutable
// once recorded; a correction is a new selection, never an in-place edit.
type BodySelection struct {
	ZoneID    string    `json:"zone_id"`
	Intensity int       `json:"intensity"` // 1..10
	Onset     Onset     `json:"onset"`
	Duration  string    `json:"duration,omitempty"` // free text, e.g. "since yesterday"
	Character []string  `json:"character,omitempty"` // e.g. "burning", "pressure"
	Radiation []string  `json:"radiation,omitempty"` // zone ids the pain spreads to
	Timestamp time.Time `json:"timestamp"`
}

// SelectionSet is the complete body-map state for one encounter: the ordered
// selections plus the primary complaint. Both are required before the set is
// considered complete.
type SelectionSet struct {
	Selections       []BodySelection `json:"selections"`
	PrimaryComplaint string          `json:"primary_complaint"`
	Laterality       Laterality      `json:"laterality,omitempty"`
}

// Severity of a red-flag finding.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
)

// RedFlagFinding is a derived clinical warning tied to one selection. It is
// ephemeral per evaluation and never stored on its own.
type RedFlagFinding struct {
	ZoneID   string         `json:"zone_id"`
	Message  bodyzone.Label `json:"message"`
	Severity Severity       `json:"severity"`
}

// Warning is a non-fatal validation finding. Warnings never block progression
// but must be surfaced to the caller alongside the evaluation result.
type Warning struct {
	Code    string         `json:"code"`
	ZoneID  string         `json:"zone_id"`
	Message bodyzone.Label `json:"message"`
}

// Warning codes.
const (
	WarnMissingDuration  = "MISSING_DURATION"
	WarnMissingCharacter = "MISSING_CHARACTER"
)
