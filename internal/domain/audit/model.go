package audit

import (
	"time"

	"github.com/google/uuid"
)

// Actions recorded by the decision pipeline. One entry per decision.
const (
	ActionValidationPassed    = "validation_passed"
	ActionValidationFailed    = "validation_failed"
	ActionTriageClassified    = "triage_classified"
	ActionEligibilityFiltered = "eligibility_filtered"
	ActionOnlineSafetyGate    = "online_safety_gate"
	ActionProvidersRanked     = "providers_ranked"
	ActionRosterFetchFailed   = "roster_fetch_failed"
)

// Entry is one immutable audit record. Entries are append-only: no update or
// delete operation exists anywhere in this module. Seq increases
// monotonically within a process; CorrelationID ties the entries of one
// request together.
type Entry struct {
	ID            uuid.UUID      `json:"id"`
	Seq           uint64         `json:"seq"`
	CorrelationID uuid.UUID      `json:"correlation_id"`
	Action        string         `json:"action"`
	Reason        string         `json:"reason"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
