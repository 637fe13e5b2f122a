package matching

import (
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/provider"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/selection"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
)

// onlineBlockedComplaints is the fixed set of complaint types for which a
// remote visit is never safe, regardless of computed urgency.
var onlineBlockedComplaints = map[triage.ComplaintType]bool{
	triage.ComplaintChestPain:    true,
	triage.ComplaintBreathing:    true,
	triage.ComplaintNeurological: true,
}

// OnlineBlocked reports whether the safety gate removes the online mode,
// and the reason when it does. The gate only ever subtracts: any single
// condition holding is enough to block, and nothing adds the mode back.
func OnlineBlocked(urgency triage.UrgencyLevel, redFlags []selection.RedFlagFinding, complaint triage.ComplaintType) (bool, string) {
	if urgency == triage.UrgencyEmergency || urgency == triage.UrgencyUrgent {
		return true, "urgency_" + string(urgency)
	}
	if len(redFlags) > 0 {
		return true, "red_flags_present"
	}
	if onlineBlockedComplaints[complaint] {
		return true, "blocked_complaint_" + string(complaint)
	}
	return false, ""
}

// BlockedModes returns the consultation modes the gate removes for this
// encounter. Only the online mode is ever gated; in-person care is always
// mode-eligible.
func BlockedModes(urgency triage.UrgencyLevel, redFlags []selection.RedFlagFinding, complaint triage.ComplaintType) []provider.ConsultationMode {
	if blocked, _ := OnlineBlocked(urgency, redFlags, complaint); blocked {
		return []provider.ConsultationMode{provider.ModeOnline}
	}
	return nil
}
