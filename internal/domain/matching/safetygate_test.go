package matching

import (
	"testing"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/provider"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/selection"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
)

func TestOnlineBlocked(t *testing.T) {
	flag := []selection.RedFlagFinding{{ZoneID: "chest.sternum", Severity: selection.SeverityCritical}}

	cases := []struct {
		name      string
		urgency   triage.UrgencyLevel
		redFlags  []selection.RedFlagFinding
		complaint triage.ComplaintType
		blocked   bool
	}{
		{"emergency urgency", triage.UrgencyEmergency, nil, triage.ComplaintGeneral, true},
		{"urgent urgency", triage.UrgencyUrgent, nil, triage.ComplaintGeneral, true},
		{"red flags alone", triage.UrgencyRoutine, flag, triage.ComplaintGeneral, true},
		{"chest pain complaint", triage.UrgencyRoutine, nil, triage.ComplaintChestPain, true},
		{"breathing complaint", triage.UrgencyRoutine, nil, triage.ComplaintBreathing, true},
		{"neurological complaint", triage.UrgencyRoutine, nil, triage.ComplaintNeurological, true},
		{"routine skin complaint", triage.UrgencyRoutine, nil, triage.ComplaintSkin, false},
		{"semi-urgent general", triage.UrgencySemiUrgent, nil, triage.ComplaintGeneral, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blocked, reason := OnlineBlocked(tc.urgency, tc.redFlags, tc.complaint)
			if blocked != tc.blocked {
				t.Fatalf("blocked = %v, want %v", blocked, tc.blocked)
			}
			if blocked && reason == "" {
				t.Fatal("blocked result must carry a reason")
			}
		})
	}
}

func TestBlockedModesOnlySubtractsOnline(t *testing.T) {
	modes := BlockedModes(triage.UrgencyEmergency, nil, triage.ComplaintGeneral)
	if len(modes) != 1 || modes[0] != provider.ModeOnline {
		t.Fatalf("blocked modes = %v, want only online", modes)
	}
	if got := BlockedModes(triage.UrgencyRoutine, nil, triage.ComplaintSkin); got != nil {
		t.Fatalf("nothing should be blocked, got %v", got)
	}
}
