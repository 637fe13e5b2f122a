package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/audit"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/provider"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/clinicalerr"
)

const DefaultResultLimit = 5

// Service matches a triaged encounter against the provider roster. The
// pipeline within one call is strictly ordered: snapshot, eligibility
// filter, online safety gate, score and rank. Each stage appends one audit
// entry. The service holds no mutable state, so independent requests may
// run concurrently.
type Service struct {
	directory   provider.Directory
	auditor     *audit.Logger
	resultLimit int
}

func NewService(directory provider.Directory, auditor *audit.Logger, resultLimit int) *Service {
	if resultLimit <= 0 {
		resultLimit = DefaultResultLimit
	}
	return &Service{directory: directory, auditor: auditor, resultLimit: resultLimit}
}

// Match ranks providers for the triaged encounter. A roster fetch failure
// fails the whole request; ranking against a partial roster could hide the
// right provider. An empty result after filtering is not an error.
func (s *Service) Match(ctx context.Context, correlationID uuid.UUID, req Request, result *triage.TriageResult, complaint triage.ComplaintType) (*Outcome, error) {
	roster, err := s.directory.Snapshot(ctx)
	if err != nil {
		s.auditor.Log(ctx, correlationID, audit.ActionRosterFetchFailed, err.Error(), nil)
		return nil, fmt.Errorf("%w: %v", clinicalerr.ErrRosterUnavailable, err)
	}

	specialty := result.RecommendedSpecialty
	if specialty == "" {
		specialty = triage.SpecialtyGeneralMedicine
	}

	eligible := make([]*provider.Profile, 0, len(roster))
	rejections := map[string]int{}
	for _, p := range roster {
		ok, reason := Eligible(p, req, specialty)
		if !ok {
			rejections[reason]++
			continue
		}
		eligible = append(eligible, p)
	}
	s.auditor.Log(ctx, correlationID, audit.ActionEligibilityFiltered,
		fmt.Sprintf("%d of %d providers eligible", len(eligible), len(roster)),
		map[string]any{
			"roster_size": len(roster),
			"eligible":    len(eligible),
			"rejections":  rejections,
			"specialty":   string(specialty),
		})

	blocked, gateReason := OnlineBlocked(result.Urgency, result.RedFlags, complaint)
	blockedModes := BlockedModes(result.Urgency, result.RedFlags, complaint)
	gateMsg := "online mode allowed"
	if blocked {
		gateMsg = "online mode blocked: " + gateReason
	}
	s.auditor.Log(ctx, correlationID, audit.ActionOnlineSafetyGate, gateMsg,
		map[string]any{
			"blocked":        blocked,
			"requested_mode": string(req.RequestedMode),
		})
	if blocked && req.RequestedMode == provider.ModeOnline {
		// The gate subtracts the requested mode itself; nothing can be
		// offered, which is a valid outcome the caller must surface.
		eligible = nil
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.resultLimit
	}
	scored := make([]ScoredProvider, 0, len(eligible))
	for _, p := range eligible {
		b := Score(p, req, specialty)
		scored = append(scored, ScoredProvider{Provider: p, Score: b.Total(), Breakdown: b})
	}
	scored = Rank(scored, limit)

	topScore := 0.0
	if len(scored) > 0 {
		topScore = scored[0].Score
	}
	s.auditor.Log(ctx, correlationID, audit.ActionProvidersRanked,
		fmt.Sprintf("%d providers ranked", len(scored)),
		map[string]any{
			"ranked":    len(scored),
			"top_score": topScore,
			"limit":     limit,
		})

	return &Outcome{
		Providers:           scored,
		BlockedModes:        blockedModes,
		NoEligibleProviders: len(scored) == 0,
		Specialty:           specialty,
	}, nil
}
