package matching

import (
	"sort"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/provider"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
)

// Score weights. Each component is independently capped at its weight and
// the total is capped at 100.
const (
	weightSpecialty    = 40.0
	weightAvailability = 20.0
	weightExperience   = 20.0
	weightLanguage     = 10.0
	weightDistance     = 10.0
	weightRating       = 5.0

	// General-medicine coverage without the exact specialty earns 60% of
	// the specialty weight.
	generalMedicineCredit = 24.0

	experienceCapYears = 20
	distanceHalfKM     = 5.0
)

// Score computes the deterministic weighted breakdown for one provider.
// Pure function of its inputs; the same provider and request always produce
// the same breakdown.
func Score(p *provider.Profile, req Request, specialty triage.Specialty) ScoreBreakdown {
	var b ScoreBreakdown

	switch {
	case p.HasSpecialty(specialty):
		b.Specialty = weightSpecialty
	case p.HasSpecialty(triage.SpecialtyGeneralMedicine):
		b.Specialty = generalMedicineCredit
	}

	if hasOpenSlot(p, req.RequestedMode) {
		b.Availability = weightAvailability
	}

	years := min(p.ExperienceYears, experienceCapYears)
	if years > 0 {
		b.Experience = float64(years) / experienceCapYears * weightExperience
	}

	if req.PreferredLanguage != "" && p.SpeaksLanguage(req.PreferredLanguage) {
		b.Language = weightLanguage
	}

	b.Distance = distanceScore(p, req.RequestedMode)

	if p.Rating > 0 {
		b.Rating = min(p.Rating, 5) / 5 * weightRating
	}

	return b
}

// hasOpenSlot reports whether the provider has any availability in the
// requested mode.
func hasOpenSlot(p *provider.Profile, mode provider.ConsultationMode) bool {
	if mode == provider.ModeOnline {
		return p.OnlineSchedule != nil && p.OnlineSchedule.OpenSlots > 0
	}
	for _, c := range p.Clinics {
		if c.OpenSlots > 0 {
			return true
		}
	}
	return false
}

// distanceScore applies inverse decay over the nearest clinic: full credit
// at 0 km, half credit at distanceHalfKM. Online visits have no travel, so
// the component gets full credit rather than penalizing remote care.
func distanceScore(p *provider.Profile, mode provider.ConsultationMode) float64 {
	if mode == provider.ModeOnline {
		return weightDistance
	}
	if len(p.Clinics) == 0 {
		return 0
	}
	nearest := p.Clinics[0].DistanceKM
	for _, c := range p.Clinics[1:] {
		if c.DistanceKM < nearest {
			nearest = c.DistanceKM
		}
	}
	if nearest < 0 {
		nearest = 0
	}
	return weightDistance / (1 + nearest/distanceHalfKM)
}

// Rank sorts scored providers descending by total score, breaking ties by
// provider id so identical inputs always produce identical orderings, then
// truncates to limit.
func Rank(scored []ScoredProvider, limit int) []ScoredProvider {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Provider.ID < scored[j].Provider.ID
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
