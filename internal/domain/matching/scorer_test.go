package matching

import (
	"math"
	"testing"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/provider"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
)

func perfectProvider() *provider.Profile {
	p := cardiologist()
	p.ExperienceYears = 25
	p.Rating = 5
	p.Clinics = []provider.Clinic{{Name: "Main", City: "Riyadh", DistanceKM: 0, OpenSlots: 3}}
	return p
}

func TestScorePerfectProviderIs100(t *testing.T) {
	b := Score(perfectProvider(), adultClinicRequest(), triage.SpecialtyCardiology)
	if got := b.Total(); got != 100 {
		t.Fatalf("total = %v, want exactly 100", got)
	}
}

func TestScoreComponentsNeverExceedCaps(t *testing.T) {
	b := Score(perfectProvider(), adultClinicRequest(), triage.SpecialtyCardiology)
	checks := []struct {
		name string
		got  float64
		cap  float64
	}{
		{"specialty", b.Specialty, 40},
		{"availability", b.Availability, 20},
		{"experience", b.Experience, 20},
		{"language", b.Language, 10},
		{"distance", b.Distance, 10},
		{"rating", b.Rating, 5},
	}
	for _, c := range checks {
		if c.got > c.cap {
			t.Errorf("%s = %v exceeds cap %v", c.name, c.got, c.cap)
		}
	}
}

func TestScoreGeneralMedicinePartialCredit(t *testing.T) {
	p := cardiologist()
	p.Specialties = []triage.Specialty{triage.SpecialtyGeneralMedicine}
	b := Score(p, adultClinicRequest(), triage.SpecialtyCardiology)
	if b.Specialty != 24 {
		t.Fatalf("general medicine credit = %v, want 24", b.Specialty)
	}
}

func TestScoreExperienceLinearWithCap(t *testing.T) {
	p := cardiologist()
	p.ExperienceYears = 10
	b := Score(p, adultClinicRequest(), triage.SpecialtyCardiology)
	if b.Experience != 10 {
		t.Fatalf("10 years = %v, want 10", b.Experience)
	}
	p.ExperienceYears = 40
	b = Score(p, adultClinicRequest(), triage.SpecialtyCardiology)
	if b.Experience != 20 {
		t.Fatalf("capped experience = %v, want 20", b.Experience)
	}
}

func TestScoreDistanceDecay(t *testing.T) {
	p := cardiologist()
	p.Clinics = []provider.Clinic{{DistanceKM: 5, OpenSlots: 1}}
	b := Score(p, adultClinicRequest(), triage.SpecialtyCardiology)
	if math.Abs(b.Distance-5) > 1e-9 {
		t.Fatalf("distance at 5km = %v, want half credit 5", b.Distance)
	}

	// Nearest clinic wins.
	p.Clinics = []provider.Clinic{{DistanceKM: 20, OpenSlots: 1}, {DistanceKM: 0, OpenSlots: 0}}
	b = Score(p, adultClinicRequest(), triage.SpecialtyCardiology)
	if b.Distance != 10 {
		t.Fatalf("nearest-clinic distance = %v, want 10", b.Distance)
	}
}

func TestScoreOnlineModeDistanceAndAvailability(t *testing.T) {
	p := cardiologist()
	p.Clinics = nil
	req := adultClinicRequest()
	req.RequestedMode = provider.ModeOnline

	b := Score(p, req, triage.SpecialtyCardiology)
	if b.Distance != 10 {
		t.Fatalf("online distance = %v, want full credit", b.Distance)
	}
	if b.Availability != 20 {
		t.Fatalf("online availability = %v, want 20", b.Availability)
	}

	p.OnlineSchedule = &provider.OnlineSchedule{OpenSlots: 0}
	b = Score(p, req, triage.SpecialtyCardiology)
	if b.Availability != 0 {
		t.Fatalf("no online slots should score 0 availability, got %v", b.Availability)
	}
}

func TestScoreLanguageMismatch(t *testing.T) {
	req := adultClinicRequest()
	req.PreferredLanguage = "fr"
	b := Score(cardiologist(), req, triage.SpecialtyCardiology)
	if b.Language != 0 {
		t.Fatalf("language = %v, want 0", b.Language)
	}
}

func TestRankDeterministicTieBreak(t *testing.T) {
	a := cardiologist()
	a.ID = "prov-b"
	b := cardiologist()
	b.ID = "prov-a"

	scored := []ScoredProvider{
		{Provider: a, Score: 80},
		{Provider: b, Score: 80},
	}
	ranked := Rank(scored, 5)
	if ranked[0].Provider.ID != "prov-a" {
		t.Fatalf("tie should break by id, got %s first", ranked[0].Provider.ID)
	}
}

func TestRankSortsAndTruncates(t *testing.T) {
	var scored []ScoredProvider
	for i, s := range []float64{50, 90, 70, 60, 80, 40} {
		p := cardiologist()
		p.ID = string(rune('a' + i))
		scored = append(scored, ScoredProvider{Provider: p, Score: s})
	}
	ranked := Rank(scored, 3)
	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	if ranked[0].Score != 90 || ranked[1].Score != 80 || ranked[2].Score != 70 {
		t.Fatalf("order wrong: %v %v %v", ranked[0].Score, ranked[1].Score, ranked[2].Score)
	}
}
