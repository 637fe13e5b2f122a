package provider

import "github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"

// ConsultationMode is how a visit is delivered.
type ConsultationMode string

const (
	ModeOnline    ConsultationMode = "online"
	ModeClinic    ConsultationMode = "clinic"
	ModeHomeVisit ConsultationMode = "home_visit"
)

// AgeGroup brackets the patients a provider treats.
type AgeGroup string

const (
	AgeGroupChild  AgeGroup = "child"  // 0-12
	AgeGroupAdult  AgeGroup = "adult"  // 13-64
	AgeGroupSenior AgeGroup = "senior" // 65+
)

// AgeGroupFor maps an age in years to its bracket.
func AgeGroupFor(years int) AgeGroup {
	switch {
	case years <= 12:
		return AgeGroupChild
	case years <= 64:
		return AgeGroupAdult
	default:
		return AgeGroupSenior
	}
}

// GenderCare restricts which patients a provider accepts. Empty means no
// constraint.
type GenderCare string

const (
	GenderCareFemaleOnly GenderCare = "female_only"
	GenderCareMaleOnly   GenderCare = "male_only"
)

// Clinic is one physical location with its open-slot count and the distance
// from the requesting patient, as computed by the directory at snapshot time.
type Clinic struct {
	Name       string  `json:"name"`
	City       string  `json:"city"`
	DistanceKM float64 `json:"distance_km"`
	OpenSlots  int     `json:"open_slots"`
}

// OnlineSchedule carries remote-visit availability.
type OnlineSchedule struct {
	OpenSlots int `json:"open_slots"`
}

// Profile is a care provider as supplied by the provider-directory
// collaborator. It is a read-only input to the decision core; nothing in
// this module mutates or persists it.
type Profile struct {
	ID                string             `json:"id"`
	Active            bool               `json:"active"`
	Verified          bool               `json:"verified"`
	Specialties       []triage.Specialty `json:"specialties"`
	ConsultationModes []ConsultationMode `json:"consultation_modes"`
	AgeGroups         []AgeGroup         `json:"age_groups"`
	GenderCare        GenderCare         `json:"gender_care,omitempty"`
	Languages         []string           `json:"languages"` // ISO 639-1 codes
	ExperienceYears   int                `json:"experience_years"`
	Rating            float64            `json:"rating"` // 0..5
	Clinics           []Clinic           `json:"clinics,omitempty"`
	OnlineSchedule    *OnlineSchedule    `json:"online_schedule,omitempty"`
}

// SupportsMode reports whether the provider offers the consultation mode.
func (p *Profile) SupportsMode(mode ConsultationMode) bool {
	for _, m := range p.ConsultationModes {
		if m == mode {
			return true
		}
	}
	return false
}

// HasSpecialty reports whether the provider lists the specialty.
func (p *Profile) HasSpecialty(s triage.Specialty) bool {
	for _, sp := range p.Specialties {
		if sp == s {
			return true
		}
	}
	return false
}

// CoversAgeGroup reports whether the provider treats the bracket.
func (p *Profile) CoversAgeGroup(g AgeGroup) bool {
	for _, ag := range p.AgeGroups {
		if ag == g {
			return true
		}
	}
	return false
}

// SpeaksLanguage reports whether the provider supports the language code.
func (p *Profile) SpeaksLanguage(code string) bool {
	for _, l := range p.Languages {
		if l == code {
			return true
		}
	}
	return false
}
