package matching

import (
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/provider"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
)

// Eligible applies the all-of eligibility predicate: every clause must hold
// or the provider is out. The clauses are independent; failing one is enough
// and the first failing clause names the reason.
func Eligible(p *provider.Profile, req Request, specialty triage.Specialty) (bool, string) {
	if !p.Active || !p.Verified {
		return false, "inactive_or_unverified"
	}
	if !p.SupportsMode(req.RequestedMode) {
		return false, "mode_not_offered"
	}
	if !p.HasSpecialty(specialty) && !p.HasSpecialty(triage.SpecialtyGeneralMedicine) {
		return false, "specialty_mismatch"
	}
	if !p.CoversAgeGroup(provider.AgeGroupFor(req.PatientAgeYears)) {
		return false, "age_group_not_covered"
	}
	if !genderCareSatisfied(p.GenderCare, req.PatientGender) {
		return false, "gender_care_constraint"
	}
	return true, ""
}

// genderCareSatisfied checks a provider's gender-care restriction against
// the patient. An unknown patient gender fails a restricted provider rather
// than assuming compatibility.
func genderCareSatisfied(care provider.GenderCare, patientGender string) bool {
	switch care {
	case provider.GenderCareFemaleOnly:
		return patientGender == "female"
	case provider.GenderCareMaleOnly:
		return patientGender == "male"
	default:
		return true
	}
}
