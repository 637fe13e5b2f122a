package triage

import "strings"

// SpecialtyRule routes an encounter to a specialty. The rule table is a
// declared, ordered list evaluated top to bottom; the first matching rule
// wins, so the tie-break is declaration order and nothing else. Each rule is
// independently testable.
//
// A rule matches in exactly one of three ways:
//   - MaxAge > 0: the patient's age is known and at or below the threshold.
//   - the bundle carries a structured ComplaintType equal to the rule's.
//   - the bundle has no structured type and a keyword occurs in the
//     lower-cased chief complaint. Keywords are per-language alternatives
//     listed explicitly on the rule; there is no cross-language substring
//     fallback.
type SpecialtyRule struct {
	Name          string
	MaxAge        int
	ComplaintType ComplaintType
	Keywords      []string
	Specialty     Specialty
}

// Matches reports whether the rule applies to the bundle.
func (r SpecialtyRule) Matches(b *EncounterBundle) bool {
	if r.MaxAge > 0 {
		return b.PatientAgeYears > 0 && b.PatientAgeYears <= r.MaxAge
	}
	if b.ComplaintType != "" {
		return r.ComplaintType != "" && r.ComplaintType == b.ComplaintType
	}
	complaint := strings.ToLower(b.ChiefComplaint)
	for _, kw := range r.Keywords {
		if strings.Contains(complaint, kw) {
			return true
		}
	}
	return false
}

// DeriveComplaintType infers a structured complaint type from free text by
// running the keyword rules in table order. Age rules are skipped since age
// says nothing about the complaint itself. No keyword match means general.
func DeriveComplaintType(chiefComplaint string) ComplaintType {
	complaint := strings.ToLower(chiefComplaint)
	for _, r := range specialtyRules {
		if r.MaxAge > 0 || r.ComplaintType == "" {
			continue
		}
		for _, kw := range r.Keywords {
			if strings.Contains(complaint, kw) {
				return r.ComplaintType
			}
		}
	}
	return ComplaintGeneral
}

// specialtyRules is the routing table. Order is load-bearing: the pediatric
// age rule outranks every complaint rule, and cardiac routing outranks the
// rest of the keyword cascade.
var specialtyRules = []SpecialtyRule{
	{
		Name:      "pediatric-age",
		MaxAge:    12,
		Specialty: SpecialtyPediatrics,
	},
	{
		Name:          "cardiac",
		ComplaintType: ComplaintChestPain,
		Keywords:      []string{"chest", "heart", "palpitation", "صدر", "قلب", "خفقان"},
		Specialty:     SpecialtyCardiology,
	},
	{
		Name:          "respiratory",
		ComplaintType: ComplaintBreathing,
		Keywords:      []string{"breath", "wheez", "cough", "تنفس", "سعال", "ضيق نفس"},
		Specialty:     SpecialtyPulmonology,
	},
	{
		Name:          "dermatology",
		ComplaintType: ComplaintSkin,
		Keywords:      []string{"skin", "rash", "itch", "جلد", "طفح", "حكة"},
		Specialty:     SpecialtyDermatology,
	},
	{
		Name:          "gastroenterology",
		ComplaintType: ComplaintAbdominal,
		Keywords:      []string{"stomach", "abdomen", "nausea", "vomit", "معدة", "بطن", "غثيان", "قيء"},
		Specialty:     SpecialtyGastroenterology,
	},
	{
		Name:          "orthopedics",
		ComplaintType: ComplaintMusculoskeletal,
		Keywords:      []string{"bone", "joint", "fracture", "عظم", "مفصل", "كسر"},
		Specialty:     SpecialtyOrthopedics,
	},
	{
		Name:          "ent",
		ComplaintType: ComplaintENT,
		Keywords:      []string{"ear", "nose", "throat", "أذن", "أنف", "حلق"},
		Specialty:     SpecialtyENT,
	},
	{
		Name:          "neurology",
		ComplaintType: ComplaintNeurological,
		Keywords:      []string{"brain", "nerve", "numbness", "seizure", "دماغ", "عصب", "تنميل", "نوبة"},
		Specialty:     SpecialtyNeurology,
	},
	{
		Name:          "psychiatry",
		ComplaintType: ComplaintMentalHealth,
		Keywords:      []string{"anxiety", "depress", "mental", "قلق", "اكتئاب", "نفسي"},
		Specialty:     SpecialtyPsychiatry,
	},
}
