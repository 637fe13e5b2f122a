package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/domain/triage"
)

// directoryPG reads the provider roster from the provider_profile table.
// Read-only: the decision core never writes provider data.
type directoryPG struct {
	pool *pgxpool.Pool
}

func NewDirectoryPG(pool *pgxpool.Pool) Directory {
	return &directoryPG{pool: pool}
}

const profileCols = `id, active, verified, specialties, consultation_modes,
	age_groups, gender_care, languages, experience_years, rating,
	clinics, online_open_slots`

func (d *directoryPG) Snapshot(ctx context.Context) ([]*Profile, error) {
	rows, err := d.pool.Query(ctx, `SELECT `+profileCols+` FROM provider_profile ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("provider snapshot: %w", err)
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		var (
			p           Profile
			specialties []string
			modes       []string
			ageGroups   []string
			genderCare  *string
			clinicsJSON []byte
			onlineSlots *int
		)
		err := rows.Scan(&p.ID, &p.Active, &p.Verified, &specialties, &modes,
			&ageGroups, &genderCare, &p.Languages, &p.ExperienceYears, &p.Rating,
			&clinicsJSON, &onlineSlots)
		if err != nil {
			return nil, fmt.Errorf("provider snapshot: scan: %w", err)
		}

		for _, s := range specialties {
			p.Specialties = append(p.Specialties, triage.Specialty(s))
		}
		for _, m := range modes {
			p.ConsultationModes = append(p.ConsultationModes, ConsultationMode(m))
		}
		for _, g := range ageGroups {
			p.AgeGroups = append(p.AgeGroups, AgeGroup(g))
		}
		if genderCare != nil {
			p.GenderCare = GenderCare(*genderCare)
		}
		if len(clinicsJSON) > 0 {
			if err := json.Unmarshal(clinicsJSON, &p.Clinics); err != nil {
				return nil, fmt.Errorf("provider snapshot: clinics for %s: %w", p.ID, err)
			}
		}
		if onlineSlots != nil {
			p.OnlineSchedule = &OnlineSchedule{OpenSlots: *onlineSlots}
		}
		profiles = append(profiles, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("provider snapshot: %w", err)
	}
	return profiles, nil
}
