package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"vax-tracker/internal/domain/listfilter"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/domain/vaccinations"
)

type VaccinationLogRepo struct {
	db *sql.DB
}

func NewVaccinationLogRepo(db *sql.DB) *VaccinationLogRepo {
	return &VaccinationLogRepo{db: db}
}

var _ vaccinations.Repository = (*VaccinationLogRepo)(nil)

func (r *VaccinationLogRepo) Append(ctx context.Context, rec vaccinations.DailyRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_vaccinations (
			id, date, time,
			pet_id, pet_name, pet_species, pet_breed,
			owner, owner_contact,
			vaccine_type, batch_no,
			location, municipality, veterinarian,
			status, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		rec.ID,
		pets.Day(rec.Date),
		rec.Time,
		rec.PetID,
		rec.PetName,
		rec.PetSpecies,
		rec.PetBreed,
		rec.Owner,
		rec.OwnerContact,
		rec.VaccineType,
		rec.BatchNo,
		rec.Location,
		rec.Municipality,
		rec.Veterinarian,
		string(rec.Status),
		rec.Notes,
	)
	return err
}

func (r *VaccinationLogRepo) ListByDate(ctx context.Context, day time.Time, filter vaccinations.TodayFilter) ([]vaccinations.DailyRecord, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, date, time,
			pet_id, pet_name, pet_species, pet_breed,
			owner, owner_contact,
			vaccine_type, batch_no,
			location, municipality, veterinarian,
			status, notes
		FROM daily_vaccinations
		WHERE date = $1
	`)

	args := []any{pets.Day(day)}
	argN := 2

	// q: nombre de mascota, dueño o ID
	if q := strings.TrimSpace(filter.Query); q != "" {
		sb.WriteString(fmt.Sprintf(" AND (pet_name ILIKE $%d OR owner ILIKE $%d OR pet_id ILIKE $%d)", argN, argN, argN))
		args = append(args, "%"+q+"%")
		argN++
	}
	if !listfilter.IsAll(filter.Municipality) {
		sb.WriteString(fmt.Sprintf(" AND municipality ILIKE $%d", argN))
		args = append(args, "%"+listfilter.Normalize(filter.Municipality)+"%")
		argN++
	}
	if !listfilter.IsAll(filter.Veterinarian) {
		sb.WriteString(fmt.Sprintf(" AND lower(veterinarian) = $%d", argN))
		args = append(args, listfilter.Normalize(filter.Veterinarian))
		argN++
	}
	if !listfilter.IsAll(filter.Location) {
		sb.WriteString(fmt.Sprintf(" AND location ILIKE $%d", argN))
		args = append(args, "%"+listfilter.Normalize(filter.Location)+"%")
		argN++
	}

	sb.WriteString(" ORDER BY seq ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.DailyRecord, 0)
	for rows.Next() {
		var rec vaccinations.DailyRecord
		var status string
		if err := rows.Scan(
			&rec.ID,
			&rec.Date,
			&rec.Time,
			&rec.PetID,
			&rec.PetName,
			&rec.PetSpecies,
			&rec.PetBreed,
			&rec.Owner,
			&rec.OwnerContact,
			&rec.VaccineType,
			&rec.BatchNo,
			&rec.Location,
			&rec.Municipality,
			&rec.Veterinarian,
			&status,
			&rec.Notes,
		); err != nil {
			return nil, err
		}
		rec.Status = vaccinations.RecordStatus(status)
		out = append(out, rec)
	}

	return out, rows.Err()
}
