package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"vax-tracker/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

const petColumns = `
	id, name, species, breed, age, gender, color,
	owner_name, owner_address, owner_contact, owner_email,
	registration_date, microchip`

// Create guarda la mascota con su historial y notas en una transacción.
func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		p.Age,
		string(p.Gender),
		p.Color,
		p.Owner.Name,
		p.Owner.Address,
		p.Owner.Contact,
		p.Owner.Email,
		p.RegistrationDate,
		p.Microchip,
	); err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}

	// el historial llega del más nuevo al más viejo: se inserta al revés
	for i := len(p.History) - 1; i >= 0; i-- {
		if err := insertEvent(ctx, tx, p.ID, p.History[i]); err != nil {
			return err
		}
	}
	for _, n := range p.HealthNotes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO health_notes (pet_id, date, note) VALUES ($1,$2,$3)
		`, p.ID, n.Date, n.Note); err != nil {
			return fmt.Errorf("insert health note: %w", err)
		}
	}
	return tx.Commit()
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	byPet := map[string]*pets.Pet{p.ID: &p}
	if err := r.loadHistory(ctx, byPet, "WHERE pet_id = $1", id); err != nil {
		return pets.Pet{}, err
	}
	if err := r.loadNotes(ctx, byPet, "WHERE pet_id = $1", id); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pets ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byPet := make(map[string]*pets.Pet, len(out))
	for i := range out {
		byPet[out[i].ID] = &out[i]
	}
	if err := r.loadHistory(ctx, byPet, ""); err != nil {
		return nil, err
	}
	if err := r.loadNotes(ctx, byPet, ""); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PetsRepo) PrependVaccination(ctx context.Context, petID string, e pets.VaccinationEvent) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, petID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return pets.ErrNotFound
	}
	return insertEvent(ctx, r.db, petID, e)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertEvent(ctx context.Context, db execer, petID string, e pets.VaccinationEvent) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO vaccination_events (
			id, pet_id, date, vaccine, batch_no, location, veterinarian, next_due
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		petID,
		e.Date,
		e.Vaccine,
		e.BatchNo,
		e.Location,
		e.Veterinarian,
		toNullDate(e.NextDue),
	)
	if err != nil {
		return fmt.Errorf("insert vaccination event: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var species, gender string
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&species,
		&p.Breed,
		&p.Age,
		&gender,
		&p.Color,
		&p.Owner.Name,
		&p.Owner.Address,
		&p.Owner.Contact,
		&p.Owner.Email,
		&p.RegistrationDate,
		&p.Microchip,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Species = pets.Species(species)
	p.Gender = pets.Gender(gender)
	return p, nil
}

// loadHistory completa History de cada mascota de byPet, del evento más nuevo al más viejo.
func (r *PetsRepo) loadHistory(ctx context.Context, byPet map[string]*pets.Pet, where string, args ...any) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pet_id, id, date, vaccine, batch_no, location, veterinarian, next_due
		FROM vaccination_events
		`+where+`
		ORDER BY date DESC, seq DESC
	`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var petID string
		var e pets.VaccinationEvent
		var next sql.NullTime
		if err := rows.Scan(
			&petID,
			&e.ID,
			&e.Date,
			&e.Vaccine,
			&e.BatchNo,
			&e.Location,
			&e.Veterinarian,
			&next,
		); err != nil {
			return err
		}
		if next.Valid {
			e.NextDue = next.Time
		}
		if p, ok := byPet[petID]; ok {
			p.History = append(p.History, e)
		}
	}
	return rows.Err()
}

func (r *PetsRepo) loadNotes(ctx context.Context, byPet map[string]*pets.Pet, where string, args ...any) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pet_id, date, note
		FROM health_notes
		`+where+`
		ORDER BY seq ASC
	`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var petID string
		var n pets.HealthNote
		if err := rows.Scan(&petID, &n.Date, &n.Note); err != nil {
			return err
		}
		if p, ok := byPet[petID]; ok {
			p.HealthNotes = append(p.HealthNotes, n)
		}
	}
	return rows.Err()
}

// next_due es DATE nullable; el cero de time.Time va como NULL
func toNullDate(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t, Valid: true}
}
