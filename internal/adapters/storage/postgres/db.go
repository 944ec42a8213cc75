package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/domain/vaccinations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// seq conserva el orden de inserción: pets en orden de alta, historial del más nuevo al más viejo.
const schema = `
CREATE TABLE IF NOT EXISTS pets (
    seq BIGSERIAL UNIQUE,
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    species TEXT NOT NULL,
    breed TEXT NOT NULL DEFAULT '',
    age TEXT NOT NULL DEFAULT '',
    gender TEXT NOT NULL DEFAULT '',
    color TEXT NOT NULL DEFAULT '',
    owner_name TEXT NOT NULL,
    owner_address TEXT NOT NULL,
    owner_contact TEXT NOT NULL,
    owner_email TEXT NOT NULL DEFAULT '',
    registration_date DATE NOT NULL,
    microchip TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS vaccination_events (
    seq BIGSERIAL UNIQUE,
    id TEXT PRIMARY KEY,
    pet_id TEXT NOT NULL REFERENCES pets(id),
    date DATE NOT NULL,
    vaccine TEXT NOT NULL,
    batch_no TEXT NOT NULL,
    location TEXT NOT NULL,
    veterinarian TEXT NOT NULL,
    next_due DATE
);
CREATE INDEX IF NOT EXISTS idx_vaccination_events_pet ON vaccination_events(pet_id, seq);

CREATE TABLE IF NOT EXISTS health_notes (
    seq BIGSERIAL PRIMARY KEY,
    pet_id TEXT NOT NULL REFERENCES pets(id),
    date DATE NOT NULL,
    note TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_vaccinations (
    seq BIGSERIAL UNIQUE,
    id TEXT PRIMARY KEY,
    date DATE NOT NULL,
    time TEXT NOT NULL,
    pet_id TEXT NOT NULL,
    pet_name TEXT NOT NULL,
    pet_species TEXT NOT NULL,
    pet_breed TEXT NOT NULL DEFAULT '',
    owner TEXT NOT NULL,
    owner_contact TEXT NOT NULL DEFAULT '',
    vaccine_type TEXT NOT NULL,
    batch_no TEXT NOT NULL,
    location TEXT NOT NULL,
    municipality TEXT NOT NULL DEFAULT '',
    veterinarian TEXT NOT NULL,
    status TEXT NOT NULL,
    notes TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_daily_vaccinations_date ON daily_vaccinations(date);
`

// SeedIfEmpty carga mascotas y registros demo sólo si la tabla pets está vacía.
func SeedIfEmpty(ctx context.Context, db *sql.DB, petList []pets.Pet, daily []vaccinations.DailyRecord) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM pets`).Scan(&n); err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	petsRepo := NewPetsRepo(db)
	for _, p := range petList {
		if err := petsRepo.Create(ctx, p); err != nil {
			return false, fmt.Errorf("seed pet %s: %w", p.ID, err)
		}
	}
	logRepo := NewVaccinationLogRepo(db)
	for _, rec := range daily {
		if err := logRepo.Append(ctx, rec); err != nil {
			return false, fmt.Errorf("seed daily record %s: %w", rec.ID, err)
		}
	}
	return true, nil
}
