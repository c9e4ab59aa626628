package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the database surface the store needs. Satisfied by both
// *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

const upsertEntitySQL = `
INSERT INTO entities (
	entity_id, entity_name, entity_type, registration_number,
	incorporation_date, country_code, state_code, contact_email,
	industry, status, last_update
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (entity_id) DO UPDATE SET
	entity_name = EXCLUDED.entity_name,
	entity_type = EXCLUDED.entity_type,
	registration_number = EXCLUDED.registration_number,
	incorporation_date = EXCLUDED.incorporation_date,
	country_code = EXCLUDED.country_code,
	state_code = EXCLUDED.state_code,
	contact_email = EXCLUDED.contact_email,
	industry = EXCLUDED.industry,
	status = EXCLUDED.status,
	last_update = EXCLUDED.last_update`

const insertEntitySQL = `
INSERT INTO entities (
	entity_name, entity_type, registration_number,
	incorporation_date, country_code, state_code, contact_email,
	industry, status, last_update
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const insertRunSQL = `
INSERT INTO pipeline_runs (
	run_id, source_file, run_at, ingested, accepted,
	cleanse_rejected, duplicate_rejected, business_rejected
) VALUES ($1, $2, now(), $3, $4, $5, $6, $7)`

// RunSummary is the per-batch audit row recorded with each load.
type RunSummary struct {
	RunID             pgtype.UUID
	SourceFile        string
	Ingested          int
	Accepted          int
	CleanseRejected   int
	DuplicateRejected int
	BusinessRejected  int
}

// Store loads entities into the destination database.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store on the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Load upserts the batch and records its audit row in one transaction.
// Each row runs under a savepoint so a single bad row reports its own
// error position without poisoning the surrounding transaction.
func (s *Store) Load(ctx context.Context, entities []Entity, summary RunSummary) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, e := range entities {
		sp := fmt.Sprintf("sp_%d", i)
		if _, err := tx.Exec(ctx, "SAVEPOINT "+sp); err != nil {
			return fmt.Errorf("creating savepoint for row %d: %w", i, err)
		}

		if err := upsertOne(ctx, tx, e); err != nil {
			if _, rbErr := tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+sp); rbErr != nil {
				return fmt.Errorf("recovering savepoint for row %d: %w", i, rbErr)
			}
			return fmt.Errorf("upserting row %d: %w", i, err)
		}

		if _, err := tx.Exec(ctx, "RELEASE SAVEPOINT "+sp); err != nil {
			return fmt.Errorf("releasing savepoint for row %d: %w", i, err)
		}
	}

	if _, err := tx.Exec(ctx, insertRunSQL,
		summary.RunID, summary.SourceFile, summary.Ingested, summary.Accepted,
		summary.CleanseRejected, summary.DuplicateRejected, summary.BusinessRejected,
	); err != nil {
		return fmt.Errorf("recording run summary: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// upsertOne writes a single entity. Rows carrying an EntityID upsert on
// it; rows without one are plain inserts.
func upsertOne(ctx context.Context, db DBTX, e Entity) error {
	if e.EntityID.Valid {
		_, err := db.Exec(ctx, upsertEntitySQL,
			e.EntityID, e.EntityName, e.EntityType, e.RegistrationNumber,
			e.IncorporationDate, e.CountryCode, e.StateCode, e.ContactEmail,
			e.Industry, e.Status, e.LastUpdate,
		)
		return err
	}
	_, err := db.Exec(ctx, insertEntitySQL,
		e.EntityName, e.EntityType, e.RegistrationNumber,
		e.IncorporationDate, e.CountryCode, e.StateCode, e.ContactEmail,
		e.Industry, e.Status, e.LastUpdate,
	)
	return err
}
