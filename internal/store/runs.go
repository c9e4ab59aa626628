package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

const recentRunsSQL = `
SELECT run_id, source_file, run_at, ingested, accepted,
	cleanse_rejected, duplicate_rejected, business_rejected
FROM pipeline_runs
ORDER BY run_at DESC
LIMIT $1`

// RunRecord is one historical pipeline run as recorded in the audit
// table.
type RunRecord struct {
	RunID             pgtype.UUID
	SourceFile        string
	RunAt             pgtype.Timestamptz
	Ingested          int
	Accepted          int
	CleanseRejected   int
	DuplicateRejected int
	BusinessRejected  int
}

// RecentRuns returns the most recent pipeline runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx, recentRunsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("querying run history: %w", err)
	}
	defer rows.Close()

	records := make([]RunRecord, 0, limit)
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(
			&r.RunID, &r.SourceFile, &r.RunAt, &r.Ingested, &r.Accepted,
			&r.CleanseRejected, &r.DuplicateRejected, &r.BusinessRejected,
		); err != nil {
			return nil, fmt.Errorf("scanning run history row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading run history: %w", err)
	}
	return records, nil
}
