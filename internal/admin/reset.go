// Package admin provides administrative operations for database management.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetTimeout is the maximum duration for database reset operations.
const ResetTimeout = 30 * time.Second

// Resetter handles database reset operations.
type Resetter struct {
	Pool *pgxpool.Pool
}

// ResetAll truncates the entities table and the run history.
// This is a destructive operation - use with caution.
func (r *Resetter) ResetAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ResetTimeout)
	defer cancel()

	return r.runResets(ctx, []string{
		"TRUNCATE TABLE entities",
		"TRUNCATE TABLE pipeline_runs",
	})
}

func (r *Resetter) runResets(ctx context.Context, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := r.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}
