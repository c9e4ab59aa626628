// Package pipeline wires the stages into the one-shot batch run:
// cleanse, partition, deduplicate, business-validate. Each stage is a
// pure function from input table to output table(s); the pipeline owns
// stage ordering and the partition bookkeeping, nothing else.
package pipeline

import (
	"log/slog"

	"github.com/willisshum/entity-onboarding/internal/cleanse"
	"github.com/willisshum/entity-onboarding/internal/dedupe"
	"github.com/willisshum/entity-onboarding/internal/refdata"
	"github.com/willisshum/entity-onboarding/internal/resolve"
	"github.com/willisshum/entity-onboarding/internal/table"
	"github.com/willisshum/entity-onboarding/internal/validate"
)

// Result carries the partitioned outputs of a run. Every ingested row
// lands in exactly one partition, except the silently dropped extra
// copies of true duplicates. All reject partitions are preserved for
// manual review; nothing is discarded on the reject path.
type Result struct {
	// Accepted survived every stage and is ready for the destination
	// transform and upsert.
	Accepted *table.Table

	// CleanseRejected failed at least one field-level check.
	CleanseRejected *table.Table

	// DuplicateRejected belonged to a natural-key group with
	// conflicting field values.
	DuplicateRejected *table.Table

	// BusinessRejected passed cleansing and deduplication but failed
	// a cross-field business rule.
	BusinessRejected *table.Table
}

// Pipeline runs the cleansing, deduplication, and validation stages.
type Pipeline struct {
	cleanser *cleanse.Cleanser
	engine   *dedupe.Engine
	rules    []validate.Rule
	log      *slog.Logger
}

// New builds a pipeline against the given reference catalog and
// translator. The resolver rules run after the plain field rules so
// they see normalized input.
func New(catalog *refdata.Catalog, translator refdata.Translator, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	rules := append(
		cleanse.DefaultRules(),
		resolve.CountryRule(catalog, log),
		resolve.SubdivisionRule(catalog, translator, log),
	)
	return &Pipeline{
		cleanser: cleanse.NewCleanser(log, rules...),
		engine:   dedupe.NewEngine(log),
		rules:    validate.DefaultRules(),
		log:      log,
	}
}

// Cleanse normalizes every declared field and computes cleanse_reject.
// It is exposed separately so callers can run validation-only passes.
func (p *Pipeline) Cleanse(t *table.Table) (*table.Table, error) {
	return p.cleanser.Run(t)
}

// Deduplicate classifies cleansing-accepted records into accept and
// conflict-reject partitions.
func (p *Pipeline) Deduplicate(t *table.Table) dedupe.Result {
	return p.engine.Run(t)
}

// ValidateBusinessRules computes business_rules_reject on deduplicated
// survivors.
func (p *Pipeline) ValidateBusinessRules(t *table.Table) *table.Table {
	return validate.Apply(t, p.rules, p.log)
}

// Run executes the full stage sequence over an ingested table. The
// only error condition is structural (a required column missing from
// the input schema); row-level problems always land in a partition
// instead.
func (p *Pipeline) Run(raw *table.Table) (Result, error) {
	p.log.Info("cleansing records", "rows", raw.Len())
	cleansed, err := p.Cleanse(raw)
	if err != nil {
		return Result{}, err
	}

	accepted, cleanseRejected := cleanse.Split(cleansed, cleanse.CleanseReject)
	p.log.Info("cleansing finished",
		"accepted", accepted.Len(),
		"rejected", cleanseRejected.Len(),
	)

	p.log.Info("deduplicating records", "rows", accepted.Len())
	dd := p.Deduplicate(accepted)

	p.log.Info("validating against business rules", "rows", dd.Accepted.Len())
	validated := p.ValidateBusinessRules(dd.Accepted)
	final, businessRejected := cleanse.Split(validated, cleanse.BusinessRulesReject)

	p.log.Info("pipeline finished",
		"accepted", final.Len(),
		"cleanse_rejected", cleanseRejected.Len(),
		"duplicate_rejected", dd.Conflicts.Len(),
		"business_rejected", businessRejected.Len(),
	)

	return Result{
		Accepted:          final,
		CleanseRejected:   cleanseRejected,
		DuplicateRejected: dd.Conflicts,
		BusinessRejected:  businessRejected,
	}, nil
}
