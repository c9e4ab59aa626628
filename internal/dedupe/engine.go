// Package dedupe detects duplicate entities among cleansing-accepted
// records and separates true duplicates from conflicting near-duplicates.
package dedupe

import (
	"log/slog"
	"strings"

	"github.com/willisshum/entity-onboarding/internal/table"
)

// DuplicateCandidate is the flag column tagging rows that belonged to a
// multi-member natural-key group (representatives and conflict rejects
// alike). Singleton rows carry it as false.
const DuplicateCandidate = "duplicate_candidate"

// Engine groups records by natural key and classifies each group.
type Engine struct {
	// KeyFields is the natural key. Records sharing all key values
	// form one duplicate-candidate group.
	KeyFields []string

	// IgnoreFields are excluded from the member comparison alongside
	// the key itself; surrogate identifiers belong here, since two
	// exports of the same entity legitimately differ on them.
	IgnoreFields []string

	log *slog.Logger
}

// NewEngine returns an engine keyed on (EntityName, EntityType) with
// the EntityID surrogate excluded from comparison.
func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		KeyFields:    []string{"EntityName", "EntityType"},
		IgnoreFields: []string{"EntityID"},
		log:          log,
	}
}

// Result partitions the input: Accepted holds singletons and one
// representative per true-duplicate group; Conflicts holds every member
// of each group with an internal disagreement. A record appears in
// exactly one of the two tables, except the silently dropped extra
// copies of true duplicates, which appear in neither.
type Result struct {
	Accepted  *table.Table
	Conflicts *table.Table
}

// Run classifies the table. The input is not mutated; output rows are
// copies tagged with the duplicate_candidate flag. Group order follows
// first occurrence in the input, so output order is deterministic.
func (e *Engine) Run(t *table.Table) Result {
	groups := make(map[string][]int)
	var order []string
	for i := 0; i < t.Len(); i++ {
		k := e.groupKey(t.Row(i))
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	distinguishing := e.distinguishingFields(t)

	accepted := t.Empty()
	accepted.AddFlagColumn(DuplicateCandidate)
	conflicts := t.Empty()
	conflicts.AddFlagColumn(DuplicateCandidate)

	dropped := 0
	for _, k := range order {
		idx := groups[k]
		if len(idx) == 1 {
			rec := t.Row(idx[0]).Clone()
			rec.SetFlag(DuplicateCandidate, false)
			accepted.Append(rec)
			continue
		}

		if e.identical(t, idx, distinguishing) {
			// True duplicates: keep the first occurrence, drop the
			// rest without routing them anywhere.
			rec := t.Row(idx[0]).Clone()
			rec.SetFlag(DuplicateCandidate, true)
			accepted.Append(rec)
			dropped += len(idx) - 1
			continue
		}

		// Any disagreement rejects the whole group, members that
		// agree with each other included: which version is
		// authoritative is for a human to decide.
		for _, i := range idx {
			rec := t.Row(i).Clone()
			rec.SetFlag(DuplicateCandidate, true)
			conflicts.Append(rec)
		}
	}

	e.log.Debug("deduplication finished",
		"groups", len(order),
		"accepted", accepted.Len(),
		"conflict_rejected", conflicts.Len(),
		"duplicates_dropped", dropped,
	)
	return Result{Accepted: accepted, Conflicts: conflicts}
}

// groupKey encodes the natural key of a record. Present and absent
// values encode distinctly so an absent key field never collides with
// an empty one.
func (e *Engine) groupKey(rec table.Record) string {
	var b strings.Builder
	for _, f := range e.KeyFields {
		v := rec.Get(f)
		if v.Present() {
			b.WriteByte(1)
			b.WriteString(v.Str())
		} else {
			b.WriteByte(0)
		}
		b.WriteByte(0x1f)
	}
	return b.String()
}

// distinguishingFields is every declared column minus the key and the
// ignored surrogates.
func (e *Engine) distinguishingFields(t *table.Table) []string {
	skip := make(map[string]bool, len(e.KeyFields)+len(e.IgnoreFields))
	for _, f := range e.KeyFields {
		skip[f] = true
	}
	for _, f := range e.IgnoreFields {
		skip[f] = true
	}

	var fields []string
	for _, c := range t.Columns() {
		if !skip[c] {
			fields = append(fields, c)
		}
	}
	return fields
}

// identical reports whether every member of the group agrees with the
// first member on every distinguishing field. Absence equals absence.
func (e *Engine) identical(t *table.Table, idx []int, fields []string) bool {
	first := t.Row(idx[0])
	for _, i := range idx[1:] {
		rec := t.Row(i)
		for _, f := range fields {
			if !first.Get(f).Equal(rec.Get(f)) {
				return false
			}
		}
	}
	return true
}
