// Package validate applies cross-field business rules to records that
// survived cleansing and deduplication.
package validate

import (
	"log/slog"

	"github.com/willisshum/entity-onboarding/internal/cleanse"
	"github.com/willisshum/entity-onboarding/internal/table"
)

// Rule is one business check. Reject returns true when the record
// violates the rule. Rules only ever raise the stage flag; nothing can
// lower it back to false once any rule has fired.
type Rule struct {
	Name   string
	Reject func(rec table.Record) bool
}

// DefaultRules returns the active business rule set.
func DefaultRules() []Rule {
	return []Rule{
		{
			// An incorporation date that failed format validation was
			// already caught upstream by its field flag; this rule
			// only fires on genuine absence.
			Name: "incorporation-date-required",
			Reject: func(rec table.Record) bool {
				return !rec.Get("IncorporationDate").Present()
			},
		},
	}
}

// Apply evaluates every rule against a copy of the table and records
// the monotonic business_rules_reject flag. The input is not mutated.
func Apply(t *table.Table, rules []Rule, log *slog.Logger) *table.Table {
	if log == nil {
		log = slog.Default()
	}

	out := t.Clone()
	out.AddFlagColumn(cleanse.BusinessRulesReject)
	for i := 0; i < out.Len(); i++ {
		rec := out.Row(i)
		rejected := rec.Flag(cleanse.BusinessRulesReject)
		for _, r := range rules {
			if !rejected && r.Reject(rec) {
				rejected = true
				log.Debug("business rule rejected record", "rule", r.Name, "row", i)
			}
		}
		rec.SetFlag(cleanse.BusinessRulesReject, rejected)
	}
	return out
}
