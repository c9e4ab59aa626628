// Package cleanse implements per-field normalization and validation of
// the working table.
//
// Each business field has one rule. A rule requires its column to exist
// (a missing column is a table.SchemaError, which aborts the run),
// normalizes the field's value in place for every row, and appends a
// <Field>_reject flag column recording per-row validation failures.
// Rules are independent objects behind a small interface so the set can
// grow without touching the runner.
package cleanse

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/willisshum/entity-onboarding/internal/table"
)

// EntityTypes is the closed set of accepted entity types.
var EntityTypes = []string{"Company", "Nonprofit", "Partnership", "Trust"}

// StatusValues is the closed set of accepted statuses.
var StatusValues = []string{"Active", "Inactive", "Pending"}

var (
	registrationPattern = regexp.MustCompile(`^REG\d{5}$`)
	isoDatePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailPattern        = regexp.MustCompile(`^.+@.+$`)
)

// Rule normalizes one field across the whole table and records its
// reject flag. Apply returns a *table.SchemaError when the rule's
// required column is missing; it never fails on row content.
type Rule interface {
	Field() string
	Apply(t *table.Table) error
}

// RejectFlag returns the reject flag column name for a field.
func RejectFlag(field string) string {
	return field + "_reject"
}

// fieldRule adapts a per-cell normalize function to the Rule contract.
type fieldRule struct {
	field string
	norm  func(v table.Value) (table.Value, bool)
}

func (r fieldRule) Field() string { return r.field }

func (r fieldRule) Apply(t *table.Table) error {
	if err := t.Require(r.field); err != nil {
		return err
	}
	flag := RejectFlag(r.field)
	t.AddFlagColumn(flag)
	for i := 0; i < t.Len(); i++ {
		rec := t.Row(i)
		v, reject := r.norm(rec.Get(r.field))
		rec.Set(r.field, v)
		rec.SetFlag(flag, reject)
	}
	return nil
}

// EntityNameRule trims the entity name. A name that is absent, empty,
// or whitespace-only is rejected. Whitespace-only input collapses to
// the empty string (still present); this is the one place the pipeline
// maps whitespace to empty rather than preserving it.
func EntityNameRule() Rule {
	return fieldRule{field: "EntityName", norm: func(v table.Value) (table.Value, bool) {
		if !v.Present() {
			return v, true
		}
		trimmed := strings.TrimSpace(v.Str())
		return table.String(trimmed), trimmed == ""
	}}
}

// EntityTypeRule trims and canonicalizes capitalization (first letter
// upper, rest lower), then checks membership in EntityTypes.
func EntityTypeRule() Rule {
	return fieldRule{field: "EntityType", norm: func(v table.Value) (table.Value, bool) {
		if !v.Present() {
			return v, true
		}
		s := capitalize(strings.TrimSpace(v.Str()))
		for _, t := range EntityTypes {
			if s == t {
				return table.String(s), false
			}
		}
		return table.String(s), true
	}}
}

// RegistrationNumberRule trims and uppercases, then requires the
// REG + five digits shape. Absence is allowed.
func RegistrationNumberRule() Rule {
	return fieldRule{field: "RegistrationNumber", norm: func(v table.Value) (table.Value, bool) {
		if !v.Present() {
			return v, false
		}
		s := strings.ToUpper(strings.TrimSpace(v.Str()))
		return table.String(s), !registrationPattern.MatchString(s)
	}}
}

// DateRule trims and runs the value through the format disambiguator.
// A present value that still is not YYYY-MM-DD afterwards is rejected;
// absence is allowed (the business-rule stage decides whether a missing
// date matters for the particular field).
func DateRule(field string) Rule {
	return fieldRule{field: field, norm: func(v table.Value) (table.Value, bool) {
		if !v.Present() {
			return v, false
		}
		s := DisambiguateDate(strings.TrimSpace(v.Str()))
		return table.String(s), !isoDatePattern.MatchString(s)
	}}
}

// StatusRule maps the legacy Y/N codes to Active/Inactive, then reduces
// decorated values to the longest StatusValues prefix match ("Actived"
// reduces to "Active"). Anything not landing exactly on a status value
// is rejected.
func StatusRule() Rule {
	return fieldRule{field: "Status", norm: func(v table.Value) (table.Value, bool) {
		if !v.Present() {
			return v, true
		}
		s := strings.TrimSpace(v.Str())
		switch s {
		case "Y":
			s = "Active"
		case "N":
			s = "Inactive"
		}
		if reduced, ok := longestStatusPrefix(s); ok {
			s = reduced
		}
		for _, t := range StatusValues {
			if s == t {
				return table.String(s), false
			}
		}
		return table.String(s), true
	}}
}

// longestStatusPrefix returns the longest status value the string
// starts with. "Inactive" is checked before "Active" so the longer
// match always wins.
func longestStatusPrefix(s string) (string, bool) {
	best := ""
	for _, t := range StatusValues {
		if strings.HasPrefix(s, t) && len(t) > len(best) {
			best = t
		}
	}
	return best, best != ""
}

// IndustryRule trims, treats the literal NULL marker as absent, and
// title-cases each whitespace-separated token. It never rejects; the
// flag column exists for aggregation symmetry only.
func IndustryRule() Rule {
	titler := cases.Title(language.English)
	return fieldRule{field: "Industry", norm: func(v table.Value) (table.Value, bool) {
		if !v.Present() {
			return v, false
		}
		s := strings.TrimSpace(v.Str())
		if s == "NULL" {
			return table.Absent(), false
		}
		tokens := strings.Fields(s)
		for i, tok := range tokens {
			tokens[i] = titler.String(tok)
		}
		return table.String(strings.Join(tokens, " ")), false
	}}
}

// ContactEmailRule trims and applies a deliberately permissive
// nonempty@nonempty shape check. Absence is allowed.
func ContactEmailRule() Rule {
	return fieldRule{field: "ContactEmail", norm: func(v table.Value) (table.Value, bool) {
		if !v.Present() {
			return v, false
		}
		s := strings.TrimSpace(v.Str())
		return table.String(s), !emailPattern.MatchString(s)
	}}
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// DefaultRules returns the standard field rules in declaration order.
// The country/subdivision resolver rules are appended by the pipeline,
// which owns their catalog dependencies.
func DefaultRules() []Rule {
	return []Rule{
		EntityNameRule(),
		EntityTypeRule(),
		RegistrationNumberRule(),
		DateRule("IncorporationDate"),
		DateRule("LastUpdate"),
		StatusRule(),
		IndustryRule(),
		ContactEmailRule(),
	}
}

// Cleanser runs an ordered rule set over a table and folds the
// stage-level reject flag.
type Cleanser struct {
	rules []Rule
	log   *slog.Logger
}

// NewCleanser creates a cleanser. The rule order is the application
// order; resolver rules that depend on other columns being normalized
// must come after those columns' rules.
func NewCleanser(log *slog.Logger, rules ...Rule) *Cleanser {
	if log == nil {
		log = slog.Default()
	}
	return &Cleanser{rules: rules, log: log}
}

// Run applies every rule to a copy of the input and computes
// cleanse_reject. The input table is not mutated.
func (c *Cleanser) Run(t *table.Table) (*table.Table, error) {
	out := t.Clone()
	for _, r := range c.rules {
		if err := r.Apply(out); err != nil {
			return nil, err
		}
		c.log.Debug("field normalized", "field", r.Field(), "rows", out.Len())
	}
	FoldRejects(out, CleanseReject, CleanseRejectFlags())
	return out, nil
}
