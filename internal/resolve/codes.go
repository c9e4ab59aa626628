// Package resolve converts free-form or already-coded location fields
// into canonical ISO codes against the reference catalogs.
//
// Both resolvers are cleanse rules: they normalize their raw column in
// place, write the resolved code to a separate *_revised column, and
// set the field's reject flag. Raw input columns are never overwritten
// with resolved codes, so a quarantined row still shows what the
// operator actually typed.
package resolve

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/willisshum/entity-onboarding/internal/cleanse"
	"github.com/willisshum/entity-onboarding/internal/refdata"
	"github.com/willisshum/entity-onboarding/internal/table"
)

// Derived column names, kept separate from the raw input columns.
const (
	CountryCodeRevised = "CountryCode_revised"
	StateCodeRevised   = "StateCode_revised"
)

var (
	// codeWithSuffix matches an alpha-2 code optionally carrying a
	// subdivision suffix, e.g. "GB" or "GB-EAW". Operators paste the
	// combined form into the country column often enough that the
	// resolver mines it for both codes.
	codeWithSuffix = regexp.MustCompile(`^([A-Z]{2})(?:-([A-Z0-9]{1,3}))?$`)

	alpha2 = regexp.MustCompile(`^[A-Z]{2}$`)
)

type countryRule struct {
	catalog *refdata.Catalog
	log     *slog.Logger
}

// CountryRule returns the country resolution rule. Resolution order:
// the trimmed/uppercased CountryCode column (with any subdivision
// suffix stripped) validated against the catalog, then a fuzzy name
// search over the free-text Country column. A fuzzy miss carries the
// free text through unchanged so the reject check sees a non-code
// value rather than a silent blank.
func CountryRule(catalog *refdata.Catalog, log *slog.Logger) cleanse.Rule {
	if log == nil {
		log = slog.Default()
	}
	return &countryRule{catalog: catalog, log: log}
}

func (r *countryRule) Field() string { return "CountryCode" }

func (r *countryRule) Apply(t *table.Table) error {
	if err := t.Require("CountryCode"); err != nil {
		return err
	}
	hasName := t.HasColumn("Country")
	if !hasName {
		r.log.Warn("free-text Country column missing, resolving from CountryCode only")
	}

	t.AddColumn(CountryCodeRevised)
	flag := cleanse.RejectFlag("CountryCode")
	t.AddFlagColumn(flag)

	for i := 0; i < t.Len(); i++ {
		rec := t.Row(i)

		resolved := table.Absent()
		if raw := rec.Get("CountryCode"); raw.Present() {
			up := strings.ToUpper(strings.TrimSpace(raw.Str()))
			rec.Set("CountryCode", table.String(up))
			if m := codeWithSuffix.FindStringSubmatch(up); m != nil {
				if _, ok := r.catalog.LookupCountry(m[1]); ok {
					resolved = table.String(m[1])
				} else {
					r.log.Debug("country code not in catalog, discarding", "code", m[1])
				}
			}
		}

		if !resolved.Present() && hasName {
			if name := rec.Get("Country"); name.Present() && strings.TrimSpace(name.Str()) != "" {
				if co, ok := r.catalog.SearchCountry(name.Str()); ok {
					resolved = table.String(co.Alpha2)
				} else {
					r.log.Debug("no country match for free text", "name", name.Str())
					resolved = name
				}
			}
		}

		rec.Set(CountryCodeRevised, resolved)
		rec.SetFlag(flag, !resolved.Present() || !alpha2.MatchString(resolved.Str()))
	}
	return nil
}

type subdivisionRule struct {
	catalog    *refdata.Catalog
	translator refdata.Translator
	log        *slog.Logger
}

// SubdivisionRule returns the subdivision resolution rule. It must run
// after CountryRule: the resolved country code scopes catalog
// validation, fuzzy search, and the translation fallback. Subdivision
// resolution never rejects a record; unresolved values simply stay
// absent and the flag column exists for aggregation symmetry.
func SubdivisionRule(catalog *refdata.Catalog, translator refdata.Translator, log *slog.Logger) cleanse.Rule {
	if log == nil {
		log = slog.Default()
	}
	return &subdivisionRule{catalog: catalog, translator: translator, log: log}
}

func (r *subdivisionRule) Field() string { return "StateCode" }

func (r *subdivisionRule) Apply(t *table.Table) error {
	if err := t.Require("StateCode"); err != nil {
		return err
	}
	hasName := t.HasColumn("State")
	if !hasName {
		r.log.Warn("free-text State column missing, resolving from StateCode only")
	}

	t.AddColumn(StateCodeRevised)
	flag := cleanse.RejectFlag("StateCode")
	t.AddFlagColumn(flag)

	for i := 0; i < t.Len(); i++ {
		rec := t.Row(i)

		country := ""
		if cv := rec.Get(CountryCodeRevised); cv.Present() && alpha2.MatchString(cv.Str()) {
			country = cv.Str()
		}

		candidate := table.Absent()
		if raw := rec.Get("StateCode"); raw.Present() {
			up := strings.ToUpper(strings.TrimSpace(raw.Str()))
			rec.Set("StateCode", table.String(up))
			// A state column repeating the country code is a known
			// data-entry slip; discard it rather than validating it.
			if country == "" || up != country {
				candidate = table.String(up)
			}
		}

		if !candidate.Present() {
			if cc := rec.Get("CountryCode"); cc.Present() {
				if m := codeWithSuffix.FindStringSubmatch(cc.Str()); m != nil && m[2] != "" {
					candidate = table.String(m[2])
				}
			}
		}

		resolved := table.Absent()
		if candidate.Present() && country != "" {
			full := country + "-" + candidate.Str()
			if _, ok := r.catalog.LookupSubdivision(full); ok {
				resolved = candidate
			} else {
				r.log.Debug("subdivision pairing not in catalog, discarding", "code", full)
			}
		}

		if !resolved.Present() && hasName {
			if name := rec.Get("State"); name.Present() && strings.TrimSpace(name.Str()) != "" {
				resolved = r.resolveName(country, name)
			}
		}

		rec.Set(StateCodeRevised, resolved)
		rec.SetFlag(flag, false)
	}
	return nil
}

// resolveName fuzzy-matches a free-text subdivision name, retrying
// through translation into the resolved country's language on a miss.
// The country's alpha-2 code doubles as the target language code; that
// holds for only a subset of countries and is accepted as-is here. If
// everything misses, the original free text is carried through.
func (r *subdivisionRule) resolveName(country string, name table.Value) table.Value {
	if country == "" {
		return name
	}
	if sd, ok := r.catalog.SearchSubdivision(country, name.Str()); ok {
		return table.String(suffixOf(sd.Code))
	}

	lang := strings.ToLower(country)
	translated, err := r.translator.Translate(lang, name.Str())
	if err != nil {
		r.log.Debug("translation failed", "lang", lang, "error", err)
		return name
	}
	if sd, ok := r.catalog.SearchSubdivision(country, translated); ok {
		return table.String(suffixOf(sd.Code))
	}
	r.log.Debug("no subdivision match for free text", "country", country, "name", name.Str())
	return name
}

// suffixOf strips the country prefix from a full subdivision code.
func suffixOf(code string) string {
	if _, suffix, ok := strings.Cut(code, "-"); ok {
		return suffix
	}
	return code
}
