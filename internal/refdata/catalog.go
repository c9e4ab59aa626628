// Package refdata holds the reference catalogs the code resolver works
// against: ISO country and subdivision lists with fuzzy name search, and
// a lexicon-backed translation capability.
//
// Catalogs are plain read-only values passed into the resolver, never
// package-level singletons, so test runs can pin an exact catalog.
package refdata

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Country is one reference catalog entry. AltNames carry common
// variants and local-language spellings so fuzzy search can hit them.
type Country struct {
	Alpha2   string   `yaml:"alpha2"`
	Name     string   `yaml:"name"`
	AltNames []string `yaml:"alt_names,omitempty"`
}

// Subdivision is one ISO 3166-2 entry. Code is the full form, e.g.
// "US-CA" or "GB-EAW".
type Subdivision struct {
	Code     string   `yaml:"code"`
	Name     string   `yaml:"name"`
	AltNames []string `yaml:"alt_names,omitempty"`
}

// Catalog bundles the country and subdivision reference lists. Entry
// order is significant: fuzzy search breaks score ties by catalog order,
// which keeps resolution deterministic for a fixed catalog.
type Catalog struct {
	countries    []Country
	byAlpha2     map[string]Country
	subdivisions []Subdivision
	byCode       map[string]Subdivision
	byCountry    map[string][]Subdivision

	// MinScore is the similarity floor below which fuzzy search
	// reports no match.
	MinScore float64
}

// DefaultMinScore is the fuzzy-search similarity floor used when a
// catalog does not override it.
const DefaultMinScore = 0.55

// NewCatalog builds a catalog from explicit entry lists.
func NewCatalog(countries []Country, subdivisions []Subdivision) *Catalog {
	c := &Catalog{
		countries:    countries,
		byAlpha2:     make(map[string]Country, len(countries)),
		subdivisions: subdivisions,
		byCode:       make(map[string]Subdivision, len(subdivisions)),
		byCountry:    make(map[string][]Subdivision),
		MinScore:     DefaultMinScore,
	}
	for _, co := range countries {
		c.byAlpha2[co.Alpha2] = co
	}
	for _, sd := range subdivisions {
		c.byCode[sd.Code] = sd
		if cc, _, ok := strings.Cut(sd.Code, "-"); ok {
			c.byCountry[cc] = append(c.byCountry[cc], sd)
		}
	}
	return c
}

// Builtin returns the compiled-in reference catalog.
func Builtin() *Catalog {
	return NewCatalog(builtinCountries, builtinSubdivisions)
}

// catalogFile is the YAML shape of a catalog override file.
type catalogFile struct {
	Countries    []Country     `yaml:"countries"`
	Subdivisions []Subdivision `yaml:"subdivisions"`
}

// LoadFile reads a YAML catalog file and merges it over the builtin
// catalog: file entries are appended after the builtin ones, so builtin
// entries win score ties and file entries with a duplicate code replace
// the builtin lookup entry.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	countries := append(append([]Country(nil), builtinCountries...), cf.Countries...)
	subdivisions := append(append([]Subdivision(nil), builtinSubdivisions...), cf.Subdivisions...)
	return NewCatalog(countries, subdivisions), nil
}

// LookupCountry resolves an alpha-2 code exactly.
func (c *Catalog) LookupCountry(alpha2 string) (Country, bool) {
	co, ok := c.byAlpha2[alpha2]
	return co, ok
}

// LookupSubdivision resolves a full <country>-<subdivision> code exactly.
func (c *Catalog) LookupSubdivision(code string) (Subdivision, bool) {
	sd, ok := c.byCode[code]
	return sd, ok
}

// SearchCountry fuzzy-matches a free-text name against the country
// catalog and returns the top-ranked entry, or ok=false when nothing
// clears the similarity floor.
func (c *Catalog) SearchCountry(name string) (Country, bool) {
	best := -1
	bestScore := c.MinScore
	for i, co := range c.countries {
		score := nameScore(name, co.Name, co.AltNames)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Country{}, false
	}
	return c.countries[best], true
}

// SearchSubdivision fuzzy-matches a free-text name against the
// subdivisions of one country. The country restriction is what makes a
// short query like "Victoria" resolve to AU-VIC rather than a
// same-named subdivision elsewhere.
func (c *Catalog) SearchSubdivision(country, name string) (Subdivision, bool) {
	subs := c.byCountry[country]
	best := -1
	bestScore := c.MinScore
	for i, sd := range subs {
		score := nameScore(name, sd.Name, sd.AltNames)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Subdivision{}, false
	}
	return subs[best], true
}

// nameScore scores a query against an entry's primary name and any
// alternate names, keeping the best.
func nameScore(query, name string, alts []string) float64 {
	score := Similarity(query, name)
	for _, alt := range alts {
		if s := Similarity(query, alt); s > score {
			score = s
		}
	}
	return score
}
