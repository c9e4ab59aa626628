package refdata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTranslation reports that the lexicon has no entry for the
// requested language/text pair. Callers treat this as a soft failure
// and keep the untranslated text.
var ErrNoTranslation = errors.New("no translation available")

// Translator converts free text into a target language. The pipeline
// uses it as a last-resort fallback when a subdivision name does not
// fuzzy-match in its source language.
type Translator interface {
	Translate(lang, text string) (string, error)
}

// Lexicon is a static Translator backed by per-language phrase tables.
// Keys are lowercased language codes; inner keys are lowercased,
// whitespace-collapsed source phrases.
type Lexicon map[string]map[string]string

// Translate looks the text up in the phrase table for lang.
func (l Lexicon) Translate(lang, text string) (string, error) {
	phrases, ok := l[strings.ToLower(lang)]
	if !ok {
		return "", fmt.Errorf("language %q: %w", lang, ErrNoTranslation)
	}
	out, ok := phrases[foldPhrase(text)]
	if !ok {
		return "", fmt.Errorf("%q into %q: %w", text, lang, ErrNoTranslation)
	}
	return out, nil
}

func foldPhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// BuiltinLexicon returns the compiled-in phrase tables: English
// subdivision names mapped into the local-language names the
// subdivision catalog carries.
func BuiltinLexicon() Lexicon {
	return Lexicon{
		"de": {
			"bavaria":                "Bayern",
			"lower saxony":           "Niedersachsen",
			"north rhine-westphalia": "Nordrhein-Westfalen",
			"rhineland-palatinate":   "Rheinland-Pfalz",
			"saxony":                 "Sachsen",
			"saxony-anhalt":          "Sachsen-Anhalt",
			"thuringia":              "Thüringen",
			"hesse":                  "Hessen",
			"mecklenburg-western pomerania": "Mecklenburg-Vorpommern",
		},
		"es": {
			"andalusia":      "Andalucía",
			"catalonia":      "Cataluña",
			"basque country": "País Vasco",
			"castile and leon": "Castilla y León",
			"aragon":         "Aragón",
		},
		"fr": {
			"brittany":   "Bretagne",
			"corsica":    "Corse",
			"normandy":   "Normandie",
			"new aquitaine": "Nouvelle-Aquitaine",
		},
		"it": {
			"tuscany":  "Toscana",
			"lombardy": "Lombardia",
			"piedmont": "Piemonte",
			"sicily":   "Sicilia",
			"sardinia": "Sardegna",
		},
	}
}
