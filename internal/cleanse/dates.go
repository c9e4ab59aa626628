package cleanse

import "time"

// dateLayouts is the ordered list of candidate input formats. The order
// is significant and intentional: the US month-first convention leads
// because it dominates the observed source data, so an ambiguous string
// like "03/04/15" always reads as March 4. Numeric components are
// declared non-padded, which makes each layout accept both padded and
// unpadded digits.
var dateLayouts = []string{
	"1/2/06",   // MM/DD/YY
	"1/2/2006", // MM/DD/YYYY
	"2/1/06",   // DD/MM/YY
	"2/1/2006", // DD/MM/YYYY
	"1-2-06",   // MM-DD-YY
	"1-2-2006", // MM-DD-YYYY
	"2006-1-2", // YYYY-MM-DD
	"2-Jan-06", // DD-MMM-YY
}

// DisambiguateDate converts a trimmed date string to canonical
// YYYY-MM-DD using the first layout that parses the whole string.
// If no layout matches, the input is returned unchanged so the caller's
// format check can flag it.
func DisambiguateDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
