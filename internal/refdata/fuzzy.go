package refdata

import "strings"

// Similarity scores two free-text names in [0, 1]. The score blends
// character-trigram overlap (robust to word order and small edits) with
// a Jaro-style character proximity score (robust on short strings,
// where trigram sets are tiny). Comparison is case-insensitive on
// whitespace-collapsed input.
func Similarity(a, b string) float64 {
	a = foldName(a)
	b = foldName(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	return 0.6*trigramScore(a, b) + 0.4*jaroScore(a, b)
}

// foldName uppercases and collapses runs of whitespace to single spaces.
func foldName(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// trigramScore is the Dice coefficient over padded character trigrams.
func trigramScore(a, b string) float64 {
	ta := trigrams(a)
	tb := trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	common := 0
	for g, n := range ta {
		if m, ok := tb[g]; ok {
			if m < n {
				common += m
			} else {
				common += n
			}
		}
	}

	total := 0
	for _, n := range ta {
		total += n
	}
	for _, n := range tb {
		total += n
	}
	return 2 * float64(common) / float64(total)
}

// trigrams returns the padded trigram multiset of s, matching the
// "  x" / " xy" edge padding convention of trigram indexes.
func trigrams(s string) map[string]int {
	padded := "  " + s + " "
	grams := make(map[string]int)
	runes := []rune(padded)
	for i := 0; i+3 <= len(runes); i++ {
		grams[string(runes[i:i+3])]++
	}
	return grams
}

// jaroScore is a simplified Jaro similarity: the fraction of characters
// of the longer string that find a positional near-match in the other.
func jaroScore(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	window := len(ra)
	if len(rb) > window {
		window = len(rb)
	}
	window /= 2

	used := make([]bool, len(rb))
	matches := 0
	for i, ca := range ra {
		for j, cb := range rb {
			if used[j] || ca != cb {
				continue
			}
			if abs(i-j) <= window {
				used[j] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	return float64(matches) / float64(longer)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
