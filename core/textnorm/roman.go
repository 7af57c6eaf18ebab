// core/textnorm/roman.go
package textnorm

import (
	"regexp"
	"sort"
	"strings"
)

// romanNumerals covers standalone numerals II through XX. The single-letter
// numerals I, V, and X are excluded: stripping them would mangle valid gene
// symbols and subtype letters.
var romanNumerals = map[string]string{
	"ii": "2", "iii": "3", "iv": "4",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
	"xi": "11", "xii": "12", "xiii": "13", "xiv": "14", "xv": "15",
	"xvi": "16", "xvii": "17", "xviii": "18", "xix": "19", "xx": "20",
}

var romanRE = buildRomanRE()

func buildRomanRE() *regexp.Regexp {
	keys := make([]string, 0, len(romanNumerals))
	for k := range romanNumerals {
		keys = append(keys, k)
	}
	// Longest-first so e.g. "xviii" is not consumed as "xv".
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return regexp.MustCompile(`(?i)\b(` + strings.Join(keys, "|") + `)\b`)
}

// FoldRoman rewrites standalone Roman numeral tokens to Arabic digit strings.
// Numerals embedded inside alphanumeric tokens are left alone, and folding is
// idempotent: digit strings match no numeral.
func FoldRoman(text string) string {
	return romanRE.ReplaceAllStringFunc(text, func(m string) string {
		return romanNumerals[strings.ToLower(m)]
	})
}
