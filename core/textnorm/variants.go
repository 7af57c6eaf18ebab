// core/textnorm/variants.go
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

// Variant is a generated token form together with the space-separated base
// pattern it substitutes inside a joined token string.
type Variant struct {
	Form string
	Base string
}

var (
	hyphenTokenRE      = regexp.MustCompile(`\b[a-z0-9]+(?:-[a-z0-9]+)+\b`)
	letterDigitSplitRE = regexp.MustCompile(`\b(?:[a-z]\s+\d+|\d+\s+[a-z])\b`)
)

// HyphenVariants finds hyphenated tokens in text and yields both the
// hyphenated form and its concatenated counterpart. The base pattern is the
// space-separated spelling produced by tokenization.
func HyphenVariants(text string) []Variant {
	var out []Variant
	for _, tok := range hyphenTokenRE.FindAllString(text, -1) {
		base := strings.ReplaceAll(tok, "-", " ")
		out = append(out,
			Variant{Form: tok, Base: base},
			Variant{Form: strings.ReplaceAll(tok, "-", ""), Base: base},
		)
	}
	return out
}

// LetterDigitVariants yields concatenated and hyphenated forms for each
// adjacent pair of an alphabetic token followed by a numeric token
// ("h", "3" → "h3" and "h-3"). The originals stay in the pool.
func LetterDigitVariants(tokens []string) []Variant {
	var out []Variant
	for i := 0; i+1 < len(tokens); i++ {
		left, right := tokens[i], tokens[i+1]
		if !isAlpha(left) || !isDigits(right) {
			continue
		}
		base := left + " " + right
		out = append(out,
			Variant{Form: left + right, Base: base},
			Variant{Form: left + "-" + right, Base: base},
		)
	}
	return out
}

// BuildVariantStrings expands a joined base string into its distinct spelling
// variants. The bare base is included unless it still contains an unresolved
// letter/digit split; each substitution contributes both the rewritten base
// and the standalone form; extra tokens (retained parentheticals) follow.
// Empty strings are dropped and order of first appearance is kept.
func BuildVariantStrings(base string, subs []Variant, extra []string) []string {
	var variants []string
	base = strings.TrimSpace(base)
	if base != "" && !letterDigitSplitRE.MatchString(base) {
		variants = append(variants, base)
	}
	for _, s := range subs {
		if base != "" && strings.Contains(base, s.Base) {
			variants = append(variants, strings.ReplaceAll(base, s.Base, s.Form))
		}
		variants = append(variants, s.Form)
	}
	variants = append(variants, extra...)

	seen := make(map[string]struct{}, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
