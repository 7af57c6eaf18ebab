// core/textnorm/sanitize.go
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// greekLetters maps lowercase Greek characters to their spelled-out ASCII
// names. Folding runs after lowercasing, so uppercase forms are covered.
var greekLetters = map[string]string{
	"α": "alpha",
	"β": "beta",
	"γ": "gamma",
	"δ": "delta",
	"ε": "epsilon",
	"ζ": "zeta",
	"η": "eta",
	"θ": "theta",
	"ι": "iota",
	"κ": "kappa",
	"λ": "lambda",
	"μ": "mu",
	"ν": "nu",
	"ξ": "xi",
	"ο": "omicron",
	"π": "pi",
	"ρ": "rho",
	"σ": "sigma",
	"τ": "tau",
	"υ": "upsilon",
	"φ": "phi",
	"χ": "chi",
	"ψ": "psi",
	"ω": "omega",
}

// superscripts maps super/subscript digits to plain ASCII digits.
var superscripts = map[string]string{
	"¹": "1", "²": "2", "³": "3", "⁴": "4", "⁵": "5",
	"⁶": "6", "⁷": "7", "⁸": "8", "⁹": "9", "⁰": "0",
	"₁": "1", "₂": "2", "₃": "3", "₄": "4", "₅": "5",
	"₆": "6", "₇": "7", "₈": "8", "₉": "9", "₀": "0",
}

var (
	controlCharsRE = regexp.MustCompile(`[\x{0000}-\x{001F}\x{007F}]`)
	multiSpaceRE   = regexp.MustCompile(`[\s\p{Zs}\x{200B}]+`)
	typoQuotesRE   = regexp.MustCompile(`[“”«»„’]`)
	longDashRE     = regexp.MustCompile(`[–—]`)
)

var specialsReplacer = buildSpecialsReplacer()

func buildSpecialsReplacer() *strings.Replacer {
	pairs := make([]string, 0, 2*(len(greekLetters)+len(superscripts)))
	for k, v := range greekLetters {
		pairs = append(pairs, k, v)
	}
	for k, v := range superscripts {
		pairs = append(pairs, k, v)
	}
	return strings.NewReplacer(pairs...)
}

// Sanitize removes control characters and the BOM, collapses every run of
// whitespace (including non-breaking and other Unicode spaces) to a single
// ASCII space, and trims the ends. It never fails on malformed input.
func Sanitize(text string) string {
	text = controlCharsRE.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\uFEFF", "")
	text = multiSpaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeUnicode applies NFKC compatibility normalization, lowercases, and
// folds typographic quotes and long dashes to their ASCII counterparts.
// NFKC runs first so variants like the micro sign µ collapse into μ before
// the specials fold sees them.
func NormalizeUnicode(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ToLower(text)
	text = typoQuotesRE.ReplaceAllString(text, "'")
	text = longDashRE.ReplaceAllString(text, "-")
	return text
}

// FoldSpecials rewrites Greek letters to their spelled-out names and
// super/subscript digits to plain digits. Unmapped characters pass through.
func FoldSpecials(text string) string {
	return specialsReplacer.Replace(text)
}
