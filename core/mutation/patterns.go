// core/mutation/patterns.go
package mutation

import "regexp"

// rule is one mutation-notation pattern. The two flag fields handle cases
// Go's RE2 cannot express directly: skipSameLetter rejects letter-digit-letter
// matches whose flanking letters are identical (A123A is not a substitution),
// and skipProteinPrefix rejects matches immediately preceded by "p." (those
// belong to the dedicated HGVS three-letter rule).
type rule struct {
	id                string
	re                *regexp.Regexp
	skipSameLetter    bool
	skipProteinPrefix bool
}

var rules = []rule{
	{id: "hgvs-substitution", re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+[A-Z]`)},
	{id: "hgvs-stop", re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+(?:\*|Ter)`)},
	{id: "hgvs-del", re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+(?:_[A-Z][0-9]+)?del`)},
	{id: "hgvs-ins", re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+_[A-Z][0-9]+ins[A-Z]+`)},
	{id: "hgvs-dup", re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+(?:_[A-Z][0-9]+)?dup`)},
	{id: "hgvs-frameshift", re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+fs(?:\*[0-9]+)?`)},
	{id: "hgvs-start-lost", re: regexp.MustCompile(`(?i)p\.Met1\?`)},
	{id: "hgvs-extension", re: regexp.MustCompile(`(?i)p\.\*[0-9]+[A-Z]`)},
	{id: "hgvs-delins", re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+(?:_[A-Z][0-9]+)?delins[A-Z]+`)},
	{id: "hgvs-three-letter", re: regexp.MustCompile(`(?i)p\.[A-Z][a-z]{2}[0-9]+(?:[A-Z][a-z]{2}|\*|Ter)`)},
	{id: "aa-substitution", re: regexp.MustCompile(`(?i)\b([A-Z])(\d+)([A-Z])\b`), skipSameLetter: true},
	{id: "aa-suffix-del", re: regexp.MustCompile(`(?i)\b[A-Z][0-9]+(?:del|dup|ins|fs)\b`)},
	{
		id:                "three-letter",
		re:                regexp.MustCompile(`(?i)[A-Z][a-z]{2}[0-9]+(?:[A-Z][a-z]{2}|\*|Ter)\b`),
		skipProteinPrefix: true,
	},
	{
		id: "hgvs-nucleotide",
		re: regexp.MustCompile(`(?i)\b[pcgnmr]\.[0-9]+[+-]?[0-9]*(?:_[+-]?[0-9]+)?(?:[ACGT]>[ACGT]|delins|del|ins|dup|inv|fs\*?[0-9]*)\b`),
	},
	{id: "multi-substitution", re: regexp.MustCompile(`(?i)\b(?:[A-Z][0-9]+[A-Z])(?:/[A-Z][0-9]+[A-Z])+\b`)},
	{id: "deletion-delta", re: regexp.MustCompile(`(?i)(?:Δ|delta)\s?[A-Z][0-9]+`)},
	{id: "keyword", re: regexp.MustCompile(`(?i)\b(mutant|variant|mut\.)\b`)},
}

// defaultWhitelist holds receptor subtype spellings that look like amino-acid
// substitutions but never are.
var defaultWhitelist = []string{
	"m2",
	"h3",
	"d2",
	"p2x7",
	"p2x",
	"5-ht1a",
	"alpha1",
	"beta2",
}
