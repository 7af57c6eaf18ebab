// core/generule/rewrite.go
package generule

import "regexp"

// RewriteRule canonicalizes a receptor phrase in the working text before
// tokenization, contributing a candidate symbol as it does.
type RewriteRule struct {
	ID          string
	Pattern     *regexp.Regexp
	Replacement string
	Symbol      string
}

var rewriteRules = []RewriteRule{
	{
		ID:          "rewrite-beta2-adrenergic",
		Pattern:     regexp.MustCompile(`beta2\s+adrenergic\s+receptor`),
		Replacement: "beta2 adrenergic",
		Symbol:      "adrb2",
	},
	{
		ID:          "rewrite-dopamine-d2",
		Pattern:     regexp.MustCompile(`dopamine\s+d2\s+receptor`),
		Replacement: "dopamine d2",
		Symbol:      "drd2",
	},
	{
		ID:          "rewrite-serotonin-5ht1a",
		Pattern:     regexp.MustCompile(`serotonin\s+5-ht1a\s+receptor`),
		Replacement: "5-ht1a serotonin",
		Symbol:      "htr1a",
	},
	{
		ID:          "rewrite-histamine-h3",
		Pattern:     regexp.MustCompile(`histamine\s+h3\s+receptor`),
		Replacement: "histamine h3",
		Symbol:      "hrh3",
	},
}

// ApplyRewrites rewrites canonical receptor phrases in text. It returns the
// rewritten text, the candidate symbols contributed, and the fired rules.
func ApplyRewrites(text string) (string, []string, []Match) {
	var (
		candidates []string
		fired      []Match
	)
	for _, r := range rewriteRules {
		if !r.Pattern.MatchString(text) {
			continue
		}
		text = r.Pattern.ReplaceAllString(text, r.Replacement)
		candidates = append(candidates, r.Symbol)
		fired = append(fired, Match{ID: r.ID, Symbols: []string{r.Symbol}})
	}
	return text, candidates, fired
}
