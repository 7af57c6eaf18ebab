// core/textnorm/tokenize.go
package textnorm

import "regexp"

var (
	tokenSplitRE  = regexp.MustCompile(`[\s\-_/,:;.]+`)
	hyphenSpaceRE = regexp.MustCompile(`\s*-\s*`)
)

// Tokenize splits text on whitespace and punctuation boundaries, discarding
// empty tokens. Hyphenated and letter+digit spellings re-enter the token pool
// through variant generation, so splitting here is lossless.
func Tokenize(text string) []string {
	parts := tokenSplitRE.Split(text, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// JoinHyphens glues spaces around hyphens ("beta2 - adrenergic" →
// "beta2-adrenergic") so hyphenated spellings survive as single units until
// variant generation has seen them.
func JoinHyphens(text string) string {
	return hyphenSpaceRE.ReplaceAllString(text, "-")
}

// Dedupe removes duplicate tokens preserving first-seen order.
func Dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
