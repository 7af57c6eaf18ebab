// core/textnorm/parenthetical.go
package textnorm

import (
	"regexp"
	"strings"
)

// Parenthetical is one extracted bracket group. Retained groups are short
// index-like fragments (receptor subtype indices such as "h3" or "5-ht1a")
// that are folded back into the working text; the rest are informational.
type Parenthetical struct {
	Text     string
	Retained bool
}

var (
	parenRE        = regexp.MustCompile(`\(([^()]*)\)|\[([^\[\]]*)\]|\{([^{}]*)\}`)
	compactRE      = regexp.MustCompile(`[\s_\-]`)
	shortFragmentRE = regexp.MustCompile(`^[a-z0-9]{1,3}$`)
	indexFragmentRE = regexp.MustCompile(`^(?:[a-z]\d(?:[a-z]\d+)?|5-?ht\d+[a-z]?)$`)
)

// ExtractParentheticals removes balanced (), [], and {} groups from text and
// classifies each group's content. It returns the stripped text, the groups in
// order of appearance, and the retained fragments to re-append as tokens.
// Unmatched opening brackets are left in place untouched.
func ExtractParentheticals(text string) (string, []Parenthetical, []string) {
	var groups []Parenthetical
	var keep []string
	out := parenRE.ReplaceAllStringFunc(text, func(m string) string {
		sub := parenRE.FindStringSubmatch(m)
		for _, g := range sub[1:] {
			tok := strings.TrimSpace(g)
			if tok == "" {
				continue
			}
			compact := compactRE.ReplaceAllString(tok, "")
			retained := shortFragmentRE.MatchString(compact) || indexFragmentRE.MatchString(compact)
			groups = append(groups, Parenthetical{Text: tok, Retained: retained})
			if retained {
				keep = append(keep, tok)
			}
		}
		return ""
	})
	return out, groups, keep
}
