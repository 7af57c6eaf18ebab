// core/mutation/detector.go

// Package mutation finds mutation-like substrings (amino-acid substitutions,
// HGVS protein/nucleotide notation, deletions) in target names so the
// normalization pipeline can strip them from the working token set without
// losing them from the record.
package mutation

import (
	"strings"

	"targetnorm/core/textnorm"
)

// Oracle is an optional external mutation-grammar parser. It reports whether
// a single token parses as a mutation. A nil Oracle degrades to regex-only
// detection with no change to non-mutation outputs.
type Oracle func(token string) bool

// Match is one detected mutation-like substring and the rule that caught it.
type Match struct {
	Text string `json:"text"`
	Rule string `json:"rule"`
}

// Config parameterizes a Detector.
type Config struct {
	// ExtraWhitelist extends the built-in whitelist of subtype spellings
	// that must never be classified as mutations. Case-insensitive.
	ExtraWhitelist []string
	// Oracle, when set, is consulted for digit-bearing tokens the regex set
	// did not match.
	Oracle Oracle
}

// Detector applies the mutation rule set with a whitelist override.
// It is immutable after New and safe for concurrent use.
type Detector struct {
	whitelist map[string]struct{}
	oracle    Oracle
}

func New(cfg Config) *Detector {
	wl := make(map[string]struct{}, len(defaultWhitelist)+len(cfg.ExtraWhitelist))
	for _, w := range defaultWhitelist {
		wl[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range cfg.ExtraWhitelist {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			wl[w] = struct{}{}
		}
	}
	return &Detector{whitelist: wl, oracle: cfg.Oracle}
}

// Whitelisted reports whether token is exempt from mutation classification.
func (d *Detector) Whitelisted(token string) bool {
	_, ok := d.whitelist[strings.ToLower(token)]
	return ok
}

// Find extracts unique mutation-like substrings in order of appearance.
// A new match that is a substring of an earlier one is skipped; earlier
// matches contained in a new one are replaced by it.
func (d *Detector) Find(text string) []Match {
	var found []Match
	for _, r := range rules {
		for _, loc := range r.re.FindAllStringSubmatchIndex(text, -1) {
			m := text[loc[0]:loc[1]]
			if r.skipSameLetter && sameFlankingLetters(text, loc) {
				continue
			}
			if r.skipProteinPrefix && hasProteinPrefix(text, loc[0]) {
				continue
			}
			found = d.merge(found, Match{Text: m, Rule: r.id})
		}
	}
	if d.oracle != nil {
		for _, tok := range strings.Fields(text) {
			if !strings.ContainsAny(tok, "0123456789") {
				continue
			}
			if coveredBy(found, tok) {
				continue
			}
			if d.oracle(tok) {
				found = d.merge(found, Match{Text: tok, Rule: "oracle"})
			}
		}
	}
	return found
}

// merge applies the whitelist and the substring-containment dedupe, keeping
// order of first appearance.
func (d *Detector) merge(found []Match, m Match) []Match {
	lower := strings.ToLower(m.Text)
	if _, wl := d.whitelist[lower]; wl {
		return found
	}
	for _, f := range found {
		if strings.Contains(strings.ToLower(f.Text), lower) {
			return found
		}
	}
	kept := found[:0]
	for _, f := range found {
		if !strings.Contains(lower, strings.ToLower(f.Text)) {
			kept = append(kept, f)
		}
	}
	for _, f := range kept {
		if f.Text == m.Text {
			return kept
		}
	}
	return append(kept, m)
}

// StripSet normalizes each match the same way the main text is normalized and
// returns the lowercase token set to remove from the working token pool.
func (d *Detector) StripSet(matches []Match) map[string]struct{} {
	set := make(map[string]struct{})
	for _, m := range matches {
		norm := textnorm.NormalizeUnicode(m.Text)
		norm = textnorm.FoldSpecials(norm)
		norm = textnorm.FoldRoman(norm)
		for _, tok := range textnorm.Tokenize(norm) {
			set[tok] = struct{}{}
		}
	}
	return set
}

func sameFlankingLetters(text string, loc []int) bool {
	// loc holds pattern and group indices for ([A-Z])(\d+)([A-Z]).
	if len(loc) < 8 || loc[2] < 0 || loc[6] < 0 {
		return false
	}
	a := strings.ToUpper(text[loc[2]:loc[3]])
	b := strings.ToUpper(text[loc[6]:loc[7]])
	return a == b
}

func hasProteinPrefix(text string, start int) bool {
	return start >= 2 && strings.EqualFold(text[start-2:start], "p.")
}

func coveredBy(found []Match, tok string) bool {
	lower := strings.ToLower(tok)
	for _, f := range found {
		fl := strings.ToLower(f.Text)
		if strings.Contains(fl, lower) || strings.Contains(lower, fl) {
			return true
		}
	}
	return false
}
