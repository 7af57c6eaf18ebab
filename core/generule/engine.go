// core/generule/engine.go

// Package generule infers gene-like candidate symbols from normalized target
// names using an ordered table of pattern rules. Rules are data, not code:
// each descriptor carries its pattern, an optional co-occurrence context, the
// symbols it produces (fixed or expanded from capture groups), and family
// metadata driving subtype-over-family suppression.
package generule

import (
	"regexp"
	"strings"
)

// Input selects which derived text a rule matches against.
type Input int

const (
	// InputClean matches the joined clean-text variants with stop words
	// retained, where multi-word receptor phrases are still visible.
	InputClean Input = iota
	// InputTokens matches the space-joined no-stop-word token pool.
	InputTokens
)

// Rule is one gene-inference pattern descriptor.
type Rule struct {
	ID      string
	Input   Input
	Pattern *regexp.Regexp
	// Context, when set, must also match somewhere in the input. It stands in
	// for the co-occurrence lookaheads of the rule notation this table was
	// ported from; RE2 has none.
	Context *regexp.Regexp
	// Symbols are fixed candidates emitted when the rule fires.
	Symbols []string
	// Expand holds ${n} templates expanded once per pattern match. A rule
	// sets either Symbols or Expand, not both.
	Expand []string
	// Family groups subtype rules with their family fallback. A Fallback rule
	// fires only when no non-fallback rule of the same family fired.
	Family   string
	Fallback bool
}

// Match records a fired rule and the symbols it produced.
type Match struct {
	ID      string   `json:"id"`
	Symbols []string `json:"symbols,omitempty"`
}

// Engine evaluates the rule table. Immutable after construction and safe for
// concurrent use.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine over the built-in rule table.
func NewEngine() *Engine { return &Engine{rules: defaultRules} }

// NewEngineWithRules returns an engine over a caller-supplied table.
func NewEngineWithRules(rules []Rule) *Engine { return &Engine{rules: rules} }

// Infer evaluates the table in order against the two derived inputs and
// returns the deduplicated candidate symbols (first-seen order) plus the
// fired rules. Matching is additive across families; within one family a
// subtype match suppresses the family fallback.
func (e *Engine) Infer(cleanText string, tokens []string) ([]string, []Match) {
	inputs := [2]string{
		InputClean:  strings.ToLower(cleanText),
		InputTokens: strings.ToLower(strings.Join(tokens, " ")),
	}

	// First pass: which families have a firing subtype rule.
	subtypeFired := make(map[string]bool)
	for _, r := range e.rules {
		if r.Fallback || r.Family == "" {
			continue
		}
		if e.fires(r, inputs[r.Input]) {
			subtypeFired[r.Family] = true
		}
	}

	var (
		candidates []string
		fired      []Match
		seen       = make(map[string]struct{})
	)
	for _, r := range e.rules {
		if r.Fallback && subtypeFired[r.Family] {
			continue
		}
		produced := e.produce(r, inputs[r.Input])
		if produced == nil {
			continue
		}
		fired = append(fired, Match{ID: r.ID, Symbols: produced})
		for _, c := range produced {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			candidates = append(candidates, c)
		}
	}
	return candidates, fired
}

func (e *Engine) fires(r Rule, text string) bool {
	if !r.Pattern.MatchString(text) {
		return false
	}
	return r.Context == nil || r.Context.MatchString(text)
}

// produce returns the symbols a rule emits for text, nil when it does not
// fire. Symbols are lowercased and deduplicated within the rule.
func (e *Engine) produce(r Rule, text string) []string {
	if !e.fires(r, text) {
		return nil
	}
	var out []string
	if len(r.Expand) > 0 {
		for _, loc := range r.Pattern.FindAllStringSubmatchIndex(text, -1) {
			for _, tmpl := range r.Expand {
				sym := string(r.Pattern.ExpandString(nil, tmpl, text, loc))
				out = append(out, strings.ToLower(sym))
			}
		}
	} else {
		for _, s := range r.Symbols {
			out = append(out, strings.ToLower(s))
		}
	}
	seen := make(map[string]struct{}, len(out))
	uniq := out[:0]
	for _, s := range out {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}
	if len(uniq) == 0 {
		return nil
	}
	return uniq
}
