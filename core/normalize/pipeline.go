// core/normalize/pipeline.go

// Package normalize wires the text cleanup stages, mutation detection, and
// gene-candidate inference into a single pipeline over raw target names.
package normalize

import (
	"regexp"
	"strings"

	"targetnorm/core/generule"
	"targetnorm/core/mutation"
	"targetnorm/core/textnorm"
)

// DefaultTaxon is the organism hint attached to every result.
const DefaultTaxon = 9606

// Config parameterizes a Pipeline. The zero value detects and strips
// mutations, uses the built-in whitelist and stop words, and hints human.
type Config struct {
	// DisableMutations turns mutation detection off entirely.
	DisableMutations bool
	// KeepMutations detects mutations but leaves their tokens in the
	// query token pool and clean text.
	KeepMutations bool
	// ExtraWhitelist extends the built-in mutation whitelist.
	ExtraWhitelist []string
	// Oracle, when set, augments regex mutation detection.
	Oracle mutation.Oracle
	// Taxon overrides the organism hint. Zero means DefaultTaxon.
	Taxon int
}

// Hints carries the side products of normalization that downstream matching
// may want but that are not part of the query itself.
type Hints struct {
	Parenthetical []string `json:"parenthetical"`
	Dropped       []string `json:"dropped"`
	Mutations     []string `json:"mutations"`
	MutationsOnly bool     `json:"mutations_only,omitempty"`
}

// Result is the full normalization output for one raw name. QueryTokens is
// the full token pool with stop words and generated variants retained, a
// superset of the tokens behind CleanText.
type Result struct {
	Raw            string           `json:"raw"`
	CleanText      string           `json:"clean_text"`
	CleanTextAlt   string           `json:"clean_text_alt"`
	QueryTokens    []string         `json:"query_tokens"`
	GeneCandidates []string         `json:"gene_like_candidates"`
	Taxon          int              `json:"hint_taxon"`
	Hints          Hints            `json:"hints"`
	Mutations      []mutation.Match `json:"mutation_matches,omitempty"`
	RulesApplied   []generule.Match `json:"rules_applied,omitempty"`
}

// Pipeline is immutable after New and safe for concurrent use.
type Pipeline struct {
	cfg    Config
	det    *mutation.Detector
	engine *generule.Engine
	stop   map[string]struct{}
	taxon  int
}

func New(cfg Config) *Pipeline {
	taxon := cfg.Taxon
	if taxon == 0 {
		taxon = DefaultTaxon
	}
	return &Pipeline{
		cfg: cfg,
		det: mutation.New(mutation.Config{
			ExtraWhitelist: cfg.ExtraWhitelist,
			Oracle:         cfg.Oracle,
		}),
		engine: generule.NewEngine(),
		stop:   textnorm.StopSet(textnorm.DefaultStopWords()),
		taxon:  taxon,
	}
}

// trivialTokenRE matches tokens that carry no searchable signal on their own:
// a lone letter or a bare number. Used for the mutations-only check.
var trivialTokenRE = regexp.MustCompile(`^[a-z]$|^\d+$`)

// Normalize runs the full pipeline on one raw name.
func (p *Pipeline) Normalize(raw string) Result {
	stage := textnorm.Sanitize(raw)

	var muts []mutation.Match
	if !p.cfg.DisableMutations {
		muts = p.det.Find(stage)
	}

	stage = textnorm.NormalizeUnicode(stage)
	stage = textnorm.FoldSpecials(stage)
	stage = textnorm.FoldRoman(stage)

	stage, parens, parenKeep := textnorm.ExtractParentheticals(stage)
	if len(parenKeep) > 0 {
		stage = strings.TrimSpace(stage + " " + strings.Join(parenKeep, " "))
	}
	stage = textnorm.JoinHyphens(stage)

	stage, rewriteCands, rewriteFired := generule.ApplyRewrites(stage)

	subs := textnorm.HyphenVariants(stage)
	tokensBase := textnorm.Tokenize(stage)
	subs = append(subs, textnorm.LetterDigitVariants(tokensBase)...)

	baseNoStop, dropped := textnorm.FilterStopWords(tokensBase, p.stop)
	baseAlt := textnorm.Dedupe(tokensBase)

	forms := make([]string, len(subs))
	for i, s := range subs {
		forms[i] = s.Form
	}
	tokensNoStop := append(append([]string{}, baseNoStop...), forms...)
	tokensAlt := append(append([]string{}, baseAlt...), forms...)

	mutationsOnly := false
	if len(muts) > 0 && !p.cfg.KeepMutations {
		strip := p.det.StripSet(muts)
		keep := func(t string) bool {
			if _, hit := strip[t]; !hit {
				return true
			}
			return p.det.Whitelisted(t)
		}
		strippedNoStop := filterTokens(tokensNoStop, keep)
		strippedAlt := filterTokens(tokensAlt, keep)
		strippedBaseNoStop := filterTokens(baseNoStop, keep)
		strippedBaseAlt := filterTokens(baseAlt, keep)

		// When stripping leaves nothing but lone letters and bare numbers the
		// name was essentially only a mutation; restore the tokens so the
		// record stays searchable and flag it instead.
		if anySignal(strippedNoStop) {
			tokensNoStop = strippedNoStop
			tokensAlt = strippedAlt
			baseNoStop = strippedBaseNoStop
			baseAlt = strippedBaseAlt
		} else {
			mutationsOnly = true
		}
	}

	tokensNoStop = textnorm.Dedupe(tokensNoStop)
	tokensAlt = textnorm.Dedupe(tokensAlt)

	cleanVariants := textnorm.BuildVariantStrings(strings.Join(baseNoStop, " "), subs, parenKeep)
	cleanVariantsAlt := textnorm.BuildVariantStrings(strings.Join(baseAlt, " "), subs, parenKeep)
	cleanText := joinVariants(cleanVariants)
	cleanTextAlt := joinVariants(cleanVariantsAlt)

	inferText := cleanTextAlt
	if inferText == "" {
		inferText = cleanText
	}
	engineCands, engineFired := p.engine.Infer(inferText, tokensNoStop)

	candidates := dedupeStrings(append(append([]string{}, rewriteCands...), engineCands...))

	hints := Hints{
		Parenthetical: parenTexts(parens),
		Dropped:       dropped,
		Mutations:     mutationTexts(muts),
		MutationsOnly: mutationsOnly,
	}

	return Result{
		Raw:            raw,
		CleanText:      cleanText,
		CleanTextAlt:   cleanTextAlt,
		QueryTokens:    tokensAlt,
		GeneCandidates: candidates,
		Taxon:          p.taxon,
		Hints:          hints,
		Mutations:      muts,
		RulesApplied:   append(rewriteFired, engineFired...),
	}
}

func filterTokens(tokens []string, keep func(string) bool) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// anySignal reports whether any token is more than a lone letter or number.
func anySignal(tokens []string) bool {
	for _, t := range tokens {
		if !trivialTokenRE.MatchString(t) {
			return true
		}
	}
	return false
}

func joinVariants(variants []string) string {
	switch len(variants) {
	case 0:
		return ""
	case 1:
		return variants[0]
	default:
		return strings.Join(variants, "|")
	}
}

func parenTexts(parens []textnorm.Parenthetical) []string {
	out := make([]string, 0, len(parens))
	for _, p := range parens {
		out = append(out, p.Text)
	}
	return out
}

func mutationTexts(muts []mutation.Match) []string {
	out := make([]string, 0, len(muts))
	for _, m := range muts {
		out = append(out, m.Text)
	}
	return out
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
