// internal/writers/record.go

// Package writers turns normalization results into output streams. Each
// writer runs in its own goroutine fed by a channel, reporting completion on
// an error channel, and is selected from a format registry.
package writers

import (
	"encoding/json"
	"strings"

	"targetnorm/core/normalize"
)

// Record pairs one input row with its normalization result.
type Record struct {
	// Row holds the original input columns, carried through unchanged.
	Row    []string
	Result normalize.Result
	// UniProt is the validation outcome, nil when validation is off.
	UniProt *bool
}

// Options configures a writer for one run.
type Options struct {
	// Header is the input file's column header.
	Header []string
	// JSONColumns names the derived columns rendered as JSON in CSV output.
	JSONColumns []string
	// WithUniProt adds the uniprot_match column.
	WithUniProt bool
}

// Derived column names, in output order.
var derivedColumns = []string{
	"clean_text",
	"clean_text_alt",
	"query_tokens",
	"gene_like_candidates",
	"mutation_classes",
	"hints",
	"rules_applied",
	"hint_taxon",
}

func (o Options) jsonColumn(name string) bool {
	cols := o.JSONColumns
	if cols == nil {
		cols = []string{"hints", "rules_applied"}
	}
	for _, c := range cols {
		if strings.TrimSpace(c) == name {
			return true
		}
	}
	return false
}

// mutationClasses lists the distinct rule ids behind the detected mutations.
func mutationClasses(r normalize.Result) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range r.Mutations {
		if _, dup := seen[m.Rule]; dup {
			continue
		}
		seen[m.Rule] = struct{}{}
		out = append(out, m.Rule)
	}
	return out
}

func ruleIDs(r normalize.Result) []string {
	out := make([]string, 0, len(r.RulesApplied))
	for _, m := range r.RulesApplied {
		out = append(out, m.ID)
	}
	return out
}

func marshalOrEmpty(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
