// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"
)

type jsonRecord struct {
	Columns map[string]string `json:"columns,omitempty"`
	Result  jsonResult        `json:"result"`
}

// jsonResult widens normalize.Result with the validation outcome.
type jsonResult struct {
	Raw            string      `json:"raw"`
	CleanText      string      `json:"clean_text"`
	CleanTextAlt   string      `json:"clean_text_alt"`
	QueryTokens    []string    `json:"query_tokens"`
	GeneCandidates []string    `json:"gene_like_candidates"`
	Taxon          int         `json:"hint_taxon"`
	Hints          interface{} `json:"hints"`
	Mutations      interface{} `json:"mutation_matches,omitempty"`
	RulesApplied   interface{} `json:"rules_applied,omitempty"`
	UniProtMatch   *bool       `json:"uniprot_match,omitempty"`
}

// StartJSONLWriter streams one JSON object per record: the full structured
// result plus the original columns keyed by header name.
func StartJSONLWriter(out io.Writer, opts Options, bufSize int) (chan<- Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		enc := json.NewEncoder(out)
		var err error
		for rec := range in {
			if err != nil {
				continue // drain
			}
			err = enc.Encode(toJSONRecord(rec, opts))
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

func toJSONRecord(rec Record, opts Options) jsonRecord {
	r := rec.Result

	cols := make(map[string]string, len(opts.Header))
	for i, h := range opts.Header {
		if i < len(rec.Row) {
			cols[h] = rec.Row[i]
		}
	}

	jr := jsonRecord{
		Columns: cols,
		Result: jsonResult{
			Raw:            r.Raw,
			CleanText:      r.CleanText,
			CleanTextAlt:   r.CleanTextAlt,
			QueryTokens:    r.QueryTokens,
			GeneCandidates: r.GeneCandidates,
			Taxon:          r.Taxon,
			Hints:          r.Hints,
			RulesApplied:   r.RulesApplied,
		},
	}
	if len(r.Mutations) > 0 {
		jr.Result.Mutations = r.Mutations
	}
	if rec.UniProt != nil {
		jr.Result.UniProtMatch = rec.UniProt
	}
	return jr
}
