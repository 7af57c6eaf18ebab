// internal/writers/csv.go
package writers

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// StartCSVWriter streams records as CSV: the input columns unchanged, then
// the derived columns. List-valued columns join with "|" except
// gene_like_candidates (space-joined, as downstream matchers expect);
// hints and rules_applied render as JSON when selected by Options.
func StartCSVWriter(out io.Writer, opts Options, bufSize int) (chan<- Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		w := csv.NewWriter(out)

		header := append(append([]string{}, opts.Header...), derivedColumns...)
		if opts.WithUniProt {
			header = append(header, "uniprot_match")
		}
		err := w.Write(header)

		for rec := range in {
			if err != nil {
				continue // drain
			}
			err = w.Write(csvRow(rec, opts))
		}
		if err == nil {
			w.Flush()
			err = w.Error()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

func csvRow(rec Record, opts Options) []string {
	r := rec.Result

	row := make([]string, len(opts.Header))
	copy(row, rec.Row)

	hints := strings.Join(r.Hints.Mutations, "|")
	if opts.jsonColumn("hints") {
		hints = marshalOrEmpty(r.Hints)
	}
	rules := strings.Join(ruleIDs(r), "|")
	if opts.jsonColumn("rules_applied") {
		rules = marshalOrEmpty(r.RulesApplied)
	}

	row = append(row,
		r.CleanText,
		r.CleanTextAlt,
		strings.Join(r.QueryTokens, "|"),
		strings.Join(r.GeneCandidates, " "),
		strings.Join(mutationClasses(r), "|"),
		hints,
		rules,
		strconv.Itoa(r.Taxon),
	)
	if opts.WithUniProt {
		row = append(row, strconv.FormatBool(rec.UniProt != nil && *rec.UniProt))
	}
	return row
}
