// core/textnorm/stopwords.go
package textnorm

import "strings"

// defaultStopWords are generic terms that carry no identity on their own.
var defaultStopWords = []string{
	"protein",
	"receptor",
	"channel",
	"isoform",
	"fragment",
	"subunit",
	"chain",
	"precursor",
	"like",
	"putative",
	"probable",
	"predicted",
	"family",
	"human",
	"the",
}

// DefaultStopWords returns a copy of the built-in stop-word list.
func DefaultStopWords() []string {
	out := make([]string, len(defaultStopWords))
	copy(out, defaultStopWords)
	return out
}

// StopSet builds a case-insensitive lookup set from a word list.
func StopSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// FilterStopWords splits tokens into the kept stream and the dropped stop
// words. The input is never mutated; dropped reports unique words in order of
// first removal.
func FilterStopWords(tokens []string, stop map[string]struct{}) (kept, dropped []string) {
	droppedSeen := make(map[string]struct{})
	for _, t := range tokens {
		if _, isStop := stop[strings.ToLower(t)]; isStop {
			if _, dup := droppedSeen[t]; !dup {
				droppedSeen[t] = struct{}{}
				dropped = append(dropped, t)
			}
			continue
		}
		kept = append(kept, t)
	}
	return kept, dropped
}
