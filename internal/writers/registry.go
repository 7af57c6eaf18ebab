// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Factory starts a writer goroutine and returns its input channel and the
// channel that yields the single completion error after the input closes.
type Factory func(out io.Writer, opts Options, bufSize int) (chan<- Record, <-chan error)

var registry = map[string]Factory{
	"csv":   StartCSVWriter,
	"jsonl": StartJSONLWriter,
}

// For resolves an output format name.
func For(format string) (Factory, error) {
	fn, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (choose from: %s)",
			format, strings.Join(Formats(), ", "))
	}
	return fn, nil
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
