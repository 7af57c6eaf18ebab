// internal/cli/loader.go
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadWhitelist reads extra mutation-whitelist tokens, one per line. Blank
// lines and '#' comments are skipped; a line with embedded whitespace is
// malformed.
func LoadWhitelist(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []string
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if len(strings.Fields(line)) != 1 {
			return nil, fmt.Errorf("%s:%d whitelist entries are single tokens", path, ln)
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
