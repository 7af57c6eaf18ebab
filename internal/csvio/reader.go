// internal/csvio/reader.go

// Package csvio reads the input CSV with automatic encoding and delimiter
// detection. Legacy exports from spreadsheet tools arrive in cp1251 or latin1
// as often as UTF-8, so detection tries those in order unless overridden.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Candidate delimiters in detection preference order.
var delimiters = []rune{',', ';', '\t', '|'}

// Table is a fully loaded CSV file. Rows keep every input column untouched.
type Table struct {
	Header    []string
	Rows      [][]string
	Encoding  string
	Delimiter rune
}

// Read loads path, decoding with the given encoding ("" = auto-detect) and
// splitting on delimiter (0 = auto-detect from the header line).
func Read(path, encoding string, delimiter rune) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, enc, err := decode(data, encoding)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if delimiter == 0 {
		delimiter = sniffDelimiter(firstLine(text))
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: no header line", path)
	}

	return &Table{
		Header:    records[0],
		Rows:      records[1:],
		Encoding:  enc,
		Delimiter: delimiter,
	}, nil
}

// ColumnIndex resolves a header name, listing the available columns when it
// is absent so the error is actionable without reopening the file.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found; available columns: %s",
		name, strings.Join(t.Header, ", "))
}

// Field returns row[i] or "" when the row is short.
func Field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func decode(data []byte, encoding string) (string, string, error) {
	switch strings.ToLower(encoding) {
	case "", "auto":
		return autoDecode(data)
	case "utf-8", "utf8", "utf-8-sig":
		return stripBOM(string(data)), "utf-8", nil
	case "cp1251", "windows-1251":
		s, err := charmapDecode(data, charmap.Windows1251)
		return s, "cp1251", err
	case "latin1", "iso-8859-1", "iso8859-1":
		s, err := charmapDecode(data, charmap.ISO8859_1)
		return s, "latin1", err
	default:
		return "", "", fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// autoDecode tries UTF-8, then cp1251, then latin1. cp1251 is rejected when
// it would produce replacement runes (bytes with no cp1251 assignment);
// latin1 maps every byte, so it always succeeds.
func autoDecode(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return stripBOM(string(data)), "utf-8", nil
	}
	if s, err := charmapDecode(data, charmap.Windows1251); err == nil &&
		!strings.ContainsRune(s, utf8.RuneError) {
		return s, "cp1251", nil
	}
	s, err := charmapDecode(data, charmap.ISO8859_1)
	return s, "latin1", err
}

func charmapDecode(data []byte, cm *charmap.Charmap) (string, error) {
	out, _, err := transform.Bytes(cm.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

// sniffDelimiter picks the most frequent candidate in the header line,
// falling back to comma for single-column files.
func sniffDelimiter(header string) rune {
	best, bestCount := ',', 0
	for _, d := range delimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
