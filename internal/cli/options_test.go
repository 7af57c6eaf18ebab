// internal/cli/options_test.go
package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (*Options, error) {
	t.Helper()
	var opts Options
	var got *Options
	cmd := NewRootCommand(&opts, func(_ *cobra.Command, o *Options) error {
		got = o
		return nil
	})
	cmd.SetArgs(argv)
	err := cmd.Execute()
	if err != nil {
		return nil, err
	}
	return got, nil
}

func TestParseDefaults(t *testing.T) {
	opts, err := parse(t, "--input", "in.csv", "--output", "out.csv")
	require.NoError(t, err)

	assert.Equal(t, "target_name", opts.Column)
	assert.Equal(t, "csv", opts.Format)
	assert.Equal(t, 9606, opts.Taxon)
	assert.Equal(t, 0, opts.Threads)
	assert.Equal(t, []string{"hints", "rules_applied"}, opts.JSONColumns)
	assert.False(t, opts.KeepMutations)
}

func TestParseAllFlags(t *testing.T) {
	opts, err := parse(t,
		"--input", "in.csv", "--output", "out.jsonl",
		"--column", "name", "--id-column", "accession",
		"--delimiter", ";", "--encoding", "cp1251",
		"--format", "jsonl", "--keep-mutations",
		"--mutation-whitelist", "wl.txt",
		"--taxon", "10090", "--threads", "4",
		"--json-columns", "hints",
		"--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, "accession", opts.IDColumn)
	assert.Equal(t, "jsonl", opts.Format)
	assert.Equal(t, 10090, opts.Taxon)
	assert.Equal(t, []string{"hints"}, opts.JSONColumns)
	assert.True(t, opts.KeepMutations)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"missing input", []string{"--output", "o.csv"}},
		{"missing output", []string{"--input", "i.csv"}},
		{"bad format", []string{"--input", "i", "--output", "o", "--format", "xml"}},
		{"mutation flags conflict", []string{"--input", "i", "--output", "o", "--keep-mutations", "--no-mutations"}},
		{"bad taxon", []string{"--input", "i", "--output", "o", "--taxon", "0"}},
		{"bad threads", []string{"--input", "i", "--output", "o", "--threads", "-1"}},
		{"long delimiter", []string{"--input", "i", "--output", "o", "--delimiter", ";;"}},
	}
	for _, tc := range tests {
		_, err := parse(t, tc.argv...)
		require.Error(t, err, tc.name)
		assert.True(t, IsUsageError(err), tc.name)
	}
}

func TestDelimiterRune(t *testing.T) {
	o := &Options{}
	r, err := o.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, rune(0), r)

	o.Delimiter = "tab"
	r, err = o.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, '\t', r)

	o.Delimiter = ";"
	r, err = o.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, ';', r)
}

func TestIsUsageError(t *testing.T) {
	assert.True(t, IsUsageError(UsageErrorf("bad flag")))
	assert.False(t, IsUsageError(errors.New("io failure")))
}

func TestLoadWhitelist(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wl.txt")
	require.NoError(t, os.WriteFile(p, []byte("# comment\nm2\n\nL858R\n"), 0o644))

	list, err := LoadWhitelist(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"m2", "L858R"}, list)
}

func TestLoadWhitelistMalformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wl.txt")
	require.NoError(t, os.WriteFile(p, []byte("m2 extra\n"), 0o644))

	_, err := LoadWhitelist(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":1")
}

func TestLoadWhitelistMissingFile(t *testing.T) {
	_, err := LoadWhitelist(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
