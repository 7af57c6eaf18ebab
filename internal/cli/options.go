// internal/cli/options.go

// Package cli defines the root command, its flags, and option validation.
package cli

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"targetnorm/internal/version"
	"targetnorm/internal/writers"
)

// Options holds every command-line flag.
type Options struct {
	Input    string
	Output   string
	Column   string
	IDColumn string

	Delimiter string
	Encoding  string
	Format    string

	KeepMutations bool
	NoMutations   bool
	WhitelistFile string

	Taxon       int
	JSONColumns []string
	Threads     int

	LogLevel   string
	ConfigFile string
}

// usageError marks validation failures that should exit with the usage code.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// UsageErrorf builds a usage-class error.
func UsageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// IsUsageError reports whether err is a flag/validation problem rather than a
// runtime failure.
func IsUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}

// NewRootCommand builds the root command. run receives the parsed options
// after validation.
func NewRootCommand(opts *Options, run func(cmd *cobra.Command, opts *Options) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "targetnorm",
		Short:   "Normalize protein/receptor target names from a CSV",
		Long:    "targetnorm reads a CSV of free-text protein/receptor target names,\nnormalizes each name, infers gene-like candidate symbols, and writes the\ninput columns plus the derived columns.",
		Version: version.Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return run(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVar(&opts.Input, "input", "", "path to input CSV (required)")
	f.StringVar(&opts.Output, "output", "", "path to output file (required)")
	f.StringVar(&opts.Column, "column", "target_name", "name of the target-name column")
	f.StringVar(&opts.IDColumn, "id-column", "", "column with UniProt accessions to validate")
	f.StringVar(&opts.Delimiter, "delimiter", "", "CSV delimiter override (default: auto-detect)")
	f.StringVar(&opts.Encoding, "encoding", "", "input encoding override: utf-8 | cp1251 | latin1 (default: auto-detect)")
	f.StringVar(&opts.Format, "format", "csv", "output format: csv | jsonl")
	f.BoolVar(&opts.KeepMutations, "keep-mutations", false, "retain mutation-like tokens instead of stripping them")
	f.BoolVar(&opts.NoMutations, "no-mutations", false, "disable mutation detection entirely")
	f.StringVar(&opts.WhitelistFile, "mutation-whitelist", "", "file with additional whitelist tokens, one per line")
	f.IntVar(&opts.Taxon, "taxon", 9606, "NCBI taxon id attached to every record")
	f.StringSliceVar(&opts.JSONColumns, "json-columns", []string{"hints", "rules_applied"}, "derived columns serialized as JSON in CSV output")
	f.IntVar(&opts.Threads, "threads", 0, "worker threads (0 = all CPUs)")
	f.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug | info | warn | error")
	f.StringVar(&opts.ConfigFile, "config", "", "optional YAML config file")

	return cmd
}

// Validate checks required flags and cross-flag consistency. Presence is
// checked here rather than with cobra's MarkFlagRequired so every failure
// goes through the same usage-error path.
func (o *Options) Validate() error {
	if o.Input == "" {
		return UsageErrorf("--input is required")
	}
	if o.Output == "" {
		return UsageErrorf("--output is required")
	}
	if _, err := o.DelimiterRune(); err != nil {
		return err
	}
	if _, err := writers.For(o.Format); err != nil {
		return UsageErrorf("%v", err)
	}
	if o.KeepMutations && o.NoMutations {
		return UsageErrorf("--keep-mutations and --no-mutations are mutually exclusive")
	}
	if o.Taxon <= 0 {
		return UsageErrorf("--taxon must be positive, got %d", o.Taxon)
	}
	if o.Threads < 0 {
		return UsageErrorf("--threads must be >= 0, got %d", o.Threads)
	}
	return nil
}

// DelimiterRune converts the delimiter flag to a rune, 0 meaning auto-detect.
// "\t" and "tab" both name the tab character.
func (o *Options) DelimiterRune() (rune, error) {
	switch o.Delimiter {
	case "":
		return 0, nil
	case "\\t", "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(o.Delimiter) != 1 {
		return 0, UsageErrorf("--delimiter must be a single character, got %q", o.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(o.Delimiter)
	return r, nil
}
