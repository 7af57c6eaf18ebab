// internal/app/app.go

// Package app wires CLI options, configuration, the normalization pipeline,
// and the writers into the run loop behind cmd/targetnorm.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"targetnorm/core/normalize"
	"targetnorm/internal/cli"
	"targetnorm/internal/config"
	"targetnorm/internal/csvio"
	"targetnorm/internal/uniprot"
	"targetnorm/internal/writers"
)

// Exit codes: 0 ok, 2 usage, 3 I/O or runtime failure.
const (
	exitOK      = 0
	exitUsage   = 2
	exitRuntime = 3
)

// RunContext parses argv and executes the tool, writing human output to
// stdout and diagnostics to stderr. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts cli.Options
	entered := false

	cmd := cli.NewRootCommand(&opts, func(c *cobra.Command, o *cli.Options) error {
		entered = true
		return execute(c, o, stderr)
	})
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return exitOK
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	if cli.IsUsageError(err) || !entered {
		return exitUsage
	}
	return exitRuntime
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func execute(cmd *cobra.Command, opts *cli.Options, stderr io.Writer) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return cli.UsageErrorf("%v", err)
	}
	applyConfig(opts, cfg, cmd.Flags())
	if err := opts.Validate(); err != nil {
		return err
	}

	log, err := newLogger(stderr, opts.LogLevel)
	if err != nil {
		return err
	}

	var extraWhitelist []string
	if opts.WhitelistFile != "" {
		extraWhitelist, err = cli.LoadWhitelist(opts.WhitelistFile)
		if err != nil {
			return cli.UsageErrorf("mutation-whitelist: %v", err)
		}
		log.Debug().Int("entries", len(extraWhitelist)).Msg("loaded mutation whitelist")
	}

	delim, err := opts.DelimiterRune()
	if err != nil {
		return err
	}
	table, err := csvio.Read(opts.Input, opts.Encoding, delim)
	if err != nil {
		return err
	}
	log.Info().
		Int("records", len(table.Rows)).
		Str("encoding", table.Encoding).
		Str("delimiter", string(table.Delimiter)).
		Msg("loaded input")

	nameIdx, err := table.ColumnIndex(opts.Column)
	if err != nil {
		return cli.UsageErrorf("%v", err)
	}
	idIdx := -1
	if opts.IDColumn != "" {
		if idIdx, err = table.ColumnIndex(opts.IDColumn); err != nil {
			return cli.UsageErrorf("%v", err)
		}
	}

	// No external mutation-grammar parser is wired; detection is regex-only.
	log.Debug().Msg("mutation oracle not configured; regex-only detection")

	pipe := normalize.New(normalize.Config{
		DisableMutations: opts.NoMutations,
		KeepMutations:    opts.KeepMutations,
		ExtraWhitelist:   extraWhitelist,
		Taxon:            opts.Taxon,
	})

	start := time.Now()
	results, err := normalizeRows(ctx, pipe, table, nameIdx, opts.Threads)
	if err != nil {
		return err
	}
	log.Info().
		Int("records", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("normalized")

	var matches []*bool
	if idIdx >= 0 {
		matches = validateRows(ctx, log, cfg, table, idIdx, nameIdx)
	}

	if err := writeResults(opts, table, results, matches); err != nil {
		return err
	}
	log.Info().Str("path", opts.Output).Msg("wrote results")
	return nil
}

// applyConfig fills options from config for every flag the user left unset.
// Explicit flags always win.
func applyConfig(opts *cli.Options, cfg *config.Config, fs *pflag.FlagSet) {
	if !fs.Changed("column") {
		opts.Column = cfg.Column
	}
	if !fs.Changed("id-column") {
		opts.IDColumn = cfg.IDColumn
	}
	if !fs.Changed("delimiter") {
		opts.Delimiter = cfg.Delimiter
	}
	if !fs.Changed("encoding") {
		opts.Encoding = cfg.Encoding
	}
	if !fs.Changed("format") {
		opts.Format = cfg.Format
	}
	if !fs.Changed("taxon") {
		opts.Taxon = cfg.Taxon
	}
	if !fs.Changed("threads") {
		opts.Threads = cfg.Threads
	}
	if !fs.Changed("log-level") {
		opts.LogLevel = cfg.LogLevel
	}
	if !fs.Changed("json-columns") {
		opts.JSONColumns = cfg.JSONColumnList()
	}
}

func newLogger(stderr io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), cli.UsageErrorf("invalid log level %q", level)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	return log, nil
}

// normalizeRows maps the pipeline over every row in parallel, preserving
// input order by writing results at the row's index.
func normalizeRows(ctx context.Context, pipe *normalize.Pipeline, table *csvio.Table, nameIdx, threads int) ([]normalize.Result, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	results := make([]normalize.Result, len(table.Rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := range table.Rows {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = pipe.Normalize(csvio.Field(table.Rows[i], nameIdx))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// validateRows checks each accession against UniProt. Failures are warnings,
// never fatal; the row is recorded as not matching.
func validateRows(ctx context.Context, log zerolog.Logger, cfg *config.Config, table *csvio.Table, idIdx, nameIdx int) []*bool {
	client := uniprot.NewClient(
		uniprot.WithBaseURL(cfg.UniProt.BaseURL),
		uniprot.WithTimeout(cfg.UniProt.Timeout),
	)
	matches := make([]*bool, len(table.Rows))
	matched := 0
	for i, row := range table.Rows {
		ok, err := client.Validate(ctx, csvio.Field(row, idIdx), csvio.Field(row, nameIdx))
		if err != nil {
			log.Warn().Err(err).Str("accession", csvio.Field(row, idIdx)).Msg("uniprot validation failed")
			ok = false
		}
		if ok {
			matched++
		}
		v := ok
		matches[i] = &v
	}
	log.Info().Int("matched", matched).Int("total", len(table.Rows)).Msg("uniprot validation")
	return matches
}

func writeResults(opts *cli.Options, table *csvio.Table, results []normalize.Result, matches []*bool) error {
	factory, err := writers.For(opts.Format)
	if err != nil {
		return cli.UsageErrorf("%v", err)
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.Output, err)
	}
	defer func() { _ = out.Close() }()

	wopts := writers.Options{
		Header:      table.Header,
		JSONColumns: opts.JSONColumns,
		WithUniProt: matches != nil,
	}
	in, errCh := factory(out, wopts, 64)
	for i, row := range table.Rows {
		rec := writers.Record{Row: row, Result: results[i]}
		if matches != nil {
			rec.UniProt = matches[i]
		}
		in <- rec
	}
	close(in)
	if err := <-errCh; err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}
	return out.Close()
}
