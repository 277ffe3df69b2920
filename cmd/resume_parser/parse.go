package main

import (
	"context"
	"errors"
	"fmt"
	"encoding/json"
	"io"
	"path/filepath"
	"sync"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/export"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Extract and parse PDF or DOCX resumes",
	Long: "Extracts readable text from each document, segments it into sections and writes the " +
		"parsed resume as JSON. Documents are processed concurrently.",
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var (
	parseOutDir      string
	parseWriteText   bool
	parseVerbose     bool
	parseValidate    bool
	parseXLSX        bool
	parseConcurrency int
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Output directory (prints JSON to stdout when empty)")
	parseCmd.Flags().BoolVar(&parseWriteText, "text", false, "Also write the extracted text and metadata")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print extraction attempts and a summary of each resume")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate each result against the parsed resume schema")
	parseCmd.Flags().BoolVar(&parseXLSX, "xlsx", false, "Also write an XLSX workbook per resume (requires --out)")
	parseCmd.Flags().IntVarP(&parseConcurrency, "concurrency", "c", config.DefaultParseConcurrency, "Documents parsed in parallel")

	rootCmd.AddCommand(parseCmd)
}

// parseOptions controls what parseDocuments writes.
type parseOptions struct {
	OutDir      string
	WriteText   bool
	Validate    bool
	XLSX        bool
	Concurrency int
}

// parseOutcome is the result for one input document.
type parseOutcome struct {
	Path   string
	Result *ingestion.Result
	Resume *types.ParsedResume
	Err    error
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseXLSX && parseOutDir == "" {
		return fmt.Errorf("--xlsx requires --out")
	}

	opts := parseOptions{
		OutDir:      parseOutDir,
		WriteText:   parseWriteText,
		Validate:    parseValidate,
		XLSX:        parseXLSX,
		Concurrency: parseConcurrency,
	}
	outcomes := parseDocuments(cmd.Context(), args, opts)
	return reportOutcomes(cmd.OutOrStdout(), cmd.ErrOrStderr(), outcomes, opts, parseVerbose)
}

// parseDocuments parses every path with at most opts.Concurrency in flight.
// Outcomes keep the order of paths; one failure does not stop the others.
func parseDocuments(ctx context.Context, paths []string, opts parseOptions) []parseOutcome {
	if ctx == nil {
		ctx = context.Background()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = config.DefaultParseConcurrency
	}

	outcomes := make([]parseOutcome, len(paths))
	var mu sync.Mutex // serializes writes into opts.OutDir

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			outcomes[i] = parseOne(gCtx, path, opts, &mu)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func parseOne(ctx context.Context, path string, opts parseOptions, mu *sync.Mutex) parseOutcome {
	outcome := parseOutcome{Path: path}

	result, err := ingestion.ExtractFile(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Result = result
	outcome.Resume = result.Parse()

	if opts.Validate {
		if err := schemas.ValidateParsedResume(outcome.Resume); err != nil {
			outcome.Err = fmt.Errorf("parsed resume does not validate against schema: %w", err)
			return outcome
		}
	}

	if opts.OutDir == "" {
		return outcome
	}

	mu.Lock()
	defer mu.Unlock()

	base := baseName(path)
	if err := writeJSON(filepath.Join(opts.OutDir, base+".json"), outcome.Resume); err != nil {
		outcome.Err = err
		return outcome
	}
	if opts.WriteText {
		if err := ingestion.WriteOutput(opts.OutDir, base, result); err != nil {
			outcome.Err = err
			return outcome
		}
	}
	if opts.XLSX {
		if err := export.WriteResumeXLSX(outcome.Resume, filepath.Join(opts.OutDir, base+".xlsx")); err != nil {
			outcome.Err = err
			return outcome
		}
	}
	return outcome
}

// reportOutcomes prints results and returns an error naming how many documents failed.
func reportOutcomes(stdout, stderr io.Writer, outcomes []parseOutcome, opts parseOptions, verbose bool) error {
	printer := observability.NewPrinter(stderr)
	var failed []error

	for _, o := range outcomes {
		if verbose && o.Result != nil {
			_, _ = fmt.Fprintf(stderr, "\n%s\n", o.Path)
			printer.PrintAttempts(o.Result.Attempts)
		}
		if o.Err != nil {
			var unreadable *parsing.UnreadableTextError
			if errors.As(o.Err, &unreadable) {
				_, _ = fmt.Fprintf(stderr, "%s: %s\n", o.Path, unreadable.UserMessage())
			} else {
				_, _ = fmt.Fprintf(stderr, "%s: %v\n", o.Path, o.Err)
			}
			failed = append(failed, fmt.Errorf("%s: %w", o.Path, o.Err))
			continue
		}

		if verbose {
			printer.PrintParsedResume(o.Resume)
			printer.PrintWarnings(parsing.Warnings(o.Resume))
		}

		if opts.OutDir == "" {
			if err := writeJSONTo(stdout, o.Resume); err != nil {
				return err
			}
			continue
		}
		_, _ = fmt.Fprintf(stdout, "Parsed %s (%s) -> %s\n", o.Path, o.Result.Strategy,
			filepath.Join(opts.OutDir, baseName(o.Path)+".json"))
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d documents failed: %w", len(failed), len(outcomes), errors.Join(failed...))
	}
	return nil
}

func writeJSONTo(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
