// Package pipeline provides the high-level orchestration for building the
// careers artifact.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/careers-builder/internal/career"
	"github.com/jonathan/careers-builder/internal/educost"
	"github.com/jonathan/careers-builder/internal/fetch"
	"github.com/jonathan/careers-builder/internal/observability"
	"github.com/jonathan/careers-builder/internal/oews"
	"github.com/jonathan/careers-builder/internal/ooh"
	"github.com/jonathan/careers-builder/internal/schemas"
	"github.com/jonathan/careers-builder/internal/types"
)

// Step names attached to progress events.
const (
	StepFetchProfiles  = "fetch_profiles"
	StepFetchWages     = "fetch_wages"
	StepAggregate      = "aggregate"
	StepWriteArtifact  = "write_artifact"
	StepValidateOutput = "validate_output"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	OOHXMLURL       string
	OEWSPageURL     string
	OutputPath      string
	TwoYearTuition  float64
	FourYearTuition float64
	Targets         []string
	Timeout         time.Duration
	Verbose         bool
	OnProgress      ProgressCallback
}

// sourceData holds the outputs of the two independent fetch branches.
type sourceData struct {
	profiles    map[string]types.OccupationProfile
	wages       map[string]types.WageStats
	workbookURL string
}

// Run executes the full build: fetch both sources in parallel, extract the
// keyed mappings, aggregate against the target list, write the artifact, and
// validate it against the careers schema. Only structural failures (no
// parseable source data) abort the run; per-record gaps degrade to nulls in
// the output.
func Run(ctx context.Context, opts RunOptions) error {
	runID := uuid.New().String()
	printer := observability.NewPrinter(os.Stdout)

	estimator, err := educost.NewEstimator(opts.TwoYearTuition, opts.FourYearTuition)
	if err != nil {
		return fmt.Errorf("estimator configuration invalid: %w", err)
	}

	if len(opts.Targets) == 0 {
		return fmt.Errorf("no target titles configured")
	}

	fetchOpts := fetch.DefaultOptions()
	if opts.Timeout > 0 {
		fetchOpts.Timeout = opts.Timeout
	}

	// The two sources have no ordering dependency on each other; only
	// aggregation needs both.
	fmt.Printf("Step 1/5: Fetching occupation profiles and wage statistics...\n")
	data, err := fetchSources(ctx, &opts, fetchOpts, runID)
	if err != nil {
		return err
	}

	if len(data.profiles) == 0 {
		return fmt.Errorf("occupation profile source %s contains no parseable entries", opts.OOHXMLURL)
	}

	if opts.Verbose {
		printer.PrintSourceSummary(len(data.profiles), len(data.wages), data.workbookURL)
	}

	fmt.Printf("Step 3/5: Aggregating %d target careers...\n", len(opts.Targets))
	careers := career.Aggregate(opts.Targets, data.profiles, data.wages, estimator)
	catalog := &types.Catalog{
		Version: types.CatalogVersion,
		Careers: careers,
	}
	emitProgress(&opts, runID, StepAggregate, fmt.Sprintf("Assembled %d career records", len(careers)), len(careers))
	if opts.Verbose {
		printer.PrintCatalog(catalog)
	}

	fmt.Printf("Step 4/5: Writing %s...\n", opts.OutputPath)
	if err := writeCatalog(opts.OutputPath, catalog); err != nil {
		return err
	}
	emitProgress(&opts, runID, StepWriteArtifact, fmt.Sprintf("Wrote %s", opts.OutputPath), len(careers))

	fmt.Printf("Step 5/5: Validating output against careers schema...\n")
	if err := schemas.ValidateCareersFile(opts.OutputPath); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) && loadErr.Cause == nil {
			// Schema file not locatable from this working directory; the
			// artifact is still written, so warn instead of failing.
			fmt.Printf("Warning: skipping output validation: %v\n", err)
		} else {
			return fmt.Errorf("generated artifact failed schema validation: %w", err)
		}
	}
	emitProgress(&opts, runID, StepValidateOutput, "Output validated", 0)

	fmt.Printf("Done! Wrote %s with %d careers.\n", opts.OutputPath, len(careers))
	return nil
}

// fetchSources runs the two source branches in parallel and returns both
// keyed mappings.
func fetchSources(ctx context.Context, opts *RunOptions, fetchOpts *fetch.Options, runID string) (*sourceData, error) {
	g, gCtx := errgroup.WithContext(ctx)
	data := &sourceData{}

	// Profile branch: OOH XML compilation.
	g.Go(func() error {
		result, err := fetch.URL(gCtx, opts.OOHXMLURL, fetchOpts)
		if err != nil {
			return fmt.Errorf("fetching OOH XML failed: %w", err)
		}
		profiles, err := ooh.Extract(result.Body)
		if err != nil {
			return fmt.Errorf("parsing OOH XML failed: %w", err)
		}
		data.profiles = profiles
		emitProgress(opts, runID, StepFetchProfiles,
			fmt.Sprintf("Extracted %d occupation profiles", len(profiles)), len(profiles))
		return nil
	})

	// Wage branch: discover the workbook link on the OEWS page, then read it.
	g.Go(func() error {
		page, err := fetch.URL(gCtx, opts.OEWSPageURL, fetchOpts)
		if err != nil {
			return fmt.Errorf("fetching OEWS page failed: %w", err)
		}
		workbookURL, err := fetch.FindSpreadsheetLink(string(page.Body), opts.OEWSPageURL)
		if err != nil {
			return fmt.Errorf("locating OEWS workbook failed: %w", err)
		}
		fmt.Printf("Step 2/5: Downloading OEWS workbook %s...\n", workbookURL)
		workbook, err := fetch.URL(gCtx, workbookURL, fetchOpts)
		if err != nil {
			return fmt.Errorf("fetching OEWS workbook failed: %w", err)
		}
		table, err := oews.ReadWorkbook(bytes.NewReader(workbook.Body))
		if err != nil {
			return fmt.Errorf("reading OEWS workbook failed: %w", err)
		}
		data.wages = oews.Extract(table)
		data.workbookURL = workbookURL
		emitProgress(opts, runID, StepFetchWages,
			fmt.Sprintf("Extracted wage stats for %d occupations", len(data.wages)), len(data.wages))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// writeCatalog serializes the catalog as indented JSON without HTML escaping,
// matching the artifact the front-end consumes.
func writeCatalog(path string, catalog *types.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file failed: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(catalog); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding catalog failed: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file failed: %w", err)
	}
	return nil
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string, count int) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Count:   count,
		})
	}
}
