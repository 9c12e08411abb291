// Package convert runs the full conversion pipeline: load the workbook,
// validate and normalize the table, rename and backfill columns, write
// the JavaScript data file, and report what happened.
package convert

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/exporter"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/normalize"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/parser"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/report"
)

// NotFoundError reports that the input workbook does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Path)
}

// Options configure one conversion run.
type Options struct {
	InputPath  string
	OutputPath string
	SheetName  string
	Generator  string
	Rules      normalize.Rules
	// Out receives the conversion report. Defaults to io.Discard.
	Out io.Writer
}

// Result describes a completed conversion.
type Result struct {
	RunID        string
	Records      int
	MappingLines []string
	Issues       []string
	AddedColumns []string
	Summary      exporter.Summary
	StartedAt    time.Time
	Duration     time.Duration
}

// Run executes the pipeline. Data-quality problems are corrected with
// documented defaults and surfaced as warnings in the result; only I/O
// failures return an error.
func Run(opts Options) (*Result, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	started := time.Now()

	p := report.New(opts.Out)
	p.Banner()
	p.ReadingFile(opts.InputPath)

	if _, err := os.Stat(opts.InputPath); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: opts.InputPath}
		}
		return nil, err
	}

	table, err := parser.LoadWorkbook(opts.InputPath, opts.SheetName)
	if err != nil {
		return nil, err
	}
	p.RecordCount(table.RowCount())

	issues := normalize.Normalize(table, opts.Rules)
	p.Issues(issues)

	mapping := exporter.RenameColumns(table)
	p.ColumnMapping(mapping)

	added := exporter.CompleteSchema(table)
	p.AddedColumns(added)

	records := exporter.BuildRecords(table)
	if err := exporter.WriteJS(opts.OutputPath, records, opts.InputPath, opts.Generator, time.Now()); err != nil {
		return nil, err
	}
	p.Success(opts.OutputPath)

	summary := exporter.Summarize(records)
	p.Summary(summary)

	return &Result{
		RunID:        uuid.New().String(),
		Records:      len(records),
		MappingLines: mapping,
		Issues:       issues,
		AddedColumns: added,
		Summary:      summary,
		StartedAt:    started,
		Duration:     time.Since(started),
	}, nil
}
