// Package report writes the human-readable conversion report. The report
// is informational console output, not a machine-readable contract.
package report

import (
	"fmt"
	"io"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/exporter"
)

// Printer writes the conversion report to one destination.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner prints the converter header.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, "\n=== USPSA Classifier Library Converter ===")
}

// ReadingFile announces the input file.
func (p *Printer) ReadingFile(path string) {
	fmt.Fprintf(p.w, "Reading Excel file: %s\n", path)
}

// RecordCount reports how many data rows were found.
func (p *Printer) RecordCount(n int) {
	fmt.Fprintf(p.w, "Found %d classifier records\n", n)
}

// Issues prints the data validation warnings, if any.
func (p *Printer) Issues(issues []string) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(p.w, "\nData Validation Issues:")
	for _, issue := range issues {
		fmt.Fprintf(p.w, "  • %s\n", issue)
	}
}

// ColumnMapping prints the sorted raw → canonical header mapping.
func (p *Printer) ColumnMapping(lines []string) {
	fmt.Fprintln(p.w, "\nColumn mapping:")
	for _, line := range lines {
		fmt.Fprintf(p.w, "  • %s\n", line)
	}
}

// AddedColumns lists required properties that were backfilled with
// defaults, if any.
func (p *Printer) AddedColumns(cols []string) {
	if len(cols) == 0 {
		return
	}
	fmt.Fprintln(p.w, "\nAdded missing columns with default values:")
	for _, col := range cols {
		fmt.Fprintf(p.w, "  • %s\n", col)
	}
}

// Success reports the written output file.
func (p *Printer) Success(path string) {
	fmt.Fprintf(p.w, "\nSuccessfully converted to %s\n", path)
}

// Summary prints the conversion statistics block.
func (p *Printer) Summary(s exporter.Summary) {
	fmt.Fprintln(p.w, "\nData Summary:")
	fmt.Fprintf(p.w, "  • Total classifiers: %d\n", s.Total)
	fmt.Fprintf(p.w, "  • Indoor classifiers: %d\n", s.Indoor)
	fmt.Fprintf(p.w, "  • Classifiers with steel: %d\n", s.HasSteel)
	fmt.Fprintf(p.w, "  • Classifiers with barricade: %d\n", s.HasBarricade)
	fmt.Fprintf(p.w, "  • Comstock scoring: %d\n", s.Comstock)
	fmt.Fprintf(p.w, "  • Virginia scoring: %d\n", s.Virginia)
	fmt.Fprintf(p.w, "  • Average round count: %.1f\n", s.AvgRoundCount)
}

// Done prints the completion line.
func (p *Printer) Done() {
	fmt.Fprintln(p.w, "\nConversion complete!")
}
