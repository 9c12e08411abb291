// Package exporter turns a normalized classifier table into the
// script-loadable JavaScript data file consumed by the classifier
// library web application.
package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/model"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/parser"
)

// RenameColumns rewrites every column header to its canonical camelCase
// property name and returns the sorted "raw → canonical" report lines.
func RenameColumns(t *model.Table) []string {
	lines := make([]string, 0, len(t.Columns))
	for i, col := range t.Columns {
		canonical := parser.Standardize(col.Name)
		lines = append(lines, fmt.Sprintf("%s → %s", col.Name, canonical))
		t.Columns[i].Name = canonical
	}
	sort.Strings(lines)
	return lines
}

// CompleteSchema appends every missing required property with its default
// value and returns the added property names in schema order.
func CompleteSchema(t *model.Table) []string {
	added := []string{}
	for _, prop := range model.RequiredProperties {
		if t.HasColumn(prop.Name) {
			continue
		}
		added = append(added, prop.Name)
		t.AddColumn(
			model.Column{Name: prop.Name, Numeric: prop.Kind == model.KindNumeric},
			model.Cell{Value: prop.Default, Present: true},
		)
	}
	return added
}

// BuildRecords converts the renamed, completed table into output records,
// preserving input row order and column order.
func BuildRecords(t *model.Table) []model.Record {
	records := make([]model.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		fields := make([]model.Field, 0, len(t.Columns))
		for i, col := range t.Columns {
			var value any
			if col.Numeric {
				n, _ := strconv.Atoi(row[i].Value)
				value = n
			} else {
				value = row[i].Value
			}
			fields = append(fields, model.Field{Name: col.Name, Value: value})
		}
		records = append(records, model.Record{Fields: fields})
	}
	return records
}

// Summary aggregates the statistics printed at the end of a conversion.
type Summary struct {
	Total         int     `json:"total"`
	Indoor        int     `json:"indoor"`
	HasSteel      int     `json:"hasSteel"`
	HasBarricade  int     `json:"hasBarricade"`
	Comstock      int     `json:"comstock"`
	Virginia      int     `json:"virginia"`
	AvgRoundCount float64 `json:"avgRoundCount"`
}

// Summarize computes the conversion summary over the output records.
func Summarize(records []model.Record) Summary {
	s := Summary{Total: len(records)}
	roundTotal := 0
	for _, r := range records {
		if r.String("indoor") == "YES" {
			s.Indoor++
		}
		if r.String("hasSteel") == "YES" {
			s.HasSteel++
		}
		if r.String("hasBarricade") == "YES" {
			s.HasBarricade++
		}
		switch r.String("scoringType") {
		case "COMSTOCK":
			s.Comstock++
		case "VIRGINIA":
			s.Virginia++
		}
		roundTotal += r.Int("roundCount")
	}
	if s.Total > 0 {
		s.AvgRoundCount = float64(roundTotal) / float64(s.Total)
	}
	return s
}

// RenderJS serializes the records into the generated JavaScript file
// content: a banner comment followed by a 2-space-indented JSON array
// bound to classifierData.
func RenderJS(records []model.Record, source, generator string, generatedAt time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize records: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("// USPSA Classifier Library Data\n")
	fmt.Fprintf(&buf, "// Generated by %s\n", generator)
	fmt.Fprintf(&buf, "// Source: %s\n", source)
	fmt.Fprintf(&buf, "// Date: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))
	buf.WriteString("const classifierData = ")
	buf.Write(data)
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}

// WriteJS renders the records and writes the data file.
func WriteJS(path string, records []model.Record, source, generator string, generatedAt time.Time) error {
	content, err := RenderJS(records, source, generator, generatedAt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
