package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/model"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/normalize"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("set sheet name: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), "classifiers.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func decodeOutput(t *testing.T, path string) []map[string]any {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(content)

	start := strings.Index(out, "const classifierData = ")
	if start < 0 {
		t.Fatalf("output missing data literal:\n%s", out)
	}
	payload := strings.TrimSuffix(out[start+len("const classifierData = "):], ";\n")

	var records []map[string]any
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		t.Fatalf("output literal not valid JSON: %v", err)
	}
	return records
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	input := writeWorkbook(t, "Classifiers", [][]any{
		{"Stage Name", "Stage Identifier", "Indoor", "Round Count", "Scoring Type"},
		{"El Presidente", "CM 99-11", "Y", 12, "VIRGINIA"},
		{"Can You Count", "CM 99-04", "", 24, "COMSTOCK"},
	})
	output := filepath.Join(t.TempDir(), "classifiers.js")

	var report bytes.Buffer
	result, err := Run(Options{
		InputPath:  input,
		OutputPath: output,
		SheetName:  "Classifiers",
		Generator:  "classifier-convert",
		Rules:      normalize.DefaultRules(),
		Out:        &report,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Records != 2 {
		t.Fatalf("records = %d, want 2", result.Records)
	}
	if result.RunID == "" {
		t.Error("missing run ID")
	}

	records := decodeOutput(t, output)
	if len(records) != 2 {
		t.Fatalf("output records = %d, want 2", len(records))
	}

	// Row order preserved, booleans normalized.
	if records[0]["stageName"] != "El Presidente" || records[1]["stageName"] != "Can You Count" {
		t.Errorf("row order broken: %v", records)
	}
	if records[0]["indoor"] != "YES" {
		t.Errorf(`indoor "Y" = %v, want YES`, records[0]["indoor"])
	}
	if records[1]["indoor"] != "NO" {
		t.Errorf("missing indoor = %v, want NO", records[1]["indoor"])
	}

	// Every required property exists on every record.
	for i, rec := range records {
		for _, prop := range model.RequiredProperties {
			if _, ok := rec[prop.Name]; !ok {
				t.Errorf("record %d missing %q", i, prop.Name)
			}
		}
	}

	// The missing-value warning for Indoor is reported.
	foundWarning := false
	for _, issue := range result.Issues {
		if issue == "Warning: 1 missing values in 'Indoor' set to 'NO'" {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Errorf("expected Indoor warning, got %v", result.Issues)
	}

	if result.Summary.Virginia != 1 || result.Summary.Comstock != 1 {
		t.Errorf("unexpected summary: %+v", result.Summary)
	}
	if want := 18.0; result.Summary.AvgRoundCount != want {
		t.Errorf("avg round count = %v, want %v", result.Summary.AvgRoundCount, want)
	}

	if !strings.Contains(report.String(), "=== USPSA Classifier Library Converter ===") {
		t.Errorf("report missing banner:\n%s", report.String())
	}
}

func TestRun_MissingColumnBackfilled(t *testing.T) {
	t.Parallel()

	input := writeWorkbook(t, "Classifiers", [][]any{
		{"Stage Name"},
		{"First"},
		{"Second"},
	})
	output := filepath.Join(t.TempDir(), "classifiers.js")

	result, err := Run(Options{
		InputPath:  input,
		OutputPath: output,
		SheetName:  "Classifiers",
		Generator:  "classifier-convert",
		Rules:      normalize.DefaultRules(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	foundWidth := false
	for _, col := range result.AddedColumns {
		if col == "width" {
			foundWidth = true
		}
	}
	if !foundWidth {
		t.Errorf("width not reported as added: %v", result.AddedColumns)
	}

	for i, rec := range decodeOutput(t, output) {
		if rec["width"] != float64(0) {
			t.Errorf("record %d width = %v, want 0", i, rec["width"])
		}
	}
}

func TestRun_InputNotFound(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.xlsx")
	output := filepath.Join(t.TempDir(), "out.js")

	_, err := Run(Options{
		InputPath:  missing,
		OutputPath: output,
		SheetName:  "Classifiers",
		Rules:      normalize.DefaultRules(),
	})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if want := "File not found: " + missing; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("output file written despite failure")
	}
}

func TestRun_WrongSheetName(t *testing.T) {
	t.Parallel()

	input := writeWorkbook(t, "NotClassifiers", [][]any{
		{"Stage Name"},
		{"First"},
	})
	output := filepath.Join(t.TempDir(), "out.js")

	_, err := Run(Options{
		InputPath:  input,
		OutputPath: output,
		SheetName:  "Classifiers",
		Rules:      normalize.DefaultRules(),
	})
	if err == nil {
		t.Fatal("expected error for missing sheet")
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		t.Errorf("sheet error misclassified as NotFoundError: %v", err)
	}
}
