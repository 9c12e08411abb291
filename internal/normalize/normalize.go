// Package normalize cleans a raw classifier table: boolean columns become
// exactly YES/NO, numeric columns become non-negative integers, and every
// correction is reported as a human-readable warning.
package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/model"
)

// Rules names the raw workbook columns the normalizer inspects. Passed
// explicitly so tests can pin down exact warning counts.
type Rules struct {
	// ImportantColumns are warned about when values are missing, but
	// never rewritten.
	ImportantColumns []string
	// BooleanColumns are normalized to exactly "YES" or "NO".
	BooleanColumns []string
	// NumericColumns are coerced to non-negative integers.
	NumericColumns []string
}

// DefaultRules returns the rules for the classifier workbook layout.
func DefaultRules() Rules {
	return Rules{
		ImportantColumns: []string{
			"Stage Name", "Stage Identifier", "Round Count", "Scoring Type",
		},
		BooleanColumns: []string{
			"Indoor", "Indoor & No Steel", "Back Berm Only", "10 Rounds or Less",
			"Ban State", "Mandatory Reload", "Stand and Deliver", "Box to Box",
			"Stage Style", "Has SHO / WHO", "Up Range Start", "Seated Start",
			"Has Barricade", "Has Steel",
		},
		NumericColumns: []string{
			"Round Count", "String Count", "Wall Count", "Width", "Depth",
		},
	}
}

// truthy is the set of upper-cased cell values normalized to "YES".
// "TRUE" covers boolean cells, which the sheet reader stringifies.
func truthy(v string) bool {
	return v == "YES" || v == "Y" || v == "TRUE"
}

// Normalize validates and cleans the table in place and returns the list
// of data-quality warnings. All issues are recovered with documented
// defaults; none are fatal.
func Normalize(t *model.Table, rules Rules) []string {
	issues := []string{}

	// Missing values in important columns are reported but left alone.
	for _, col := range rules.ImportantColumns {
		idx := t.ColumnIndex(col)
		if idx < 0 {
			continue
		}
		missing := 0
		for _, row := range t.Rows {
			if !row[idx].Present {
				missing++
			}
		}
		if missing > 0 {
			issues = append(issues, fmt.Sprintf("Warning: %d missing values found in '%s' column", missing, col))
		}
	}

	// Boolean columns: fill missing with "NO" first, then upper-case,
	// then count non-standard values, then normalize. The order matters:
	// filled defaults must not count as non-standard.
	for _, col := range rules.BooleanColumns {
		idx := t.ColumnIndex(col)
		if idx < 0 {
			continue
		}

		missing := 0
		for i := range t.Rows {
			if !t.Rows[i][idx].Present {
				missing++
				t.Rows[i][idx] = model.Cell{Value: "NO", Present: true}
			}
			t.Rows[i][idx].Value = strings.ToUpper(t.Rows[i][idx].Value)
		}
		if missing > 0 {
			issues = append(issues, fmt.Sprintf("Warning: %d missing values in '%s' set to 'NO'", missing, col))
		}

		nonStandard := 0
		for i := range t.Rows {
			if v := t.Rows[i][idx].Value; v != "YES" && v != "NO" {
				nonStandard++
			}
		}
		if nonStandard > 0 {
			issues = append(issues, fmt.Sprintf("Warning: %d non-standard values in '%s' normalized", nonStandard, col))
		}

		for i := range t.Rows {
			if truthy(t.Rows[i][idx].Value) {
				t.Rows[i][idx].Value = "YES"
			} else {
				t.Rows[i][idx].Value = "NO"
			}
		}
	}

	// Numeric columns: empty or unparsable cells coerce to 0 and count as
	// missing; everything truncates to a non-negative integer.
	for _, col := range rules.NumericColumns {
		idx := t.ColumnIndex(col)
		if idx < 0 {
			continue
		}

		missing := 0
		for i := range t.Rows {
			cell := t.Rows[i][idx]
			n, ok := parseCount(cell)
			if !ok {
				missing++
				n = 0
			}
			t.Rows[i][idx] = model.Cell{Value: strconv.Itoa(n), Present: true}
		}
		if missing > 0 {
			issues = append(issues, fmt.Sprintf("Warning: %d missing values in '%s' set to 0", missing, col))
		}
		t.Columns[idx].Numeric = true
	}

	return issues
}

// parseCount parses a cell as an integer count. Negative values clamp to
// zero; the boolean is false when the cell is absent or unparsable.
func parseCount(c model.Cell) (int, bool) {
	if !c.Present {
		return 0, false
	}
	// Tolerate thousand separators.
	v := strings.ReplaceAll(c.Value, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	n := int(f)
	if n < 0 {
		n = 0
	}
	return n, true
}
