package parser

import (
	"strings"
	"unicode"
)

// specialCases maps the known workbook headers to their canonical
// camelCase property names. Headers not listed here go through the
// generic camelCase rule.
var specialCases = map[string]string{
	"Indoor & No Steel": "indoorNoSteel",
	"10 Rounds or Less": "tenRoundsOrLess",
	"Has SHO / WHO":     "hasShoWho",
	"Up Range Start":    "upRangeStart",
	"Seated Start":      "seatedStart",
	"Has Barricade":     "hasBarricade",
	"Has Steel":         "hasSteel",
	"String Count":      "stringCount",
	"Scoring Type":      "scoringType",
	"Wall Count":        "wallCount",
	"Back Berm Only":    "backBermOnly",
	"Ban State":         "banState",
	"Mandatory Reload":  "mandatoryReload",
	"Stand and Deliver": "standAndDeliver",
	"Stage Style":       "stageStyle",
	"Round Count":       "roundCount",
	"Stage Identifier":  "stageIdentifier",
	"Stage Name":        "stageName",
}

// Standardize converts a raw column header into its canonical camelCase
// property name. Known headers use the fixed table above; anything else
// is split on non-alphanumeric characters, the first token lowercased and
// the remaining tokens capitalized. A header with no alphanumeric
// characters yields the empty string.
func Standardize(name string) string {
	if canonical, ok := specialCases[name]; ok {
		return canonical
	}
	return camelCase(name)
}

func camelCase(name string) string {
	// Split on every non-alphanumeric character, keeping empty tokens.
	// Only the first token is lowercased, so a header starting with a
	// separator keeps its first real token capitalized ("-Width" →
	// "Width"); empty tokens after the first are dropped.
	var tokens []string
	var cur strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
			continue
		}
		tokens = append(tokens, cur.String())
		cur.Reset()
	}
	tokens = append(tokens, cur.String())

	var b strings.Builder
	b.WriteString(strings.ToLower(tokens[0]))
	for _, tok := range tokens[1:] {
		if tok == "" {
			continue
		}
		b.WriteString(capitalize(tok))
	}
	return b.String()
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	out = append(out, unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}
