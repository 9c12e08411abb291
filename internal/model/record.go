package model

import (
	"bytes"
	"encoding/json"
)

// PropertyKind classifies a schema property for defaulting and typing.
type PropertyKind int

const (
	KindString PropertyKind = iota
	KindBoolean // serialized as "YES" / "NO"
	KindNumeric // serialized as a non-negative integer
)

// Property is one entry of the fixed output schema.
type Property struct {
	Name    string
	Kind    PropertyKind
	Default string
}

// DefaultScoringType is the scoring type assumed when the workbook does
// not provide one.
const DefaultScoringType = "COMSTOCK"

// RequiredProperties is the fixed classifier record schema, in output
// order. Every output record carries all of these.
var RequiredProperties = []Property{
	{Name: "stageName", Kind: KindString, Default: "Unknown"},
	{Name: "stageIdentifier", Kind: KindString, Default: "Unknown"},
	{Name: "indoor", Kind: KindBoolean, Default: "NO"},
	{Name: "indoorNoSteel", Kind: KindBoolean, Default: "NO"},
	{Name: "backBermOnly", Kind: KindBoolean, Default: "NO"},
	{Name: "tenRoundsOrLess", Kind: KindBoolean, Default: "NO"},
	{Name: "banState", Kind: KindBoolean, Default: "NO"},
	{Name: "roundCount", Kind: KindNumeric, Default: "0"},
	{Name: "mandatoryReload", Kind: KindBoolean, Default: "NO"},
	{Name: "standAndDeliver", Kind: KindBoolean, Default: "NO"},
	{Name: "boxToBox", Kind: KindBoolean, Default: "NO"},
	{Name: "stageStyle", Kind: KindBoolean, Default: "NO"},
	{Name: "hasShoWho", Kind: KindBoolean, Default: "NO"},
	{Name: "upRangeStart", Kind: KindBoolean, Default: "NO"},
	{Name: "seatedStart", Kind: KindBoolean, Default: "NO"},
	{Name: "wallCount", Kind: KindNumeric, Default: "0"},
	{Name: "hasBarricade", Kind: KindBoolean, Default: "NO"},
	{Name: "hasSteel", Kind: KindBoolean, Default: "NO"},
	{Name: "stringCount", Kind: KindNumeric, Default: "0"},
	{Name: "scoringType", Kind: KindString, Default: DefaultScoringType},
	{Name: "width", Kind: KindNumeric, Default: "0"},
	{Name: "depth", Kind: KindNumeric, Default: "0"},
}

// PropertyByName looks up a required property by canonical name.
func PropertyByName(name string) (Property, bool) {
	for _, p := range RequiredProperties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Field is one (name, value) pair of an output record. Value is a string
// or an int after normalization.
type Field struct {
	Name  string
	Value any
}

// Record is one classifier record. Fields keep the column order of the
// source table, which a plain map would lose in JSON output.
type Record struct {
	Fields []Field
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the named field as a string, or "" when absent or not a
// string.
func (r Record) String(name string) string {
	v, ok := r.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Int returns the named field as an int, or 0 when absent or not an int.
func (r Record) Int(name string) int {
	v, ok := r.Get(name)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// MarshalJSON serializes the record as a JSON object preserving field
// order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
