// Package countries holds the static reference table mapping country
// full names onto ISO 3166-1 alpha-2 codes. The table is loaded once at
// startup and never mutated afterwards.
package countries

import (
	_ "embed"
	"encoding/json"
	"strings"
)

//go:embed countries.json
var countriesJSON []byte

// Entry is one reference row of the table.
type Entry struct {
	Name   string `json:"name"`
	Alpha2 string `json:"alpha2"`
}

// Table resolves country full names, case-insensitively, onto their
// uppercased alpha-2 codes.
type Table struct {
	byName map[string]string
}

// NewTable parses the embedded reference data. It fails only when the
// embedded file is malformed, which is a programming error.
func NewTable() (*Table, error) {
	var entries []Entry
	if err := json.Unmarshal(countriesJSON, &entries); err != nil {
		return nil, err
	}

	byName := make(map[string]string, len(entries))
	for _, e := range entries {
		byName[strings.ToLower(e.Name)] = strings.ToUpper(e.Alpha2)
	}

	return &Table{byName: byName}, nil
}

// Alpha2 looks up a country by its full name and returns the uppercased
// two-letter code, or false when the name is unknown.
func (t *Table) Alpha2(name string) (string, bool) {
	code, ok := t.byName[strings.ToLower(name)]
	return code, ok
}
