package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/crmbridge/acrm-cust/countries"
	"github.com/crmbridge/acrm-cust/customer/domain"
)

func newTable(t *testing.T) *countries.Table {
	t.Helper()

	table, err := countries.NewTable()
	if err != nil {
		t.Fatal(err)
	}

	return table
}

func TestStandardize(t *testing.T) {
	table := newTable(t)

	tests := []struct {
		name string
		raw  domain.RawRecord
		want domain.Record
	}{
		{
			name: "full record",
			raw: domain.RawRecord{
				"kundennummer": float64(42),
				"anrede":       "Herr Dr.",
				"vorname":      "Max",
				"nachname":     "Muster",
				"strasse":      "Hauptstr. 1",
				"plz":          "10115",
				"ort":          "Berlin",
				"land":         "Germany",
				"email":        "max@example.com",
				"telefon":      "015123456789",
			},
			want: domain.Record{
				"kundennummer": "42",
				"anrede":       "Her",
				"vorname":      "Max",
				"name":         "Muster",
				"strasse":      "Hauptstr. 1",
				"plz":          "10115",
				"ort":          "Berlin",
				"land":         "DE",
				"email":        "max@example.com",
				"telefon":      "015123456789",
			},
		},
		{
			name: "country resolved case insensitively",
			raw: domain.RawRecord{
				"nachname": "Muster",
				"land":     "gErMaNy",
			},
			want: domain.Record{
				"name": "Muster",
				"land": "DE",
			},
		},
		{
			name: "unknown country dropped",
			raw: domain.RawRecord{
				"nachname": "Muster",
				"land":     "Atlantis",
			},
			want: domain.Record{
				"name": "Muster",
			},
		},
		{
			name: "scoring only fields ignored",
			raw: domain.RawRecord{
				"nachname": "Muster",
				"mp2":      "015199999999",
				"p2":       "015188888888",
				"score":    float64(1.5),
			},
			want: domain.Record{
				"name": "Muster",
			},
		},
		{
			name: "empty values omitted",
			raw: domain.RawRecord{
				"nachname": "Muster",
				"vorname":  "",
				"telefon":  "",
				"fax":      nil,
			},
			want: domain.Record{
				"name": "Muster",
			},
		},
		{
			name: "zero customer number kept as text",
			raw: domain.RawRecord{
				"kundennummer": float64(0),
				"nachname":     "Muster",
			},
			want: domain.Record{
				"kundennummer": "0",
				"name":         "Muster",
			},
		},
		{
			name: "textual customer number passed through",
			raw: domain.RawRecord{
				"kundennummer": "A-1007",
			},
			want: domain.Record{
				"kundennummer": "A-1007",
			},
		},
		{
			name: "short salutation untouched",
			raw: domain.RawRecord{
				"anrede":   "Fr",
				"nachname": "Muster",
			},
			want: domain.Record{
				"anrede": "Fr",
				"name":   "Muster",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Standardize(tt.raw, table)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Standardize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStandardizeNeverLeaksUnknownKeys(t *testing.T) {
	table := newTable(t)

	raw := domain.RawRecord{
		"kundennummer": float64(7),
		"nachname":     "Muster",
		"internal_id":  "xyz",
		"sync_ts":      float64(1700000000),
	}

	got := Standardize(raw, table)

	allowed := make(map[string]bool, len(domain.DataFields))
	for _, f := range domain.DataFields {
		allowed[f] = true
	}

	for key := range got {
		assert.True(t, allowed[key], "unexpected key %q in canonical record", key)
	}
}

func TestStandardizeDoesNotMutateInput(t *testing.T) {
	table := newTable(t)

	raw := domain.RawRecord{
		"kundennummer": float64(42),
		"anrede":       "Frau Prof.",
		"nachname":     "Muster",
		"land":         "Germany",
	}

	_ = Standardize(raw, table)

	assert.Equal(t, float64(42), raw["kundennummer"])
	assert.Equal(t, "Frau Prof.", raw["anrede"])
	assert.Equal(t, "Germany", raw["land"])
	_, hasName := raw["name"]
	assert.False(t, hasName)
}
