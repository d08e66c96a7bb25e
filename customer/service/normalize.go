package service

import (
	"strconv"

	"github.com/crmbridge/acrm-cust/countries"
	"github.com/crmbridge/acrm-cust/customer/domain"
)

const salutationMaxLen = 3

// Standardize reshapes one raw backend document into the canonical
// output record. It never mutates the input: the caller's record stays
// untouched.
//
// Order matters: the last name is copied into the canonical name slot,
// the salutation is truncated, the country full name is resolved to its
// alpha-2 code (or dropped), the customer number is coerced to text,
// and finally the record is projected onto the fixed field list keeping
// only truthy values.
func Standardize(raw domain.RawRecord, table *countries.Table) domain.Record {
	src := make(map[string]interface{}, len(raw)+1)
	for k, v := range raw {
		src[k] = v
	}

	src["name"] = src["nachname"]

	if anrede, ok := src["anrede"].(string); ok {
		src["anrede"] = truncate(anrede, salutationMaxLen)
	}

	if land, ok := src["land"].(string); ok {
		if code, found := table.Alpha2(land); found {
			src["land"] = code
		} else {
			delete(src, "land")
		}
	} else {
		delete(src, "land")
	}

	if number, ok := src["kundennummer"]; ok && number != nil {
		src["kundennummer"] = CoerceString(number)
	}

	record := domain.Record{}

	for _, field := range domain.DataFields {
		if v, ok := src[field]; ok && truthy(v) {
			record[field] = v
		}
	}

	return record
}

// CoerceString renders any scalar backend value as text. JSON numbers
// decode as float64; integral ones render without a fraction (42 -> "42").
func CoerceString(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// truthy mirrors the loose emptiness rules of the sync source: empty
// strings, zero numbers and false are treated as absent.
func truthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case float64:
		return value != 0
	case bool:
		return value
	default:
		return true
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
