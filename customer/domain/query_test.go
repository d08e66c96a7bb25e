package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPhoneQuery(t *testing.T) {
	q := NewPhoneQuery("15123456789")

	body, err := json.Marshal(q)
	assert.NoError(t, err)

	assert.JSONEq(t, `{
		"query": {
			"query_string": {
				"query": "*15123456789*",
				"fields": ["telefon", "mobil", "mp2", "p2"]
			}
		}
	}`, string(body))
}

func TestNewCandidateQuery(t *testing.T) {
	t.Run("customer number matches exactly", func(t *testing.T) {
		q := NewCandidateQuery(&LookupData{Kundennummer: "42"})

		should := q.Query.Bool.Should
		assert.Len(t, should, 1)
		assert.Equal(t, "42", should[0].Match["kundennummer"].Query)
		assert.Nil(t, should[0].Fuzzy)
		assert.Equal(t, 1, q.Query.Bool.MinimumShouldMatch)
	})

	t.Run("each phone number expands over all phone fields", func(t *testing.T) {
		q := NewCandidateQuery(&LookupData{
			Rufnummer1: "015123456789",
			Rufnummer2: "015987654321",
		})

		should := q.Query.Bool.Should
		assert.Len(t, should, 8)

		fields := map[string]int{}
		for _, clause := range should {
			for field := range clause.Fuzzy {
				fields[field]++
			}
		}

		assert.Equal(t, map[string]int{"telefon": 2, "mobil": 2, "mp2": 2, "p2": 2}, fields)
	})

	t.Run("email is fuzzy on the keyword form", func(t *testing.T) {
		q := NewCandidateQuery(&LookupData{Email: "max@example.com"})

		should := q.Query.Bool.Should
		assert.Len(t, should, 1)
		assert.Equal(t, "max@example.com", should[0].Fuzzy["email.keyword"].Value)
	})

	t.Run("company name folds into the last name clause", func(t *testing.T) {
		q := NewCandidateQuery(&LookupData{Firma: "Muster GmbH"})

		should := q.Query.Bool.Should
		assert.Len(t, should, 1)
		assert.Equal(t, "Muster GmbH", should[0].Fuzzy["nachname"].Value)
	})

	t.Run("empty fields contribute no clauses", func(t *testing.T) {
		q := NewCandidateQuery(&LookupData{Vorname: "Max"})

		should := q.Query.Bool.Should
		assert.Len(t, should, 1)
		assert.Equal(t, "Max", should[0].Fuzzy["vorname"].Value)
	})
}

func TestNewVerifyQuery(t *testing.T) {
	q := NewVerifyQuery("42")

	body, err := json.Marshal(q)
	assert.NoError(t, err)

	assert.JSONEq(t, `{
		"query": {
			"bool": {
				"must": {
					"match": {
						"kundennummer": {"query": "42"}
					}
				}
			}
		}
	}`, string(body))
}
