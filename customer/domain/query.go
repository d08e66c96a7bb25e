package domain

// phoneFields is the set of phone-bearing document fields searched for
// caller numbers. mp2/p2 are secondary numbers of the sync source.
var phoneFields = []string{"telefon", "mobil", "mp2", "p2"}

// SearchQuery is the request body posted to the search backend. Exactly
// one of the clause kinds is set.
type SearchQuery struct {
	Query QueryClause `json:"query"`
}

type QueryClause struct {
	QueryString *QueryString `json:"query_string,omitempty"`
	Bool        *BoolQuery   `json:"bool,omitempty"`
}

type QueryString struct {
	Query  string   `json:"query"`
	Fields []string `json:"fields"`
}

type BoolQuery struct {
	Should             []Clause `json:"should,omitempty"`
	MinimumShouldMatch int      `json:"minimum_should_match,omitempty"`
	Must               *Clause  `json:"must,omitempty"`
}

type Clause struct {
	Match map[string]MatchClause `json:"match,omitempty"`
	Fuzzy map[string]FuzzyClause `json:"fuzzy,omitempty"`
}

type MatchClause struct {
	Query string `json:"query"`
}

type FuzzyClause struct {
	Value string `json:"value"`
}

// NewPhoneQuery builds the substring phone search: a full-text query
// matching *<digits>* against the phone-bearing fields.
func NewPhoneQuery(digits string) SearchQuery {
	return SearchQuery{
		Query: QueryClause{
			QueryString: &QueryString{
				Query:  "*" + digits + "*",
				Fields: phoneFields,
			},
		},
	}
}

// NewCandidateQuery builds the fuzzy multi-field candidate search: a
// disjunction of one clause per populated input field, of which at least
// one has to match.
//
// The customer number is matched exactly since it is not typo-prone.
// A company name is folded into a last-name fuzzy clause; the sync index
// has no dedicated company field.
func NewCandidateQuery(data *LookupData) SearchQuery {
	var should []Clause

	if data.Kundennummer != "" {
		should = append(should, Clause{
			Match: map[string]MatchClause{"kundennummer": {Query: data.Kundennummer}},
		})
	}

	for _, number := range []string{data.Rufnummer1, data.Rufnummer2} {
		if number == "" {
			continue
		}

		for _, field := range phoneFields {
			should = append(should, Clause{
				Fuzzy: map[string]FuzzyClause{field: {Value: number}},
			})
		}
	}

	if data.Email != "" {
		should = append(should, Clause{
			Fuzzy: map[string]FuzzyClause{"email.keyword": {Value: data.Email}},
		})
	}

	if data.Vorname != "" {
		should = append(should, Clause{
			Fuzzy: map[string]FuzzyClause{"vorname": {Value: data.Vorname}},
		})
	}

	if data.Nachname != "" {
		should = append(should, Clause{
			Fuzzy: map[string]FuzzyClause{"nachname": {Value: data.Nachname}},
		})
	}

	if data.Firma != "" {
		should = append(should, Clause{
			Fuzzy: map[string]FuzzyClause{"nachname": {Value: data.Firma}},
		})
	}

	return SearchQuery{
		Query: QueryClause{
			Bool: &BoolQuery{
				Should:             should,
				MinimumShouldMatch: 1,
			},
		},
	}
}

// NewVerifyQuery builds the exact-match contact verification query on
// the customer number.
func NewVerifyQuery(contactID string) SearchQuery {
	return SearchQuery{
		Query: QueryClause{
			Bool: &BoolQuery{
				Must: &Clause{
					Match: map[string]MatchClause{"kundennummer": {Query: contactID}},
				},
			},
		},
	}
}
