package domain

// The three operation selectors accepted by the gateway.
const (
	FunctionCallCustomerSearch = "callCustomerSearch"
	FunctionSucheKontakte      = "SucheKontakte"
	FunctionUeberpruefeKontakt = "UeberpruefeKontakt"
)

// ContactIDKey is the correlation key used to re-identify a contact
// across the candidate-search and verify operations.
const ContactIDKey = "x-id-kontakt"

// DataFields is the fixed canonical output key list. A reshaped record
// never contains keys outside this list plus ContactIDKey.
var DataFields = []string{
	"kundennummer",
	"anrede",
	"vorname",
	"name",
	"strasse",
	"plz",
	"ort",
	"land",
	"email",
	"telefon",
	"mobil",
	"fax",
}

// RawRecord is a backend document source. The backend schema is external
// and can gain fields without notice, so only recognized keys are read.
type RawRecord map[string]interface{}

// Record is the canonical output record: renamed fields, resolved
// country code, customer number coerced to text.
type Record map[string]interface{}

// LookupRequest is the body of every gateway operation.
type LookupRequest struct {
	Function string      `json:"function"`
	Data     *LookupData `json:"data,omitempty"`
}

// LookupData carries the per-operation payload. All fields are optional
// at the decoding level; each operation checks its own required ones.
type LookupData struct {
	Anrufer      string `json:"anrufer,omitempty"`
	Kundennummer string `json:"kundennummer,omitempty"`
	Rufnummer1   string `json:"rufnummer1,omitempty"`
	Rufnummer2   string `json:"rufnummer2,omitempty"`
	Email        string `json:"email,omitempty"`
	Vorname      string `json:"vorname,omitempty"`
	Nachname     string `json:"nachname,omitempty"`
	Firma        string `json:"firma,omitempty"`
	ContactID    string `json:"x-id-kontakt,omitempty"`
}
