// Package normalizer turns raw SPC/ACERTA response envelopes into the compact
// AiContextPayload consumed by the AI analysis stage.
//
// The raw envelope is a legacy SOAP response converted to JSON: deeply nested,
// inconsistently typed, and full of bureau-internal tags with no risk meaning.
// Everything here is pure and total - any JSON input produces a payload with
// the fixed shape below, never an error. I/O, retries, and prompting live in
// the surrounding service layer.
package normalizer

// Record is one normalized domain record: output field name to cleaned scalar
// value. Only fields that were present and not the bureau's "-" placeholder
// are populated; an empty Record is never emitted.
type Record map[string]any

// Identification carries the applicant's registration data. Absent source
// fields are omitted from the JSON rather than serialized as empty strings.
type Identification struct {
	Name           string `json:"name,omitempty"`
	Document       string `json:"document,omitempty"`
	BirthDate      string `json:"birthDate,omitempty"`
	MotherName     string `json:"motherName,omitempty"`
	DocumentStatus string `json:"documentStatus,omitempty"`
}

// Location carries the applicant's registered address.
type Location struct {
	Address  string `json:"address,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zipCode,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// FinancialSummary aggregates the bureau's principal-debtor and guarantor
// counters into single risk figures. Zero is a meaningful value here ("no
// records"), so fields are always serialized.
type FinancialSummary struct {
	TotalDebtsQty      int     `json:"totalDebtsQty"`
	TotalDebtsValue    float64 `json:"totalDebtsValue"`
	TotalProtestsQty   int     `json:"totalProtestsQty"`
	TotalProtestsValue float64 `json:"totalProtestsValue"`
	TotalBadChecksQty  int     `json:"totalBadChecksQty"`
}

// NegativeDetails groups the per-record negative sections. Lists are empty,
// never null, when a section has no records.
type NegativeDetails struct {
	Debts     []Record `json:"debts"`
	Protests  []Record `json:"protests"`
	BadChecks []Record `json:"badChecks"`
}

// AiContextPayload is the normalization output. The field set is fixed
// regardless of input sparsity; downstream serializes it verbatim into the
// analysis prompt, so sparse sections are a risk signal, not a defect.
type AiContextPayload struct {
	Identification         Identification   `json:"identification"`
	Location               Location         `json:"location"`
	FinancialSummary       FinancialSummary `json:"financialSummary"`
	NegativeDetails        NegativeDetails  `json:"negativeDetails"`
	RiskScore              []Record         `json:"riskScore"`
	CorporateParticipation []Record         `json:"corporateParticipation"`
}
