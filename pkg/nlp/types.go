package nlp

type Intent string

const (
	IntentPartySymbolQuery Intent = "PARTY_SYMBOL_QUERY"
	IntentSloganQuery      Intent = "SLOGAN_QUERY"
	IntentCMCandidateQuery Intent = "CM_CANDIDATE_QUERY"
	IntentPartyInfo        Intent = "PARTY_INFO"
	IntentGeneralInquiry   Intent = "GENERAL_INQUIRY"
)

type EntityType string

const (
	EntityParty  EntityType = "PARTY"
	EntitySymbol EntityType = "SYMBOL"
	EntitySlogan EntityType = "SLOGAN"
)

// EntityMatch is the party a query refers to and the tier that located it.
type EntityMatch struct {
	Type  EntityType  `json:"type"`
	Party PartyRecord `json:"party"`
}

type Analysis struct {
	Input    string       `json:"input"`
	Tokens   []string     `json:"tokens"`
	Related  bool         `json:"related"`
	Intent   Intent       `json:"intent"`
	Entity   *EntityMatch `json:"entity,omitempty"`
	Response string       `json:"response"`
}

type INLPEngine interface {
	IsElectionRelated(text string) bool
	ClassifyIntent(text string) Intent
	ExtractEntity(text string) *EntityMatch
	GenerateResponse(text string) string
	Analyze(text string) Analysis
	Parties() []PartyRecord
	FindParty(shortName string) (PartyRecord, bool)
}
