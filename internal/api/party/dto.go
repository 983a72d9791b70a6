package party

import "ElectionAssistant/pkg/nlp"

const (
	DatasetSourceEmbedded = "embedded"
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

type PartyResponse struct {
	Name        string   `json:"name"`
	ShortName   string   `json:"short_name"`
	Symbol      string   `json:"symbol"`
	Slogans     []string `json:"slogans"`
	CMCandidate string   `json:"cm_candidate"`
}

type PartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
	Total   int             `json:"total"`
}

type GetPartyRequest struct {
	ShortName string `validate:"required,max=32"`
}

func ToPartyResponse(p nlp.PartyRecord) PartyResponse {
	return PartyResponse{
		Name:        p.Name,
		ShortName:   p.ShortName,
		Symbol:      p.Symbol,
		Slogans:     p.Slogans,
		CMCandidate: p.CMCandidate,
	}
}
