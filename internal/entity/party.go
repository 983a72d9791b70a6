package entity

type Party struct {
	ID          int64    `json:"id"`
	Position    int      `json:"position"`
	Name        string   `json:"name"`
	ShortName   string   `json:"short_name"`
	Symbol      string   `json:"symbol"`
	Slogans     []string `json:"slogans"`
	CMCandidate string   `json:"cm_candidate"`
}

type ElectionKeyword struct {
	ID      int64  `json:"id"`
	Keyword string `json:"keyword"`
}
