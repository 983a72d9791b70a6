package partyRepository

const (
	queryGetAllParties = `
		SELECT
			id, position, name, short_name, symbol, slogans, cm_candidate
		FROM parties
		ORDER BY position ASC, id ASC
	`

	queryGetAllKeywords = `
		SELECT
			id, keyword
		FROM election_keywords
		ORDER BY id ASC
	`
)
