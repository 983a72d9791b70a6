package nlp

import "strings"

type matchRank int

const (
	rankParty matchRank = iota
	rankSymbol
	rankSlogan
	rankNone
)

var rankTypes = map[matchRank]EntityType{
	rankParty:  EntityParty,
	rankSymbol: EntitySymbol,
	rankSlogan: EntitySlogan,
}

func (e *Engine) ExtractEntity(text string) *EntityMatch {
	return e.extractEntity(normalize(text))
}

// extractEntity makes a single pass over the parties keeping the best ranked
// match. A later party only replaces the current one with a strictly better
// rank, so the earliest party wins within a tier.
func (e *Engine) extractEntity(lowered string) *EntityMatch {
	best := -1
	bestRank := rankNone

	for i := range e.parties {
		rank := e.parties[i].rank(lowered)
		if rank < bestRank {
			best, bestRank = i, rank
			if rank == rankParty {
				break
			}
		}
	}

	if best < 0 {
		return nil
	}

	record := e.parties[best].record
	record.Slogans = append([]string(nil), record.Slogans...)
	return &EntityMatch{
		Type:  rankTypes[bestRank],
		Party: record,
	}
}

func (p *partyIndex) rank(lowered string) matchRank {
	if strings.Contains(lowered, p.name) || strings.Contains(lowered, p.shortName) {
		return rankParty
	}
	if strings.Contains(lowered, p.symbol) {
		return rankSymbol
	}
	for _, slogan := range p.slogans {
		if strings.Contains(lowered, slogan) {
			return rankSlogan
		}
	}
	return rankNone
}
