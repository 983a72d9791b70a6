package nlp

import "strings"

type partyIndex struct {
	record    PartyRecord
	name      string
	shortName string
	symbol    string
	slogans   []string
}

// Engine answers election queries from an immutable Dataset. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	parties  []partyIndex
	keywords []string
	rules    []IntentRule
}

func NewEngine(dataset *Dataset) *Engine {
	e := &Engine{
		parties:  make([]partyIndex, 0, len(dataset.Parties)),
		keywords: make([]string, 0, len(dataset.Keywords)),
		rules:    copyRules(IntentRules),
	}

	for _, p := range dataset.Parties {
		idx := partyIndex{
			record:    p,
			name:      normalize(p.Name),
			shortName: normalize(p.ShortName),
			symbol:    normalize(p.Symbol),
			slogans:   make([]string, 0, len(p.Slogans)),
		}
		idx.record.Slogans = append([]string(nil), p.Slogans...)
		for _, s := range p.Slogans {
			idx.slogans = append(idx.slogans, normalize(s))
		}
		e.parties = append(e.parties, idx)
	}

	for _, k := range dataset.Keywords {
		e.keywords = append(e.keywords, normalize(k))
	}

	return e
}

func copyRules(rules []IntentRule) []IntentRule {
	copied := make([]IntentRule, len(rules))
	for i, rule := range rules {
		copied[i] = IntentRule{
			Keywords: append([]string(nil), rule.Keywords...),
			Intent:   rule.Intent,
		}
	}
	return copied
}

func (e *Engine) Analyze(text string) Analysis {
	lowered := normalize(text)
	result := Analysis{
		Input:  text,
		Tokens: tokenize(lowered),
	}

	result.Related = e.isElectionRelated(lowered, result.Tokens)
	result.Intent = e.classifyIntent(lowered)
	result.Entity = e.extractEntity(lowered)
	result.Response = e.respond(result)

	return result
}

func (e *Engine) Parties() []PartyRecord {
	parties := make([]PartyRecord, 0, len(e.parties))
	for _, p := range e.parties {
		record := p.record
		record.Slogans = append([]string(nil), p.record.Slogans...)
		parties = append(parties, record)
	}
	return parties
}

func (e *Engine) FindParty(shortName string) (PartyRecord, bool) {
	key := normalize(strings.TrimSpace(shortName))
	for _, p := range e.parties {
		if p.shortName == key {
			record := p.record
			record.Slogans = append([]string(nil), p.record.Slogans...)
			return record, true
		}
	}
	return PartyRecord{}, false
}
