package nlp

import (
	"fmt"
	"strings"
)

const (
	RejectionMessage     = "Sorry, I am trained only for election related queries."
	ClarificationMessage = "Could you please specify which party or symbol you are asking about?"
)

func (e *Engine) GenerateResponse(text string) string {
	return e.Analyze(text).Response
}

func (e *Engine) respond(a Analysis) string {
	if !a.Related {
		return RejectionMessage
	}
	if a.Entity == nil {
		return ClarificationMessage
	}

	p := a.Entity.Party
	switch a.Intent {
	case IntentPartySymbolQuery:
		return fmt.Sprintf("The symbol of %s (%s) is %s.", p.ShortName, p.Name, p.Symbol)
	case IntentSloganQuery:
		return fmt.Sprintf("The slogans for %s include: %s.", p.ShortName, strings.Join(p.Slogans, ", "))
	case IntentCMCandidateQuery:
		return fmt.Sprintf("The CM candidate for %s is %s.", p.ShortName, p.CMCandidate)
	case IntentPartyInfo:
		return fmt.Sprintf("%s (%s) uses the %s symbol. Their main candidate is %s and one of their slogans is \"%s\".",
			p.Name, p.ShortName, p.Symbol, p.CMCandidate, firstSlogan(p))
	default:
		return fmt.Sprintf("%s is a political party. Their symbol is %s and their leader is %s.",
			p.Name, p.Symbol, p.CMCandidate)
	}
}

func firstSlogan(p PartyRecord) string {
	if len(p.Slogans) == 0 {
		return ""
	}
	return p.Slogans[0]
}
