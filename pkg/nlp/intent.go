package nlp

import "strings"

type IntentRule struct {
	Keywords []string
	Intent   Intent
}

// IntentRules is evaluated in order; the first rule with a keyword contained
// in the query decides the intent. NewEngine takes a copy.
var IntentRules = []IntentRule{
	{Keywords: []string{"symbol", "icon", "logo"}, Intent: IntentPartySymbolQuery},
	{Keywords: []string{"slogan", "tagline", "motto"}, Intent: IntentSloganQuery},
	{Keywords: []string{"cm", "chief minister", "candidate", "proposed"}, Intent: IntentCMCandidateQuery},
	{Keywords: []string{"tell me about", "who is", "information", "what is"}, Intent: IntentPartyInfo},
}

func (e *Engine) ClassifyIntent(text string) Intent {
	return e.classifyIntent(normalize(text))
}

func (e *Engine) classifyIntent(lowered string) Intent {
	for _, rule := range e.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Intent
			}
		}
	}
	return IntentGeneralInquiry
}
