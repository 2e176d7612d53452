// Package chatbot implements the Dr. Dine assistant's canned-reply dispatch.
// It is a keyword lookup table, not a model: rules are evaluated in priority
// order and the first match wins.
package chatbot

import "strings"

// excerptLimit caps how much extracted report text a reply quotes back.
const excerptLimit = 500

// Greeting seeds every new chat session as the first assistant message.
const Greeting = "Hi! I'm Dr. Dine 🤖. Ask me anything!"

// Rule maps trigger keywords to a reply. Respond receives the session's
// extracted document text so replies can quote it.
type Rule struct {
	Keywords []string
	Respond  func(extractedText string) string
}

func fixed(reply string) func(string) string {
	return func(string) string { return reply }
}

// defaultRules is the dispatch table, highest priority first. Extending the
// responder means appending here; the dispatch loop never changes.
var defaultRules = []Rule{
	{
		Keywords: []string{"bmi"},
		Respond:  fixed("Your BMI indicates your body fat. Refer to your section for BMI insights."),
	},
	{
		Keywords: []string{"report", "condition"},
		Respond: func(extractedText string) string {
			if extractedText == "" {
				return "Please upload a report first."
			}
			if runes := []rune(extractedText); len(runes) > excerptLimit {
				extractedText = string(runes[:excerptLimit])
			}
			return extractedText + "..."
		},
	},
	{
		Keywords: []string{"food", "recommend"},
		Respond:  fixed("Upload your menu and go to the Upload Reports section to get recommendations!"),
	},
	{
		Keywords: []string{"hello", "hi"},
		Respond:  fixed("Hey there! 👋 How can I help today?"),
	},
}

const fallbackReply = "I'm still learning! Try asking about food, reports, or BMI."

// Responder is the stateless rule dispatcher.
type Responder struct {
	rules []Rule
}

// NewResponder returns a responder with the default rule set.
func NewResponder() *Responder {
	return &Responder{rules: defaultRules}
}

// Respond picks the reply for a message. Matching is case-insensitive
// substring containment; rules never combine.
func (r *Responder) Respond(message, extractedText string) string {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Respond(extractedText)
			}
		}
	}
	return fallbackReply
}
