// Package assistant is the rule-based core of the restaurant chat bot. It
// classifies a free-text utterance into one of five intents and renders a
// plain-text response from the menu catalogue. The only state it ever
// mutates is the session's Order; everything else is a pure function of its
// inputs, so the package is safe to share across concurrent sessions as
// long as each session owns its own Order.
package assistant

import (
	"strings"

	"github.com/VadWill/Pepe/menu"
	"github.com/VadWill/Pepe/nlp"
)

const (
	Greeting = "Welcome to our restaurant! How can I help you today?"
	Farewell = "Thank you for visiting! Goodbye!"

	clarifyOrder = "I couldn't identify what you'd like to order. Please specify items from our menu."
	itemNotFound = "I couldn't find information about that item. Please check our menu."
)

// HelpMessage enumerates the supported intents with an example phrase each.
// It is also the fallback response for anything the rules don't match.
const HelpMessage = `I can help you with:
1. Showing the menu (try "What's on the menu?")
2. Providing item information (try "Tell me about the pizza")
3. Taking orders (try "I'd like to order a burger")
4. Showing vegetarian options (try "What are your vegetarian options?")`

// IsExitWord reports whether input is one of the session-ending keywords.
// Shells check this before classification; exit words never reach Respond.
func IsExitWord(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "quit", "exit", "bye":
		return true
	}
	return false
}

type Assistant struct {
	catalogue *menu.Catalogue
	itemNames []string
}

func New(catalogue *menu.Catalogue) *Assistant {
	return &Assistant{
		catalogue: catalogue,
		itemNames: catalogue.ItemNames(),
	}
}

// Respond classifies one utterance and returns the response text. Appending
// to order on a successful PlaceOrder is the only side effect; every other
// path, including the two soft failures (unrecognized order, unknown item),
// returns an ordinary string. Respond never fails.
func (a *Assistant) Respond(input string, order *Order) string {
	lowered := strings.ToLower(input)
	tokens := nlp.Normalize(lowered)

	switch classify(tokens, a.itemNames) {
	case ShowMenu:
		return a.showMenu()
	case PlaceOrder:
		return a.placeOrder(lowered, order)
	case ShowVegetarian:
		return a.vegetarianOptions()
	case ItemInfo:
		return a.itemInfo(lowered)
	default:
		return HelpMessage
	}
}
