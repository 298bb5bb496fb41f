package assistant

import "strings"

type Intent int

const (
	ShowMenu Intent = iota
	PlaceOrder
	ShowVegetarian
	ItemInfo
	Help
)

var menuTriggers = []string{"menu", "offer", "have"}

// classify maps a normalized token sequence to exactly one intent. Rules are
// checked in fixed priority order and the first match wins: an utterance
// containing both "menu" and "vegetarian" shows the menu, and "order" beats
// any item mention so ordering works. Item mentions are detected by substring
// against the space-joined tokens, which keeps multi-word identifiers like
// "garlic bread" matchable after tokenization. Unmatched input is Help.
func classify(tokens []string, itemNames []string) Intent {
	if containsAny(tokens, menuTriggers) {
		return ShowMenu
	}
	if containsAny(tokens, []string{"order"}) {
		return PlaceOrder
	}
	if containsAny(tokens, []string{"vegetarian"}) {
		return ShowVegetarian
	}

	joined := strings.Join(tokens, " ")
	for _, name := range itemNames {
		if strings.Contains(joined, name) {
			return ItemInfo
		}
	}

	return Help
}

func containsAny(tokens []string, wanted []string) bool {
	for _, tok := range tokens {
		for _, w := range wanted {
			if tok == w {
				return true
			}
		}
	}
	return false
}
