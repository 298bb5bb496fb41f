package assistant_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VadWill/Pepe/assistant"
	"github.com/VadWill/Pepe/menu"
)

func newAssistant() *assistant.Assistant {
	return assistant.New(menu.Default())
}

func TestShowMenu(t *testing.T) {
	bot := newAssistant()
	order := assistant.NewOrder()

	out := bot.Respond("What's on the menu?", order)

	assert.True(t, strings.HasPrefix(out, "=== MENU ===\n"))
	assert.Contains(t, out, "\nAPPETIZERS\n")
	assert.Contains(t, out, "\nMAIN_COURSES\n")
	assert.Contains(t, out, "\nDESSERTS\n")
	assert.Contains(t, out, "Garlic Bread: $5.99\n  Freshly baked bread with garlic butter and herbs\n")
	assert.Contains(t, out, "Ice_Cream: $5.99\n")

	// One price line per catalogue item, each with exactly two decimals.
	prices := regexp.MustCompile(`\$\d+\.\d\d\n`).FindAllString(out, -1)
	assert.Len(t, prices, 8)
	assert.Equal(t, 8, strings.Count(out, "$"))

	assert.Equal(t, 0, order.Len(), "showing the menu must not touch the order")
}

func TestShowMenuTriggerDominance(t *testing.T) {
	bot := newAssistant()
	full := bot.Respond("menu", assistant.NewOrder())

	// Rule 1 wins no matter what else the utterance mentions.
	for _, in := range []string{
		"what's on the menu?",
		"what do you offer today?",
		"do you have pizza?",
		"show me the vegetarian menu",
		"menu order pizza",
	} {
		assert.Equal(t, full, bot.Respond(in, assistant.NewOrder()), "input %q", in)
	}
}

func TestPlaceOrderSingleItem(t *testing.T) {
	bot := newAssistant()
	order := assistant.NewOrder()

	out := bot.Respond("I'd like to order a burger", order)

	assert.Equal(t, "I've added burger to your order. Would you like anything else?", out)
	assert.Equal(t, []string{"burger"}, order.Items())
}

func TestPlaceOrderAccumulates(t *testing.T) {
	bot := newAssistant()
	order := assistant.NewOrder()

	for i := 1; i <= 3; i++ {
		bot.Respond("order a burger", order)
		assert.Equal(t, i, order.Len())
	}
	assert.Equal(t, []string{"burger", "burger", "burger"}, order.Items())
}

func TestPlaceOrderMultipleItems(t *testing.T) {
	bot := newAssistant()
	order := assistant.NewOrder()

	out := bot.Respond("I'd like to order a burger and pizza", order)

	// Matched in catalogue enumeration order, not input order.
	assert.Equal(t, "I've added burger, pizza to your order. Would you like anything else?", out)
	assert.Equal(t, []string{"burger", "pizza"}, order.Items())
}

func TestPlaceOrderUnrecognized(t *testing.T) {
	bot := newAssistant()
	order := assistant.NewOrder()

	out := bot.Respond("order something weird", order)

	assert.Equal(t, "I couldn't identify what you'd like to order. Please specify items from our menu.", out)
	assert.Equal(t, 0, order.Len(), "unrecognized order must not mutate state")
}

func TestShowVegetarian(t *testing.T) {
	bot := newAssistant()

	out := bot.Respond("what are your vegetarian options?", assistant.NewOrder())

	require.True(t, strings.HasPrefix(out, "Vegetarian Options:\n"))
	for _, line := range []string{
		"Garlic Bread: Freshly baked bread with garlic butter and herbs",
		"Soup: Soup of the day served with crackers",
		"Pizza: 12-inch pizza with your choice of 3 toppings",
		"Pasta: Spaghetti with marinara sauce and garlic bread",
		"Cheesecake: New York style cheesecake with berry compote",
		"Ice_Cream: Three scoops of vanilla, chocolate, or strawberry",
	} {
		assert.Contains(t, out, line+"\n")
	}
	assert.NotContains(t, out, "Wings:")
	assert.NotContains(t, out, "Burger:")
}

func TestItemInfo(t *testing.T) {
	bot := newAssistant()

	out := bot.Respond("tell me about the pizza", assistant.NewOrder())

	assert.Equal(t, "Pizza\nPrice: $16.99\nDescription: 12-inch pizza with your choice of 3 toppings\nVegetarian: true", out)
}

func TestItemInfoNonVegetarian(t *testing.T) {
	bot := newAssistant()

	out := bot.Respond("tell me about the burger", assistant.NewOrder())

	assert.Equal(t, "Burger\nPrice: $14.99\nDescription: 1/3 lb beef patty with lettuce, tomato, onion, and special sauce\nVegetarian: false", out)
}

func TestItemInfoPluralIdentifierMiss(t *testing.T) {
	bot := newAssistant()

	// Plural folding turns "wings" into "wing", so the identifier never
	// matches the token sequence and the utterance falls through to help.
	// Known precision trade-off of substring matching over normalized tokens.
	out := bot.Respond("tell me about the wings", assistant.NewOrder())

	assert.Equal(t, assistant.HelpMessage, out)
}

func TestItemInfoFirstMatchWins(t *testing.T) {
	bot := newAssistant()

	// "garlic bread" precedes "pizza" in catalogue order.
	out := bot.Respond("garlic bread or pizza", assistant.NewOrder())

	assert.True(t, strings.HasPrefix(out, "Garlic Bread\n"), "got %q", out)
}

func TestHelpFallback(t *testing.T) {
	bot := newAssistant()

	for _, in := range []string{
		"hello, what a lovely day",
		"sing me a song",
		"???",
	} {
		assert.Equal(t, assistant.HelpMessage, bot.Respond(in, assistant.NewOrder()), "input %q", in)
	}
}

func TestRespondIsCaseInsensitive(t *testing.T) {
	bot := newAssistant()

	assert.Equal(t,
		bot.Respond("tell me about the pizza", assistant.NewOrder()),
		bot.Respond("TELL ME ABOUT THE PIZZA", assistant.NewOrder()))

	order := assistant.NewOrder()
	bot.Respond("ORDER A BURGER AND PIZZA", order)
	assert.Equal(t, []string{"burger", "pizza"}, order.Items())
}

func TestIsExitWord(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"quit", true},
		{"exit", true},
		{"bye", true},
		{"QUIT", true},
		{"Bye", true},
		{"  exit  ", true},
		{"goodbye", false},
		{"quit please", false},
		{"order a burger", false},
		{"", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, assistant.IsExitWord(tc.in), "IsExitWord(%q)", tc.in)
	}
}

func TestRespondIsDeterministic(t *testing.T) {
	bot := newAssistant()

	for _, in := range []string{
		"what's on the menu?",
		"tell me about the pizza",
		"what are your vegetarian options?",
		"no idea what to ask",
	} {
		order := assistant.NewOrder()
		first := bot.Respond(in, order)
		second := bot.Respond(in, order)
		assert.Equal(t, first, second, "input %q", in)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	bot := newAssistant()
	first := assistant.NewOrder()
	second := assistant.NewOrder()

	bot.Respond("order a burger", first)
	bot.Respond("order a pizza and some wings", second)

	assert.Equal(t, []string{"burger"}, first.Items())
	assert.Equal(t, []string{"wings", "pizza"}, second.Items())
}

func ExampleAssistant_Respond() {
	bot := assistant.New(menu.Default())
	order := assistant.NewOrder()

	fmt.Println(bot.Respond("I'd like to order a burger and pizza", order))
	// Output: I've added burger, pizza to your order. Would you like anything else?
}
