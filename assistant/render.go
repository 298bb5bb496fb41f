package assistant

import (
	"fmt"
	"strings"
)

func (a *Assistant) showMenu() string {
	var b strings.Builder

	b.WriteString("=== MENU ===\n")
	for _, category := range a.catalogue.Categories {
		b.WriteString("\n" + strings.ToUpper(category.Name) + "\n")
		for _, item := range category.Items {
			b.WriteString(fmt.Sprintf("%s: %s\n", item.DisplayName(), item.PriceTag()))
			b.WriteString("  " + item.Description + "\n")
		}
	}

	return b.String()
}

// placeOrder scans the raw lower-cased utterance (not the token sequence,
// which lemmatization may have altered) for catalogue identifiers. Matches
// are collected in catalogue enumeration order, all appended in one turn.
// With no match the order is left untouched.
func (a *Assistant) placeOrder(lowered string, order *Order) string {
	var matched []string
	for _, name := range a.itemNames {
		if strings.Contains(lowered, name) {
			matched = append(matched, name)
		}
	}

	if len(matched) == 0 {
		return clarifyOrder
	}

	order.Add(matched...)
	return fmt.Sprintf("I've added %s to your order. Would you like anything else?", strings.Join(matched, ", "))
}

func (a *Assistant) vegetarianOptions() string {
	var b strings.Builder

	b.WriteString("Vegetarian Options:\n")
	for _, category := range a.catalogue.Categories {
		for _, item := range category.Items {
			if item.Vegetarian {
				b.WriteString(fmt.Sprintf("%s: %s\n", item.DisplayName(), item.Description))
			}
		}
	}

	return b.String()
}

// itemInfo returns the first item, in catalogue enumeration order, whose
// identifier occurs in the utterance. First match is the tie-break when the
// text mentions several items.
func (a *Assistant) itemInfo(lowered string) string {
	for _, category := range a.catalogue.Categories {
		for _, item := range category.Items {
			if strings.Contains(lowered, item.Name) {
				return fmt.Sprintf("%s\nPrice: %s\nDescription: %s\nVegetarian: %t",
					item.DisplayName(), item.PriceTag(), item.Description, item.Vegetarian)
			}
		}
	}

	return itemNotFound
}
