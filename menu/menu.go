package menu

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

type Item struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Vegetarian  bool            `json:"vegetarian"`
}

// DisplayName renders the item identifier the way it appears in listings:
// every letter run capitalized, so "garlic bread" becomes "Garlic Bread"
// and "ice_cream" becomes "Ice_Cream".
func (i Item) DisplayName() string {
	return Title(i.Name)
}

// PriceTag formats the price with a currency symbol and two decimal places.
func (i Item) PriceTag() string {
	return "$" + i.Price.StringFixed(2)
}

type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Catalogue is the fixed menu: categories in serving order, items in the
// order they appear on the printed menu. Built once at startup and shared
// read-only; identifier uniqueness across categories is enforced because
// classification matches utterances against the flat identifier set.
type Catalogue struct {
	Categories []Category

	names []string
}

func New(categories []Category) (*Catalogue, error) {
	seen := make(map[string]struct{})
	var names []string

	for _, category := range categories {
		for _, item := range category.Items {
			if _, dup := seen[item.Name]; dup {
				return nil, fmt.Errorf("duplicate menu item %q", item.Name)
			}
			seen[item.Name] = struct{}{}
			names = append(names, item.Name)
		}
	}

	return &Catalogue{
		Categories: categories,
		names:      names,
	}, nil
}

// ItemNames returns every item identifier in catalogue enumeration order.
func (c *Catalogue) ItemNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Title upper-cases the first letter of every letter run and lower-cases
// the rest, matching the display convention of the menu listings.
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}

	return b.String()
}
