package menu

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default returns the restaurant's fixed menu.
func Default() *Catalogue {
	catalogue, err := New([]Category{
		{
			Name: "appetizers",
			Items: []Item{
				{
					Name:        "garlic bread",
					Price:       price("5.99"),
					Description: "Freshly baked bread with garlic butter and herbs",
					Vegetarian:  true,
				},
				{
					Name:        "wings",
					Price:       price("10.99"),
					Description: "Crispy chicken wings with choice of sauce (buffalo, BBQ, or honey garlic)",
					Vegetarian:  false,
				},
				{
					Name:        "soup",
					Price:       price("6.99"),
					Description: "Soup of the day served with crackers",
					Vegetarian:  true,
				},
			},
		},
		{
			Name: "main_courses",
			Items: []Item{
				{
					Name:        "burger",
					Price:       price("14.99"),
					Description: "1/3 lb beef patty with lettuce, tomato, onion, and special sauce",
					Vegetarian:  false,
				},
				{
					Name:        "pizza",
					Price:       price("16.99"),
					Description: "12-inch pizza with your choice of 3 toppings",
					Vegetarian:  true,
				},
				{
					Name:        "pasta",
					Price:       price("13.99"),
					Description: "Spaghetti with marinara sauce and garlic bread",
					Vegetarian:  true,
				},
			},
		},
		{
			Name: "desserts",
			Items: []Item{
				{
					Name:        "cheesecake",
					Price:       price("7.99"),
					Description: "New York style cheesecake with berry compote",
					Vegetarian:  true,
				},
				{
					Name:        "ice_cream",
					Price:       price("5.99"),
					Description: "Three scoops of vanilla, chocolate, or strawberry",
					Vegetarian:  true,
				},
			},
		},
	})
	if err != nil {
		panic(err)
	}

	return catalogue
}
