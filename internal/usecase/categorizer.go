package usecase

import "strings"

// CategoryDefinition pairs a category name with the keywords that identify
// it. Definitions are evaluated in slice order and the first hit wins, so
// the order below is part of the contract: more specific categories sit
// above broader ones.
type CategoryDefinition struct {
	Name     string
	Keywords []string
}

// CategoryOther is the fallback when no category keyword matches.
const CategoryOther = "other"

var categoryDefinitions = []CategoryDefinition{
	{Name: "bakery", Keywords: []string{
		"challah", "bread", "bagel", "roll", "pitta", "wrap", "cake", "rugelach", "babka", "matzo", "cracker",
	}},
	{Name: "dairy", Keywords: []string{
		"milk", "cheese", "butter", "yogurt", "cream", "egg", "margarine",
	}},
	{Name: "meat", Keywords: []string{
		"chicken", "beef", "lamb", "turkey", "mince", "schnitzel", "salami", "sausage", "brisket",
	}},
	{Name: "fish", Keywords: []string{
		"salmon", "tuna", "cod", "herring", "gefilte",
	}},
	{Name: "produce", Keywords: []string{
		"apple", "banana", "orange", "lemon", "grape", "strawberry", "tomato", "cucumber",
		"pepper", "onion", "potato", "carrot", "lettuce", "avocado", "mushroom", "broccoli",
	}},
	{Name: "pantry", Keywords: []string{
		"rice", "pasta", "spaghetti", "noodle", "flour", "sugar", "oil", "sauce", "ketchup",
		"mayonnaise", "hummus", "tahini", "cereal", "bean", "lentil", "chickpea", "soup", "honey",
	}},
	{Name: "drinks", Keywords: []string{
		"juice", "water", "cola", "lemonade", "wine", "squash", "tea", "coffee",
	}},
	{Name: "frozen", Keywords: []string{
		"frozen", "ice cream", "pizza",
	}},
	{Name: "household", Keywords: []string{
		"candle", "napkin", "tissue", "foil", "washing", "soap",
	}},
}

// CategoryOf assigns a coarse category to a phrase by substring membership
// in either direction: the keyword inside the phrase, or the phrase inside
// the keyword. Returns CategoryOther when nothing matches. Used only to
// boost same-category similarity, never as a primary match signal.
func CategoryOf(phrase string) string {
	if phrase == "" {
		return CategoryOther
	}
	for _, def := range categoryDefinitions {
		for _, keyword := range def.Keywords {
			if strings.Contains(phrase, keyword) || strings.Contains(keyword, phrase) {
				return def.Name
			}
		}
	}
	return CategoryOther
}
