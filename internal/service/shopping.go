package service

import "strings"

// shoppingCategories is the fixed bucket order; the first matching category
// wins, unmatched ingredients land in "others".
var shoppingCategories = []string{"produce", "dairy", "spices", "proteins", "grains"}

var categoryKeywords = map[string][]string{
	"produce":  {"tomato", "onion", "garlic", "carrot", "lettuce", "spinach", "broccoli", "pepper", "cucumber", "apple", "banana", "lemon", "lime", "potato", "bean", "pea", "corn", "mushroom", "herb", "basil", "parsley", "cilantro", "mint", "ginger", "chili"},
	"dairy":    {"milk", "cheese", "butter", "yogurt", "cream", "egg", "ghee", "paneer"},
	"spices":   {"salt", "pepper", "cumin", "turmeric", "paprika", "cinnamon", "nutmeg", "clove", "cardamom", "chili powder", "garam masala", "oregano", "thyme", "bay leaf"},
	"proteins": {"chicken", "beef", "pork", "fish", "salmon", "tuna", "shrimp", "tofu", "lentil", "chickpea", "bean", "meat"},
	"grains":   {"rice", "wheat", "flour", "bread", "pasta", "noodle", "oat", "quinoa", "barley"},
}

// CategorizeIngredient buckets a single ingredient string by
// case-insensitive keyword substring match.
func CategorizeIngredient(ingredient string) string {
	lower := strings.ToLower(ingredient)
	for _, category := range shoppingCategories {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return "others"
}

// BuildShoppingList collects the ingredients of all recipes into category
// buckets, deduplicating identical ingredient strings within each bucket.
func BuildShoppingList(ingredientLists [][]string) map[string][]string {
	buckets := map[string][]string{
		"produce":  {},
		"dairy":    {},
		"spices":   {},
		"proteins": {},
		"grains":   {},
		"others":   {},
	}
	seen := make(map[string]bool)

	for _, ingredients := range ingredientLists {
		for _, ingredient := range ingredients {
			category := CategorizeIngredient(ingredient)
			key := category + "\x00" + ingredient
			if seen[key] {
				continue
			}
			seen[key] = true
			buckets[category] = append(buckets[category], ingredient)
		}
	}

	return buckets
}
