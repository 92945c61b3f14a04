package service

import "fmt"

// facetOrDefault substitutes the sentinel used in the prompt when a facet
// was not selected.
func facetOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// BuildRecipePrompt renders the instruction string sent to the generative
// model for recipe generation. The string is opaque to the rest of the
// pipeline. Mood is required; the other facets default to "both"/"any".
func BuildRecipePrompt(mood, diet, timeFilter, difficulty, cuisine string) string {
	return fmt.Sprintf(`You are a helpful chef assistant. Output valid JSON only — nothing else. Return an array of exactly 3 recipe objects. Each object must have the keys: title (string), ingredients (array of strings), steps (array of strings), calories (string), difficulty (one of: beginner, medium, hard), prep_time_minutes (number), image (URL or empty string), youtube_query (a short query string to find one good YouTube video for this recipe), macros (object with protein, carbs, fat as numbers).

Input:
- mood: "%s"
- diet: "%s"
- time_filter: "%s"
- difficulty: "%s"
- cuisine: "%s"

Rules:
- Return JSON only (no explanation).
- Each ingredient should be concise (e.g., "2 eggs", "200g spaghetti").
- Steps should be short actionable steps.
- Provide realistic prep_time_minutes (integer) and approximate calories.
- youtube_query must be a short string suitable for a YouTube search API call.
- For diet: both=any, veg=vegetarian, non-veg=meat included, vegan=no animal products, keto=low carb, pescatarian=fish ok.
- Match the mood to recipe type (e.g., "cozy" → comfort food, "energetic" → quick & light, "happy" → colorful & fun).

Example output format:
[
  {
    "title": "Sunny Scramble",
    "ingredients": ["2 eggs", "1 tbsp butter", "salt to taste"],
    "steps": ["Beat eggs", "Melt butter in pan", "Cook eggs until set"],
    "calories": "320 kcal",
    "difficulty": "beginner",
    "prep_time_minutes": 10,
    "image": "https://example.com/img.png",
    "youtube_query": "scrambled eggs easy recipe",
    "macros": { "protein": 18, "carbs": 2, "fat": 25 }
  },
  ...
]

Now generate 3 recipes matching the input criteria.`,
		mood,
		facetOrDefault(diet, "both"),
		facetOrDefault(timeFilter, "any"),
		facetOrDefault(difficulty, "any"),
		facetOrDefault(cuisine, "any"),
	)
}

// BuildMealPlanPrompt renders the instruction string for weekly meal plan
// generation.
func BuildMealPlanPrompt(mood, diet string, days int) string {
	return fmt.Sprintf(`You are a meal planning assistant. Generate a %d-day meal plan in JSON format only. Return an array of day objects.

Each day object should have:
- day: "Monday", "Tuesday", etc.
- breakfast: { title, ingredients (array), prep_time_minutes }
- lunch: { title, ingredients (array), prep_time_minutes }
- dinner: { title, ingredients (array), prep_time_minutes }

Input:
- mood: "%s"
- diet: "%s"
- days: %d

Rules:
- Return JSON only (no explanation).
- Vary recipes across days.
- Match the mood to meal types.
- Keep prep times realistic.
- Ensure nutritional balance.

Example format:
[
  {
    "day": "Monday",
    "breakfast": { "title": "Oatmeal", "ingredients": ["1 cup oats", "2 cups milk"], "prep_time_minutes": 10 },
    "lunch": { "title": "Salad", "ingredients": ["lettuce", "tomato"], "prep_time_minutes": 15 },
    "dinner": { "title": "Pasta", "ingredients": ["pasta", "sauce"], "prep_time_minutes": 30 }
  },
  ...
]

Generate the meal plan now.`, days, mood, facetOrDefault(diet, "both"), days)
}
