package types

// Macros represents the macronutrient breakdown of a recipe.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// RecipeCandidate is a single recipe as parsed out of the generative
// model's response. A candidate must carry at least a title and one
// ingredient to be considered well-formed.
type RecipeCandidate struct {
	Title           string   `json:"title"`
	Ingredients     []string `json:"ingredients"`
	Steps           []string `json:"steps"`
	Calories        string   `json:"calories"`
	Difficulty      string   `json:"difficulty"`
	PrepTimeMinutes int      `json:"prep_time_minutes"`
	Image           string   `json:"image"`
	YouTubeQuery    string   `json:"youtube_query"`
	Macros          Macros   `json:"macros"`
}

// Video is the video lookup result attached to an enriched recipe.
type Video struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Channel   string `json:"channel"`
}

// EnrichedRecipe is a RecipeCandidate after enrichment: it has an opaque
// identifier, a video block and a provenance string. Immutable once built.
type EnrichedRecipe struct {
	RecipeCandidate
	ID            string `json:"id"`
	YouTube       Video  `json:"youtube"`
	MoodMatchedBy string `json:"moodMatchedBy"`
}
