package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodbite/backend/internal/model"
	"github.com/moodbite/backend/internal/types"
)

const threeRecipeResponse = `Of course! Here are three cozy ideas for you:
[
  {
    "title": "Creamy Tomato Soup",
    "ingredients": ["4 tomatoes", "1 cup cream", "1 onion"],
    "steps": ["Roast tomatoes", "Blend with cream"],
    "calories": "280 kcal",
    "difficulty": "beginner",
    "prep_time_minutes": 25,
    "image": "",
    "youtube_query": "creamy tomato soup recipe",
    "macros": { "protein": 6, "carbs": 22, "fat": 18 }
  },
  {
    "title": "Baked Mac and Cheese",
    "ingredients": ["300g macaroni", "2 cups cheese", "1 cup milk"],
    "steps": ["Boil pasta", "Mix with cheese sauce", "Bake until golden"],
    "calories": "620 kcal",
    "difficulty": "medium",
    "prep_time_minutes": 40,
    "image": "",
    "youtube_query": "baked mac and cheese",
    "macros": { "protein": 24, "carbs": 58, "fat": 32 }
  },
  {
    "title": "Apple Crumble",
    "ingredients": ["3 apples", "1 cup oats", "2 tbsp butter"],
    "steps": ["Slice apples", "Top with crumble", "Bake"],
    "calories": "410 kcal",
    "difficulty": "beginner",
    "prep_time_minutes": 35,
    "image": "",
    "youtube_query": "easy apple crumble",
    "macros": { "protein": 4, "carbs": 64, "fat": 15 }
  }
]
Enjoy!`

func TestGenerate(t *testing.T) {
	t.Run("returns enriched recipes for a valid request", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{response: threeRecipeResponse})

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{"mood": "cozy"})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var recipes []types.EnrichedRecipe
		decodeBody(t, w, &recipes)
		require.Len(t, recipes, 3)
		for _, r := range recipes {
			assert.NotEmpty(t, r.ID)
			assert.NotEmpty(t, r.YouTube.URL)
			assert.Contains(t, r.MoodMatchedBy, "cozy")
		}
		assert.Equal(t, "Creamy Tomato Soup", recipes[0].Title)
	})

	t.Run("persists a log entry per request", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{response: threeRecipeResponse})

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{"mood": "cozy", "diet": "veg"})
		require.Equal(t, http.StatusOK, w.Code)

		var logs []model.RecipeLog
		require.NoError(t, env.DB.Find(&logs).Error)
		require.Len(t, logs, 1)
		assert.Equal(t, "cozy", logs[0].Mood)
		assert.Equal(t, "veg", logs[0].QueryBody["diet"])
		assert.Len(t, logs[0].RecipesReturned, 3)
	})

	t.Run("rejects a missing mood", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{response: threeRecipeResponse})

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Mood is required")
	})

	t.Run("rejects a blank mood", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{response: threeRecipeResponse})

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{"mood": "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("enforces the rate limit on the sixth request", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{response: threeRecipeResponse})

		for i := 0; i < 5; i++ {
			w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{"mood": "cozy"})
			require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		}

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{"mood": "cozy"})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Rate limit exceeded")
	})

	t.Run("invalid mood does not consume rate budget", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{response: threeRecipeResponse})

		for i := 0; i < 10; i++ {
			w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{})
			require.Equal(t, http.StatusBadRequest, w.Code)
		}

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{"mood": "cozy"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("maps generator failure to 500", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{err: errors.New("connection refused")})

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{"mood": "cozy"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to generate recipes")
	})

	t.Run("maps unparsable output to 500 with a debug excerpt", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{response: "Sorry, I cannot produce recipes right now."})

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{"mood": "cozy"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		decodeBody(t, w, &body)
		assert.Contains(t, body["error"], "Failed to parse")
		assert.Contains(t, body["debug"], "Sorry, I cannot")
	})

	t.Run("requires authentication", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{response: threeRecipeResponse})
		env.Token = ""

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/generate", map[string]string{"mood": "cozy"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestShoppingList(t *testing.T) {
	t.Run("requires a recipes array", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{})

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/shopping-list", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Recipes array is required")
	})

	t.Run("categorizes and dedupes ingredients", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{})

		w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/shopping-list", map[string]interface{}{
			"recipes": []map[string]interface{}{
				{"ingredients": []string{"tomato", "2 cups milk", "xyz123"}},
				{"ingredients": []string{"tomato", "1 cup rice"}},
			},
		})

		require.Equal(t, http.StatusOK, w.Code)
		var buckets map[string][]string
		decodeBody(t, w, &buckets)
		assert.Equal(t, []string{"tomato"}, buckets["produce"])
		assert.Equal(t, []string{"2 cups milk"}, buckets["dairy"])
		assert.Equal(t, []string{"1 cup rice"}, buckets["grains"])
		assert.Equal(t, []string{"xyz123"}, buckets["others"])
	})
}
