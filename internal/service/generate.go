package service

import (
	"context"

	"github.com/moodbite/backend/internal/types"
)

// GenerationFacets are the user-selected filter dimensions for one
// generation request. Mood is required; the rest are optional.
type GenerationFacets struct {
	Mood       string
	Diet       string
	Time       string
	Difficulty string
	Cuisine    string
}

// RecipeGenerator runs the prompt → generate → extract → enrich pipeline.
type RecipeGenerator struct {
	generator TextGenerator
	extractor *Extractor
	enricher  *Enricher
}

func NewRecipeGenerator(generator TextGenerator, extractor *Extractor, enricher *Enricher) *RecipeGenerator {
	return &RecipeGenerator{
		generator: generator,
		extractor: extractor,
		enricher:  enricher,
	}
}

// Generate produces enriched recipes for the given facets. It returns an
// *UpstreamError when the model call fails and a *ParseError when the
// response cannot be decoded; enrichment itself never fails.
func (g *RecipeGenerator) Generate(ctx context.Context, facets GenerationFacets) ([]types.EnrichedRecipe, error) {
	prompt := BuildRecipePrompt(facets.Mood, facets.Diet, facets.Time, facets.Difficulty, facets.Cuisine)

	raw, err := g.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	candidates, err := g.extractor.ExtractRecipes(raw)
	if err != nil {
		return nil, err
	}

	return g.enricher.Enrich(ctx, facets.Mood, candidates), nil
}
