package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/moodbite/backend/internal/types"
)

// Enricher attaches a video lookup, an opaque identifier and a provenance
// string to each extracted recipe candidate.
type Enricher struct {
	videos VideoSearcher
}

func NewEnricher(videos VideoSearcher) *Enricher {
	return &Enricher{videos: videos}
}

// Enrich runs one video lookup per candidate concurrently and joins before
// returning. A failed lookup is absorbed with a deterministic fallback
// record, so enrichment never fails the batch. Output order matches input
// order.
func (e *Enricher) Enrich(ctx context.Context, mood string, candidates []types.RecipeCandidate) []types.EnrichedRecipe {
	enriched := make([]types.EnrichedRecipe, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		g.Go(func() error {
			video, err := e.videos.Search(ctx, candidate.YouTubeQuery)
			if err != nil {
				log.Printf("video search failed for %q: %v", candidate.YouTubeQuery, err)
				video = FallbackVideo(candidate.YouTubeQuery)
			}

			enriched[i] = types.EnrichedRecipe{
				RecipeCandidate: candidate,
				ID:              uuid.NewString(),
				YouTube:         video,
				MoodMatchedBy:   fmt.Sprintf("Generated for mood: %s", mood),
			}
			return nil
		})
	}

	// Lookup failures are absorbed above, so the group never errors.
	_ = g.Wait()

	return enriched
}
