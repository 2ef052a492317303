// Package recommend fans a recommendation request out across the requested
// content types and languages and concatenates the adapter results.
package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/domain"
	"github.com/kapu/moods-api/internal/service/catalog"
)

type Aggregator struct {
	adapters map[string]catalog.Adapter
	logger   *zap.Logger
}

// NewAggregator wires the three catalogs under their request-type keys.
func NewAggregator(movies, books, dramas catalog.Adapter, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		adapters: map[string]catalog.Adapter{
			domain.RequestTypeMovies: movies,
			domain.RequestTypeBooks:  books,
			domain.RequestTypeDramas: dramas,
		},
		logger: logger,
	}
}

// Aggregate iterates content types in request order, languages in request
// order within each, and appends adapter results in adapter order. The
// fan-out stays sequential so result ordering always equals iteration
// order regardless of provider latency.
//
// Unrecognized content types are skipped silently; duplicates in the request
// each trigger their own adapter call.
func (a *Aggregator) Aggregate(ctx context.Context, req domain.RecommendationRequest) domain.RecommendationResult {
	recommendations := make([]domain.ContentItem, 0)

	for _, contentType := range req.ContentTypes {
		adapter, ok := a.adapters[contentType]
		if !ok {
			a.logger.Debug("Skipping unrecognized content type", zap.String("content_type", contentType))
			continue
		}
		for _, language := range req.Languages {
			items := adapter.Fetch(ctx, req.Mood, shortLanguage(language))
			recommendations = append(recommendations, items...)
		}
	}

	return domain.RecommendationResult{
		Mood:            req.Mood,
		Recommendations: recommendations,
		TotalCount:      len(recommendations),
	}
}

// shortLanguage truncates a locale code to its 2-letter language part.
func shortLanguage(language string) string {
	if len(language) > 2 {
		return language[:2]
	}
	return language
}
