package catalog

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/constants"
	"github.com/kapu/moods-api/internal/domain"
	"github.com/kapu/moods-api/internal/mood"
	"github.com/kapu/moods-api/internal/util"
)

// DramaAdapter fetches TV shows from the TMDB discover endpoint. Same
// provider as movies, but its own genre table and response field names.
type DramaAdapter struct {
	requester TMDBRequester
	apiKey    string
	logger    *zap.Logger
}

func NewDramaAdapter(requester TMDBRequester, apiKey string, logger *zap.Logger) *DramaAdapter {
	return &DramaAdapter{
		requester: requester,
		apiKey:    apiKey,
		logger:    logger,
	}
}

func (a *DramaAdapter) ContentType() string {
	return domain.ContentTypeDrama
}

func (a *DramaAdapter) Fetch(ctx context.Context, moodLabel, language string) []domain.ContentItem {
	if demoMode(a.apiKey) {
		return a.demoItems(moodLabel, language)
	}

	body, err := a.requester.DoRequest(ctx, "/discover/tv", discoverParams(mood.DramaGenres(moodLabel), language))
	if err != nil {
		a.logger.Error("TMDB TV API error", zap.Error(err), zap.String("mood", moodLabel))
		return []domain.ContentItem{}
	}

	var data tmdbDiscoverResponse
	if err := json.Unmarshal(body, &data); err != nil {
		a.logger.Error("TMDB TV payload malformed", zap.Error(err))
		return []domain.ContentItem{}
	}

	limit := util.Min(len(data.Results), constants.ContentLimits.MaxItemsPerAdapter)
	dramas := make([]domain.ContentItem, 0, limit)
	for _, item := range data.Results[:limit] {
		dramas = append(dramas, domain.ContentItem{
			ID:          strconv.FormatInt(item.ID, 10),
			Title:       item.Name,
			Description: util.TruncateString(item.Overview, constants.ContentLimits.DescriptionLength),
			Rating:      item.VoteAverage,
			Year:        yearFromDate(item.FirstAirDate),
			Genre:       []string{},
			Language:    language,
			ImageURL:    posterURL(item.PosterPath),
			ContentType: domain.ContentTypeDrama,
		})
	}

	return dramas
}

func (a *DramaAdapter) demoItems(moodLabel, language string) []domain.ContentItem {
	lighthearted := util.Contains([]string{"happy", "relaxed", "energetic"}, moodLabel)

	item := domain.ContentItem{
		ID:          "demo_drama_1",
		Title:       "Breaking Bad",
		Description: "A drama about transformation",
		Rating:      floatPtr(9.0),
		Year:        intPtr(2008),
		Genre:       []string{"Drama", "Crime"},
		Language:    language,
		ImageURL:    strPtr("https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?w=300&h=450&fit=crop"),
		ContentType: domain.ContentTypeDrama,
	}
	if lighthearted {
		item.Title = "Friends"
		item.Description = "A comedy about six friends"
		item.Year = intPtr(1994)
		item.Genre = []string{"Comedy"}
	}

	return []domain.ContentItem{item}
}
