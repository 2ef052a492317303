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

// MovieAdapter fetches movies from the TMDB discover endpoint by mood genre.
type MovieAdapter struct {
	requester TMDBRequester
	apiKey    string
	logger    *zap.Logger
}

func NewMovieAdapter(requester TMDBRequester, apiKey string, logger *zap.Logger) *MovieAdapter {
	return &MovieAdapter{
		requester: requester,
		apiKey:    apiKey,
		logger:    logger,
	}
}

func (a *MovieAdapter) ContentType() string {
	return domain.ContentTypeMovie
}

func (a *MovieAdapter) Fetch(ctx context.Context, moodLabel, language string) []domain.ContentItem {
	if demoMode(a.apiKey) {
		return a.demoItems(moodLabel, language)
	}

	body, err := a.requester.DoRequest(ctx, "/discover/movie", discoverParams(mood.MovieGenres(moodLabel), language))
	if err != nil {
		a.logger.Error("TMDB API error", zap.Error(err), zap.String("mood", moodLabel))
		return []domain.ContentItem{}
	}

	var data tmdbDiscoverResponse
	if err := json.Unmarshal(body, &data); err != nil {
		a.logger.Error("TMDB payload malformed", zap.Error(err))
		return []domain.ContentItem{}
	}

	limit := util.Min(len(data.Results), constants.ContentLimits.MaxItemsPerAdapter)
	movies := make([]domain.ContentItem, 0, limit)
	for _, item := range data.Results[:limit] {
		movies = append(movies, domain.ContentItem{
			ID:          strconv.FormatInt(item.ID, 10),
			Title:       item.Title,
			Description: util.TruncateString(item.Overview, constants.ContentLimits.DescriptionLength),
			Rating:      item.VoteAverage,
			Year:        yearFromDate(item.ReleaseDate),
			Genre:       []string{}, // discover results carry numeric genre ids only
			Language:    language,
			ImageURL:    posterURL(item.PosterPath),
			ContentType: domain.ContentTypeMovie,
		})
	}

	return movies
}

// The demo branch keys off a narrow 3-mood subset instead of the full
// genre table.
func (a *MovieAdapter) demoItems(moodLabel, language string) []domain.ContentItem {
	uplifting := util.Contains([]string{"happy", "hopeful", "inspired"}, moodLabel)

	item := domain.ContentItem{
		ID:          "demo_movie_1",
		Title:       "Inception",
		Description: "A mind-bending thriller",
		Rating:      floatPtr(8.0),
		Year:        intPtr(2010),
		Genre:       []string{"Sci-Fi", "Thriller"},
		Language:    language,
		ImageURL:    strPtr("https://images.unsplash.com/photo-1489599162158-1f92b42d39d6?w=300&h=450&fit=crop"),
		ContentType: domain.ContentTypeMovie,
	}
	if uplifting {
		item.Title = "The Pursuit of Happyness"
		item.Description = "A touching story of perseverance"
		item.Year = intPtr(2006)
		item.Genre = []string{"Drama"}
	}

	return []domain.ContentItem{item}
}
