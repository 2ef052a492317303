package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/constants"
	"github.com/kapu/moods-api/pkg/errors"
)

// TMDBRequester issues one GET against the TMDB API. A single attempt per
// call: there is no retry policy anywhere in the recommendation pipeline.
type TMDBRequester interface {
	DoRequest(ctx context.Context, path string, params url.Values) ([]byte, error)
}

type TMDBClient struct {
	httpClient *http.Client
	apiKey     string
	logger     *zap.Logger
}

func NewTMDBClient(httpClient *http.Client, apiKey string, logger *zap.Logger) *TMDBClient {
	return &TMDBClient{
		httpClient: httpClient,
		apiKey:     apiKey,
		logger:     logger,
	}
}

func (c *TMDBClient) DoRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	reqURL := constants.APIConfig.TMDBBaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, errors.NewAPIError(fmt.Sprintf("TMDB error: %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"path": path,
		})
	}

	return body, nil
}

// tmdbDiscoverResponse covers both the movie and TV discover endpoints; the
// two differ only in the title and date field names.
type tmdbDiscoverResponse struct {
	Results []tmdbResult `json:"results"`
}

type tmdbResult struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	Overview     string   `json:"overview"`
	VoteAverage  *float64 `json:"vote_average"`
	ReleaseDate  string   `json:"release_date"`
	FirstAirDate string   `json:"first_air_date"`
	PosterPath   string   `json:"poster_path"`
}

// discoverParams builds the shared query for both TMDB discover endpoints.
func discoverParams(genreIDs, language string) url.Values {
	params := url.Values{}
	params.Set("with_genres", genreIDs)
	params.Set("language", language)
	params.Set("sort_by", "popularity.desc")
	params.Set("page", "1")
	return params
}

// yearFromDate parses the first 4 characters of a provider date field.
// Absent or unparseable dates yield nil.
func yearFromDate(date string) *int {
	if date == "" {
		return nil
	}
	if len(date) > 4 {
		date = date[:4]
	}
	year, err := strconv.Atoi(date)
	if err != nil {
		return nil
	}
	return intPtr(year)
}

// posterURL prefixes a TMDB poster path fragment with the image CDN base.
func posterURL(posterPath string) *string {
	if posterPath == "" {
		return nil
	}
	return strPtr(constants.APIConfig.TMDBImageBaseURL + posterPath)
}
