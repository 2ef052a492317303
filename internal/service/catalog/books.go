package catalog

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/api/books/v1"
	"google.golang.org/api/option"

	"github.com/kapu/moods-api/internal/constants"
	"github.com/kapu/moods-api/internal/domain"
	"github.com/kapu/moods-api/internal/mood"
	"github.com/kapu/moods-api/internal/util"
)

// VolumeSearcher is the slice of the Google Books API the adapter consumes.
type VolumeSearcher interface {
	Search(ctx context.Context, query, language string, maxResults int64) (*books.Volumes, error)
}

// GoogleBooksSearcher implements VolumeSearcher on the official books/v1 SDK.
type GoogleBooksSearcher struct {
	service *books.Service
}

func NewGoogleBooksSearcher(ctx context.Context, apiKey string) (*GoogleBooksSearcher, error) {
	service, err := books.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleBooksSearcher{service: service}, nil
}

func (s *GoogleBooksSearcher) Search(ctx context.Context, query, language string, maxResults int64) (*books.Volumes, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.APIConfig.CatalogTimeout)
	defer cancel()

	return s.service.Volumes.List(query).
		MaxResults(maxResults).
		OrderBy("relevance").
		LangRestrict(language).
		Context(ctx).
		Do()
}

// BookAdapter fetches volumes from Google Books by mood search terms.
type BookAdapter struct {
	searcher VolumeSearcher
	apiKey   string
	logger   *zap.Logger
}

func NewBookAdapter(searcher VolumeSearcher, apiKey string, logger *zap.Logger) *BookAdapter {
	return &BookAdapter{
		searcher: searcher,
		apiKey:   apiKey,
		logger:   logger,
	}
}

func (a *BookAdapter) ContentType() string {
	return domain.ContentTypeBook
}

func (a *BookAdapter) Fetch(ctx context.Context, moodLabel, language string) []domain.ContentItem {
	if demoMode(a.apiKey) {
		return a.demoItems(moodLabel, language)
	}

	data, err := a.searcher.Search(ctx, mood.BookSearchTerms(moodLabel), language, int64(constants.ContentLimits.MaxItemsPerAdapter))
	if err != nil {
		a.logger.Error("Google Books API error", zap.Error(err), zap.String("mood", moodLabel))
		return []domain.ContentItem{}
	}

	items := make([]domain.ContentItem, 0, len(data.Items))
	for _, volume := range data.Items {
		if volume == nil {
			continue
		}
		items = append(items, a.normalizeVolume(volume, language))
	}

	return items
}

func (a *BookAdapter) normalizeVolume(volume *books.Volume, language string) domain.ContentItem {
	info := volume.VolumeInfo
	if info == nil {
		info = &books.VolumeVolumeInfo{}
	}

	title := info.Title
	if title == "" {
		title = "Unknown Title"
	}

	description := info.Description
	if description == "" {
		description = "No description available"
	}

	var rating *float64
	if info.AverageRating > 0 {
		rating = floatPtr(info.AverageRating)
	}

	var imageURL *string
	if info.ImageLinks != nil && info.ImageLinks.Thumbnail != "" {
		imageURL = strPtr(info.ImageLinks.Thumbnail)
	}

	genre := info.Categories
	if genre == nil {
		genre = []string{}
	}

	return domain.ContentItem{
		ID:    volume.Id,
		Title: title,
		// Book descriptions always get the ellipsis, even when nothing
		// was cut off.
		Description: util.TruncateAlways(description, constants.ContentLimits.DescriptionLength),
		Rating:      rating,
		Year:        yearFromDate(info.PublishedDate),
		Genre:       genre,
		Language:    language,
		ImageURL:    imageURL,
		ContentType: domain.ContentTypeBook,
	}
}

func (a *BookAdapter) demoItems(moodLabel, language string) []domain.ContentItem {
	aspirational := util.Contains([]string{"hopeful", "inspired", "adventurous"}, moodLabel)

	item := domain.ContentItem{
		ID:          "demo_book_1",
		Title:       "1984",
		Description: "A dystopian masterpiece",
		Rating:      floatPtr(4.5),
		Year:        intPtr(1949),
		Genre:       []string{"Fiction", "Dystopian"},
		Language:    language,
		ImageURL:    strPtr("https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=450&fit=crop"),
		ContentType: domain.ContentTypeBook,
	}
	if aspirational {
		item.Title = "The Alchemist"
		item.Description = "A journey of self-discovery"
		item.Year = intPtr(1988)
		item.Genre = []string{"Fiction", "Philosophy"}
	}

	return []domain.ContentItem{item}
}
