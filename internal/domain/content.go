package domain

// Content types as they appear inside a ContentItem.
const (
	ContentTypeMovie = "movie"
	ContentTypeBook  = "book"
	ContentTypeDrama = "drama"
)

// Content type keys as they appear in a RecommendationRequest.
const (
	RequestTypeMovies = "movies"
	RequestTypeBooks  = "books"
	RequestTypeDramas = "dramas"
)

// ContentItem is one normalized recommendation, regardless of which catalog
// produced it. Read-only once constructed.
type ContentItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating"`
	Year        *int     `json:"year"`
	Genre       []string `json:"genre"`
	Language    string   `json:"language"`
	ImageURL    *string  `json:"image_url"`
	ContentType string   `json:"content_type"`
}

type RecommendationRequest struct {
	Mood         string   `json:"mood"`
	ContentTypes []string `json:"content_types"`
	Languages    []string `json:"languages"`
	UserID       string   `json:"user_id,omitempty"`
}

type RecommendationResult struct {
	Mood            string        `json:"mood"`
	Recommendations []ContentItem `json:"recommendations"`
	TotalCount      int           `json:"total_count"`
}
