// Package mood holds the per-provider translation tables that turn an
// abstract mood label into each catalog's genre or search vocabulary.
//
// Each provider owns an independent table with its own default entry; the
// movie and TV tables map the same mood to different genre codes.
// All tables are static and read-only after process start.
package mood

// TMDB genre codes, comma-joined the way their discover endpoint expects.
var movieGenres = map[string]string{
	"happy":       "35,10751", // Comedy, Family
	"sad":         "18",       // Drama
	"excited":     "28,12",    // Action, Adventure
	"romantic":    "10749",    // Romance
	"nostalgic":   "18,36",    // Drama, History
	"adventurous": "12,28",    // Adventure, Action
	"relaxed":     "35,10770", // Comedy, TV Movie
	"anxious":     "53,27",    // Thriller, Horror
	"energetic":   "28,878",   // Action, Science Fiction
	"peaceful":    "99,10751", // Documentary, Family
}

// TV genre ids differ from the movie ones (TMDB uses a separate taxonomy,
// e.g. 10759 Action & Adventure exists only for TV).
var dramaGenres = map[string]string{
	"happy":       "35,10751", // Comedy, Family
	"sad":         "18",       // Drama
	"excited":     "10759,80", // Action & Adventure, Crime
	"romantic":    "10749",    // Romance
	"nostalgic":   "18,36",    // Drama, History
	"adventurous": "10759",    // Action & Adventure
	"relaxed":     "35",       // Comedy
	"anxious":     "9648,80",  // Mystery, Crime
	"energetic":   "10759",    // Action & Adventure
	"peaceful":    "99",       // Documentary
}

var bookSearchTerms = map[string]string{
	"happy":       "comedy inspiration",
	"sad":         "drama emotional",
	"excited":     "adventure thriller",
	"romantic":    "romance love",
	"nostalgic":   "historical memoir",
	"adventurous": "adventure travel",
	"relaxed":     "poetry meditation",
	"anxious":     "mystery psychological",
	"energetic":   "action adventure",
	"peaceful":    "nature mindfulness",
}

const (
	defaultGenre      = "18" // Drama, the catch-all bucket
	defaultSearchTerm = "fiction"
)

// MovieGenres returns the TMDB movie genre codes for a mood, falling back to
// the drama bucket for any unmapped label.
func MovieGenres(label string) string {
	if genres, ok := movieGenres[label]; ok {
		return genres
	}
	return defaultGenre
}

// DramaGenres returns the TMDB TV genre codes for a mood, falling back to
// the drama bucket for any unmapped label.
func DramaGenres(label string) string {
	if genres, ok := dramaGenres[label]; ok {
		return genres
	}
	return defaultGenre
}

// BookSearchTerms returns the Google Books search query for a mood, falling
// back to a plain fiction search for any unmapped label.
func BookSearchTerms(label string) string {
	if term, ok := bookSearchTerms[label]; ok {
		return term
	}
	return defaultSearchTerm
}
