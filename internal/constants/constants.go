package constants

import "time"

var AppInfo = struct {
	Name    string
	Version string
	Message string
}{
	Name:    "Moods",
	Version: "2.0",
	Message: "Moods - AI-Powered Mood-Based Recommendation API",
}

var APIConfig = struct {
	TMDBBaseURL      string
	TMDBImageBaseURL string
	CatalogTimeout   time.Duration
	DemoAPIKey       string
}{
	TMDBBaseURL:      "https://api.themoviedb.org/3",
	TMDBImageBaseURL: "https://image.tmdb.org/t/p/w300",
	CatalogTimeout:   10 * time.Second,
	DemoAPIKey:       "demo_key",
}

var ContentLimits = struct {
	MaxItemsPerAdapter int
	DescriptionLength  int
}{
	MaxItemsPerAdapter: 5,
	DescriptionLength:  200,
}

var ServerConfig = struct {
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}{
	ShutdownTimeout: 10 * time.Second,
	ReadTimeout:     15 * time.Second,
	// Catalog fan-out is sequential: up to 9 provider calls at 10s each can
	// legitimately take a while, so the write timeout stays generous.
	WriteTimeout: 120 * time.Second,
}

var StoreConfig = struct {
	WriteTimeout time.Duration
	PingTimeout  time.Duration
}{
	WriteTimeout: 5 * time.Second,
	PingTimeout:  5 * time.Second,
}
