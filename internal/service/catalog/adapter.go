// Package catalog turns a (mood, language) pair into normalized content
// items from one external catalog per adapter. Each adapter degrades to a
// single static demo item when its provider credential is absent or set to
// the demo sentinel, and absorbs every upstream failure into an empty list.
package catalog

import (
	"context"

	"github.com/kapu/moods-api/internal/constants"
	"github.com/kapu/moods-api/internal/domain"
)

// Adapter is the uniform contract shared by the movie, book and drama
// catalogs. Fetch returns at most constants.ContentLimits.MaxItemsPerAdapter
// items; upstream failures of any kind yield an empty slice, never an error.
type Adapter interface {
	ContentType() string
	Fetch(ctx context.Context, mood, language string) []domain.ContentItem
}

// demoMode reports whether a provider credential selects the static demo
// path instead of a live query.
func demoMode(apiKey string) bool {
	return apiKey == "" || apiKey == constants.APIConfig.DemoAPIKey
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
