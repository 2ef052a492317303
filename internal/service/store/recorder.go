// Package store persists classification and recommendation history for
// later analytics. Recording is a capability the core depends on abstractly;
// a failing or absent store never affects the API response.
package store

import (
	"context"

	"github.com/kapu/moods-api/internal/domain"
)

// Recorder accepts insert-only history records keyed by an opaque user id.
type Recorder interface {
	RecordMoodAnalysis(ctx context.Context, userID, memoryText string, result domain.MoodAnalysis) error
	RecordRecommendation(ctx context.Context, req domain.RecommendationRequest, result domain.RecommendationResult) error
}

// NoopRecorder satisfies Recorder without a backing store. Used when no
// database is configured and in tests.
type NoopRecorder struct{}

func (NoopRecorder) RecordMoodAnalysis(context.Context, string, string, domain.MoodAnalysis) error {
	return nil
}

func (NoopRecorder) RecordRecommendation(context.Context, domain.RecommendationRequest, domain.RecommendationResult) error {
	return nil
}
