package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/domain"
)

type capturingRecorder struct {
	mu       sync.Mutex
	analyses []string
	queries  []string
	err      error
}

func (c *capturingRecorder) RecordMoodAnalysis(_ context.Context, userID, memoryText string, _ domain.MoodAnalysis) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analyses = append(c.analyses, userID+":"+memoryText)
	return c.err
}

func (c *capturingRecorder) RecordRecommendation(_ context.Context, req domain.RecommendationRequest, _ domain.RecommendationResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries = append(c.queries, req.UserID+":"+req.Mood)
	return c.err
}

func TestAsyncRecorderNeverReturnsWriteErrors(t *testing.T) {
	inner := &capturingRecorder{err: fmt.Errorf("connection refused")}
	recorder := NewAsyncRecorder(inner, zap.NewNop())

	if err := recorder.RecordMoodAnalysis(context.Background(), "user-1", "a memory", domain.MoodAnalysis{Mood: "happy"}); err != nil {
		t.Fatalf("async record must not surface errors, got %v", err)
	}
	if err := recorder.RecordRecommendation(context.Background(), domain.RecommendationRequest{UserID: "user-1", Mood: "sad"}, domain.RecommendationResult{}); err != nil {
		t.Fatalf("async record must not surface errors, got %v", err)
	}

	recorder.Drain()

	inner.mu.Lock()
	defer inner.mu.Unlock()
	if len(inner.analyses) != 1 || inner.analyses[0] != "user-1:a memory" {
		t.Fatalf("expected analysis write to reach the store, got %v", inner.analyses)
	}
	if len(inner.queries) != 1 || inner.queries[0] != "user-1:sad" {
		t.Fatalf("expected query write to reach the store, got %v", inner.queries)
	}
}

func TestAsyncRecorderDrainRecoversPanics(t *testing.T) {
	recorder := NewAsyncRecorder(panickyRecorder{}, zap.NewNop())

	_ = recorder.RecordMoodAnalysis(context.Background(), "user-1", "text", domain.MoodAnalysis{})

	// Must not re-panic.
	recorder.Drain()
}

type panickyRecorder struct{}

func (panickyRecorder) RecordMoodAnalysis(context.Context, string, string, domain.MoodAnalysis) error {
	panic("store exploded")
}

func (panickyRecorder) RecordRecommendation(context.Context, domain.RecommendationRequest, domain.RecommendationResult) error {
	panic("store exploded")
}
