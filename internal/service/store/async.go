package store

import (
	"context"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/constants"
	"github.com/kapu/moods-api/internal/domain"
)

// AsyncRecorder runs each write on a detached, panic-safe goroutine so a
// slow or failing store never delays the HTTP response that triggered it.
// Writes get their own timeout instead of the request context, which is
// cancelled as soon as the response goes out.
type AsyncRecorder struct {
	inner  Recorder
	wg     conc.WaitGroup
	logger *zap.Logger
}

func NewAsyncRecorder(inner Recorder, logger *zap.Logger) *AsyncRecorder {
	return &AsyncRecorder{
		inner:  inner,
		logger: logger,
	}
}

func (ar *AsyncRecorder) RecordMoodAnalysis(_ context.Context, userID, memoryText string, result domain.MoodAnalysis) error {
	ar.wg.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.StoreConfig.WriteTimeout)
		defer cancel()

		if err := ar.inner.RecordMoodAnalysis(ctx, userID, memoryText, result); err != nil {
			ar.logger.Warn("Failed to record mood analysis",
				zap.Error(err),
				zap.String("user_id", userID),
			)
		}
	})
	return nil
}

func (ar *AsyncRecorder) RecordRecommendation(_ context.Context, req domain.RecommendationRequest, result domain.RecommendationResult) error {
	ar.wg.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.StoreConfig.WriteTimeout)
		defer cancel()

		if err := ar.inner.RecordRecommendation(ctx, req, result); err != nil {
			ar.logger.Warn("Failed to record recommendation query",
				zap.Error(err),
				zap.String("user_id", req.UserID),
			)
		}
	})
	return nil
}

// Drain waits for in-flight writes, recovering (and logging) any panic from
// a write goroutine. Called during graceful shutdown.
func (ar *AsyncRecorder) Drain() {
	if recovered := ar.wg.WaitAndRecover(); recovered != nil {
		ar.logger.Error("Recovered panic from history write", zap.Any("panic", recovered.Value))
	}
}
