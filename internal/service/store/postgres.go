package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/config"
	"github.com/kapu/moods-api/internal/constants"
	"github.com/kapu/moods-api/internal/domain"
)

// PostgresRecorder stores history rows in two insert-only tables, the result
// payloads as jsonb.
type PostgresRecorder struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresRecorder(cfg config.PostgresConfig, logger *zap.Logger) (*PostgresRecorder, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), constants.StoreConfig.PingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	recorder := &PostgresRecorder{
		db:     db,
		logger: logger,
	}

	if err := recorder.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	logger.Info("PostgreSQL history store connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return recorder, nil
}

func (pr *PostgresRecorder) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS mood_analyses (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			memory_text TEXT NOT NULL,
			mood_result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS recommendation_queries (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			mood TEXT NOT NULL,
			content_types TEXT[] NOT NULL,
			languages TEXT[] NOT NULL,
			recommendations JSONB NOT NULL,
			total_count INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := pr.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (pr *PostgresRecorder) RecordMoodAnalysis(ctx context.Context, userID, memoryText string, result domain.MoodAnalysis) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode mood result: %w", err)
	}

	_, err = pr.db.ExecContext(ctx,
		`INSERT INTO mood_analyses (user_id, memory_text, mood_result) VALUES ($1, $2, $3)`,
		userID, memoryText, payload,
	)
	return err
}

func (pr *PostgresRecorder) RecordRecommendation(ctx context.Context, req domain.RecommendationRequest, result domain.RecommendationResult) error {
	payload, err := json.Marshal(result.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}

	_, err = pr.db.ExecContext(ctx,
		`INSERT INTO recommendation_queries (user_id, mood, content_types, languages, recommendations, total_count)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		req.UserID, req.Mood, pq.Array(req.ContentTypes), pq.Array(req.Languages), payload, result.TotalCount,
	)
	return err
}

func (pr *PostgresRecorder) Ping(ctx context.Context) error {
	return pr.db.PingContext(ctx)
}

func (pr *PostgresRecorder) Close() error {
	if pr.db != nil {
		return pr.db.Close()
	}
	return nil
}
