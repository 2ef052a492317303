package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/config"
	"github.com/kapu/moods-api/internal/constants"
	"github.com/kapu/moods-api/internal/server"
	"github.com/kapu/moods-api/internal/service/ai"
	"github.com/kapu/moods-api/internal/service/catalog"
	"github.com/kapu/moods-api/internal/service/recommend"
	"github.com/kapu/moods-api/internal/service/store"
	"github.com/kapu/moods-api/pkg/errors"
)

// Container bundles assembled services for constructing the runtime HTTP server.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Router   http.Handler
	Recorder *store.AsyncRecorder

	closers []func()
}

// NewServer instantiates the HTTP server using the pre-built dependency graph.
func (c *Container) NewServer() *http.Server {
	return server.NewServer(c.Router, c.Config.Server.Port)
}

// Close releases held resources in reverse acquisition order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles all infrastructure services and returns a container capable of
// serving requests. All heavy-weight initialization (DB/SDK clients) is performed
// here so that the handlers stay focused on request logic.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Mood classification
	var chat ai.ChatCompleter
	if oc := ai.NewOpenAIChat(cfg.OpenAI.APIKey, cfg.OpenAI.Model, logger); oc != nil {
		chat = oc
	}
	classifier := ai.NewClassifier(chat, logger)

	// Catalog clients. The TMDB client is shared by the movie and drama
	// adapters; the Google Books SDK is only constructed with a live
	// credential since demo mode never reaches the network.
	httpClient := &http.Client{Timeout: constants.APIConfig.CatalogTimeout}
	tmdbClient := catalog.NewTMDBClient(httpClient, cfg.TMDB.APIKey, logger)

	movies := catalog.NewMovieAdapter(tmdbClient, cfg.TMDB.APIKey, logger)
	dramas := catalog.NewDramaAdapter(tmdbClient, cfg.TMDB.APIKey, logger)

	var searcher catalog.VolumeSearcher
	if cfg.GoogleBooks.APIKey != "" && cfg.GoogleBooks.APIKey != constants.APIConfig.DemoAPIKey {
		gb, gbErr := catalog.NewGoogleBooksSearcher(ctx, cfg.GoogleBooks.APIKey)
		if gbErr != nil {
			return nil, errors.NewServiceError("failed to create google books client", "google_books", "build", gbErr)
		}
		searcher = gb
	}
	books := catalog.NewBookAdapter(searcher, cfg.GoogleBooks.APIKey, logger)

	aggregator := recommend.NewAggregator(movies, books, dramas, logger)

	// Persistence is optional: without a configured host, writes are dropped.
	var recorder store.Recorder = store.NoopRecorder{}
	if cfg.Postgres.Host != "" {
		pg, pgErr := store.NewPostgresRecorder(cfg.Postgres, logger)
		if pgErr != nil {
			return nil, errors.NewServiceError("failed to create postgres recorder", "postgres", "build", pgErr)
		}
		closers = append(closers, func() {
			_ = pg.Close()
		})
		recorder = pg
	}
	asyncRecorder := store.NewAsyncRecorder(recorder, logger)

	handler := server.NewHandler(cfg, classifier, aggregator, asyncRecorder, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Router:   server.NewRouter(handler, logger),
		Recorder: asyncRecorder,
		closers:  closers,
	}, nil
}
