package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/config"
	"github.com/kapu/moods-api/internal/constants"
	"github.com/kapu/moods-api/internal/domain"
	"github.com/kapu/moods-api/internal/service/ai"
	"github.com/kapu/moods-api/internal/service/recommend"
	"github.com/kapu/moods-api/internal/service/store"
	"github.com/kapu/moods-api/pkg/errors"
)

var (
	defaultContentTypes = []string{domain.RequestTypeMovies, domain.RequestTypeBooks, domain.RequestTypeDramas}
	defaultLanguages    = []string{"en"}
)

type Handler struct {
	cfg        *config.Config
	classifier *ai.Classifier
	aggregator *recommend.Aggregator
	recorder   store.Recorder
	logger     *zap.Logger
}

func NewHandler(cfg *config.Config, classifier *ai.Classifier, aggregator *recommend.Aggregator, recorder store.Recorder, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		classifier: classifier,
		aggregator: aggregator,
		recorder:   recorder,
		logger:     logger,
	}
}

type moodAnalysisRequest struct {
	MemoryText string `json:"memory_text"`
	UserID     string `json:"user_id,omitempty"`
}

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": constants.AppInfo.Message,
		"status":  "running",
		"version": constants.AppInfo.Version,
	})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"app":           constants.AppInfo.Name,
		"version":       constants.AppInfo.Version,
		"llm_available": h.classifier.Available(),
		"apis_configured": map[string]bool{
			"tmdb":         liveCredential(h.cfg.TMDB.APIKey),
			"google_books": liveCredential(h.cfg.GoogleBooks.APIKey),
		},
	})
}

func (h *Handler) analyzeMood(w http.ResponseWriter, r *http.Request) {
	defer h.recoverTo(w, "Mood analysis failed")

	var req moodAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	result := h.classifier.Classify(r.Context(), req.MemoryText)

	if req.UserID != "" {
		if err := h.recorder.RecordMoodAnalysis(r.Context(), req.UserID, req.MemoryText, result); err != nil {
			// Recording is best-effort; the analysis still goes out.
			h.logger.Warn("Mood analysis record failed", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	defer h.recoverTo(w, "Recommendation failed")

	var req domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if req.Mood == "" {
		verr := errors.NewValidationError("Field required: mood", "mood", req.Mood)
		writeDetail(w, verr.StatusCode, verr.Message)
		return
	}
	if req.ContentTypes == nil {
		req.ContentTypes = defaultContentTypes
	}
	if req.Languages == nil {
		req.Languages = defaultLanguages
	}

	result := h.aggregator.Aggregate(r.Context(), req)

	if req.UserID != "" {
		if err := h.recorder.RecordRecommendation(r.Context(), req, result); err != nil {
			h.logger.Warn("Recommendation record failed", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// recoverTo converts a panic inside a handler into that endpoint's 500
// envelope. Deferred directly in the handler so it fires before the router's
// generic recoverer.
func (h *Handler) recoverTo(w http.ResponseWriter, prefix string) {
	if rvr := recover(); rvr != nil {
		h.logger.Error("Handler fault", zap.String("operation", prefix), zap.Any("panic", rvr))
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("%s: %v", prefix, rvr))
	}
}

func liveCredential(apiKey string) bool {
	return apiKey != "" && apiKey != constants.APIConfig.DemoAPIKey
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeDetail emits the {"detail": ...} error envelope used by both
// client-error and internal-fault responses.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
