package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestAPIErrorCarriesStatusAndContext(t *testing.T) {
	err := NewAPIError("TMDB error: 503", 503, map[string]any{"path": "/discover/movie"})

	if err.Code != CodeAPIError {
		t.Fatalf("unexpected code %q", err.Code)
	}
	if err.StatusCode != 503 {
		t.Fatalf("unexpected status %d", err.StatusCode)
	}
	if err.Error() != "TMDB error: 503" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Context["path"] != "/discover/movie" {
		t.Fatalf("unexpected context %v", err.Context)
	}
}

func TestValidationErrorDefaultsToBadRequest(t *testing.T) {
	err := NewValidationError("Field required: mood", "mood", "")

	if err.Code != CodeValidation || err.StatusCode != 400 {
		t.Fatalf("unexpected code/status: %q/%d", err.Code, err.StatusCode)
	}
	if err.Field != "mood" {
		t.Fatalf("unexpected field %q", err.Field)
	}
	if err.Context["field"] != "mood" {
		t.Fatalf("field missing from context: %v", err.Context)
	}
}

func TestServiceErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewServiceError("failed to create postgres recorder", "postgres", "build", cause)

	if err.Service != "postgres" || err.Operation != "build" {
		t.Fatalf("unexpected service/operation: %q/%q", err.Service, err.Operation)
	}
	if !stderrors.Is(err, cause) {
		t.Fatalf("expected cause to survive unwrapping")
	}
	want := "failed to create postgres recorder: dial tcp: connection refused"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
