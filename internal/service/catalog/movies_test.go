package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/domain"
)

type fakeRequester struct {
	body  []byte
	err   error
	calls []string
}

func (f *fakeRequester) DoRequest(_ context.Context, path string, params url.Values) ([]byte, error) {
	f.calls = append(f.calls, path+"?"+params.Encode())
	return f.body, f.err
}

func TestMovieAdapterDemoModeSkipsNetwork(t *testing.T) {
	requester := &fakeRequester{}
	adapter := NewMovieAdapter(requester, "demo_key", zap.NewNop())

	items := adapter.Fetch(context.Background(), "happy", "en")
	if len(items) != 1 {
		t.Fatalf("expected exactly one demo item, got %d", len(items))
	}
	if items[0].Title != "The Pursuit of Happyness" {
		t.Fatalf("expected uplifting demo movie, got %q", items[0].Title)
	}
	if items[0].ContentType != domain.ContentTypeMovie {
		t.Fatalf("unexpected content type %q", items[0].ContentType)
	}
	if len(requester.calls) != 0 {
		t.Fatalf("demo mode must not issue network calls, got %v", requester.calls)
	}
}

func TestMovieAdapterDemoModeDefaultBranch(t *testing.T) {
	adapter := NewMovieAdapter(&fakeRequester{}, "", zap.NewNop())

	items := adapter.Fetch(context.Background(), "sad", "en")
	if len(items) != 1 || items[0].Title != "Inception" {
		t.Fatalf("expected Inception for non-uplifting moods, got %v", items)
	}
	if items[0].Year == nil || *items[0].Year != 2010 {
		t.Fatalf("unexpected demo year: %v", items[0].Year)
	}
}

func TestMovieAdapterNormalizesLiveResults(t *testing.T) {
	longOverview := strings.Repeat("x", 250)
	requester := &fakeRequester{
		body: []byte(fmt.Sprintf(`{"results": [
			{"id": 603, "title": "The Matrix", "overview": "%s", "vote_average": 8.2, "release_date": "1999-03-30", "poster_path": "/matrix.jpg"},
			{"id": 604, "title": "No Date", "overview": "short", "vote_average": 6.1},
			{"id": 605, "title": "A"}, {"id": 606, "title": "B"}, {"id": 607, "title": "C"}, {"id": 608, "title": "D"}
		]}`, longOverview)),
	}
	adapter := NewMovieAdapter(requester, "real-key", zap.NewNop())

	items := adapter.Fetch(context.Background(), "excited", "en")
	if len(items) != 5 {
		t.Fatalf("expected results capped at 5, got %d", len(items))
	}

	first := items[0]
	if first.ID != "603" {
		t.Fatalf("expected numeric id as string, got %q", first.ID)
	}
	if first.Description != strings.Repeat("x", 200)+"..." {
		t.Fatalf("expected 200-char truncation with ellipsis, got %d chars", len(first.Description))
	}
	if first.Rating == nil || *first.Rating != 8.2 {
		t.Fatalf("unexpected rating: %v", first.Rating)
	}
	if first.Year == nil || *first.Year != 1999 {
		t.Fatalf("unexpected year: %v", first.Year)
	}
	if first.ImageURL == nil || *first.ImageURL != "https://image.tmdb.org/t/p/w300/matrix.jpg" {
		t.Fatalf("unexpected image url: %v", first.ImageURL)
	}
	if len(first.Genre) != 0 {
		t.Fatalf("genre list must stay empty for discover results, got %v", first.Genre)
	}

	second := items[1]
	if second.Description != "short" {
		t.Fatalf("short overviews must not get an ellipsis, got %q", second.Description)
	}
	if second.Year != nil {
		t.Fatalf("missing release date must yield nil year, got %v", second.Year)
	}
	if second.ImageURL != nil {
		t.Fatalf("missing poster path must yield nil image url, got %v", second.ImageURL)
	}

	if len(requester.calls) != 1 {
		t.Fatalf("expected one request, got %d", len(requester.calls))
	}
	call := requester.calls[0]
	if !strings.HasPrefix(call, "/discover/movie?") {
		t.Fatalf("unexpected path: %s", call)
	}
	for _, fragment := range []string{"with_genres=28%2C12", "language=en", "sort_by=popularity.desc", "page=1"} {
		if !strings.Contains(call, fragment) {
			t.Fatalf("expected query to contain %s, got %s", fragment, call)
		}
	}
}

func TestMovieAdapterAbsorbsTransportErrors(t *testing.T) {
	requester := &fakeRequester{err: fmt.Errorf("dial timeout")}
	adapter := NewMovieAdapter(requester, "real-key", zap.NewNop())

	items := adapter.Fetch(context.Background(), "happy", "en")
	if len(items) != 0 {
		t.Fatalf("transport errors must yield an empty list, got %v", items)
	}
}

func TestMovieAdapterAbsorbsMalformedPayloads(t *testing.T) {
	requester := &fakeRequester{body: []byte("<html>rate limited</html>")}
	adapter := NewMovieAdapter(requester, "real-key", zap.NewNop())

	items := adapter.Fetch(context.Background(), "happy", "en")
	if len(items) != 0 {
		t.Fatalf("malformed payloads must yield an empty list, got %v", items)
	}
}

func TestMovieAdapterUnknownMoodUsesDefaultGenres(t *testing.T) {
	requester := &fakeRequester{body: []byte(`{"results": []}`)}
	adapter := NewMovieAdapter(requester, "real-key", zap.NewNop())

	adapter.Fetch(context.Background(), "bewildered", "en")
	if len(requester.calls) != 1 || !strings.Contains(requester.calls[0], "with_genres=18") {
		t.Fatalf("expected the sad/drama default genre, got %v", requester.calls)
	}
}
