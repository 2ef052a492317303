package ai

import (
	"strings"
	"testing"
)

func TestParseMoodReplyPlainJSON(t *testing.T) {
	reply := `{"mood": "happy", "confidence": 0.92, "emotions": ["joy", "gratitude"], "analysis": "warm memory of a family trip"}`

	got := parseMoodReply(reply)
	if got.Mood != "happy" {
		t.Fatalf("expected mood happy, got %q", got.Mood)
	}
	if got.Confidence != 0.92 {
		t.Fatalf("expected confidence 0.92, got %v", got.Confidence)
	}
	if len(got.Emotions) != 2 || got.Emotions[0] != "joy" {
		t.Fatalf("unexpected emotions: %v", got.Emotions)
	}
}

func TestParseMoodReplyStripsFencedCodeMarkers(t *testing.T) {
	reply := "```json\n{\"mood\": \"nostalgic\", \"confidence\": 0.8, \"emotions\": [\"longing\"], \"analysis\": \"looking back fondly\"}\n```"

	got := parseMoodReply(reply)
	if got.Mood != "nostalgic" {
		t.Fatalf("expected mood nostalgic, got %q", got.Mood)
	}
	if got.Analysis != "looking back fondly" {
		t.Fatalf("expected analysis preserved, got %q", got.Analysis)
	}
}

func TestParseMoodReplyExtractsEmbeddedObject(t *testing.T) {
	reply := `Sure! Here is my analysis:
{"mood": "anxious", "confidence": 0.7, "emotions": ["worry"], "analysis": "tense phrasing throughout"}
Let me know if you need more detail.`

	got := parseMoodReply(reply)
	if got.Mood != "anxious" {
		t.Fatalf("expected mood anxious, got %q", got.Mood)
	}
	if got.Emotions[0] != "worry" {
		t.Fatalf("expected embedded emotions preserved, got %v", got.Emotions)
	}
}

func TestParseMoodReplyFallsBackOnGarbage(t *testing.T) {
	reply := "I cannot really tell what this person is feeling."

	got := parseMoodReply(reply)
	if got.Mood != "neutral" {
		t.Fatalf("expected neutral fallback, got %q", got.Mood)
	}
	if got.Confidence != 0.7 {
		t.Fatalf("expected fallback confidence 0.7, got %v", got.Confidence)
	}
	if len(got.Emotions) != 1 || got.Emotions[0] != "mixed" {
		t.Fatalf("expected mixed emotions marker, got %v", got.Emotions)
	}
	if got.Analysis != reply+"..." {
		t.Fatalf("expected raw reply with ellipsis, got %q", got.Analysis)
	}
}

func TestParseMoodReplyFallbackTruncatesLongReplies(t *testing.T) {
	reply := strings.Repeat("a", 450)

	got := parseMoodReply(reply)
	want := strings.Repeat("a", 200) + "..."
	if got.Analysis != want {
		t.Fatalf("expected first 200 chars plus ellipsis, got %d chars", len(got.Analysis))
	}
}

func TestParseMoodReplyRejectsObjectWithoutMood(t *testing.T) {
	reply := `{"confidence": 0.9, "emotions": ["joy"], "analysis": "missing the label"}`

	got := parseMoodReply(reply)
	if got.Mood != "neutral" || got.Confidence != 0.7 {
		t.Fatalf("expected fallback for mood-less object, got %+v", got)
	}
}
