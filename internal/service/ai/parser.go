package ai

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kapu/moods-api/internal/constants"
	"github.com/kapu/moods-api/internal/domain"
	"github.com/kapu/moods-api/internal/util"
)

// Brace-delimited object span, dot matching newlines (compiled once at package init)
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseMoodReply turns a raw model reply into a MoodAnalysis through an
// ordered chain of parse attempts, each handing off to the next on failure:
//
//  1. strip a leading ```json marker and trailing fence, strict parse
//  2. scan the raw text for the first brace-delimited object, strict parse
//  3. guaranteed-success fallback carrying the truncated raw reply
//
// It never fails; malformed replies degrade to a neutral result.
func parseMoodReply(raw string) domain.MoodAnalysis {
	if analysis, ok := parseFenced(raw); ok {
		return analysis
	}
	if analysis, ok := parseEmbedded(raw); ok {
		return analysis
	}
	return domain.MoodAnalysis{
		Mood:       "neutral",
		Confidence: 0.7,
		Emotions:   []string{"mixed"},
		Analysis:   util.TruncateAlways(raw, constants.ContentLimits.DescriptionLength),
	}
}

func parseFenced(raw string) (domain.MoodAnalysis, bool) {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = clean[len("```json"):]
	}
	if strings.HasSuffix(clean, "```") {
		clean = clean[:len(clean)-len("```")]
	}
	return parseStrict(strings.TrimSpace(clean))
}

func parseEmbedded(raw string) (domain.MoodAnalysis, bool) {
	span := jsonObjectPattern.FindString(raw)
	if span == "" {
		return domain.MoodAnalysis{}, false
	}
	return parseStrict(span)
}

func parseStrict(s string) (domain.MoodAnalysis, bool) {
	var analysis domain.MoodAnalysis
	if err := json.Unmarshal([]byte(s), &analysis); err != nil {
		return domain.MoodAnalysis{}, false
	}
	if analysis.Mood == "" {
		return domain.MoodAnalysis{}, false
	}
	return analysis, true
}
