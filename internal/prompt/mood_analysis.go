package prompt

import (
	"fmt"
	"strings"

	"github.com/kapu/moods-api/internal/domain"
)

// MoodAnalysisSystemPrompt builds the system instruction that constrains the
// model reply to the structured mood-analysis JSON shape.
func MoodAnalysisSystemPrompt() string {
	return fmt.Sprintf(`You are an expert emotion analyst. Analyze the given text and determine the primary mood and emotions.

Return your analysis in this exact JSON format:
{
    "mood": "one of: %s",
    "confidence": 0.0-1.0,
    "emotions": ["list", "of", "detected", "emotions"],
    "analysis": "brief explanation of the mood and why"
}

Focus on the emotional tone, context, and underlying feelings in the text.`,
		strings.Join(domain.MoodLabels, ", "))
}

// BuildMoodAnalysisMessage wraps the user's memory text into the single user
// turn sent alongside the system instruction.
func BuildMoodAnalysisMessage(memoryText string) string {
	return fmt.Sprintf("Analyze the mood and emotions in this memory/text: %s", memoryText)
}
