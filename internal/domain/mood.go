package domain

// MoodLabels is the closed set of mood categories the classifier is
// instructed to choose from. Values outside this set still flow through the
// system; translation tables fall back to their default entry for them.
var MoodLabels = []string{
	"happy", "sad", "excited", "romantic", "nostalgic",
	"adventurous", "relaxed", "anxious", "angry", "hopeful",
	"melancholic", "energetic", "peaceful", "confused", "inspired",
}

// MoodAnalysis is the structured result of one classification request.
// Immutable once produced.
type MoodAnalysis struct {
	Mood       string   `json:"mood"`
	Confidence float64  `json:"confidence"`
	Emotions   []string `json:"emotions"`
	Analysis   string   `json:"analysis"`
}
