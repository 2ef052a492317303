package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"github.com/kapu/moods-api/internal/domain"
	"github.com/kapu/moods-api/internal/prompt"
)

// ChatCompleter is the narrow slice of a chat model the classifier needs:
// one system instruction, one user turn, free-text reply.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAIChat implements ChatCompleter on the OpenAI chat completions API.
type OpenAIChat struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIChat returns nil when no API key is configured; the classifier
// treats a nil completer as "model unavailable".
func NewOpenAIChat(apiKey, model string, logger *zap.Logger) *OpenAIChat {
	if apiKey == "" {
		return nil
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIChat{
		client: &client,
		model:  model,
		logger: logger,
	}
}

func (o *OpenAIChat) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenAI response")
	}

	text := resp.Choices[0].Message.Content
	o.logger.Debug("OpenAI response received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return text, nil
}

// Classifier infers a mood label from free text via a single LLM call.
// It never propagates transport or parse errors: every failure mode degrades
// to a neutral MoodAnalysis.
type Classifier struct {
	chat   ChatCompleter
	logger *zap.Logger
}

// NewClassifier accepts a nil chat completer, in which case every call
// returns the no-credential fallback without touching the network.
func NewClassifier(chat ChatCompleter, logger *zap.Logger) *Classifier {
	return &Classifier{
		chat:   chat,
		logger: logger,
	}
}

// Available reports whether a model backend is wired in.
func (c *Classifier) Available() bool {
	return c.chat != nil
}

// Classify issues exactly one model request per call; no retries. The call
// carries no explicit timeout (the transport default applies), unlike the
// catalog providers.
func (c *Classifier) Classify(ctx context.Context, memoryText string) domain.MoodAnalysis {
	if c.chat == nil {
		return domain.MoodAnalysis{
			Mood:       "neutral",
			Confidence: 0.5,
			Emotions:   []string{"neutral"},
			Analysis:   "Mood analysis unavailable - using fallback",
		}
	}

	reply, err := c.chat.Complete(ctx, prompt.MoodAnalysisSystemPrompt(), prompt.BuildMoodAnalysisMessage(memoryText))
	if err != nil {
		c.logger.Error("LLM analysis error", zap.Error(err))
		return domain.MoodAnalysis{
			Mood:       "neutral",
			Confidence: 0.5,
			Emotions:   []string{"neutral"},
			Analysis:   "Error in mood analysis",
		}
	}

	return parseMoodReply(reply)
}
