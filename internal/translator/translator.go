package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wordvault/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are a helpful assistant that translates English words to Turkish and provides a short explanation, both in Turkish. Your response MUST strictly follow the format: "Translation: [translated word]
Explanation: [explanation]". Do not include any introductory or concluding remarks, or any other text outside this specific format.`

// Translator issues a single translation request to the chat-completion backend
type Translator interface {
	Translate(ctx context.Context, word, model, apiKey string) (string, error)
}

// OpenRouterTranslator talks to an OpenRouter-compatible chat-completion API.
// The client is built per call because the bearer key is per user.
type OpenRouterTranslator struct {
	baseURL string
	timeout time.Duration
}

// NewOpenRouterTranslator creates a translator against the given base URL
func NewOpenRouterTranslator(baseURL string, timeout time.Duration) *OpenRouterTranslator {
	return &OpenRouterTranslator{baseURL: baseURL, timeout: timeout}
}

// Translate requests the two-line translation/explanation reply for a word.
// The model id is passed through untouched. No retries: the caller surfaces
// the failure immediately.
func (t *OpenRouterTranslator) Translate(ctx context.Context, word, model, apiKey string) (string, error) {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = t.baseURL
	client := openai.NewClientWithConfig(cfg)

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Translate and explain %q in Turkish.", word)},
		},
	})
	if err != nil {
		return "", gatewayError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.ErrMalformedResponse
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// gatewayError maps client failures to the domain taxonomy, preserving the
// transport status and any server-supplied message
func gatewayError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &domain.GatewayError{Status: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := ""
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return &domain.GatewayError{Status: reqErr.HTTPStatusCode, Message: msg}
	}

	return &domain.GatewayError{Message: err.Error()}
}
