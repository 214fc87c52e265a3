package translation

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OpenAITranslator asks a chat model for the English name of a compound.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

var _ Translator = (*OpenAITranslator)(nil)

func NewOpenAITranslator(config OpenAIConfig) *OpenAITranslator {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}

	model := config.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You translate chemical substance names into the English name used by PubChem. Respond with only the English name, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("client.CreateChatCompletion > %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyTranslation
	}
	return resp.Choices[0].Message.Content, nil
}
