package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hliu742/minichat/internal/config"
	"github.com/hliu742/minichat/internal/model/chat"
)

// openaiGenerator talks to OpenAI or any endpoint speaking its chat
// completion API.
type openaiGenerator struct {
	client *openai.Client
	model  string
}

func newOpenAIGenerator(cfg config.AIConfig) (*openaiGenerator, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("openai credentials missing: set MODEL_NAME and OPENAI_API_KEY")
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &openaiGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

func (g *openaiGenerator) Generate(ctx context.Context, turns []chat.Turn) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("conversation is empty")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
