package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/hliu742/minichat/internal/config"
	"github.com/hliu742/minichat/internal/model/chat"
)

const systemPrompt = "You are a friendly conversational assistant. Reply to the user's latest message in the context of the conversation so far. Keep replies short and natural."

// arkGenerator runs conversations through an Ark chat model behind a
// compiled eino chain.
type arkGenerator struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

func newArkGenerator(ctx context.Context, cfg config.AIConfig) (*arkGenerator, error) {
	chatModel, err := cfg.NewArkChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &arkGenerator{chain: runnable}, nil
}

// Generate invokes the chain with the latest user turn as the query and the
// preceding turns as history.
func (g *arkGenerator) Generate(ctx context.Context, turns []chat.Turn) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("conversation is empty")
	}

	last := turns[len(turns)-1]
	input := map[string]any{
		"system":  systemPrompt,
		"history": historyMessages(turns[:len(turns)-1]),
		"query":   last.Content,
	}

	response, err := g.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}

	log.Printf("[ai] generated reply, turns=%d length=%d", len(turns), len(response.Content))
	return response.Content, nil
}

func historyMessages(turns []chat.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(turn.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(turn.Content, nil))
		}
	}

	return history
}
