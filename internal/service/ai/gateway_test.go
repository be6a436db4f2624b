package ai

import (
	"context"
	"testing"

	"github.com/hliu742/minichat/internal/config"
	"github.com/hliu742/minichat/internal/model/chat"
)

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), config.AIConfig{Provider: "bedrock"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewOpenAIRequiresCredentials(t *testing.T) {
	_, err := New(context.Background(), config.AIConfig{
		Provider: config.ProviderOpenAI,
		Model:    "gpt-4o-mini",
	})
	if err == nil {
		t.Fatal("expected error without an API key")
	}
}

func TestHistoryMessagesMapsRoles(t *testing.T) {
	turns := []chat.Turn{
		chat.UserTurn("hi"),
		chat.AssistantTurn("hello"),
		chat.UserTurn("how are you"),
	}

	history := historyMessages(turns)
	if len(history) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(history))
	}
	if history[0].Content != "hi" || history[1].Content != "hello" {
		t.Fatalf("unexpected mapping: %+v", history)
	}
}

func TestHistoryMessagesEmpty(t *testing.T) {
	if got := historyMessages(nil); got != nil {
		t.Fatalf("expected nil history, got %v", got)
	}
}
