package chat

import (
	"context"
	"fmt"
	"log"

	"github.com/hliu742/minichat/internal/model/chat"
	"github.com/hliu742/minichat/internal/service/ai"
	"github.com/hliu742/minichat/internal/service/history"
)

// echoFormat is the degraded-mode reply used when no model gateway is
// available. The wording is part of the public API.
const echoFormat = "Echo: %s (Conversational AI not loaded)"

// Service runs one chat exchange end to end: look up the caller's
// conversation, append the user turn, ask the generator for a reply, append
// it, and commit. A nil generator puts the service in a standing echo mode
// decided once at startup.
type Service struct {
	store     *history.Store
	generator ai.Generator
}

// NewService wires the conversation store to the model gateway. Pass a nil
// generator to run in echo mode.
func NewService(store *history.Store, generator ai.Generator) *Service {
	return &Service{store: store, generator: generator}
}

// Degraded reports whether the service is running without a model gateway.
func (s *Service) Degraded() bool {
	return s.generator == nil
}

// Exchange processes one user message and returns the assistant reply.
//
// The user turn, the gateway call, and the assistant turn form a single
// per-user critical section: concurrent exchanges for the same user are
// serialized, and a gateway failure leaves the stored conversation exactly
// as it was. An empty message is rejected before any state is read.
func (s *Service) Exchange(ctx context.Context, userID, message string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}

	if s.generator == nil {
		log.Printf("[chat] gateway unavailable, echoing for user=%s", userID)
		return fmt.Sprintf(echoFormat, message), nil
	}

	var reply string
	err := s.store.Update(ctx, userID, func(turns []chat.Turn) ([]chat.Turn, error) {
		turns = append(turns, chat.UserTurn(message))

		generated, err := s.generator.Generate(ctx, turns)
		if err != nil {
			return nil, &GenerationError{Err: err}
		}

		reply = generated
		return append(turns, chat.AssistantTurn(generated)), nil
	})
	if err != nil {
		log.Printf("[chat] exchange failed for user=%s: %v", userID, err)
		return "", err
	}

	return reply, nil
}

// Transcript returns a copy of the stored conversation for the user.
func (s *Service) Transcript(ctx context.Context, userID string) []chat.Turn {
	return s.store.Snapshot(ctx, userID)
}

// Reset discards the stored conversation for the user.
func (s *Service) Reset(ctx context.Context, userID string) {
	s.store.Reset(ctx, userID)
	log.Printf("[chat] conversation cleared for user=%s", userID)
}
