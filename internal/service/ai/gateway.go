package ai

import (
	"context"
	"fmt"

	"github.com/hliu742/minichat/internal/config"
	"github.com/hliu742/minichat/internal/model/chat"
)

// Generator produces the next assistant reply for a full ordered
// conversation. Implementations may be slow; callers pass a context but no
// timeout is imposed here.
type Generator interface {
	Generate(ctx context.Context, turns []chat.Turn) (string, error)
}

// New builds the generator selected by the configuration. It is called once
// at startup; a returned error leaves the service in echo mode rather than
// failing the process.
func New(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return newOpenAIGenerator(cfg)
	case config.ProviderArk:
		return newArkGenerator(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
}
