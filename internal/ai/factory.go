package ai

import (
	"fmt"

	"github.com/mvasanth/equipscan/internal/ai/gemini"
	"github.com/mvasanth/equipscan/internal/ai/openai"
	"github.com/mvasanth/equipscan/internal/config"
	"github.com/mvasanth/equipscan/pkg/models"
)

// NewProvider constructs the appropriate AI provider based on config.
// Called once at server startup.
func NewProvider(cfg config.AIConfig) (models.AIProvider, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewProvider(cfg.Gemini), nil
	case "openai":
		return openai.NewProvider(cfg.OpenAI), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q: must be one of gemini, openai", cfg.Provider)
	}
}
