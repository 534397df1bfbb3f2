package ai_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvasanth/equipscan/internal/ai"
	"github.com/mvasanth/equipscan/internal/config"
)

func TestNewProvider_Gemini(t *testing.T) {
	p, err := ai.NewProvider(config.AIConfig{
		Provider: "gemini",
		Gemini: config.GeminiConfig{
			APIKey:  "key",
			Model:   "gemini-2.5-flash",
			BaseURL: "https://generativelanguage.googleapis.com",
			Timeout: 30 * time.Second,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())
}

func TestNewProvider_OpenAI(t *testing.T) {
	p, err := ai.NewProvider(config.AIConfig{
		Provider: "openai",
		OpenAI: config.OpenAIConfig{
			APIKey:  "key",
			Model:   "gpt-4o",
			BaseURL: "https://api.openai.com",
			Timeout: 30 * time.Second,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := ai.NewProvider(config.AIConfig{Provider: "bard"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown AI provider")
	assert.Contains(t, err.Error(), "bard")
}

func TestNewProvider_Empty(t *testing.T) {
	_, err := ai.NewProvider(config.AIConfig{})
	require.Error(t, err)
}
