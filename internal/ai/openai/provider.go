// Package openai implements models.AIProvider against the OpenAI
// chat-completions API using vision-capable models.
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mvasanth/equipscan/internal/ai/prompt"
	"github.com/mvasanth/equipscan/internal/config"
	"github.com/mvasanth/equipscan/pkg/jsonx"
	"github.com/mvasanth/equipscan/pkg/models"
)

// Provider implements models.AIProvider using OpenAI.
type Provider struct {
	cfg    config.OpenAIConfig
	client *http.Client
}

func NewProvider(cfg config.OpenAIConfig) *Provider {
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *Provider) Name() string { return "openai" }

func (p *Provider) ClassifyEquipment(ctx context.Context, image []byte) (string, error) {
	text, err := p.complete(ctx, prompt.Classification(), image)
	if err != nil {
		return "", err
	}
	label, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return label, nil
}

func (p *Provider) DetectDamage(ctx context.Context, image []byte, category models.EquipmentCategory) ([]string, error) {
	text, err := p.complete(ctx, prompt.DamageDetection(category), image)
	if err != nil {
		return nil, err
	}
	arr, ok := jsonx.ExtractArray(text)
	if !ok {
		return []string{}, nil
	}
	var damages []string
	if err := json.Unmarshal([]byte(arr), &damages); err != nil {
		return []string{}, nil
	}
	return damages, nil
}

func (p *Provider) ExtractFields(ctx context.Context, req models.ExtractionRequest) (string, error) {
	return p.complete(ctx, prompt.FieldExtraction(req), nil)
}

// complete sends a single-turn chat completion. Images ride along as a data
// URL in an image_url content part.
func (p *Provider) complete(ctx context.Context, promptText string, image []byte) (string, error) {
	parts := []contentPart{{Type: "text", Text: promptText}}
	if image != nil {
		parts = append(parts, contentPart{
			Type: "image_url",
			ImageURL: &imageURL{
				URL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image),
			},
		})
	}

	body, err := json.Marshal(chatRequest{
		Model:    p.cfg.Model,
		Messages: []message{{Role: "user", Content: parts}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	u := p.cfg.BaseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decoding openai response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// --- chat-completions API types ---

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message responseMessage `json:"message"`
}

type responseMessage struct {
	Content string `json:"content"`
}

// Compile-time check that Provider implements AIProvider.
var _ models.AIProvider = (*Provider)(nil)
