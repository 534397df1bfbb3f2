// Package gemini implements models.AIProvider against the Google Generative
// Language API.
package gemini

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

// Provider implements models.AIProvider using Gemini vision models.
type Provider struct {
	cfg    config.GeminiConfig
	client *http.Client
}

func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *Provider) Name() string { return "gemini" }

func (p *Provider) ClassifyEquipment(ctx context.Context, image []byte) (string, error) {
	text, err := p.generate(ctx, prompt.Classification(), image)
	if err != nil {
		return "", err
	}
	// The model is asked for the bare category name; take the first line in
	// case it elaborates anyway.
	label, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return label, nil
}

func (p *Provider) DetectDamage(ctx context.Context, image []byte, category models.EquipmentCategory) ([]string, error) {
	text, err := p.generate(ctx, prompt.DamageDetection(category), image)
	if err != nil {
		return nil, err
	}
	return parseDamageList(text), nil
}

func (p *Provider) ExtractFields(ctx context.Context, req models.ExtractionRequest) (string, error) {
	return p.generate(ctx, prompt.FieldExtraction(req), nil)
}

// parseDamageList pulls the JSON array out of the response text. Responses
// without a decodable array count as "no damage found", matching how the
// detector's failure mode is defined: garbage in, empty list out.
func parseDamageList(text string) []string {
	arr, ok := jsonx.ExtractArray(text)
	if !ok {
		return []string{}
	}
	var damages []string
	if err := json.Unmarshal([]byte(arr), &damages); err != nil {
		return []string{}
	}
	return damages
}

// generate calls the generateContent endpoint with a text prompt and an
// optional inline image, returning the concatenated candidate text.
func (p *Provider) generate(ctx context.Context, promptText string, image []byte) (string, error) {
	parts := []part{{Text: promptText}}
	if image != nil {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: "image/jpeg",
			Data:     base64.StdEncoding.EncodeToString(image),
		}})
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: parts}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.cfg.BaseURL, p.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decoding gemini response: %w", err)
	}

	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, pt := range genResp.Candidates[0].Content.Parts {
		b.WriteString(pt.Text)
	}
	return b.String(), nil
}

// --- Generative Language API types ---

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// Compile-time check that Provider implements AIProvider.
var _ models.AIProvider = (*Provider)(nil)
