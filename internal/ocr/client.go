// Package ocr extracts printed text from equipment images via the Google
// Cloud Vision API.
package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Sentinel errors for Vision client failures.
var (
	ErrVisionUnreachable = errors.New("vision api unreachable")
	ErrVisionAPIError    = errors.New("vision api error")
	ErrVisionTimeout     = errors.New("vision api timeout")
)

// Client is the interface for OCR text extraction.
type Client interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// GoogleVision implements Client using the Cloud Vision images:annotate API.
type GoogleVision struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGoogleVision creates a new Vision OCR client.
func NewGoogleVision(baseURL, apiKey string, timeout time.Duration) *GoogleVision {
	return &GoogleVision{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// ExtractText runs TEXT_DETECTION on the image and returns the full text
// block. An image with no readable text yields an empty string, not an error.
func (c *GoogleVision) ExtractText(ctx context.Context, image []byte) (string, error) {
	body, err := json.Marshal(annotateRequest{
		Requests: []annotateImageRequest{
			{
				Image:    imageContent{Content: base64.StdEncoding.EncodeToString(image)},
				Features: []feature{{Type: "TEXT_DETECTION"}},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	u := fmt.Sprintf("%s/v1/images:annotate?key=%s", c.baseURL, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrVisionAPIError, resp.StatusCode)
	}

	var visionResp annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&visionResp); err != nil {
		return "", fmt.Errorf("decoding vision response: %w", err)
	}

	if len(visionResp.Responses) == 0 {
		return "", nil
	}

	r := visionResp.Responses[0]
	if r.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrVisionAPIError, r.Error.Message)
	}
	if len(r.TextAnnotations) == 0 {
		return "", nil
	}

	// The first annotation is the full text block; the rest are per-word.
	return r.TextAnnotations[0].Description, nil
}

// classifyError maps transport-level errors to sentinel errors.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrVisionTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", ErrVisionTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrVisionUnreachable, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", ErrVisionUnreachable, err)
	}

	return fmt.Errorf("%w: %v", ErrVisionUnreachable, err)
}

// --- Vision API types ---

type annotateRequest struct {
	Requests []annotateImageRequest `json:"requests"`
}

type annotateImageRequest struct {
	Image    imageContent `json:"image"`
	Features []feature    `json:"features"`
}

type imageContent struct {
	Content string `json:"content"`
}

type feature struct {
	Type string `json:"type"`
}

type annotateResponse struct {
	Responses []imageResponse `json:"responses"`
}

type imageResponse struct {
	TextAnnotations []textAnnotation `json:"textAnnotations"`
	Error           *apiError        `json:"error,omitempty"`
}

type textAnnotation struct {
	Description string `json:"description"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Compile-time check that GoogleVision implements Client.
var _ Client = (*GoogleVision)(nil)
