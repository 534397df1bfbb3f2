package mock_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvasanth/equipscan/internal/ai"
	"github.com/mvasanth/equipscan/internal/ai/mock"
	"github.com/mvasanth/equipscan/pkg/models"
)

func sampleExtraction() models.ExtractionRequest {
	return models.ExtractionRequest{
		OCRText:         "SIEMENS MODEL: X-100 SN: 98765 220V",
		Category:        models.CategoryTransformer,
		DetectedDamages: []string{"rust"},
	}
}

// --- NewMockProvider ---

func TestNewMockProvider_Name(t *testing.T) {
	p := mock.NewMockProvider()
	assert.Equal(t, "mock", p.Name())
}

func TestNewMockProvider_Classify(t *testing.T) {
	p := mock.NewMockProvider()
	label, err := p.ClassifyEquipment(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, string(models.CategoryUPSInverter), label)
}

func TestNewMockProvider_DetectDamage(t *testing.T) {
	p := mock.NewMockProvider()
	damages, err := p.DetectDamage(context.Background(), []byte("img"), models.CategoryUPSInverter)

	require.NoError(t, err)
	assert.Empty(t, damages)
}

func TestNewMockProvider_ExtractFields(t *testing.T) {
	p := mock.NewMockProvider()
	raw, err := p.ExtractFields(context.Background(), sampleExtraction())

	require.NoError(t, err)

	// Default response must decode into an EquipmentRecord.
	var record models.EquipmentRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	assert.Equal(t, "MockCorp", record.Manufacturer)
	assert.Equal(t, models.CategoryTransformer, record.EquipmentType)
	assert.Equal(t, models.ConfidenceHigh, record.Confidence)
}

// --- NewFailingProvider ---

func TestNewFailingProvider_AllMethods(t *testing.T) {
	p := mock.NewFailingProvider(ai.ErrProviderUnavailable)
	assert.Equal(t, "mock-failing", p.Name())

	_, err := p.ClassifyEquipment(context.Background(), []byte("img"))
	assert.ErrorIs(t, err, ai.ErrProviderUnavailable)

	_, err = p.DetectDamage(context.Background(), []byte("img"), models.CategoryOther)
	assert.ErrorIs(t, err, ai.ErrProviderUnavailable)

	_, err = p.ExtractFields(context.Background(), sampleExtraction())
	assert.ErrorIs(t, err, ai.ErrProviderUnavailable)
}

func TestNewFailingProvider_CustomError(t *testing.T) {
	customErr := errors.New("custom AI error")
	p := mock.NewFailingProvider(customErr)

	_, err := p.ClassifyEquipment(context.Background(), []byte("img"))
	assert.ErrorIs(t, err, customErr)
}

// --- NewTimeoutProvider ---

func TestNewTimeoutProvider_Classify(t *testing.T) {
	p := mock.NewTimeoutProvider()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.ClassifyEquipment(ctx, []byte("img"))
	assert.ErrorIs(t, err, ai.ErrInferenceTimeout)
}

func TestNewTimeoutProvider_ExtractFields(t *testing.T) {
	p := mock.NewTimeoutProvider()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.ExtractFields(ctx, sampleExtraction())
	assert.ErrorIs(t, err, ai.ErrInferenceTimeout)
}

// --- Sentinel errors ---

func TestSentinelErrors(t *testing.T) {
	assert.NotNil(t, ai.ErrProviderUnavailable)
	assert.NotNil(t, ai.ErrInferenceTimeout)
	assert.NotNil(t, ai.ErrInvalidResponse)

	// Ensure they are distinct
	assert.NotEqual(t, ai.ErrProviderUnavailable, ai.ErrInferenceTimeout)
	assert.NotEqual(t, ai.ErrInferenceTimeout, ai.ErrInvalidResponse)
}

// --- Zero-value MockProvider ---

func TestMockProvider_NilFuncs(t *testing.T) {
	p := &mock.MockProvider{Name_: "bare"}

	label, err := p.ClassifyEquipment(context.Background(), []byte("img"))
	assert.NoError(t, err)
	assert.Equal(t, "", label)

	damages, err := p.DetectDamage(context.Background(), []byte("img"), models.CategoryOther)
	assert.NoError(t, err)
	assert.Empty(t, damages)

	raw, err := p.ExtractFields(context.Background(), sampleExtraction())
	assert.NoError(t, err)
	assert.Equal(t, "", raw)
}

// --- Interface compliance ---

func TestMockProvider_ImplementsAIProvider(t *testing.T) {
	var _ models.AIProvider = mock.NewMockProvider()
	var _ models.AIProvider = mock.NewFailingProvider(nil)
	var _ models.AIProvider = mock.NewTimeoutProvider()
}
