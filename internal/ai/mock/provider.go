// Package mock provides a configurable AIProvider for tests.
package mock

import (
	"context"

	"github.com/mvasanth/equipscan/internal/ai"
	"github.com/mvasanth/equipscan/pkg/models"
)

// MockProvider satisfies models.AIProvider for testing.
type MockProvider struct {
	Name_             string
	ClassifyFunc      func(ctx context.Context, image []byte) (string, error)
	DetectDamageFunc  func(ctx context.Context, image []byte, category models.EquipmentCategory) ([]string, error)
	ExtractFieldsFunc func(ctx context.Context, req models.ExtractionRequest) (string, error)
}

func (m *MockProvider) Name() string { return m.Name_ }

func (m *MockProvider) ClassifyEquipment(ctx context.Context, image []byte) (string, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, image)
	}
	return "", nil
}

func (m *MockProvider) DetectDamage(ctx context.Context, image []byte, category models.EquipmentCategory) ([]string, error) {
	if m.DetectDamageFunc != nil {
		return m.DetectDamageFunc(ctx, image, category)
	}
	return []string{}, nil
}

func (m *MockProvider) ExtractFields(ctx context.Context, req models.ExtractionRequest) (string, error) {
	if m.ExtractFieldsFunc != nil {
		return m.ExtractFieldsFunc(ctx, req)
	}
	return "", nil
}

// NewMockProvider returns a MockProvider with sensible default responses.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Name_: "mock",
		ClassifyFunc: func(_ context.Context, _ []byte) (string, error) {
			return string(models.CategoryUPSInverter), nil
		},
		DetectDamageFunc: func(_ context.Context, _ []byte, _ models.EquipmentCategory) ([]string, error) {
			return []string{}, nil
		},
		ExtractFieldsFunc: func(_ context.Context, req models.ExtractionRequest) (string, error) {
			return `{
    "equipment_type": "` + string(req.Category) + `",
    "manufacturer": "MockCorp",
    "model_number": "MOCK-100",
    "serial_number": "SN-0001",
    "specifications": {"voltage": "230V"},
    "condition": "good",
    "operational_status": "functional",
    "confidence": "high"
}`, nil
		},
	}
}

// NewFailingProvider returns a MockProvider that always returns the given error.
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{
		Name_: "mock-failing",
		ClassifyFunc: func(_ context.Context, _ []byte) (string, error) {
			return "", err
		},
		DetectDamageFunc: func(_ context.Context, _ []byte, _ models.EquipmentCategory) ([]string, error) {
			return nil, err
		},
		ExtractFieldsFunc: func(_ context.Context, _ models.ExtractionRequest) (string, error) {
			return "", err
		},
	}
}

// NewTimeoutProvider returns a MockProvider that blocks until context is cancelled.
func NewTimeoutProvider() *MockProvider {
	return &MockProvider{
		Name_: "mock-timeout",
		ClassifyFunc: func(ctx context.Context, _ []byte) (string, error) {
			<-ctx.Done()
			return "", ai.ErrInferenceTimeout
		},
		DetectDamageFunc: func(ctx context.Context, _ []byte, _ models.EquipmentCategory) ([]string, error) {
			<-ctx.Done()
			return nil, ai.ErrInferenceTimeout
		},
		ExtractFieldsFunc: func(ctx context.Context, _ models.ExtractionRequest) (string, error) {
			<-ctx.Done()
			return "", ai.ErrInferenceTimeout
		},
	}
}

// Compile-time check that MockProvider implements AIProvider.
var _ models.AIProvider = (*MockProvider)(nil)
