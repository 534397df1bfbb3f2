package models

import "context"

// AIProvider is the capability interface for the external vision/language
// model calls. The scoring core never depends on a concrete provider — always
// inject this interface; tests substitute deterministic stubs.
type AIProvider interface {
	// ClassifyEquipment returns a raw category label for the image. The caller
	// is responsible for coercing unknown labels into the closed vocabulary.
	ClassifyEquipment(ctx context.Context, image []byte) (string, error)
	// DetectDamage returns damage labels visible in the image. Labels are
	// nominally drawn from the damage vocabulary but near-variants are allowed.
	DetectDamage(ctx context.Context, image []byte, category EquipmentCategory) ([]string, error)
	// ExtractFields asks the model to extract structured nameplate fields from
	// OCR text. The return value is freeform text expected to contain one JSON
	// object; callers must treat it as untrusted.
	ExtractFields(ctx context.Context, req ExtractionRequest) (string, error)
	// Name returns the provider identifier (e.g., "gemini", "openai").
	Name() string
}

// ExtractionRequest is the input to a structured-field extraction call.
type ExtractionRequest struct {
	OCRText         string
	Category        EquipmentCategory
	DetectedDamages []string
}
