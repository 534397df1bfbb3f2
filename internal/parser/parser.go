// Package parser turns raw OCR text into a structured EquipmentRecord. The
// primary path delegates to the AI provider; any failure there falls back to
// the deterministic regex parser. Unparseable AI output is never surfaced to
// the caller as an error.
package parser

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mvasanth/equipscan/internal/analysis"
	"github.com/mvasanth/equipscan/pkg/jsonx"
	"github.com/mvasanth/equipscan/pkg/models"
)

// Parser extracts structured equipment fields from OCR text.
type Parser struct {
	provider models.AIProvider
	timeout  time.Duration
}

// New creates a Parser. A nil provider is allowed and routes every parse
// through the regex fallback.
func New(provider models.AIProvider, timeout time.Duration) *Parser {
	return &Parser{provider: provider, timeout: timeout}
}

// Parse produces the EquipmentRecord for one analysis. Whatever the
// extraction path returns, the caller-supplied category and damage list are
// authoritative and overwrite the extraction's values, and the verbatim OCR
// text is attached. Additional spec fields found by the regex scanner fill in
// anything the primary path left empty.
func (p *Parser) Parse(ctx context.Context, rawText string, category models.EquipmentCategory, damages []string) *models.EquipmentRecord {
	record := p.aiParse(ctx, rawText, category, damages)
	if record == nil {
		record = analysis.BasicParse(rawText)
	}

	record.EquipmentType = category
	record.DetectedDamages = append([]string{}, damages...)
	record.ExtractedText = rawText

	mergeSpecs(&record.Specifications, analysis.ExtractAdditionalSpecs(rawText))

	return record
}

// aiParse runs the AI extraction path. Returns nil on any failure — provider
// error, no balanced JSON object in the response, or a decode error — which
// sends control to the fallback.
func (p *Parser) aiParse(ctx context.Context, rawText string, category models.EquipmentCategory, damages []string) *models.EquipmentRecord {
	if p.provider == nil {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.provider.ExtractFields(callCtx, models.ExtractionRequest{
		OCRText:         rawText,
		Category:        category,
		DetectedDamages: damages,
	})
	if err != nil {
		slog.Warn("ai field extraction failed, using fallback parser", "error", err, "provider", p.provider.Name())
		return nil
	}

	obj, ok := jsonx.ExtractObject(raw)
	if !ok {
		slog.Warn("no JSON object in ai extraction response, using fallback parser", "provider", p.provider.Name())
		return nil
	}

	var record models.EquipmentRecord
	if err := json.Unmarshal([]byte(obj), &record); err != nil {
		slog.Warn("decoding ai extraction response failed, using fallback parser", "error", err)
		return nil
	}

	if record.Confidence == "" {
		record.Confidence = models.ConfidenceMedium
	}

	return &record
}

// mergeSpecs copies fields from extra into specs where specs has no value.
func mergeSpecs(specs *models.Specifications, extra models.Specifications) {
	if specs.Voltage == "" {
		specs.Voltage = extra.Voltage
	}
	if specs.Current == "" {
		specs.Current = extra.Current
	}
	if specs.Frequency == "" {
		specs.Frequency = extra.Frequency
	}
	if specs.TemperatureRange == "" {
		specs.TemperatureRange = extra.TemperatureRange
	}
	if specs.PowerRating == "" {
		specs.PowerRating = extra.PowerRating
	}
}
