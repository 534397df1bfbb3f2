// Package pipeline orchestrates one image through the full analysis chain:
// validation, classification, damage detection, OCR, field parsing, scoring
// and report generation.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mvasanth/equipscan/internal/analysis"
	"github.com/mvasanth/equipscan/internal/imaging"
	"github.com/mvasanth/equipscan/internal/ocr"
	"github.com/mvasanth/equipscan/internal/parser"
	"github.com/mvasanth/equipscan/pkg/models"
)

// Service runs the analysis pipeline. Stages degrade independently: a failed
// classification falls back to the Other category, a failed damage scan to an
// empty damage list. OCR failure aborts the analysis since every downstream
// stage consumes its text.
type Service struct {
	provider models.AIProvider
	ocr      ocr.Client
	parser   *parser.Parser
	timeout  time.Duration
}

// NewService wires the pipeline stages together. timeout bounds each
// individual AI call, not the pipeline as a whole.
func NewService(provider models.AIProvider, ocrClient ocr.Client, timeout time.Duration) *Service {
	return &Service{
		provider: provider,
		ocr:      ocrClient,
		parser:   parser.New(provider, timeout),
		timeout:  timeout,
	}
}

// Analyze runs the full pipeline over one image and returns the assembled
// result.
func (s *Service) Analyze(ctx context.Context, image []byte) (*models.AnalysisResult, error) {
	meta, err := imaging.Inspect(image)
	if err != nil {
		return nil, err
	}

	category := s.classify(ctx, image)
	damages := s.detectDamage(ctx, image, category)

	text, err := s.extractText(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	record := s.parser.Parse(ctx, text, category, damages)

	score := analysis.HealthScore(record, damages)
	report := analysis.GenerateReport(record, score, damages)

	return &models.AnalysisResult{
		ID:              uuid.New(),
		Record:          record,
		HealthScore:     score,
		DetectedDamages: damages,
		Report:          report,
		Compliance:      analysis.AnalyzeCompliance(text),
		Age:             analysis.EstimateAge(text),
		Plan:            analysis.BuildMaintenancePlan(record, score, damages),
		Trend:           analysis.SimulatedTrend(score),
		Image:           &meta,
		Provider:        s.provider.Name(),
		AnalyzedAt:      time.Now().UTC(),
	}, nil
}

// classify asks the provider for the equipment category. Any failure, or a
// label outside the known set, resolves to Other so the pipeline can proceed.
func (s *Service) classify(ctx context.Context, image []byte) models.EquipmentCategory {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	label, err := s.provider.ClassifyEquipment(callCtx, image)
	if err != nil {
		slog.Warn("equipment classification failed", "error", err, "provider", s.provider.Name())
		return models.CategoryOther
	}

	label, _, _ = strings.Cut(strings.TrimSpace(label), "\n")
	return models.ParseCategory(label)
}

// detectDamage asks the provider for visible damage. Failure means no damage
// information, not a failed analysis.
func (s *Service) detectDamage(ctx context.Context, image []byte, category models.EquipmentCategory) []string {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	damages, err := s.provider.DetectDamage(callCtx, image, category)
	if err != nil {
		slog.Warn("damage detection failed", "error", err, "provider", s.provider.Name())
		return []string{}
	}
	if damages == nil {
		return []string{}
	}
	return damages
}

func (s *Service) extractText(ctx context.Context, image []byte) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.ocr.ExtractText(callCtx, image)
}
