// Package analysis implements the deterministic condition-assessment core:
// health scoring, report generation, fallback nameplate parsing and the
// auxiliary keyword analyzers. Everything in this package is pure computation
// over its inputs; no I/O, no clocks except where a timestamp is part of the
// output, and (outside the simulated trend) no randomness.
package analysis

import (
	"strings"

	"github.com/mvasanth/equipscan/internal/vocab"
	"github.com/mvasanth/equipscan/pkg/models"
)

// HealthScore computes the equipment health score in [0,100]. Deterministic:
// the same (record, damages) pair always yields the same score.
//
// Each damage label is matched against the penalty table in order and the
// first keyword that is a case-insensitive substring of the label applies its
// weight; a label matching no keyword contributes nothing. Damages apply
// independently — duplicates each subtract their own penalty, with no
// diminishing returns and no cap before the final clamp.
func HealthScore(record *models.EquipmentRecord, damages []string) int {
	score := 100

	for _, damage := range damages {
		label := strings.ToLower(damage)
		for _, p := range vocab.Penalties {
			if strings.Contains(label, p.Keyword) {
				score -= p.Weight
				break
			}
		}
	}

	condition := strings.ToLower(record.Condition)
	switch {
	case strings.Contains(condition, "poor"):
		score -= 20
	case strings.Contains(condition, "fair"):
		score -= 10
	}

	operational := strings.ToLower(record.OperationalStatus)
	switch {
	case strings.Contains(operational, "non-functional") || strings.Contains(operational, "malfunctioning"):
		score -= 30
	case strings.Contains(operational, "limited") || strings.Contains(operational, "intermittent"):
		score -= 15
	}

	// Age-related wear, only when an estimate was attached to the record.
	age := strings.ToLower(record.EstimatedAge)
	if strings.Contains(age, "old") && strings.Contains(record.EstimatedAge, "> 15") {
		score -= 10
	}

	return clampScore(score)
}

// clampScore bounds a score to [0,100]. The upper bound is unreachable from
// HealthScore (start 100, subtractions only) but guarded anyway.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
