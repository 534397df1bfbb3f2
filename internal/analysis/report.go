package analysis

import (
	"strings"

	"github.com/mvasanth/equipscan/internal/vocab"
	"github.com/mvasanth/equipscan/pkg/models"
)

// GenerateReport derives the health assessment from a computed score. Status,
// risk level and recommended action are a step function of the score with
// strict >= boundaries, evaluated high to low.
func GenerateReport(record *models.EquipmentRecord, score int, damages []string) *models.HealthReport {
	var status, risk, action string
	switch {
	case score >= 80:
		status, risk, action = "Excellent", "Low", "Continue routine maintenance"
	case score >= 60:
		status, risk, action = "Good", "Low-Medium", "Schedule routine inspection"
	case score >= 40:
		status, risk, action = "Fair", "Medium", "Schedule maintenance soon"
	case score >= 20:
		status, risk, action = "Poor", "High", "Immediate attention required"
	default:
		status, risk, action = "Critical", "Critical", "Immediate shutdown and inspection"
	}

	return &models.HealthReport{
		Score:               score,
		Status:              status,
		RiskLevel:           risk,
		RecommendedAction:   action,
		SpecificIssues:      append([]string{}, damages...),
		Recommendations:     buildRecommendations(record, score, damages),
		NextMaintenanceDate: maintenanceSchedule(score),
		LifespanRemaining:   remainingLifespan(score),
	}
}

// buildRecommendations assembles the prioritized recommendation list:
// category-specific hints, then damage-specific advice, then a score-driven
// directive inserted at the front. The final dedup keeps the first occurrence
// of each entry so the priority insertion survives — the original system used
// unordered set semantics here, which could silently reorder or swallow the
// urgent directive.
func buildRecommendations(record *models.EquipmentRecord, score int, damages []string) []string {
	var recs []string

	categoryName := strings.ToLower(string(record.EquipmentType))
	for _, hint := range vocab.CategoryHints {
		for _, kw := range hint.Keywords {
			if strings.Contains(categoryName, kw) {
				recs = append(recs, hint.Advice...)
				break
			}
		}
	}

	for _, damage := range damages {
		label := strings.ToLower(damage)
		for _, rec := range vocab.DamageRecommendations {
			if strings.Contains(label, rec.Keyword) {
				recs = append(recs, rec.Advice)
				break
			}
		}
	}

	switch {
	case score < 60:
		recs = append([]string{"URGENT: Schedule professional technician inspection"}, recs...)
	case score < 80:
		recs = append([]string{"Schedule preventive maintenance within 30 days"}, recs...)
	}

	return dedupeStable(recs)
}

// dedupeStable removes duplicates while preserving first-occurrence order.
func dedupeStable(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// maintenanceSchedule uses a finer step function than the status tiers.
func maintenanceSchedule(score int) string {
	switch {
	case score < 40:
		return "Immediate - Within 1 week"
	case score < 60:
		return "Urgent - Within 2 weeks"
	case score < 80:
		return "Scheduled - Within 1 month"
	default:
		return "Routine - Within 6 months"
	}
}

// remainingLifespan is keyed on the same thresholds as the status tiers.
func remainingLifespan(score int) string {
	switch {
	case score >= 80:
		return "5+ years (excellent condition)"
	case score >= 60:
		return "2-5 years (good condition)"
	case score >= 40:
		return "1-2 years (needs attention)"
	case score >= 20:
		return "6-12 months (critical)"
	default:
		return "< 6 months (replacement recommended)"
	}
}
