package analysis

import (
	"sort"

	"github.com/mvasanth/equipscan/pkg/models"
)

// HealthSummary aggregates a fleet of health reports.
type HealthSummary struct {
	HealthyCount        int     `json:"healthy_count"`
	NeedsAttentionCount int     `json:"needs_attention_count"`
	CriticalCount       int     `json:"critical_count"`
	AverageScore        float64 `json:"average_score"`
}

// CompareHealth ranks reports by score (descending, stable) and tallies the
// fleet into healthy (>=80), needs-attention (40-79) and critical (<40)
// buckets. The input slice is not modified.
func CompareHealth(reports []*models.HealthReport) ([]*models.HealthReport, HealthSummary) {
	if len(reports) == 0 {
		return []*models.HealthReport{}, HealthSummary{}
	}

	ranking := make([]*models.HealthReport, len(reports))
	copy(ranking, reports)
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})

	var summary HealthSummary
	total := 0
	for _, r := range reports {
		total += r.Score
		switch {
		case r.Score >= 80:
			summary.HealthyCount++
		case r.Score >= 40:
			summary.NeedsAttentionCount++
		default:
			summary.CriticalCount++
		}
	}
	summary.AverageScore = float64(total) / float64(len(reports))

	return ranking, summary
}
