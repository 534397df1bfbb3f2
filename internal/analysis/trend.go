package analysis

import (
	"math/rand"

	"github.com/mvasanth/equipscan/pkg/models"
)

var trendMonths = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// SimulatedTrend fabricates twelve months of plausible health history ending
// at the current score, for demonstration charts. This is the one knowingly
// nondeterministic output in the package: no real history exists, callers
// must not treat the points as measurements, and tests only check bounds.
func SimulatedTrend(score int) []models.TrendPoint {
	base := score + 5 + rand.Intn(11)
	if base > 95 {
		base = 95
	}

	points := make([]models.TrendPoint, 0, len(trendMonths)+1)
	for i, month := range trendMonths {
		var s int
		if i < 9 {
			// Gradual decline from the healthier past.
			s = base - rand.Intn(6) - i
		} else {
			// Recent months hover around the current score.
			s = score + rand.Intn(7) - 3
		}
		if s < 10 {
			s = 10
		}
		if s > 100 {
			s = 100
		}
		points = append(points, models.TrendPoint{Label: month, Score: s})
	}

	return append(points, models.TrendPoint{Label: "Current", Score: score})
}
