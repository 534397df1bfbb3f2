package analysis

import (
	"strings"

	"github.com/mvasanth/equipscan/internal/vocab"
	"github.com/mvasanth/equipscan/pkg/models"
)

// EstimateAge guesses the equipment's design era from OCR keywords. Buckets
// are checked in fixed priority — modern beats intermediate beats old — so
// text mentioning both "LED" and "VACUUM TUBE" resolves modern. The returned
// indicators are the subset of the winning bucket actually present.
func EstimateAge(ocrText string) *models.AgeEstimate {
	upper := strings.ToUpper(ocrText)

	for _, bucket := range vocab.AgeBuckets {
		var found []string
		for _, indicator := range bucket.Indicators {
			if strings.Contains(upper, indicator) {
				found = append(found, indicator)
			}
		}
		if len(found) > 0 {
			return &models.AgeEstimate{
				EstimatedAge: bucket.Label,
				Confidence:   bucket.Confidence,
				Indicators:   found,
			}
		}
	}

	return &models.AgeEstimate{
		EstimatedAge: "Unknown",
		Confidence:   "none",
		Indicators:   []string{},
	}
}
