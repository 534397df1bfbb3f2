package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateAge_Modern(t *testing.T) {
	estimate := EstimateAge("LED DISPLAY with digital readout")
	assert.Equal(t, "Modern (< 5 years)", estimate.EstimatedAge)
	assert.Equal(t, "medium", estimate.Confidence)
	assert.ElementsMatch(t, []string{"LED", "DISPLAY", "DIGITAL"}, estimate.Indicators)
}

func TestEstimateAge_ModernWinsOverOlder(t *testing.T) {
	estimate := EstimateAge("LED panel retrofitted onto a VACUUM TUBE chassis")
	assert.Equal(t, "Modern (< 5 years)", estimate.EstimatedAge)
}

func TestEstimateAge_Intermediate(t *testing.T) {
	estimate := EstimateAge("LCD readout, analog dial")
	assert.Equal(t, "Intermediate (5-15 years)", estimate.EstimatedAge)
	assert.Equal(t, "low", estimate.Confidence)
}

func TestEstimateAge_Older(t *testing.T) {
	estimate := EstimateAge("mechanical dials throughout")
	assert.Equal(t, "Old (> 15 years)", estimate.EstimatedAge)
	assert.Equal(t, "medium", estimate.Confidence)
	assert.Equal(t, []string{"MECHANICAL DIALS"}, estimate.Indicators)
}

func TestEstimateAge_Unknown(t *testing.T) {
	estimate := EstimateAge("no useful markings")
	assert.Equal(t, "Unknown", estimate.EstimatedAge)
	assert.Equal(t, "none", estimate.Confidence)
	assert.Empty(t, estimate.Indicators)
}
