package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The trend is simulated demonstration data and intentionally nondeterministic,
// so these tests only pin down the shape and bounds — never exact values.

func TestSimulatedTrend_Shape(t *testing.T) {
	points := SimulatedTrend(65)
	require.Len(t, points, 13)
	assert.Equal(t, "Jan", points[0].Label)
	assert.Equal(t, "Current", points[12].Label)
	assert.Equal(t, 65, points[12].Score)
}

func TestSimulatedTrend_Bounds(t *testing.T) {
	for _, score := range []int{0, 10, 50, 95, 100} {
		for i := 0; i < 20; i++ {
			for _, p := range SimulatedTrend(score)[:12] {
				assert.GreaterOrEqual(t, p.Score, 10)
				assert.LessOrEqual(t, p.Score, 100)
			}
		}
	}
}
