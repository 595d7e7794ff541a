package durationaccumulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bikeshare/domain/business/durationaccumulator"
)

func TestDurationAccumulator(t *testing.T) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, duration := range []float64{3600, 1800, 1800} {
		accumulator.UpdateAccumulator(duration)
	}

	assert.Equal(t, 3, accumulator.Counter)
	assert.InDelta(t, 2.0, accumulator.GetTotalHours(), 1e-9)
	assert.InDelta(t, 2400.0, accumulator.GetAverageDuration(), 1e-9)
	assert.InDelta(t, 40.0, accumulator.GetAverageMinutes(), 1e-9)
}

func TestDurationAccumulator_emptyAveragePanics(t *testing.T) {
	accumulator := durationaccumulator.NewDurationAccumulator()

	assert.Zero(t, accumulator.GetTotalHours())
	assert.Panics(t, func() { accumulator.GetAverageMinutes() })
}
