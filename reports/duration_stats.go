package reports

import (
	"fmt"

	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
)

// DurationStats total and average trip duration
type DurationStats struct {
	TotalHours     float64
	AverageMinutes float64
}

// NewDurationStats returns the total duration in hours and the mean duration in minutes.
// The bool is false when trips is empty
func NewDurationStats(trips []trip.TripData) (DurationStats, bool) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for idx := range trips {
		accumulator.UpdateAccumulator(trips[idx].Duration)
	}

	if accumulator.Counter == 0 {
		return DurationStats{}, false
	}

	return DurationStats{
		TotalHours:     accumulator.GetTotalHours(),
		AverageMinutes: accumulator.GetAverageMinutes(),
	}, true
}

// TripDurationStats prints the total and average trip duration
func (r *Reporter) TripDurationStats(tripSet *dataset.TripSet) {
	r.measure("Calculating Trip Duration...", tripSet, func() {
		stats, _ := NewDurationStats(tripSet.Trips())
		fmt.Fprintf(r.out, "Total travel time: %s hours\n", formatFloat(stats.TotalHours))
		fmt.Fprintf(r.out, "\nAverage travel time: %s minutes\n", formatFloat(stats.AverageMinutes))
	})
}
