package reports

import (
	"fmt"
	"time"

	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
)

// TimeStats most frequent times of travel
type TimeStats struct {
	Month     int
	DayOfWeek string
	Hour      int
}

// NewTimeStats returns the most common month, day of week and start hour. The bool is false when trips is empty
func NewTimeStats(trips []trip.TripData) (TimeStats, bool) {
	months := modecounter.New[int]()
	days := modecounter.New[string]()
	hours := modecounter.New[int]()
	for idx := range trips {
		months.UpdateCounter(trips[idx].Month)
		days.UpdateCounter(trips[idx].DayOfWeek)
		hours.UpdateCounter(trips[idx].Hour)
	}

	month, _, ok := months.Mode()
	if !ok {
		return TimeStats{}, false
	}
	day, _, _ := days.Mode()
	hour, _, _ := hours.Mode()

	return TimeStats{Month: month, DayOfWeek: day, Hour: hour}, true
}

// TimeStats prints the most frequent times of travel
func (r *Reporter) TimeStats(tripSet *dataset.TripSet) {
	r.measure("Calculating The Most Frequent Times of Travel...", tripSet, func() {
		stats, _ := NewTimeStats(tripSet.Trips())
		fmt.Fprintf(r.out, "Most common month: %d (%s)\n", stats.Month, time.Month(stats.Month))
		fmt.Fprintf(r.out, "Most common day: %s\n", stats.DayOfWeek)
		fmt.Fprintf(r.out, "Most common start hour: %d\n", stats.Hour)
	})
}
