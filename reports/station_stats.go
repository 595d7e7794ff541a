package reports

import (
	"fmt"

	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
)

// StationPair the start and end station of a trip
type StationPair struct {
	Start string
	End   string
}

func (sp StationPair) String() string {
	return fmt.Sprintf("%s -> %s", sp.Start, sp.End)
}

func lessStationPair(a StationPair, b StationPair) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}

// StationStats most popular stations and trip
type StationStats struct {
	StartStation string
	EndStation   string
	Pair         StationPair
	PairCount    int
}

// NewStationStats returns the most common start station, end station and start-end pair.
// The bool is false when trips is empty
func NewStationStats(trips []trip.TripData) (StationStats, bool) {
	startStations := modecounter.New[string]()
	endStations := modecounter.New[string]()
	pairs := modecounter.NewWithOrder(lessStationPair)
	for idx := range trips {
		startStations.UpdateCounter(trips[idx].StartStation)
		endStations.UpdateCounter(trips[idx].EndStation)
		pairs.UpdateCounter(StationPair{Start: trips[idx].StartStation, End: trips[idx].EndStation})
	}

	pair, pairCount, ok := pairs.Mode()
	if !ok {
		return StationStats{}, false
	}
	startStation, _, _ := startStations.Mode()
	endStation, _, _ := endStations.Mode()

	return StationStats{
		StartStation: startStation,
		EndStation:   endStation,
		Pair:         pair,
		PairCount:    pairCount,
	}, true
}

// StationStats prints the most popular stations and trip
func (r *Reporter) StationStats(tripSet *dataset.TripSet) {
	r.measure("Calculating The Most Popular Stations and Trip...", tripSet, func() {
		stats, _ := NewStationStats(tripSet.Trips())
		fmt.Fprintf(r.out, "Most common start station: %s\n", stats.StartStation)
		fmt.Fprintf(r.out, "\nMost common end station: %s\n", stats.EndStation)
		fmt.Fprintf(r.out, "\nMost common start & end station combo:\n %s (%d trips)\n", stats.Pair, stats.PairCount)

		if distance, ok := r.pairDistance(stats.Pair); ok {
			fmt.Fprintf(r.out, " Distance between both stations: %s km\n", formatFloat(distance))
		}
	})
}

// pairDistance returns the distance in km between the stations of pair when both locations are known
func (r *Reporter) pairDistance(pair StationPair) (float64, bool) {
	start, ok := r.stations[pair.Start]
	if !ok {
		return 0, false
	}
	end, ok := r.stations[pair.End]
	if !ok {
		return 0, false
	}
	return start.DistanceTo(end), true
}
