package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"

	"bikeshare/config"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/domain/filter"
	"bikeshare/utils"
)

// TripSet the trips of one city that match a Criteria, with the derived columns.
// It is built for a single analysis pass and discarded afterwards
type TripSet struct {
	criteria filter.Criteria
	frame    dataframe.DataFrame
	trips    []trip.TripData
}

func newEmptyTripSet(criteria filter.Criteria) *TripSet {
	return &TripSet{criteria: criteria}
}

// newTripSet parses every row of frame into a TripData
func newTripSet(criteria filter.Criteria, frame dataframe.DataFrame, cfg *config.Config) (*TripSet, error) {
	columns := cfg.Columns
	startTimes := frame.Col(columns.StartTime).Records()
	startStations := frame.Col(columns.StartStation).Records()
	endStations := frame.Col(columns.EndStation).Records()
	durations := frame.Col(columns.Duration).Records()
	userTypes := frame.Col(columns.UserType).Records()

	withDemographics := filter.HasDemographics(criteria.City())
	var genders, birthYears []string
	if withDemographics {
		genders = frame.Col(columns.Gender).Records()
		birthYears = frame.Col(columns.BirthYear).Records()
	}

	trips := make([]trip.TripData, 0, len(startTimes))
	for idx := range startTimes {
		startTime, err := time.Parse(cfg.TimeLayout, strings.TrimSpace(startTimes[idx]))
		if err != nil {
			return nil, fmt.Errorf("row %v: %s: %w", idx+1, dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
		}

		duration, err := strconv.ParseFloat(strings.TrimSpace(durations[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %v: %s: %w", idx+1, dataErrors.ErrInvalidDurationType, dataErrors.ErrInvalidTripData)
		}

		tripData := trip.NewTripData(startTime, startStations[idx], endStations[idx], duration, cleanValue(userTypes[idx]))
		if withDemographics {
			tripData.SetDemographics(cleanValue(genders[idx]), parseBirthYear(birthYears[idx]))
		}
		trips = append(trips, *tripData)
	}

	return &TripSet{
		criteria: criteria,
		frame:    frame,
		trips:    trips,
	}, nil
}

func (ts *TripSet) Criteria() filter.Criteria {
	return ts.criteria
}

func (ts *TripSet) City() string {
	return ts.criteria.City()
}

// HasDemographics returns true if the trips carry gender and birth year
func (ts *TripSet) HasDemographics() bool {
	return filter.HasDemographics(ts.criteria.City())
}

func (ts *TripSet) Len() int {
	return len(ts.trips)
}

func (ts *TripSet) IsEmpty() bool {
	return len(ts.trips) == 0
}

// Trips returns the trips in file order
func (ts *TripSet) Trips() []trip.TripData {
	return ts.trips
}

// Header returns the column names of the raw rows, derived columns included
func (ts *TripSet) Header() []string {
	if ts.IsEmpty() {
		return nil
	}
	return ts.frame.Names()
}

// Page returns the first n raw rows. n is capped to the amount of trips
func (ts *TripSet) Page(n int) [][]string {
	if n > ts.Len() {
		n = ts.Len()
	}
	if n <= 0 {
		return nil
	}

	indexes := make([]int, n)
	for idx := range indexes {
		indexes[idx] = idx
	}

	records := ts.frame.Subset(indexes).Records()
	return records[1:] // first record is the header
}

// cleanValue returns the empty string for missing values
func cleanValue(value string) string {
	if utils.IsMissing(value) {
		return ""
	}
	return strings.TrimSpace(value)
}

// parseBirthYear returns nil when the birth year is missing or cannot be parsed.
// Birth years are written as floats in some datasets, e.g. 1992.0
func parseBirthYear(value string) *int {
	if utils.IsMissing(value) {
		return nil
	}

	year, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(year) {
		return nil
	}

	rounded := int(math.Round(year))
	return &rounded
}
