// Package filter holds the fixed vocabularies accepted for cities, months and days
// and the Criteria built from them.
package filter

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// All disables the month or the day filter
const All = "all"

const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	NewYork     = "new york"
	Washington  = "washington"
)

// Dataset keys. Both New York spellings share the same dataset.
const (
	DatasetChicago     = "chicago"
	DatasetNewYorkCity = "new_york_city"
	DatasetWashington  = "washington"
)

// Cities returns the accepted city names
func Cities() []string {
	return []string{Chicago, NewYorkCity, NewYork, Washington}
}

// Months returns the accepted month names in calendar order followed by All.
// Only the first half of the year is covered by the datasets.
func Months() []string {
	return []string{"january", "february", "march", "april", "may", "june", All}
}

// Days returns the accepted day names starting on sunday followed by All
func Days() []string {
	return []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", All}
}

// Datasets returns the keys of the known datasets
func Datasets() []string {
	return []string{DatasetChicago, DatasetNewYorkCity, DatasetWashington}
}

// DatasetFor returns the dataset key of the given city
func DatasetFor(city string) (string, error) {
	switch city {
	case Chicago:
		return DatasetChicago, nil
	case NewYorkCity, NewYork:
		return DatasetNewYorkCity, nil
	case Washington:
		return DatasetWashington, nil
	}
	return "", fmt.Errorf("%s: %w", city, dataErrors.ErrUnknownCity)
}

// HasDemographics returns false for the cities whose dataset lacks gender and birth year
func HasDemographics(city string) bool {
	return city != Washington
}

// MonthNumber returns the 1-based position of month in Months
func MonthNumber(month string) (int, error) {
	for idx, name := range Months() {
		if name == month && name != All {
			return idx + 1, nil
		}
	}
	return 0, fmt.Errorf("%s: %w", month, dataErrors.ErrInvalidMonth)
}

// DayName returns day as it is written in the derived day_of_week column, e.g. monday -> Monday
func DayName(day string) string {
	return cases.Title(language.English).String(day)
}

// Criteria the (city, month, day) selection of one analysis pass. Once built, it cannot change
type Criteria struct {
	city  string
	month string
	day   string
}

// NewCriteria validates each value against its vocabulary
func NewCriteria(city string, month string, day string) (Criteria, error) {
	if !utils.ContainsString(city, Cities()) {
		return Criteria{}, fmt.Errorf("%s: %w", city, dataErrors.ErrUnknownCity)
	}

	if !utils.ContainsString(month, Months()) {
		return Criteria{}, fmt.Errorf("%s: %w", month, dataErrors.ErrInvalidMonth)
	}

	if !utils.ContainsString(day, Days()) {
		return Criteria{}, fmt.Errorf("%s: %w", day, dataErrors.ErrInvalidDay)
	}

	return Criteria{city: city, month: month, day: day}, nil
}

func (c Criteria) City() string {
	return c.city
}

func (c Criteria) Month() string {
	return c.month
}

func (c Criteria) Day() string {
	return c.day
}

// FiltersByMonth returns true if the month filter is enabled
func (c Criteria) FiltersByMonth() bool {
	return c.month != All
}

// FiltersByDay returns true if the day filter is enabled
func (c Criteria) FiltersByDay() bool {
	return c.day != All
}

func (c Criteria) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", c.city, c.month, c.day)
}
