package reports

import (
	"fmt"

	"bikeshare/dataset"
	"bikeshare/domain/business/birthyear"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
)

// UserStats counts of users by type and, for cities with demographics, by gender and birth year.
// Missing values are not counted
type UserStats struct {
	UserTypes       []modecounter.ValueCount[string]
	Genders         []modecounter.ValueCount[string]
	HasBirthYears   bool
	EarliestYear    int
	MostRecentYear  int
	MostCommonYear  int
	HasDemographics bool
}

// NewUserStats returns the user statistics of trips. Gender and birth year are only read when withDemographics is true
func NewUserStats(trips []trip.TripData, withDemographics bool) UserStats {
	userTypes := modecounter.New[string]()
	genders := modecounter.New[string]()
	birthYears := birthyear.NewBirthYearAccumulator()
	for idx := range trips {
		if trips[idx].UserType != "" {
			userTypes.UpdateCounter(trips[idx].UserType)
		}

		if !withDemographics {
			continue
		}

		if trips[idx].Gender != "" {
			genders.UpdateCounter(trips[idx].Gender)
		}
		if trips[idx].HasBirthYear {
			birthYears.UpdateAccumulator(trips[idx].BirthYear)
		}
	}

	stats := UserStats{
		UserTypes:       userTypes.ValueCounts(),
		HasDemographics: withDemographics,
	}
	if !withDemographics {
		return stats
	}

	stats.Genders = genders.ValueCounts()
	if !birthYears.IsEmpty() {
		stats.HasBirthYears = true
		stats.EarliestYear = birthYears.GetEarliest()
		stats.MostRecentYear = birthYears.GetMostRecent()
		stats.MostCommonYear = birthYears.GetMostCommon()
	}
	return stats
}

// UserStats prints the statistics on bikeshare users
func (r *Reporter) UserStats(tripSet *dataset.TripSet) {
	r.measure("Calculating User Stats...", tripSet, func() {
		stats := NewUserStats(tripSet.Trips(), tripSet.HasDemographics())

		fmt.Fprintln(r.out, "Types of users:")
		printValueCounts(r.out, stats.UserTypes)

		if !stats.HasDemographics {
			fmt.Fprintln(r.out, "\nGender and Age data is not available for Washington")
			return
		}

		fmt.Fprintln(r.out, "\nGenders:")
		if len(stats.Genders) == 0 {
			fmt.Fprintln(r.out, "No gender data for the selected trips")
		} else {
			printValueCounts(r.out, stats.Genders)
		}

		if !stats.HasBirthYears {
			fmt.Fprintln(r.out, "\nNo birth year data for the selected trips")
			return
		}
		fmt.Fprintf(r.out, "\nEarliest birth year: %d\n", stats.EarliestYear)
		fmt.Fprintf(r.out, "Most recent birth year: %d\n", stats.MostRecentYear)
		fmt.Fprintf(r.out, "Most common birth year: %d\n", stats.MostCommonYear)
	})
}
