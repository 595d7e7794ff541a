package trip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bikeshare/domain/entities/trip"
)

func TestNewTripData_derivedFields(t *testing.T) {
	startTime := time.Date(2017, time.March, 6, 17, 45, 0, 0, time.UTC) // a Monday

	tripData := trip.NewTripData(startTime, "Canal St", "Clark St", 600, "Subscriber")

	assert.Equal(t, 3, tripData.Month)
	assert.Equal(t, "Monday", tripData.DayOfWeek)
	assert.Equal(t, 17, tripData.Hour)
	assert.False(t, tripData.HasBirthYear)
}

func TestSetDemographics(t *testing.T) {
	tripData := trip.NewTripData(time.Date(2017, time.January, 1, 0, 7, 57, 0, time.UTC), "A", "B", 60, "Customer")

	tripData.SetDemographics("", nil)
	assert.False(t, tripData.HasBirthYear)

	year := 1989
	tripData.SetDemographics("Female", &year)
	assert.True(t, tripData.HasBirthYear)
	assert.Equal(t, 1989, tripData.BirthYear)
	assert.Equal(t, "Female", tripData.Gender)
}
