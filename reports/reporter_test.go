package reports

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/filter"
)

const header = ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type"

func loadTripSet(t *testing.T, city string, month string, content string) *dataset.TripSet {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	for _, name := range cfg.Datasets {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, name), []byte(content), 0o644))
	}

	criteria, err := filter.NewCriteria(city, month, filter.All)
	require.NoError(t, err)

	tripSet, err := dataset.NewLoader(cfg).Load(criteria)
	require.NoError(t, err)
	return tripSet
}

// newFixedReporter returns a Reporter whose clock advances half a second on every reading
func newFixedReporter(out *bytes.Buffer, stations map[string]station.StationData) *Reporter {
	reporter := NewReporter(out, stations)
	current := time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)
	reporter.now = func() time.Time {
		current = current.Add(500 * time.Millisecond)
		return current
	}
	return reporter
}

func TestReport_chicago(t *testing.T) {
	content := header + ",Gender,Birth Year\n" +
		"0,2017-03-06 17:01:00,2017-03-06 17:11:00,600,Canal St,Clark St,Subscriber,Male,1989.0\n" +
		"1,2017-03-07 17:15:00,2017-03-07 17:35:00,1200,Canal St,Clark St,Customer,,\n"
	tripSet := loadTripSet(t, filter.Chicago, filter.All, content)
	out := &bytes.Buffer{}

	newFixedReporter(out, nil).Report(tripSet)

	report := out.String()
	assert.Contains(t, report, "Most common month: 3 (March)")
	assert.Contains(t, report, "Most common day: Monday")
	assert.Contains(t, report, "Most common start hour: 17")
	assert.Contains(t, report, "Most common start station: Canal St")
	assert.Contains(t, report, "Canal St -> Clark St (2 trips)")
	assert.NotContains(t, report, "Distance between both stations")
	assert.Contains(t, report, "Total travel time: 0.50 hours")
	assert.Contains(t, report, "Average travel time: 15.00 minutes")
	assert.Contains(t, report, "Genders:")
	assert.Contains(t, report, "Earliest birth year: 1989")
	assert.Contains(t, report, "Most common birth year: 1989")
	assert.Equal(t, 4, strings.Count(report, "This took 0.5 seconds."))

	timeIdx := strings.Index(report, "Most Frequent Times")
	stationIdx := strings.Index(report, "Most Popular Stations")
	durationIdx := strings.Index(report, "Calculating Trip Duration")
	userIdx := strings.Index(report, "Calculating User Stats")
	assert.True(t, timeIdx < stationIdx && stationIdx < durationIdx && durationIdx < userIdx)
}

func TestUserStats_washingtonNeverReportsDemographics(t *testing.T) {
	content := header + "\n" +
		"0,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber\n"
	tripSet := loadTripSet(t, filter.Washington, filter.All, content)
	out := &bytes.Buffer{}

	newFixedReporter(out, nil).UserStats(tripSet)

	report := out.String()
	assert.Contains(t, report, "Subscriber")
	assert.Contains(t, report, "Gender and Age data is not available for Washington")
	assert.NotContains(t, report, "Genders:")
	assert.NotContains(t, report, "birth year")
}

func TestStationStats_distance(t *testing.T) {
	content := header + "\n" +
		"0,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,Union,Millennium,Subscriber\n"
	tripSet := loadTripSet(t, filter.Washington, filter.All, content)
	stations := map[string]station.StationData{
		"Union":      station.NewStationData("Union", 41.8793, -87.6399),
		"Millennium": station.NewStationData("Millennium", 41.8923, -87.6120),
	}
	out := &bytes.Buffer{}

	newFixedReporter(out, stations).StationStats(tripSet)

	assert.Contains(t, out.String(), "Distance between both stations: 2.7")
}

func TestReport_emptyTripSet(t *testing.T) {
	content := header + "\n" +
		"0,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,A,B,Subscriber\n"
	tripSet := loadTripSet(t, filter.Washington, "january", content)
	require.True(t, tripSet.IsEmpty())
	out := &bytes.Buffer{}

	assert.NotPanics(t, func() { newFixedReporter(out, nil).Report(tripSet) })
	assert.Equal(t, 4, strings.Count(out.String(), noTripsMessage))
}
