// Package reports prints descriptive statistics of a set of trips.
package reports

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/station"
)

const noTripsMessage = "There are no trips to analyze."

var separator = strings.Repeat("-", 40)

// Reporter writes the statistics of a TripSet to out.
// + stations: optional coordinates by station name, used for distances
// + now: clock used to report how long each statistic took
type Reporter struct {
	out      io.Writer
	stations map[string]station.StationData
	now      func() time.Time
}

func NewReporter(out io.Writer, stations map[string]station.StationData) *Reporter {
	return &Reporter{
		out:      out,
		stations: stations,
		now:      time.Now,
	}
}

// Report runs every reporter in order: times, stations, durations and users
func (r *Reporter) Report(tripSet *dataset.TripSet) {
	r.TimeStats(tripSet)
	r.StationStats(tripSet)
	r.TripDurationStats(tripSet)
	r.UserStats(tripSet)
}

// measure prints title, runs printStats and prints the time it took
func (r *Reporter) measure(title string, tripSet *dataset.TripSet, printStats func()) {
	fmt.Fprintf(r.out, "\n%s\n\n", title)
	start := r.now()

	if tripSet.IsEmpty() {
		fmt.Fprintln(r.out, noTripsMessage)
	} else {
		printStats()
	}

	elapsed := r.now().Sub(start)
	log.Debugf("[component: reporter][city: %s] %s took %s", tripSet.City(), title, elapsed)
	fmt.Fprintf(r.out, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	fmt.Fprintln(r.out, separator)
}

// printValueCounts prints one line per value with its count, aligned in two columns
func printValueCounts(out io.Writer, valueCounts []modecounter.ValueCount[string]) {
	writer := tabwriter.NewWriter(out, 0, 0, 4, ' ', 0)
	for _, valueCount := range valueCounts {
		fmt.Fprintf(writer, "%s\t%d\n", valueCount.Value, valueCount.Count)
	}
	_ = writer.Flush()
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
