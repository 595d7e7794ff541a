package dataset

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/domain/filter"
	"bikeshare/utils"
)

const loaderType = "loader"

// Columns derived from the start time when the dataset is loaded
const (
	MonthColumn     = "month"
	DayOfWeekColumn = "day_of_week"
	HourColumn      = "hour"
)

// Loader reads the dataset of a city and narrows it to the rows matching a Criteria
type Loader struct {
	config *config.Config
}

func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		config: cfg,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderType, method, message)
}

// FilePath returns the path to the .csv file of city. Both new york spellings share the same file
func (l *Loader) FilePath(city string) (string, error) {
	dataset, err := filter.DatasetFor(city)
	if err != nil {
		return "", err
	}

	path, ok := l.config.DatasetPath(dataset)
	if !ok {
		return "", fmt.Errorf("no file configured for dataset %s: %w", dataset, dataErrors.ErrUnknownCity)
	}
	return path, nil
}

// Load reads all the trips of the criteria's city, derives month, day of week and hour from the
// start time and keeps the rows matching the month and day filters. The file is never modified.
// An empty result is not an error
func (l *Loader) Load(criteria filter.Criteria) (*TripSet, error) {
	path, err := l.FilePath(criteria.City())
	if err != nil {
		return nil, err
	}

	frame, err := l.readFrame(path)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error reading %s", path), err))
		return nil, err
	}
	log.Debug(l.getLogMessage("Load", fmt.Sprintf("%v trips read from %s", frame.Nrow(), path), nil))

	withDemographics := filter.HasDemographics(criteria.City())
	missing := utils.MissingStrings(l.config.Columns.Required(withDemographics), frame.Names())
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s lacks %s: %w", path, strings.Join(missing, ", "), dataErrors.ErrMissingColumn)
	}

	frame, err = l.deriveTimeColumns(frame)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	frame, matches, err := l.filterFrame(frame, criteria)
	if err != nil {
		return nil, err
	}

	if !matches {
		log.Info(l.getLogMessage("Load", fmt.Sprintf("no trips match %s", criteria), nil))
		return newEmptyTripSet(criteria), nil
	}

	tripSet, err := newTripSet(criteria, frame, l.config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug(l.getLogMessage("Load", fmt.Sprintf("%v trips match %s", tripSet.Len(), criteria), nil))
	return tripSet, nil
}

// readFrame loads the csv file keeping every column as text
func (l *Loader) readFrame(path string) (dataframe.DataFrame, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error opening %s: %w", path, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(l.getLogMessage("readFrame", fmt.Sprintf("error closing %s", path), err))
		}
	}(dataFile)

	frame := dataframe.ReadCSV(
		dataFile,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if frame.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error parsing %s: %w", path, frame.Err)
	}

	return frame, nil
}

// deriveTimeColumns adds the month, day_of_week and hour columns computed from the start time
func (l *Loader) deriveTimeColumns(frame dataframe.DataFrame) (dataframe.DataFrame, error) {
	startTimes := frame.Col(l.config.Columns.StartTime).Records()

	months := make([]int, len(startTimes))
	daysOfWeek := make([]string, len(startTimes))
	hours := make([]int, len(startTimes))
	for idx, rawStartTime := range startTimes {
		startTime, err := time.Parse(l.config.TimeLayout, strings.TrimSpace(rawStartTime))
		if err != nil {
			log.Debugf("Invalid start time at row %v: %v", idx+1, rawStartTime)
			return dataframe.DataFrame{}, fmt.Errorf("row %v: %s: %w", idx+1, dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
		}
		months[idx], daysOfWeek[idx], hours[idx] = trip.DeriveFields(startTime)
	}

	frame = frame.
		Mutate(series.New(months, series.Int, MonthColumn)).
		Mutate(series.New(daysOfWeek, series.String, DayOfWeekColumn)).
		Mutate(series.New(hours, series.Int, HourColumn))
	if frame.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error adding derived columns: %w", frame.Err)
	}

	return frame, nil
}

// filterFrame keeps the rows matching the criteria. The bool is false when no row matches
func (l *Loader) filterFrame(frame dataframe.DataFrame, criteria filter.Criteria) (dataframe.DataFrame, bool, error) {
	var filters []dataframe.F

	if criteria.FiltersByMonth() {
		monthNumber, err := filter.MonthNumber(criteria.Month())
		if err != nil {
			return dataframe.DataFrame{}, false, err
		}
		filters = append(filters, dataframe.F{Colname: MonthColumn, Comparator: series.Eq, Comparando: monthNumber})
	}

	if criteria.FiltersByDay() {
		dayName := filter.DayName(criteria.Day())
		filters = append(filters, dataframe.F{Colname: DayOfWeekColumn, Comparator: series.Eq, Comparando: dayName})
	}

	// Filters passed together are OR'ed by gota, they are applied one at a time instead
	for _, f := range filters {
		if !hasMatch(frame, f) {
			return dataframe.DataFrame{}, false, nil
		}
		frame = frame.Filter(f)
		if frame.Err != nil {
			return dataframe.DataFrame{}, false, fmt.Errorf("error filtering by %s: %w", f.Colname, frame.Err)
		}
	}

	return frame, frame.Nrow() > 0, nil
}

// hasMatch returns true if at least one row satisfies f
func hasMatch(frame dataframe.DataFrame, f dataframe.F) bool {
	matches := frame.Col(f.Colname).Compare(f.Comparator, f.Comparando)
	if matches.Err != nil {
		return false
	}

	bools, err := matches.Bool()
	if err != nil {
		return false
	}

	for _, match := range bools {
		if match {
			return true
		}
	}
	return false
}
