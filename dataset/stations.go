package dataset

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// Columns of the station coordinates file
const (
	StationNameColumn      = "name"
	StationLatitudeColumn  = "latitude"
	StationLongitudeColumn = "longitude"
)

// LoadStations reads a csv file with name, latitude and longitude columns and returns the stations by name
func LoadStations(path string) (map[string]station.StationData, error) {
	stationsFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer func(stationsFile *os.File) {
		err := stationsFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", path, err.Error())
		}
	}(stationsFile)

	frame := dataframe.ReadCSV(
		stationsFile,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			StationLatitudeColumn:  series.Float,
			StationLongitudeColumn: series.Float,
		}),
	)
	if frame.Err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, frame.Err)
	}

	required := []string{StationNameColumn, StationLatitudeColumn, StationLongitudeColumn}
	missing := utils.MissingStrings(required, frame.Names())
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s lacks %s: %w", path, strings.Join(missing, ", "), dataErrors.ErrMissingColumn)
	}

	names := frame.Col(StationNameColumn).Records()
	latitudes := frame.Col(StationLatitudeColumn).Float()
	longitudes := frame.Col(StationLongitudeColumn).Float()

	stations := make(map[string]station.StationData, len(names))
	for idx, name := range names {
		if math.IsNaN(latitudes[idx]) || math.IsNaN(longitudes[idx]) {
			return nil, fmt.Errorf("%s row %v: %s: %w", path, idx+1, dataErrors.ErrInvalidCoordinate, dataErrors.ErrInvalidStationData)
		}

		stationData := station.NewStationData(strings.TrimSpace(name), latitudes[idx], longitudes[idx])
		if !stationData.IsValid() {
			return nil, fmt.Errorf("%s row %v: %s: %w", path, idx+1, dataErrors.ErrInvalidCoordinate, dataErrors.ErrInvalidStationData)
		}
		stations[stationData.Name] = stationData
	}

	log.Debugf("[component: %s][method: LoadStations][status: OK] %v stations read from %s", loaderType, len(stations), path)
	return stations, nil
}
