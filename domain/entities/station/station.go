package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewStationData(name string, latitude float64, longitude float64) StationData {
	return StationData{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func (sd StationData) GetCoordinates() (float64, float64) {
	return sd.Latitude, sd.Longitude
}

// DistanceTo returns the distance in km between two stations using haversine formula
func (sd StationData) DistanceTo(other StationData) float64 {
	station1 := haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
	station2 := haversine.Coord{Lat: other.Latitude, Lon: other.Longitude}

	_, km := haversine.Distance(station1, station2)
	return km
}

// IsValid returns true if latitude is between -90 and 90 and longitude between -180 and 180
func (sd StationData) IsValid() bool {
	return sd.Name != "" &&
		-90 <= sd.Latitude && sd.Latitude <= 90 &&
		-180 <= sd.Longitude && sd.Longitude <= 180
}
