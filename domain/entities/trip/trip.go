package trip

import "time"

// TripData struct that contains one bike rental
// + StartTime: date and time in which the trip begins
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: category of the user, e.g. Subscriber or Customer
// + Gender: gender of the user. Empty when unknown or when the city has no demographics
// + BirthYear: year of birth of the user. Only meaningful when HasBirthYear is true
// + Month, DayOfWeek, Hour: fields derived from StartTime
type TripData struct {
	StartTime    time.Time `json:"start_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	HasBirthYear bool      `json:"-"`
	Month        int       `json:"month"`
	DayOfWeek    string    `json:"day_of_week"`
	Hour         int       `json:"hour"`
}

// NewTripData returns a TripData with the derived fields already computed from startTime
func NewTripData(startTime time.Time, startStation string, endStation string, duration float64, userType string) *TripData {
	month, dayOfWeek, hour := DeriveFields(startTime)
	return &TripData{
		StartTime:    startTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        month,
		DayOfWeek:    dayOfWeek,
		Hour:         hour,
	}
}

// SetDemographics sets gender and birth year. A nil birthYear means that the value is missing
func (td *TripData) SetDemographics(gender string, birthYear *int) {
	td.Gender = gender
	if birthYear != nil {
		td.BirthYear = *birthYear
		td.HasBirthYear = true
	}
}

// DeriveFields returns the month number (1-12), the day of week name and the hour (0-23) of startTime
func DeriveFields(startTime time.Time) (int, string, int) {
	return int(startTime.Month()), startTime.Weekday().String(), startTime.Hour()
}
