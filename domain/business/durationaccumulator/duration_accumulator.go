package durationaccumulator

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
)

// DurationAccumulator struct that collects the duration of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of durations in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

// GetTotalHours returns the sum of durations in hours
func (da *DurationAccumulator) GetTotalHours() float64 {
	return da.TotalDuration / secondsPerHour
}

// GetAverageDuration returns the mean duration in seconds
func (da *DurationAccumulator) GetAverageDuration() float64 {
	if da.Counter == 0 {
		panic("[DurationAccumulator] cannot get average duration, counter is zero")
	}
	return da.TotalDuration / float64(da.Counter)
}

// GetAverageMinutes returns the mean duration in minutes
func (da *DurationAccumulator) GetAverageMinutes() float64 {
	return da.GetAverageDuration() / secondsPerMinute
}
