package station_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bikeshare/domain/entities/station"
)

func TestDistanceTo(t *testing.T) {
	union := station.NewStationData("Canal St & Adams St", 41.8793, -87.6399)
	millennium := station.NewStationData("Streeter Dr & Grand Ave", 41.8923, -87.6120)

	distance := union.DistanceTo(millennium)

	assert.InDelta(t, 2.72, distance, 0.05)
	assert.Zero(t, union.DistanceTo(union))
}

func TestIsValid(t *testing.T) {
	assert.True(t, station.NewStationData("A", 41.8, -87.6).IsValid())
	assert.False(t, station.NewStationData("A", 91, -87.6).IsValid())
	assert.False(t, station.NewStationData("", 41.8, -87.6).IsValid())
}
