package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrianBakkala/Case-Study-Cyclistic/domain/entities/trip"
)

func TestKeep(t *testing.T) {
	t.Run("plausible record is kept", func(t *testing.T) {
		assert.True(t, Keep(trip.TripRecord{
			DurationSecs:     600,
			GreatCircleDistM: 2285,
			ManhattanDistM:   3050,
		}))
	})

	t.Run("negative duration is excluded", func(t *testing.T) {
		assert.False(t, Keep(trip.TripRecord{
			DurationSecs:     -5,
			GreatCircleDistM: 2285,
			ManhattanDistM:   3050,
		}))
	})

	t.Run("zero duration is excluded", func(t *testing.T) {
		assert.False(t, Keep(trip.TripRecord{
			DurationSecs:     0,
			GreatCircleDistM: 2285,
			ManhattanDistM:   3050,
		}))
	})

	t.Run("round trip with zero distance is excluded despite positive duration", func(t *testing.T) {
		assert.False(t, Keep(trip.TripRecord{
			DurationSecs:     1800,
			GreatCircleDistM: 0,
			ManhattanDistM:   0,
		}))
	})
}

func TestApply(t *testing.T) {
	records := []trip.TripRecord{
		{RideID: "keep-1", DurationSecs: 600, GreatCircleDistM: 2285, ManhattanDistM: 3050},
		{RideID: "drop-negative", DurationSecs: -5, GreatCircleDistM: 1000, ManhattanDistM: 1200},
		{RideID: "drop-round-trip", DurationSecs: 1800, GreatCircleDistM: 0, ManhattanDistM: 0},
		{RideID: "keep-2", DurationSecs: 1800, GreatCircleDistM: 900, ManhattanDistM: 1100},
	}

	retained := Apply(records)

	require.Len(t, retained, 2)
	assert.Equal(t, "keep-1", retained[0].RideID)
	assert.Equal(t, "keep-2", retained[1].RideID)

	for _, record := range retained {
		assert.Greater(t, record.DurationSecs, int64(0))
		assert.Greater(t, record.GreatCircleDistM, 0.0)
		assert.Greater(t, record.ManhattanDistM, 0.0)
	}
}
