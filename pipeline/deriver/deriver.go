package deriver

import (
	log "github.com/sirupsen/logrus"
	"github.com/umahmood/haversine"

	"github.com/BrianBakkala/Case-Study-Cyclistic/domain/entities/trip"
)

const (
	stageName        = "metrics-deriver"
	DefaultChunkSize = 20000

	metersPerKm = 1000.0
)

// MetricsDeriver computes the derived columns of the working table: signed ride
// duration, great-circle and manhattan distances, and the calendar decomposition
// of both trip endpoints. Distances are computed in bounded chunks to cap peak
// memory; the chunk size never changes any per-row result.
type MetricsDeriver struct {
	chunkSize int
}

func NewMetricsDeriver(chunkSize int) *MetricsDeriver {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &MetricsDeriver{chunkSize: chunkSize}
}

// Derive returns a new table with all derived fields populated. Durations are
// not clamped: a trip spanning the clock rollback comes out negative here and is
// handled by the anomaly corrector downstream.
func (md *MetricsDeriver) Derive(records []trip.TripRecord) []trip.TripRecord {
	derived := make([]trip.TripRecord, len(records))
	copy(derived, records)

	for i := range derived {
		record := &derived[i]
		record.DurationSecs = record.EndedAt.Unix() - record.StartedAt.Unix()
		record.Start = trip.DecomposeCalendar(record.StartedAt)
		record.End = trip.DecomposeCalendar(record.EndedAt)
	}

	for start := 0; start < len(derived); start += md.chunkSize {
		end := start + md.chunkSize
		if end > len(derived) {
			end = len(derived)
		}
		deriveDistances(derived[start:end])
		log.Debugf("[stage: %s][method: Derive][status: OK] distances computed for rows %v-%v", stageName, start, end)
	}

	log.Infof("[stage: %s][method: Derive][status: OK] derived metrics for %v records", stageName, len(derived))
	return derived
}

func deriveDistances(chunk []trip.TripRecord) {
	for i := range chunk {
		record := &chunk[i]
		record.GreatCircleDistM = greatCircleMeters(record.StartLat, record.StartLng, record.EndLat, record.EndLng)
		record.ManhattanDistM = manhattanMeters(record.StartLat, record.StartLng, record.EndLat, record.EndLng)
	}
}

// greatCircleMeters returns the distance between two points using the haversine formula
func greatCircleMeters(startLat float64, startLng float64, endLat float64, endLng float64) float64 {
	startPoint := haversine.Coord{Lat: startLat, Lon: startLng}
	endPoint := haversine.Coord{Lat: endLat, Lon: endLng}

	_, km := haversine.Distance(startPoint, endPoint)
	return km * metersPerKm
}

// manhattanMeters approximates axis-aligned travel: one leg from the start to
// the corner point (start longitude, end latitude) and one leg from the corner
// to the end. By the triangle inequality the sum is >= the great-circle distance
func manhattanMeters(startLat float64, startLng float64, endLat float64, endLng float64) float64 {
	northSouthLeg := greatCircleMeters(startLat, startLng, endLat, startLng)
	eastWestLeg := greatCircleMeters(endLat, startLng, endLat, endLng)
	return northSouthLeg + eastWestLeg
}
