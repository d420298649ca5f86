package filter

import (
	log "github.com/sirupsen/logrus"

	"github.com/BrianBakkala/Case-Study-Cyclistic/domain/entities/trip"
)

const stageName = "validity-filter"

// Keep reports whether a record is physically plausible after correction.
// All three checks are strict: zero-distance round trips are excluded along
// with zero-or-negative durations.
func Keep(record trip.TripRecord) bool {
	return record.DurationSecs > 0 &&
		record.GreatCircleDistM > 0 &&
		record.ManhattanDistM > 0
}

// Apply returns the subset of records that pass the plausibility predicate.
// Pure reduction, records are never mutated past this point.
func Apply(records []trip.TripRecord) []trip.TripRecord {
	retained := make([]trip.TripRecord, 0, len(records))
	for i := range records {
		if Keep(records[i]) {
			retained = append(retained, records[i])
		}
	}

	log.Infof("[stage: %s][method: Apply][status: OK] retained %v of %v records", stageName, len(retained), len(records))
	return retained
}
