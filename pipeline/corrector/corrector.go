package corrector

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/BrianBakkala/Case-Study-Cyclistic/domain/entities/trip"
	"github.com/BrianBakkala/Case-Study-Cyclistic/utils"
)

const (
	stageName   = "anomaly-corrector"
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Config parameterizes the clock-rollback repair for a dataset's locale and year
// + RollbackDate: calendar date of the backward transition, at midnight
// + BoundarySecs: wall-clock seconds from midnight at which clocks roll back
// + OffsetSecs: seconds to add back to an affected duration, one hour for DST
// + CandidateMaxSecs: durations below this value are anomaly candidates
// + IsolationMaxSecs: candidates below this value inside the window get repaired
type Config struct {
	RollbackDate     time.Time
	BoundarySecs     int64
	OffsetSecs       int64
	CandidateMaxSecs int64
	IsolationMaxSecs int64
}

// ParseConfig builds a Config from the yaml-level string representation, e.g.
// date "2023-11-05" and clock boundary "02:00"
func ParseConfig(date string, clockBoundary string, offsetSecs int64, candidateMaxSecs int64, isolationMaxSecs int64) (Config, error) {
	rollbackDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing rollback date: %s", err)
	}

	boundary, err := time.Parse(clockLayout, clockBoundary)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing rollback clock boundary: %s", err)
	}

	return Config{
		RollbackDate:     rollbackDate,
		BoundarySecs:     int64(boundary.Hour())*3600 + int64(boundary.Minute())*60,
		OffsetSecs:       offsetSecs,
		CandidateMaxSecs: candidateMaxSecs,
		IsolationMaxSecs: isolationMaxSecs,
	}, nil
}

// AnomalyCorrector repairs trips whose duration is understated by one hour
// because their wall-clock timestamps straddle the end of daylight saving time.
// Everything else with an implausible duration flows through untouched and is
// dropped later by the validity filter.
type AnomalyCorrector struct {
	config Config
}

func NewAnomalyCorrector(config Config) *AnomalyCorrector {
	return &AnomalyCorrector{config: config}
}

// Correct returns a new table where every record in the rollback-window subset
// has the configured offset added to its duration. Detection and repair are two
// passes keyed by ride identity, and repaired records are flagged, so running
// Correct again never applies the offset twice.
func (ac *AnomalyCorrector) Correct(records []trip.TripRecord) []trip.TripRecord {
	rollbackIDs := ac.detectRollbackIDs(records)
	corrected := ac.applyOffset(records, rollbackIDs)

	log.Infof("[stage: %s][method: Correct][status: OK] repaired %v of %v records", stageName, rollbackIDs.Len(), len(records))
	return corrected
}

// detectRollbackIDs isolates, among all anomaly candidates, the rides clearly
// affected by the backward transition: ended inside the rollback window with a
// duration at least a good chunk of an hour short
func (ac *AnomalyCorrector) detectRollbackIDs(records []trip.TripRecord) utils.StringSet {
	rollbackIDs := make(utils.StringSet)
	for i := range records {
		record := &records[i]
		if record.DSTAdjusted {
			continue
		}
		if record.DurationSecs >= ac.config.CandidateMaxSecs {
			continue
		}
		if record.DurationSecs >= ac.config.IsolationMaxSecs {
			// trivially short legitimate rides land here, leave them alone
			continue
		}
		if !ac.inRollbackWindow(record.EndedAt) {
			continue
		}

		log.Debugf("[stage: %s][method: detectRollbackIDs][status: OK] ride %s ended %v with duration %vs", stageName, record.RideID, record.EndedAt, record.DurationSecs)
		rollbackIDs.Add(record.RideID)
	}
	return rollbackIDs
}

func (ac *AnomalyCorrector) applyOffset(records []trip.TripRecord, rollbackIDs utils.StringSet) []trip.TripRecord {
	corrected := make([]trip.TripRecord, len(records))
	copy(corrected, records)

	for i := range corrected {
		record := &corrected[i]
		if !rollbackIDs.Contains(record.RideID) || record.DSTAdjusted {
			continue
		}
		record.DurationSecs += ac.config.OffsetSecs
		record.DSTAdjusted = true
	}
	return corrected
}

// inRollbackWindow reports whether a wall-clock timestamp falls on the rollback
// date before the clock boundary, read from its local components verbatim
func (ac *AnomalyCorrector) inRollbackWindow(endedAt time.Time) bool {
	if endedAt.Year() != ac.config.RollbackDate.Year() ||
		endedAt.Month() != ac.config.RollbackDate.Month() ||
		endedAt.Day() != ac.config.RollbackDate.Day() {
		return false
	}

	secsFromMidnight := int64(endedAt.Hour())*3600 + int64(endedAt.Minute())*60 + int64(endedAt.Second())
	return secsFromMidnight < ac.config.BoundarySecs
}
