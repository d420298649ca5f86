package reporting

import (
	log "github.com/sirupsen/logrus"

	"github.com/BrianBakkala/Case-Study-Cyclistic/domain/entities/trip"
)

// Weekday column order for the breakdown sheet
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// SegmentSummary struct that contains the descriptive statistics for one rider segment
// + Segment: member or casual
// + Rides: amount of clean rides in the segment
// + MeanDurationSecs/MaxDurationSecs: ride duration statistics
// + MeanGreatCircleM/MeanManhattanM: mean distances in meters
// + RidesByWeekday: ride count per start weekday
// + RidesByStartHour: ride count per start hour (0-23)
type SegmentSummary struct {
	Segment          string
	Rides            int
	MeanDurationSecs float64
	MaxDurationSecs  int64
	MeanGreatCircleM float64
	MeanManhattanM   float64
	RidesByWeekday   map[string]int
	RidesByStartHour [24]int
}

func newSegmentSummary(segment string) *SegmentSummary {
	return &SegmentSummary{
		Segment:        segment,
		RidesByWeekday: make(map[string]int),
	}
}

// Summarize aggregates the clean table per rider segment, member first.
// It expects the validity filter's output, so durations and distances are
// strictly positive.
func Summarize(records []trip.TripRecord) []*SegmentSummary {
	summaries := map[string]*SegmentSummary{
		trip.SegmentMember: newSegmentSummary(trip.SegmentMember),
		trip.SegmentCasual: newSegmentSummary(trip.SegmentCasual),
	}

	for i := range records {
		record := &records[i]
		summary, ok := summaries[record.MemberCasual]
		if !ok {
			// loader validates the segment column, this should not happen
			log.Warnf("[reporting][method: Summarize] skipping unknown segment %q", record.MemberCasual)
			continue
		}

		summary.Rides++
		summary.MeanDurationSecs += float64(record.DurationSecs)
		summary.MeanGreatCircleM += record.GreatCircleDistM
		summary.MeanManhattanM += record.ManhattanDistM
		if record.DurationSecs > summary.MaxDurationSecs {
			summary.MaxDurationSecs = record.DurationSecs
		}
		summary.RidesByWeekday[record.Start.Weekday]++
		summary.RidesByStartHour[record.Start.Hour]++
	}

	ordered := []*SegmentSummary{
		summaries[trip.SegmentMember],
		summaries[trip.SegmentCasual],
	}
	for _, summary := range ordered {
		if summary.Rides > 0 {
			summary.MeanDurationSecs /= float64(summary.Rides)
			summary.MeanGreatCircleM /= float64(summary.Rides)
			summary.MeanManhattanM /= float64(summary.Rides)
		}
	}

	log.Infof("[reporting][method: Summarize][status: OK] member rides: %v, casual rides: %v", ordered[0].Rides, ordered[1].Rides)
	return ordered
}
