package trip

import (
	"time"
)

// Rideable types present in the source dataset
const (
	RideableClassic  = "classic_bike"
	RideableDocked   = "docked_bike"
	RideableElectric = "electric_bike"
)

// Rider segments
const (
	SegmentMember = "member"
	SegmentCasual = "casual"
)

var (
	ValidRideableTypes = []string{RideableClassic, RideableDocked, RideableElectric}
	ValidSegments      = []string{SegmentMember, SegmentCasual}
)

// CalendarParts struct that contains the calendar decomposition of a wall-clock timestamp
// + Year: calendar year
// + Month: month of the year (1-12)
// + Day: day of the month
// + Hour: hour of the day (0-23)
// + Weekday: weekday label, e.g. "Monday"
// + IsWeekend: true when Weekday is Saturday or Sunday
type CalendarParts struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Hour      int    `json:"hour"`
	Weekday   string `json:"weekday"`
	IsWeekend bool   `json:"is_weekend"`
}

// TripRecord struct that contains one row of the working table
// + RideID: unique ride identifier from the source dataset
// + RideableType: type of bike used for the ride
// + MemberCasual: rider segment, member or casual
// + StartedAt: wall-clock time in which the trip begins (no UTC offset in the source data)
// + EndedAt: wall-clock time in which the trip ends
// + StartLat/StartLng/EndLat/EndLng: trip endpoints in decimal degrees, WGS84
// Derived fields, absent from the raw input:
// + DurationSecs: EndedAt - StartedAt in signed seconds, negative values kept as anomaly signals
// + GreatCircleDistM: geodesic distance between the endpoints, meters
// + ManhattanDistM: two-leg taxicab distance through the corner point, meters
// + Start/End: calendar decomposition of both timestamps
// + DSTAdjusted: true once the clock-rollback repair has been applied to this record
type TripRecord struct {
	RideID       string    `json:"ride_id"`
	RideableType string    `json:"rideable_type"`
	MemberCasual string    `json:"member_casual"`
	StartedAt    time.Time `json:"started_at"`
	EndedAt      time.Time `json:"ended_at"`
	StartLat     float64   `json:"start_lat"`
	StartLng     float64   `json:"start_lng"`
	EndLat       float64   `json:"end_lat"`
	EndLng       float64   `json:"end_lng"`

	DurationSecs     int64         `json:"duration_secs"`
	GreatCircleDistM float64       `json:"great_circle_dist_m"`
	ManhattanDistM   float64       `json:"manhattan_dist_m"`
	Start            CalendarParts `json:"start"`
	End              CalendarParts `json:"end"`
	DSTAdjusted      bool          `json:"dst_adjusted"`
}

// DecomposeCalendar returns the calendar parts of a timestamp read verbatim
// from its wall-clock components, without any timezone conversion
func DecomposeCalendar(t time.Time) CalendarParts {
	weekday := t.Weekday()
	return CalendarParts{
		Year:      t.Year(),
		Month:     int(t.Month()),
		Day:       t.Day(),
		Hour:      t.Hour(),
		Weekday:   weekday.String(),
		IsWeekend: weekday == time.Saturday || weekday == time.Sunday,
	}
}
