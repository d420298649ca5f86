package loader

import "errors"

var (
	ErrNoTripFiles         = errors.New("no trip files matched the configured glob")
	ErrMissingColumn       = errors.New("trip file is missing a required column")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrMissingField        = errors.New("missing field")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrInvalidRideableType = errors.New("invalid rideable type")
	ErrInvalidSegment      = errors.New("invalid rider segment")
)
