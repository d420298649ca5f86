package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"github.com/BrianBakkala/Case-Study-Cyclistic/domain/entities/trip"
	"github.com/BrianBakkala/Case-Study-Cyclistic/utils"
)

const loaderName = "trip-loader"

var requiredColumns = []string{
	"ride_id",
	"rideable_type",
	"started_at",
	"ended_at",
	"start_lat",
	"start_lng",
	"end_lat",
	"end_lng",
	"member_casual",
}

// TripLoader discovers the monthly trip CSV files and concatenates them into
// one in-memory table. Rows with any missing or unparseable required field are
// dropped here, so the pipeline stages downstream never see malformed input.
// Duplicate ride IDs across files keep their first occurrence.
type TripLoader struct {
	tripsGlob       string
	timestampLayout string
}

func NewTripLoader(tripsGlob string, timestampLayout string) *TripLoader {
	return &TripLoader{
		tripsGlob:       tripsGlob,
		timestampLayout: timestampLayout,
	}
}

// Load reads every matched file in lexical order and returns the concatenated table
func (tl *TripLoader) Load() ([]trip.TripRecord, error) {
	tripFilepaths, err := filepath.Glob(tl.tripsGlob)
	if err != nil {
		return nil, fmt.Errorf("error expanding trips glob: %s", err)
	}
	if len(tripFilepaths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTripFiles, tl.tripsGlob)
	}
	sort.Strings(tripFilepaths)

	var records []trip.TripRecord
	seenRideIDs := make(utils.StringSet)
	for _, tripFilepath := range tripFilepaths {
		fileRecords, err := tl.loadFile(tripFilepath, seenRideIDs)
		if err != nil {
			return nil, err
		}
		records = append(records, fileRecords...)
	}

	log.Infof("[loader: %s][method: Load][status: OK] loaded %v records from %v files", loaderName, len(records), len(tripFilepaths))
	return records, nil
}

func (tl *TripLoader) loadFile(tripFilepath string, seenRideIDs utils.StringSet) ([]trip.TripRecord, error) {
	tripFile, err := os.Open(tripFilepath)
	if err != nil {
		return nil, fmt.Errorf("error opening trip file %s: %s", tripFilepath, err)
	}
	defer tripFile.Close()

	df := dataframe.ReadCSV(tripFile,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("error reading trip file %s: %s", tripFilepath, df.Err)
	}

	columnNames := df.Names()
	for _, required := range requiredColumns {
		if !utils.ContainsString(required, columnNames) {
			return nil, fmt.Errorf("%w: %s in %s", ErrMissingColumn, required, tripFilepath)
		}
	}

	var records []trip.TripRecord
	dropped := 0
	duplicates := 0
	for _, row := range df.Maps() {
		record, err := tl.parseRow(row)
		if err != nil {
			dropped++
			continue
		}

		// first occurrence of a ride ID is authoritative
		if seenRideIDs.Contains(record.RideID) {
			duplicates++
			continue
		}
		seenRideIDs.Add(record.RideID)
		records = append(records, record)
	}

	log.Infof("[loader: %s][method: loadFile][status: OK] %s: %v rows kept, %v dropped, %v duplicates", loaderName, filepath.Base(tripFilepath), len(records), dropped, duplicates)
	return records, nil
}

func (tl *TripLoader) parseRow(row map[string]interface{}) (trip.TripRecord, error) {
	fields := make(map[string]string, len(requiredColumns))
	for _, column := range requiredColumns {
		value, ok := row[column].(string)
		if !ok || value == "" || value == "NaN" {
			log.Debugf("[loader: %s] dropping row with blank %s", loaderName, column)
			return trip.TripRecord{}, fmt.Errorf("%s %s: %w", ErrMissingField, column, ErrInvalidTripData)
		}
		fields[column] = value
	}

	startedAt, err := time.Parse(tl.timestampLayout, fields["started_at"])
	if err != nil {
		log.Debugf("[loader: %s] invalid started_at: %v", loaderName, fields["started_at"])
		return trip.TripRecord{}, fmt.Errorf("%s: %w", ErrInvalidDate, ErrInvalidTripData)
	}

	endedAt, err := time.Parse(tl.timestampLayout, fields["ended_at"])
	if err != nil {
		log.Debugf("[loader: %s] invalid ended_at: %v", loaderName, fields["ended_at"])
		return trip.TripRecord{}, fmt.Errorf("%s: %w", ErrInvalidDate, ErrInvalidTripData)
	}

	startLat, startLng, err := tl.parseCoordinates(fields["start_lat"], fields["start_lng"])
	if err != nil {
		return trip.TripRecord{}, err
	}

	endLat, endLng, err := tl.parseCoordinates(fields["end_lat"], fields["end_lng"])
	if err != nil {
		return trip.TripRecord{}, err
	}

	if !utils.ContainsString(fields["rideable_type"], trip.ValidRideableTypes) {
		log.Debugf("[loader: %s] invalid rideable_type: %v", loaderName, fields["rideable_type"])
		return trip.TripRecord{}, fmt.Errorf("%s: %w", ErrInvalidRideableType, ErrInvalidTripData)
	}

	if !utils.ContainsString(fields["member_casual"], trip.ValidSegments) {
		log.Debugf("[loader: %s] invalid member_casual: %v", loaderName, fields["member_casual"])
		return trip.TripRecord{}, fmt.Errorf("%s: %w", ErrInvalidSegment, ErrInvalidTripData)
	}

	return trip.TripRecord{
		RideID:       fields["ride_id"],
		RideableType: fields["rideable_type"],
		MemberCasual: fields["member_casual"],
		StartedAt:    startedAt,
		EndedAt:      endedAt,
		StartLat:     startLat,
		StartLng:     startLng,
		EndLat:       endLat,
		EndLng:       endLng,
	}, nil
}

// parseCoordinates parses a lat/lng pair and rejects values outside the WGS84
// range, so the distance computation downstream never sees undefined input
func (tl *TripLoader) parseCoordinates(latStr string, lngStr string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		log.Debugf("[loader: %s] invalid latitude: %v", loaderName, latStr)
		return 0, 0, fmt.Errorf("%s: %w", ErrInvalidCoordinate, ErrInvalidTripData)
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		log.Debugf("[loader: %s] invalid longitude: %v", loaderName, lngStr)
		return 0, 0, fmt.Errorf("%s: %w", ErrInvalidCoordinate, ErrInvalidTripData)
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		log.Debugf("[loader: %s] coordinate out of range: (%v, %v)", loaderName, lat, lng)
		return 0, 0, fmt.Errorf("%s: %w", ErrInvalidCoordinate, ErrInvalidTripData)
	}

	return lat, lng, nil
}
