package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/BrianBakkala/Case-Study-Cyclistic/utils"
)

const (
	configFilepathEnv     = "CONFIG_FILEPATH"
	defaultConfigFilepath = "./config/config.yaml"
)

var (
	ErrInvalidChunkSize  = errors.New("chunk size must be >= 1")
	ErrInvalidThresholds = errors.New("isolation threshold must be below the candidate threshold")
	ErrInvalidOffset     = errors.New("rollback offset must be > 0")
)

// RollbackConfig parameterizes the clock-rollback detection window, see the
// anomaly corrector for the semantics of each threshold
type RollbackConfig struct {
	Date             string `yaml:"date"`
	ClockBoundary    string `yaml:"clock_boundary"`
	OffsetSecs       int64  `yaml:"offset_secs"`
	CandidateMaxSecs int64  `yaml:"candidate_max_secs"`
	IsolationMaxSecs int64  `yaml:"isolation_max_secs"`
}

type ReportConfig struct {
	OutputPath string `yaml:"output_path"`
}

// PipelineConfig struct that contains the cleaning pipeline configuration
// + TripsGlob: glob matching the monthly trip CSV files to concatenate
// + TimestampLayout: layout of the started_at/ended_at columns
// + ChunkSize: amount of rows per batch for the distance computation
// + Rollback: clock-rollback detection window and thresholds
// + Report: output settings for the summary workbook
type PipelineConfig struct {
	TripsGlob       string         `yaml:"trips_glob"`
	TimestampLayout string         `yaml:"timestamp_layout"`
	ChunkSize       int            `yaml:"chunk_size"`
	Rollback        RollbackConfig `yaml:"rollback"`
	Report          ReportConfig   `yaml:"report"`
}

func LoadConfig() (*PipelineConfig, error) {
	// .env is optional, plain environment variables win either way
	_ = godotenv.Load()

	configFilepath := os.Getenv(configFilepathEnv)
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}

	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var pipelineConfig PipelineConfig
	err = yaml.Unmarshal(configFile, &pipelineConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing pipeline config file: %s", err)
	}

	if tripsGlob := os.Getenv("TRIPS_GLOB"); tripsGlob != "" {
		pipelineConfig.TripsGlob = tripsGlob
	}
	if reportPath := os.Getenv("REPORT_PATH"); reportPath != "" {
		pipelineConfig.Report.OutputPath = reportPath
	}

	err = pipelineConfig.validate()
	if err != nil {
		return nil, err
	}

	return &pipelineConfig, nil
}

func (pc *PipelineConfig) validate() error {
	if pc.ChunkSize < 1 {
		return ErrInvalidChunkSize
	}
	if pc.Rollback.OffsetSecs <= 0 {
		return ErrInvalidOffset
	}
	if pc.Rollback.IsolationMaxSecs >= pc.Rollback.CandidateMaxSecs {
		return ErrInvalidThresholds
	}
	return nil
}
