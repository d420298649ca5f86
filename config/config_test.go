package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYaml = `trips_glob: "data/*-divvy-tripdata.csv"
timestamp_layout: "2006-01-02 15:04:05"
chunk_size: 20000
rollback:
  date: "2023-11-05"
  clock_boundary: "02:00"
  offset_secs: 3600
  candidate_max_secs: 1
  isolation_max_secs: -100
report:
  output_path: "cyclistic_report.xlsx"
`

func writeConfigFile(t *testing.T, contents string) {
	t.Helper()
	configFilepath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configFilepath, []byte(contents), 0o644)
	require.NoError(t, err)
	t.Setenv(configFilepathEnv, configFilepath)
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads a valid config file", func(t *testing.T) {
		writeConfigFile(t, validConfigYaml)

		pipelineConfig, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "data/*-divvy-tripdata.csv", pipelineConfig.TripsGlob)
		assert.Equal(t, 20000, pipelineConfig.ChunkSize)
		assert.Equal(t, "2023-11-05", pipelineConfig.Rollback.Date)
		assert.Equal(t, "02:00", pipelineConfig.Rollback.ClockBoundary)
		assert.Equal(t, int64(3600), pipelineConfig.Rollback.OffsetSecs)
		assert.Equal(t, int64(1), pipelineConfig.Rollback.CandidateMaxSecs)
		assert.Equal(t, int64(-100), pipelineConfig.Rollback.IsolationMaxSecs)
		assert.Equal(t, "cyclistic_report.xlsx", pipelineConfig.Report.OutputPath)
	})

	t.Run("environment overrides the data glob and report path", func(t *testing.T) {
		writeConfigFile(t, validConfigYaml)
		t.Setenv("TRIPS_GLOB", "/mnt/trips/*.csv")
		t.Setenv("REPORT_PATH", "/tmp/report.xlsx")

		pipelineConfig, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "/mnt/trips/*.csv", pipelineConfig.TripsGlob)
		assert.Equal(t, "/tmp/report.xlsx", pipelineConfig.Report.OutputPath)
	})

	t.Run("rejects a chunk size below one", func(t *testing.T) {
		writeConfigFile(t, `chunk_size: 0
rollback:
  offset_secs: 3600
  candidate_max_secs: 1
  isolation_max_secs: -100
`)

		_, err := LoadConfig()

		require.ErrorIs(t, err, ErrInvalidChunkSize)
	})

	t.Run("rejects a non-positive rollback offset", func(t *testing.T) {
		writeConfigFile(t, `chunk_size: 20000
rollback:
  offset_secs: 0
  candidate_max_secs: 1
  isolation_max_secs: -100
`)

		_, err := LoadConfig()

		require.ErrorIs(t, err, ErrInvalidOffset)
	})

	t.Run("rejects an isolation threshold above the candidate threshold", func(t *testing.T) {
		writeConfigFile(t, `chunk_size: 20000
rollback:
  offset_secs: 3600
  candidate_max_secs: 1
  isolation_max_secs: 10
`)

		_, err := LoadConfig()

		require.ErrorIs(t, err, ErrInvalidThresholds)
	})

	t.Run("fails when the config file does not exist", func(t *testing.T) {
		t.Setenv(configFilepathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := LoadConfig()

		require.Error(t, err)
	})
}
