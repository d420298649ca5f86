package pipeline

import (
	log "github.com/sirupsen/logrus"

	"github.com/BrianBakkala/Case-Study-Cyclistic/config"
	"github.com/BrianBakkala/Case-Study-Cyclistic/domain/entities/trip"
	"github.com/BrianBakkala/Case-Study-Cyclistic/pipeline/corrector"
	"github.com/BrianBakkala/Case-Study-Cyclistic/pipeline/deriver"
	"github.com/BrianBakkala/Case-Study-Cyclistic/pipeline/filter"
)

// Pipeline runs the cleaning stages in order: metrics deriver, anomaly
// corrector, validity filter. Each stage takes a table and returns a new one,
// so no stage aliases another stage's output.
type Pipeline struct {
	deriver   *deriver.MetricsDeriver
	corrector *corrector.AnomalyCorrector
}

func New(pipelineConfig *config.PipelineConfig) (*Pipeline, error) {
	rollback := pipelineConfig.Rollback
	correctorConfig, err := corrector.ParseConfig(
		rollback.Date,
		rollback.ClockBoundary,
		rollback.OffsetSecs,
		rollback.CandidateMaxSecs,
		rollback.IsolationMaxSecs,
	)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		deriver:   deriver.NewMetricsDeriver(pipelineConfig.ChunkSize),
		corrector: corrector.NewAnomalyCorrector(correctorConfig),
	}, nil
}

// Run produces the clean table the reporting layer consumes
func (p *Pipeline) Run(records []trip.TripRecord) []trip.TripRecord {
	derived := p.deriver.Derive(records)
	corrected := p.corrector.Correct(derived)
	clean := filter.Apply(corrected)

	log.Infof("[stage: pipeline][method: Run][status: OK] %v raw records in, %v clean records out", len(records), len(clean))
	return clean
}
