package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/BrianBakkala/Case-Study-Cyclistic/config"
	"github.com/BrianBakkala/Case-Study-Cyclistic/loader"
	"github.com/BrianBakkala/Case-Study-Cyclistic/pipeline"
	"github.com/BrianBakkala/Case-Study-Cyclistic/reporting"
)

func main() {
	pipelineConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[analysis] error loading config: %s", err.Error())
	}

	tripLoader := loader.NewTripLoader(pipelineConfig.TripsGlob, pipelineConfig.TimestampLayout)
	records, err := tripLoader.Load()
	if err != nil {
		log.Fatalf("[analysis] error loading trip data: %s", err.Error())
	}

	cleaningPipeline, err := pipeline.New(pipelineConfig)
	if err != nil {
		log.Fatalf("[analysis] error building pipeline: %s", err.Error())
	}

	cleanRecords := cleaningPipeline.Run(records)

	summaries := reporting.Summarize(cleanRecords)
	err = reporting.WriteWorkbook(pipelineConfig.Report.OutputPath, summaries)
	if err != nil {
		log.Fatalf("[analysis] error writing report: %s", err.Error())
	}

	log.Info("[analysis] done")
}
