package reporting

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	breakdownSheet = "Breakdown"
)

var summaryHeader = []string{
	"segment", "rides", "mean_duration_secs", "max_duration_secs",
	"mean_great_circle_m", "mean_manhattan_m",
}

// WriteWorkbook saves the per-segment summaries as an xlsx workbook with a
// summary sheet and a weekday/hour breakdown sheet
func WriteWorkbook(outputPath string, summaries []*SegmentSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("error renaming summary sheet: %s", err)
	}
	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return fmt.Errorf("error creating breakdown sheet: %s", err)
	}

	writeSummarySheet(f, summaries)
	writeBreakdownSheet(f, summaries)

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("error saving report workbook: %s", err)
	}

	log.Infof("[reporting][method: WriteWorkbook][status: OK] report saved to %s", outputPath)
	return nil
}

func writeSummarySheet(f *excelize.File, summaries []*SegmentSummary) {
	for i, name := range summaryHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summarySheet, cell, name)
	}

	for rowIdx, summary := range summaries {
		values := []interface{}{
			summary.Segment,
			summary.Rides,
			summary.MeanDurationSecs,
			summary.MaxDurationSecs,
			summary.MeanGreatCircleM,
			summary.MeanManhattanM,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(summarySheet, cell, value)
		}
	}
}

// writeBreakdownSheet writes one block of ride counts per segment: a weekday
// row followed by an hour-of-day row
func writeBreakdownSheet(f *excelize.File, summaries []*SegmentSummary) {
	row := 1
	for _, summary := range summaries {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(breakdownSheet, cell, summary.Segment)

		for colIdx, weekday := range weekdayOrder {
			cell, _ = excelize.CoordinatesToCellName(colIdx+2, row)
			f.SetCellValue(breakdownSheet, cell, weekday)
			cell, _ = excelize.CoordinatesToCellName(colIdx+2, row+1)
			f.SetCellValue(breakdownSheet, cell, summary.RidesByWeekday[weekday])
		}
		row += 2

		cell, _ = excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(breakdownSheet, cell, summary.Segment+" by hour")
		for hour := 0; hour < 24; hour++ {
			cell, _ = excelize.CoordinatesToCellName(hour+2, row)
			f.SetCellValue(breakdownSheet, cell, hour)
			cell, _ = excelize.CoordinatesToCellName(hour+2, row+1)
			f.SetCellValue(breakdownSheet, cell, summary.RidesByStartHour[hour])
		}
		row += 3
	}
}
