package main

import (
	"cropRecommendation/domain"

	"github.com/xuri/excelize/v2"
)

const (
	compatibleSheet   = "Compatible"
	incompatibleSheet = "Incompatible"
)

// writeRankingXLSX stores both halves of a ranking in one workbook, a sheet each.
func writeRankingXLSX(path string, ranking domain.Ranking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", compatibleSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(incompatibleSheet); err != nil {
		return err
	}

	if err := writeResults(f, compatibleSheet, ranking.CompatibleCrops); err != nil {
		return err
	}
	if err := writeResults(f, incompatibleSheet, ranking.IncompatibleCrops); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeResults(f *excelize.File, sheet string, results []domain.ScoreResult) error {
	for i, h := range []string{"Rank", "Crop", "Compatibility (%)"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, res := range results {
		row := []interface{}{r + 1, res.Crop, res.Compatibility}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}
