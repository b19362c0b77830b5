package services

import (
	"context"
	"fmt"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/xuri/excelize/v2"
)

const exportPageSize = 1000

var exportSheets = []struct {
	Module models.TestModule
	Name   string
}{
	{models.ModuleSituational, "Situational"},
	{models.ModuleStory, "Stories"},
	{models.ModuleWord, "Word Association"},
	{models.ModulePIQ, "PIQ"},
	{models.ModulePhysical, "Physical"},
}

type exportService struct {
	results repositories.ResultRepository
	logger  utils.Logger
}

func NewExportService(results repositories.ResultRepository, logger utils.Logger) ExportService {
	return &exportService{
		results: results,
		logger:  logger,
	}
}

// ExportHistory writes one sheet per test module with the user's full
// attempt history, newest first.
func (s *exportService) ExportHistory(ctx context.Context, userID uint) ([]byte, error) {
	f := excelize.NewFile()

	for i, sheet := range exportSheets {
		module := sheet.Module
		results, _, err := s.results.ListByUser(ctx, userID, repositories.ResultFilters{
			Module:    &module,
			Limit:     exportPageSize,
			SortOrder: "desc",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load %s results: %w", module, err)
		}

		index, err := f.NewSheet(sheet.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}

		headers := []string{"Attempt Date", "Score", "Max Score", "Percentage", "Risk Level"}
		for col, header := range headers {
			cell := fmt.Sprintf("%c1", 'A'+col)
			f.SetCellValue(sheet.Name, cell, header)
		}

		for rowIndex, result := range results {
			row := rowIndex + 2
			f.SetCellValue(sheet.Name, fmt.Sprintf("A%d", row), result.CreatedAt.Format("2006-01-02 15:04"))
			f.SetCellValue(sheet.Name, fmt.Sprintf("B%d", row), result.Score)
			f.SetCellValue(sheet.Name, fmt.Sprintf("C%d", row), result.MaxScore)
			f.SetCellValue(sheet.Name, fmt.Sprintf("D%d", row), result.Percentage)
			f.SetCellValue(sheet.Name, fmt.Sprintf("E%d", row), result.RiskLevel)
		}
	}

	// Drop the default sheet so the workbook opens on module data.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		s.logger.Warn("Failed to remove default sheet", "error", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported history workbook", "user_id", userID)
	return buf.Bytes(), nil
}
