package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExcelStyles holds Excel formatting styles
type ExcelStyles struct {
	HeaderStyle int
	BaseStyle   int
}

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteResultXLSX writes the melody and a summary to an Excel workbook.
func (r *DefaultExcelReporter) WriteResultXLSX(result *Result, path string) error {
	// Ensure directory exists before creating file
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const melodySheet = "Melody"
	const summarySheet = "Summary"

	fx.SetSheetName(fx.GetSheetName(0), melodySheet)
	if _, err := fx.NewSheet(summarySheet); err != nil {
		return err
	}

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeMelodySheet(fx, melodySheet, result, styles); err != nil {
		return err
	}
	if err := r.writeSummarySheet(fx, summarySheet, result, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

// createExcelStyles creates the workbook styles
func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	// Header style - dark background with white text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	return styles, err
}

// writeMelodySheet writes one row per note
func (r *DefaultExcelReporter) writeMelodySheet(fx *excelize.File, sheet string, result *Result, styles ExcelStyles) error {
	headers := []string{"#", "String", "Fret", "Pitch (MIDI)", "Note", "Duration (beats)"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle); err != nil {
			return err
		}
	}

	for i, n := range result.Notes {
		values := []interface{}{i + 1, n.String, n.Fret, n.Pitch, n.Name, n.Duration}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
			if err := fx.SetCellStyle(sheet, cell, cell, styles.BaseStyle); err != nil {
				return err
			}
		}
	}

	return fx.SetColWidth(sheet, "A", "F", 14)
}

// writeSummarySheet writes the run summary
func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, result *Result, styles ExcelStyles) error {
	rows := [][]interface{}{
		{"Score", result.Score},
		{"Notes", len(result.Notes)},
		{"Tempo (BPM)", result.Tempo},
		{"Generations", result.Generations},
		{"Runtime (s)", result.ElapsedSeconds},
	}

	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+1)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		label, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := fx.SetCellStyle(sheet, label, label, styles.HeaderStyle); err != nil {
			return err
		}
	}

	return fx.SetColWidth(sheet, "A", "B", 16)
}
