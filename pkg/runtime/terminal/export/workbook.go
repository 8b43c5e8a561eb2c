package export

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

// WorkbookReporter writes the report as an .xlsx workbook with the same
// two-section layout as the delimited output, on a single sheet.
type WorkbookReporter struct {
	writer io.Writer
	config Config
}

func NewWorkbookReporter(writer io.Writer, config Config) *WorkbookReporter {
	if writer == nil {
		writer = os.Stdout
	}
	if config.Sheet == "" {
		config.Sheet = DefaultConfig().Sheet
	}
	return &WorkbookReporter{
		writer: writer,
		config: config,
	}
}

func (c *WorkbookReporter) Handle(report *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := c.config.Sheet
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}

	line := 1
	for i, section := range report.Sections {
		if i > 0 {
			line++
		}

		if err := setRow(f, sheet, line, []interface{}{section.Title}); err != nil {
			return err
		}
		titleCell, _ := excelize.CoordinatesToCellName(1, line)
		if err := f.SetCellStyle(sheet, titleCell, titleCell, bold); err != nil {
			return fmt.Errorf("failed to style section title: %w", err)
		}
		line++

		header := make([]interface{}, 0, len(section.Columns))
		for _, column := range section.Columns {
			header = append(header, column)
		}
		if err := setRow(f, sheet, line, header); err != nil {
			return err
		}
		line++

		for _, row := range section.Rows {
			cells := make([]interface{}, 0, len(row.Values)+1)
			cells = append(cells, row.Label)
			for _, v := range row.Values {
				cells = append(cells, v)
			}
			if err := setRow(f, sheet, line, cells); err != nil {
				return err
			}
			line++
		}
	}

	if err := f.Write(c.writer); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, line int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", line, err)
	}
	return nil
}
