package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Handler renders a report to its destination
type Handler interface {
	Handle(report *domain.Report) error
}

type Config struct {
	// Delimiter separates fields in delimited output.
	Delimiter rune
	// Sheet names the worksheet in workbook output.
	Sheet string
}

func DefaultConfig() Config {
	return Config{
		Delimiter: ',',
		Sheet:     "Report",
	}
}

// ValidateFormat reports whether NewHandler knows format.
func ValidateFormat(format string) error {
	switch format {
	case "", FormatCSV, FormatXLSX:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q. Supported formats: %v",
			format, []string{FormatCSV, FormatXLSX})
	}
}

// NewHandler picks the renderer for an output format.
func NewHandler(format string, writer io.Writer, config Config) (Handler, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if format == FormatXLSX {
		return NewWorkbookReporter(writer, config), nil
	}
	return NewReporter(writer, config), nil
}

// Reporter writes the report as delimited text: for each section a title
// line, a column header and the data rows, sections separated by a blank line.
type Reporter struct {
	writer io.Writer
	config Config
}

func NewReporter(writer io.Writer, config Config) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if config.Delimiter == 0 {
		config.Delimiter = DefaultConfig().Delimiter
	}
	return &Reporter{
		writer: writer,
		config: config,
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	w := csv.NewWriter(c.writer)
	w.Comma = c.config.Delimiter

	for i, section := range report.Sections {
		if i > 0 {
			if err := w.Write([]string{}); err != nil {
				return fmt.Errorf("failed to write section separator: %w", err)
			}
		}
		if err := w.Write([]string{section.Title}); err != nil {
			return fmt.Errorf("failed to write section title: %w", err)
		}
		if err := w.Write(section.Columns); err != nil {
			return fmt.Errorf("failed to write column header: %w", err)
		}
		for _, row := range section.Rows {
			record := make([]string, 0, len(row.Values)+1)
			record = append(record, row.Label)
			for _, v := range row.Values {
				record = append(record, FormatValue(v))
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("failed to write row %q: %w", row.Label, err)
			}
		}
	}

	w.Flush()
	return w.Error()
}
