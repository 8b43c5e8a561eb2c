package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
)

// TableConfig sets the column widths of console tables.
type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 18,
		ValueWidth: 16,
	}
}

// Reporter outputs reports to the console as fixed width tables
type Reporter struct {
	writer io.Writer
	config TableConfig
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer, config TableConfig) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	defaults := DefaultTableConfig()
	if config.LabelWidth <= 0 {
		config.LabelWidth = defaults.LabelWidth
	}
	if config.ValueWidth <= 0 {
		config.ValueWidth = defaults.ValueWidth
	}
	return &Reporter{writer: writer, config: config}
}

const tableTemplate = `{{range $i, $section := .Sections}}{{if $i}}
{{end}}=== {{$section.Title}} ===
{{separator $section.Columns}}
{{header $section.Columns}}
{{separator $section.Columns}}
{{range $section.Rows}}{{row .}}
{{end}}{{separator $section.Columns}}
{{end}}`

func (c *Reporter) Handle(report *domain.Report) error {
	t, err := template.New("report").Funcs(template.FuncMap{
		"separator": c.separator,
		"header":    c.header,
		"row":       c.row,
	}).Parse(tableTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func (c *Reporter) separator(columns []string) string {
	var b strings.Builder
	b.WriteString("+")
	for i := range columns {
		width := c.config.ValueWidth
		if i == 0 {
			width = c.config.LabelWidth
		}
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	return b.String()
}

func (c *Reporter) header(columns []string) string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		if i == 0 {
			cells[i] = fmt.Sprintf("%-*s", c.config.LabelWidth, col)
		} else {
			cells[i] = fmt.Sprintf("%*s", c.config.ValueWidth, col)
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func (c *Reporter) row(row domain.ReportRow) string {
	cells := make([]string, 0, len(row.Values)+1)
	cells = append(cells, fmt.Sprintf("%-*s", c.config.LabelWidth, row.Label))
	for _, v := range row.Values {
		cells = append(cells, fmt.Sprintf("%*s", c.config.ValueWidth, export.FormatValue(v)))
	}
	return "| " + strings.Join(cells, " | ") + " |"
}
