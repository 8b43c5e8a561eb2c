package domain

// Report represents a complete analysis report
type Report struct {
	Sections []ReportSection
}

// ReportSection represents one titled table in the report
type ReportSection struct {
	Title   string
	Columns []string
	Rows    []ReportRow
}

// ReportRow is a labelled row of numeric cells, one per non-label column
type ReportRow struct {
	Label  string
	Values []float64
}
