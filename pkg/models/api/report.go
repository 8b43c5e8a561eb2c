package api

type ReportRow struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

type ReportSection struct {
	Title   string      `json:"title"`
	Columns []string    `json:"columns"`
	Rows    []ReportRow `json:"rows"`
}

type Report struct {
	Sections []ReportSection `json:"sections"`
}
