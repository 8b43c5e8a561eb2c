package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

func MapReportDomainToApi(report *domain.Report) api.Report {
	out := api.Report{Sections: make([]api.ReportSection, 0, len(report.Sections))}
	for _, section := range report.Sections {
		out.Sections = append(out.Sections, MapReportSectionDomainToApi(section))
	}
	return out
}

func MapReportSectionDomainToApi(section domain.ReportSection) api.ReportSection {
	apiSection := api.ReportSection{
		Title:   section.Title,
		Columns: section.Columns,
		Rows:    []api.ReportRow{},
	}

	for _, row := range section.Rows {
		apiSection.Rows = append(apiSection.Rows, api.ReportRow{
			Label:  row.Label,
			Values: row.Values,
		})
	}

	return apiSection
}
