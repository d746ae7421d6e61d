package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/boca-banker/boca-banker/pkg/models/api"
)

// Reporter outputs study results to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Writer() io.Writer {
	return c.writer
}

func (c *Reporter) HandleReport(report api.StudyReport) error {
	tmpl := `
Cost Segregation Study: {{.PropertyAddress}} ({{.PropertyType}}, {{.StudyYear}})

Summary
  First-year deduction:  {{printf "%.2f" .Summary.TotalFirstYearDeduction}}
  Reclassified basis:    {{printf "%.2f" .Summary.TotalReclassified}}
  Bonus depreciation:    {{printf "%.2f" .Summary.TotalBonusDepreciation}}
  5-year tax savings:    {{printf "%.2f" .Summary.FiveYearSavings}}
  NPV of tax savings:    {{printf "%.2f" .Summary.NPVTaxSavings}}

Asset breakdown
{{range .AssetBreakdown}}  - {{.Category}} ({{.RecoveryPeriod}}-year): basis {{printf "%.2f" .CostBasis}}, year 1 {{printf "%.2f" .FirstYearDeduction}}
{{end}}
First year
  With cost seg:    {{printf "%.2f" .FirstYearAnalysis.AcceleratedDeduction}}
  Without cost seg: {{printf "%.2f" .FirstYearAnalysis.StraightLineDeduction}}
  Tax savings:      {{printf "%.2f" .FirstYearAnalysis.TaxSavings}}

Tax savings by year
{{range .TaxSavingsSchedule}}  {{printf "%3d" .Year}}  annual {{printf "%12.2f" .AnnualSavings}}  cumulative {{printf "%12.2f" .CumulativeSavings}}
{{end}}
`
	t, err := template.New("study").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func (c *Reporter) HandleAllocation(allocation api.AllocationResponse) error {
	tmpl := `
Default allocation: {{.PropertyType}} ({{printf "%.2f" .BuildingValue}})

{{range .Items}}  {{printf "%-28s" .Category}} {{printf "%6.2f" .Percentage}}%  {{printf "%14.2f" .Amount}}
{{end}}
`
	t, err := template.New("allocation").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, allocation)
}
