package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
)

// Reporter renders the executive summary of a questionnaire run.
type Reporter struct {
	writer io.Writer
	topN   int
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer, topN: 5}
}

type summaryData struct {
	PeriodBase    string
	PeriodCompare string
	TotalItems    int
	AltaCount     int
	MediaCount    int
	BajaCount     int
	Top           []topVariation
}

type topVariation struct {
	Description string
	Pct         string
	Priority    string
}

func (c *Reporter) Handle(report domain.QAReport) error {
	tmpl := `# Resumen Ejecutivo - Due Diligence Financiero

**Periodo analizado:** {{.PeriodBase}} a {{.PeriodCompare}}

## Hallazgos Principales
- Total de variaciones analizadas: {{.TotalItems}}
- Variaciones de alta prioridad: {{.AltaCount}}
- Variaciones de media prioridad: {{.MediaCount}}
- Variaciones de baja prioridad: {{.BajaCount}}
{{if .Top}}
## Top Variaciones
{{range .Top}}- **{{.Description}}**: {{.Pct}} (Prioridad: {{.Priority}})
{{end}}{{end}}
## Recomendaciones
1. Revisar las variaciones de alta prioridad con la dirección
2. Solicitar documentación soporte para cada hallazgo
3. Verificar consistencia de respuestas
`

	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, c.buildData(report))
}

func (c *Reporter) buildData(report domain.QAReport) summaryData {
	data := summaryData{TotalItems: len(report.Items)}
	if len(report.AnalysisPeriods) > 0 {
		data.PeriodBase = report.AnalysisPeriods[0]
		data.PeriodCompare = report.AnalysisPeriods[len(report.AnalysisPeriods)-1]
	}
	counts := report.CountByPriority()
	data.AltaCount = counts[domain.PriorityAlta]
	data.MediaCount = counts[domain.PriorityMedia]
	data.BajaCount = counts[domain.PriorityBaja]

	for _, item := range report.Questions() {
		if len(data.Top) >= c.topN {
			break
		}
		if item.Priority != domain.PriorityAlta {
			continue
		}
		pct := "N/A"
		for _, pair := range report.ComparisonPairs {
			if v, ok := item.PctChanges[pair]; ok {
				pct = fmt.Sprintf("%.1f%%", v.Num)
				break
			}
		}
		data.Top = append(data.Top, topVariation{
			Description: item.Description,
			Pct:         pct,
			Priority:    string(item.Priority),
		})
	}
	return data
}
