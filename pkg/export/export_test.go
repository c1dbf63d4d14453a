package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() domain.QAReport {
	return domain.QAReport{
		AnalysisPeriods: []string{"FY23", "FY24"},
		ComparisonPairs: []string{"FY23_vs_FY24"},
		RevenueTotals: map[string]domain.Value{
			"FY23": domain.SomeValue(100000),
			"FY24": domain.SomeValue(150000),
		},
		Items: []domain.QAItem{
			{
				Code:        "70000000",
				Description: "Ventas",
				Mapping:     domain.CategoryMapping{Level1: "EBITDA", Level2: "Revenue", Level3: "Gross revenue"},
				Values: map[string]domain.Value{
					"FY23": domain.SomeValue(100000),
					"FY24": domain.SomeValue(150000),
				},
				AbsChanges: map[string]domain.Value{"FY23_vs_FY24": domain.SomeValue(50000)},
				PctChanges: map[string]domain.Value{"FY23_vs_FY24": domain.SomeValue(50)},
				PctOverRevenue: map[string]domain.Value{
					"FY23": domain.SomeValue(100),
					"FY24": domain.SomeValue(100),
				},
				PPChanges: map[string]domain.Value{"FY23_vs_FY24": domain.SomeValue(0)},
				Question:  "¿Han aumentado las ventas?",
				Reason:    "Regla aplicada: prefijo='700'",
				Priority:  domain.PriorityAlta,
				Status:    domain.StatusOpen,
			},
			{
				Code:        "62000000",
				Description: "Servicios",
				Mapping:     domain.CategoryMapping{Level1: "EBITDA", Level2: "OPEX", Level3: "External services"},
				Values:      map[string]domain.Value{"FY24": domain.SomeValue(2000)},
				Priority:    domain.PriorityBaja,
				Status:      domain.StatusOpen,
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	reader := csv.NewReader(&buf)
	reader.Comma = ';'
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	assert.Equal(t, "Mapping ILV 1", header[0])
	assert.Contains(t, header, "FY23")
	assert.Contains(t, header, "Var FY23_vs_FY24")
	assert.Contains(t, header, "Var% FY23_vs_FY24")
	assert.Contains(t, header, "% Rev FY24")
	assert.Contains(t, header, "p.p. FY23_vs_FY24")
	assert.Contains(t, header, "Pregunta ILV")
	assert.Contains(t, header, "Seguimiento")

	ventas := rows[1]
	assert.Equal(t, "EBITDA", ventas[0])
	assert.Equal(t, "Ventas", ventas[3])
	assert.Equal(t, "70000000", ventas[4])
	assert.Equal(t, "100000.00", ventas[5])
	assert.Equal(t, "50000.00", ventas[7])
	assert.Equal(t, "50.0", ventas[8])

	// absent values render empty
	servicios := rows[2]
	assert.Equal(t, "", servicios[5])
	assert.Equal(t, "2000.00", servicios[6])
	assert.Equal(t, "Baja", servicios[len(servicios)-4])
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)
	require.NoError(t, reporter.Handle(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "# Resumen Ejecutivo")
	assert.Contains(t, out, "**Periodo analizado:** FY23 a FY24")
	assert.Contains(t, out, "Total de variaciones analizadas: 2")
	assert.Contains(t, out, "Variaciones de alta prioridad: 1")
	assert.Contains(t, out, "**Ventas**: 50.0% (Prioridad: Alta)")
	assert.Contains(t, out, "## Recomendaciones")
}

func TestReporter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)
	require.NoError(t, reporter.Handle(domain.QAReport{}))
	assert.Contains(t, buf.String(), "Total de variaciones analizadas: 0")
	assert.NotContains(t, buf.String(), "Top Variaciones")
}