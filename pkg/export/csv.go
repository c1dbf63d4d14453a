package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
)

// WriteCSV lays the questionnaire out as one row per account, with the
// period values, per-pair variations and the review columns at the end.
func WriteCSV(w io.Writer, r domain.QAReport) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	header := []string{"Mapping ILV 1", "Mapping ILV 2", "Mapping ILV 3", "Descripción", "Cuenta"}
	header = append(header, r.AnalysisPeriods...)
	for _, pair := range r.ComparisonPairs {
		header = append(header, "Var "+pair)
	}
	for _, pair := range r.ComparisonPairs {
		header = append(header, "Var% "+pair)
	}
	for _, period := range r.AnalysisPeriods {
		header = append(header, "% Rev "+period)
	}
	for _, pair := range r.ComparisonPairs {
		header = append(header, "p.p. "+pair)
	}
	header = append(header, "Pregunta ILV", "Razón de la pregunta", "Prioridad", "Estatus", "Respuesta", "Seguimiento")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, item := range r.Items {
		row := []string{
			item.Mapping.Level1,
			item.Mapping.Level2,
			item.Mapping.Level3,
			item.Description,
			item.Code,
		}
		for _, period := range r.AnalysisPeriods {
			row = append(row, formatValue(item.Values[period], "%.2f"))
		}
		for _, pair := range r.ComparisonPairs {
			row = append(row, formatValue(item.AbsChanges[pair], "%.2f"))
		}
		for _, pair := range r.ComparisonPairs {
			row = append(row, formatValue(item.PctChanges[pair], "%.1f"))
		}
		for _, period := range r.AnalysisPeriods {
			row = append(row, formatValue(item.PctOverRevenue[period], "%.1f"))
		}
		for _, pair := range r.ComparisonPairs {
			row = append(row, formatValue(item.PPChanges[pair], "%.1f"))
		}
		row = append(row,
			item.Question,
			item.Reason,
			string(item.Priority),
			string(item.Status),
			item.Answer,
			item.FollowUp,
		)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", item.Code, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(v domain.Value, verb string) string {
	num, ok := v.Float()
	if !ok {
		return ""
	}
	return fmt.Sprintf(verb, num)
}
