package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
	"github.com/de-tools/fdd-atlas/pkg/services/normalizer"
)

var (
	codeHeaders = map[string]bool{
		"code": true, "codigo": true, "código": true, "cuenta": true,
		"account": true, "cta": true, "cod": true,
	}
	descriptionHeaders = map[string]bool{
		"description": true, "descripcion": true, "descripción": true,
		"nombre": true, "name": true, "concepto": true,
	}
)

// ReadFile parses a trial balance exported as CSV.
func ReadFile(path string) (domain.Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("open balance file: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses CSV content into a Ledger. The column separator is
// sniffed from the header line; both comma and semicolon exports are
// accepted.
func Read(r io.Reader, sourceFile string) (domain.Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("read balance file: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = sniffDelimiter(string(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("parse balance file: %w", err)
	}
	if len(rows) < 2 {
		return domain.Ledger{}, fmt.Errorf("balance file %s has no data rows", sourceFile)
	}

	header := rows[0]
	layout := detectLayout(header)
	if len(layout.periodCols) == 0 {
		return domain.Ledger{}, fmt.Errorf("balance file %s has no recognizable period columns", sourceFile)
	}

	l := domain.Ledger{SourceFile: sourceFile}
	for _, period := range layout.periodCols {
		l.Periods = append(l.Periods, period)
	}
	sort.Slice(l.Periods, func(i, j int) bool { return l.Periods[i].Before(l.Periods[j]) })

	for _, row := range rows[1:] {
		code := cell(row, layout.codeCol)
		if code == "" {
			continue
		}
		acc := domain.Account{
			Code:        code,
			Description: cell(row, layout.descriptionCol),
			Values:      map[string]float64{},
		}
		for col, period := range layout.periodCols {
			num, ok := parseNumber(cell(row, col))
			if !ok {
				continue
			}
			acc.Values[period.Name] = num
		}
		l.Accounts = append(l.Accounts, acc)
	}

	l.Accounts = normalizer.NormalizeHierarchy(l.Accounts)
	return l, nil
}

type layout struct {
	codeCol        int
	descriptionCol int
	periodCols     map[int]domain.Period
}

func detectLayout(header []string) layout {
	lay := layout{codeCol: 0, descriptionCol: 1, periodCols: map[int]domain.Period{}}
	for col, name := range header {
		lower := strings.ToLower(strings.TrimSpace(name))
		switch {
		case codeHeaders[lower]:
			lay.codeCol = col
		case descriptionHeaders[lower]:
			lay.descriptionCol = col
		default:
			if p := domain.ParsePeriod(name); p.Year != 0 {
				lay.periodCols[col] = p
			}
		}
	}
	return lay
}

func sniffDelimiter(data string) rune {
	line := data
	if idx := strings.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// parseNumber reads Spanish-formatted amounts: dot as thousands
// separator, comma as decimal mark, parentheses for negatives. Blank
// cells and bare dashes mean "no observation", not zero.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.NewReplacer("€", "", " ", "", " ", "", " ", "").Replace(s)
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	num := d.InexactFloat64()
	if negative {
		num = -num
	}
	return num, true
}
