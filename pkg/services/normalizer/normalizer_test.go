package normalizer

import (
	"fmt"
	"testing"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyLedger(years []int, monthsPerYear map[int]int) domain.Ledger {
	var l domain.Ledger
	values := map[string]float64{}
	abbrevs := []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
	for _, year := range years {
		upTo := monthsPerYear[year]
		for m := 1; m <= upTo; m++ {
			name := fmt.Sprintf("%s-%02d", abbrevs[m-1], year%100)
			l.Periods = append(l.Periods, domain.ParsePeriod(name))
			values[name] = 100
		}
	}
	l.Accounts = []domain.Account{{Code: "600000", Description: "Compras", Values: values}}
	return l
}

func TestDetectFiscalPeriods(t *testing.T) {
	l := monthlyLedger([]int{2022, 2023, 2024}, map[int]int{2022: 12, 2023: 12, 2024: 6})
	fp := DetectFiscalPeriods(l)

	assert.Equal(t, []int{2022, 2023}, fp.CompleteYears)
	assert.Equal(t, 2024, fp.LatestYear)
	assert.Equal(t, 6, fp.ReferenceMonth)
}

func TestWindow_TwoFiscalYearsAndTwoYTDs(t *testing.T) {
	l := monthlyLedger([]int{2021, 2022, 2023, 2024}, map[int]int{2021: 12, 2022: 12, 2023: 12, 2024: 6})
	w := Window(l)

	var names []string
	for _, p := range w.Periods {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"FY22", "FY23", "YTD23", "YTD24"}, names)
	require.Len(t, w.Pairs, 2)
	assert.Equal(t, [2]string{"FY22", "FY23"}, w.Pairs[0])
	assert.Equal(t, [2]string{"YTD23", "YTD24"}, w.Pairs[1])
}

func TestWindow_SingleCompleteYear(t *testing.T) {
	l := monthlyLedger([]int{2023, 2024}, map[int]int{2023: 12, 2024: 3})
	w := Window(l)

	var names []string
	for _, p := range w.Periods {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"FY23", "YTD23", "YTD24"}, names)
	// no fiscal pair with a single complete year
	require.Len(t, w.Pairs, 1)
	assert.Equal(t, [2]string{"YTD23", "YTD24"}, w.Pairs[0])
}

func TestFiscalYearTotals_PartialYearContributes(t *testing.T) {
	acc := domain.Account{Code: "700000", Values: map[string]float64{
		"Ene-23": 10, "Feb-23": 20, "Ene-24": 5,
	}}
	monthly := []domain.Period{
		domain.ParsePeriod("Ene-23"),
		domain.ParsePeriod("Feb-23"),
		domain.ParsePeriod("Mar-23"),
		domain.ParsePeriod("Ene-24"),
	}
	totals := FiscalYearTotals(acc, monthly)
	assert.Equal(t, map[int]float64{2023: 30, 2024: 5}, totals)
}

func TestFiscalYearTotals_NoObservationOmitsYear(t *testing.T) {
	acc := domain.Account{Code: "700000", Values: map[string]float64{"Ene-24": 5}}
	monthly := []domain.Period{domain.ParsePeriod("Ene-23"), domain.ParsePeriod("Ene-24")}
	totals := FiscalYearTotals(acc, monthly)
	_, ok := totals[2023]
	assert.False(t, ok)
}

func TestYearToDateTotals_CutsAtReferenceMonth(t *testing.T) {
	l := monthlyLedger([]int{2023, 2024}, map[int]int{2023: 12, 2024: 6})
	acc := l.Accounts[0]

	totals := YearToDateTotals(acc, l, 0)
	// latest month is Jun-24, so both years sum six months
	assert.Equal(t, 600.0, totals[2023])
	assert.Equal(t, 600.0, totals[2024])
}

func TestAggregate(t *testing.T) {
	l := monthlyLedger([]int{2022, 2023, 2024}, map[int]int{2022: 12, 2023: 12, 2024: 6})
	w := Window(l)
	agg := Aggregate(l, w)

	require.Len(t, agg.Accounts, 1)
	values := agg.Accounts[0].Values
	assert.Equal(t, 1200.0, values["FY22"])
	assert.Equal(t, 1200.0, values["FY23"])
	assert.Equal(t, 600.0, values["YTD23"])
	assert.Equal(t, 600.0, values["YTD24"])
}

func TestNormalizeHierarchy(t *testing.T) {
	accounts := []domain.Account{
		{Code: "600000"},
		{Code: "620000"},
		{Code: "625000"},
		{Code: "625100"},
	}
	accounts = NormalizeHierarchy(accounts)

	byCode := map[string]domain.Account{}
	for _, acc := range accounts {
		byCode[acc.Code] = acc
	}
	assert.Equal(t, "", byCode["600000"].ParentCode)
	assert.Equal(t, "600000", byCode["620000"].ParentCode)
	assert.Equal(t, "620000", byCode["625000"].ParentCode)
	assert.Equal(t, "625000", byCode["625100"].ParentCode)
	assert.Equal(t, 1, byCode["600000"].Level)
	assert.Equal(t, 4, byCode["625100"].Level)
}
