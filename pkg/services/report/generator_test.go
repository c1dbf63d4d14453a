package report

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monthAbbrevs = []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// twoYearLedger has full monthly columns for 2023 and 2024.
func twoYearLedger(accounts ...domain.Account) domain.Ledger {
	l := domain.Ledger{SourceFile: "balance.csv", Accounts: accounts}
	for _, year := range []int{23, 24} {
		for _, abbrev := range monthAbbrevs {
			l.Periods = append(l.Periods, domain.ParsePeriod(fmt.Sprintf("%s-%d", abbrev, year)))
		}
	}
	return l
}

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)
	return g
}

func findItem(t *testing.T, r domain.QAReport, code string) domain.QAItem {
	t.Helper()
	for _, item := range r.Items {
		if item.Code == code {
			return item
		}
	}
	t.Fatalf("item %s not found", code)
	return domain.QAItem{}
}

func TestGenerate_RevenueGrowthScenario(t *testing.T) {
	g := newGenerator(t)
	l := twoYearLedger(domain.Account{
		Code:        "70010000",
		Description: "Ventas de mercaderías nacionales",
		Values:      map[string]float64{"Ene-23": 1000000, "Ene-24": 1500000},
	})

	r, err := g.Generate(context.Background(), l)
	require.NoError(t, err)
	assert.Equal(t, []string{"FY23", "FY24", "YTD23", "YTD24"}, r.AnalysisPeriods)
	assert.Equal(t, []string{"FY23_vs_FY24", "YTD23_vs_YTD24"}, r.ComparisonPairs)

	item := findItem(t, r, "70010000")
	assert.Equal(t, domain.PriorityAlta, item.Priority)
	assert.Equal(t, domain.StatusOpen, item.Status)

	v := item.Variations["FY23_vs_FY24"]
	require.True(t, v.PctChange.Valid)
	assert.InDelta(t, 50.0, v.PctChange.Num, 0.001)
	assert.Equal(t, domain.VariationSigIncrease, v.Kind)
	assert.InDelta(t, 500000.0, v.AbsChange.Num, 0.001)

	require.NotEmpty(t, item.Question)
	assert.Contains(t, item.Question, "FY23")
	assert.Contains(t, item.Question, "FY24")
	assert.Contains(t, item.Question, "mercaderías")
	assert.NotEmpty(t, item.Reason)

	assert.Equal(t, domain.CategoryMapping{Level1: "EBITDA", Level2: "Revenue", Level3: "Gross revenue"}, item.Mapping)
}

func TestGenerate_SmallChangeGetsNoQuestion(t *testing.T) {
	g := newGenerator(t)
	l := twoYearLedger(domain.Account{
		Code:        "62900000",
		Description: "Otros servicios",
		Values:      map[string]float64{"Ene-23": 100, "Ene-24": 102},
	})

	r, err := g.Generate(context.Background(), l)
	require.NoError(t, err)

	item := findItem(t, r, "62900000")
	assert.Empty(t, item.Question)
	assert.Equal(t, domain.PriorityBaja, item.Priority)
}

func TestGenerate_CollapsesDuplicateAccounts(t *testing.T) {
	g := newGenerator(t)
	l := twoYearLedger(
		domain.Account{
			Code:        "70000000",
			Description: "Ventas",
			Values:      map[string]float64{"Ene-23": 600, "Ene-24": 900},
		},
		domain.Account{
			Code:        "70000000",
			Description: "Ventas de mercaderías",
			Values:      map[string]float64{"Feb-23": 400, "Feb-24": 600},
		},
	)

	r, err := g.Generate(context.Background(), l)
	require.NoError(t, err)

	var matches int
	for _, item := range r.Items {
		if item.Code == "70000000" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)

	item := findItem(t, r, "70000000")
	assert.Equal(t, "Ventas de mercaderías", item.Description)
	assert.InDelta(t, 1000.0, item.Values["FY23"].Num, 0.001)
	assert.InDelta(t, 1500.0, item.Values["FY24"].Num, 0.001)
}

func TestGenerate_RevenueShareAndPPChange(t *testing.T) {
	g := newGenerator(t)
	l := twoYearLedger(
		domain.Account{
			Code:        "70000000",
			Description: "Ventas",
			Values:      map[string]float64{"Ene-23": 100000, "Ene-24": 200000},
		},
		domain.Account{
			Code:        "62800000",
			Description: "Suministros",
			Values:      map[string]float64{"Ene-23": 20000, "Ene-24": 30000},
		},
	)

	r, err := g.Generate(context.Background(), l)
	require.NoError(t, err)

	require.True(t, r.RevenueTotals["FY23"].Valid)
	assert.InDelta(t, 100000.0, r.RevenueTotals["FY23"].Num, 0.001)
	assert.InDelta(t, 200000.0, r.RevenueTotals["FY24"].Num, 0.001)

	item := findItem(t, r, "62800000")
	assert.InDelta(t, 20.0, item.PctOverRevenue["FY23"].Num, 0.001)
	assert.InDelta(t, 15.0, item.PctOverRevenue["FY24"].Num, 0.001)
	assert.InDelta(t, -5.0, item.PPChanges["FY23_vs_FY24"].Num, 0.001)

	// the variation record carries the same revenue-share context
	v := item.Variations["FY23_vs_FY24"]
	require.True(t, v.BaseRevenueShare.Valid)
	assert.InDelta(t, 20.0, v.BaseRevenueShare.Num, 0.001)
	require.True(t, v.CompRevenueShare.Valid)
	assert.InDelta(t, 15.0, v.CompRevenueShare.Num, 0.001)
	require.True(t, v.PPChange.Valid)
	assert.InDelta(t, -5.0, v.PPChange.Num, 0.001)
}

func TestGenerate_DriversLeadInDeduplicated(t *testing.T) {
	g := newGenerator(t)
	l := twoYearLedger(
		domain.Account{
			Code:        "70010000",
			Description: "Ventas de mercaderías zona norte",
			Values:      map[string]float64{"Ene-23": 100000, "Ene-24": 160000},
		},
		domain.Account{
			Code:        "70020000",
			Description: "Ventas de mercaderías zona sur",
			Values:      map[string]float64{"Ene-23": 80000, "Ene-24": 128000},
		},
	)

	r, err := g.Generate(context.Background(), l)
	require.NoError(t, err)

	first := findItem(t, r, "70010000")
	second := findItem(t, r, "70020000")

	assert.Contains(t, first.Question, `"drivers"`)
	assert.True(t, strings.HasPrefix(first.Question, "(i) "))

	// the sibling in the same category and pair loses the lead-in
	assert.NotContains(t, second.Question, "drivers")
	assert.True(t, strings.HasPrefix(second.Question, "(i) "))
	assert.Contains(t, second.Question, "¿Han aumentado las ventas")
}

// halfYearTrendLedger grows 60% from FY22 to FY23 while the half-year
// trend only grows 10%.
func halfYearTrendLedger(code, description string) domain.Ledger {
	values := map[string]float64{}
	for _, abbrev := range monthAbbrevs {
		values[abbrev+"-22"] = 10000
		values[abbrev+"-23"] = 16000
	}
	l := domain.Ledger{SourceFile: "balance.csv"}
	for _, year := range []int{22, 23} {
		for _, abbrev := range monthAbbrevs {
			l.Periods = append(l.Periods, domain.ParsePeriod(fmt.Sprintf("%s-%d", abbrev, year)))
		}
	}
	for _, abbrev := range monthAbbrevs[:6] {
		values[abbrev+"-24"] = 17600
		l.Periods = append(l.Periods, domain.ParsePeriod(abbrev+"-24"))
	}
	l.Accounts = []domain.Account{{
		Code:        code,
		Description: description,
		Values:      values,
	}}
	return l
}

func TestGenerate_TrendLineAndSlowdown(t *testing.T) {
	g := newGenerator(t)
	l := halfYearTrendLedger("70000000", "Ventas de mercaderías")

	r, err := g.Generate(context.Background(), l)
	require.NoError(t, err)
	assert.Equal(t, []string{"FY22", "FY23", "YTD23", "YTD24"}, r.AnalysisPeriods)

	item := findItem(t, r, "70000000")
	require.NotEmpty(t, item.Question)
	assert.Contains(t, item.Question, "(iii) Indicar si la tendencia se mantiene en YTD23 vs YTD24")
	assert.Contains(t, item.Question, "desaceleración")
}

func TestGenerate_DriverCompositionFollowsConfiguredPrefixes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analyzer.RevenuePrefixes = []string{"71", "72", "73", "74", "75"}
	g, err := NewGenerator(cfg)
	require.NoError(t, err)

	l := halfYearTrendLedger("70000000", "Ventas de mercaderías")
	r, err := g.Generate(context.Background(), l)
	require.NoError(t, err)

	// outside the configured revenue prefixes the account keeps its
	// single question without the year-to-date trend clause
	item := findItem(t, r, "70000000")
	require.NotEmpty(t, item.Question)
	assert.NotContains(t, item.Question, "(iii)")
}

func TestGenerate_SortsByCategoryThenPriorityThenCode(t *testing.T) {
	g := newGenerator(t)
	l := twoYearLedger(
		domain.Account{
			Code:        "70000000",
			Description: "Ventas",
			Values:      map[string]float64{"Ene-23": 100000, "Ene-24": 200000},
		},
		domain.Account{
			Code:        "60000000",
			Description: "Compras de mercaderías",
			Values:      map[string]float64{"Ene-23": 50000, "Ene-24": 90000},
		},
		domain.Account{
			Code:        "43000000",
			Description: "Clientes",
			Values:      map[string]float64{"Ene-23": 30000, "Ene-24": 45000},
		},
	)

	r, err := g.Generate(context.Background(), l)
	require.NoError(t, err)
	require.Len(t, r.Items, 3)

	// Balance before EBITDA, then COGS before Revenue
	assert.Equal(t, "43000000", r.Items[0].Code)
	assert.Equal(t, "60000000", r.Items[1].Code)
	assert.Equal(t, "70000000", r.Items[2].Code)
}

func TestResolveMapping(t *testing.T) {
	table := DefaultMapping()

	assert.Equal(t, "Gross revenue", ResolveMapping(table, "70010000").Level3)
	assert.Equal(t, "Personnel costs", ResolveMapping(table, "64000000").Level3)

	// coarse fallback for codes outside the curated table
	coarse := ResolveMapping(table, "26000000")
	assert.Equal(t, "Balance", coarse.Level1)
	assert.Equal(t, "Assets", coarse.Level2)

	assert.Equal(t, domain.CategoryMapping{}, ResolveMapping(table, "90000000"))
	assert.Equal(t, domain.CategoryMapping{}, ResolveMapping(table, ""))
}
