package rules

import (
	"regexp"
	"strings"
	"testing"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), DefaultRules())
	require.NoError(t, err)
	return e
}

func pct(num float64) domain.Value {
	return domain.SomeValue(num)
}

func TestShouldGenerate_Thresholds(t *testing.T) {
	e := newEngine(t)

	assert.True(t, e.ShouldGenerate(pct(25), 5000, "Compras de mercaderías"))
	// percentage under threshold
	assert.False(t, e.ShouldGenerate(pct(5), 5000, "Compras de mercaderías"))
	// absolute under floor
	assert.False(t, e.ShouldGenerate(pct(80), 500, "Compras de mercaderías"))
	// undefined percentage relies on the absolute change alone
	assert.True(t, e.ShouldGenerate(domain.Value{}, 5000, "Compras de mercaderías"))
	assert.False(t, e.ShouldGenerate(domain.Value{}, 500, "Compras de mercaderías"))
}

func TestShouldGenerate_Exclusions(t *testing.T) {
	e := newEngine(t)

	assert.False(t, e.ShouldGenerate(pct(40), 8000, "Alquiler de vehículos"))
	assert.False(t, e.ShouldGenerate(pct(40), 8000, "Renting coche director"))
	assert.False(t, e.ShouldGenerate(pct(40), 8000, "Material de oficina"))
	assert.False(t, e.ShouldGenerate(pct(40), 8000, "Papelería"))

	// very large changes override the exclusion
	assert.True(t, e.ShouldGenerate(pct(40), 60000, "Alquiler de vehículos"))
	assert.True(t, e.ShouldGenerate(pct(40), -60000, "Material de oficina"))
}

func TestMatchRule_SpecificBeatsGeneric(t *testing.T) {
	e := newEngine(t)

	m, ok := e.MatchRule("640000", "Sueldos y salarios")
	require.True(t, ok)
	assert.Equal(t, "640", m.Prefix)
	assert.Equal(t, 3, m.Rule.Weight)

	// unknown description within group 6 falls back to the generic rule
	m, ok = e.MatchRule("637000", "Concepto sin patrón conocido")
	require.True(t, ok)
	assert.Equal(t, "6", m.Prefix)
	assert.Equal(t, 0, m.Rule.Weight)
}

func TestMatchRule_PatternsSpanInterveningWords(t *testing.T) {
	e := newEngine(t)

	// descriptions rarely carry the pattern words back to back
	m, ok := e.MatchRule("70010000", "Ventas de mercaderías nacionales")
	require.True(t, ok)
	assert.Equal(t, "700", m.Prefix)
	assert.Equal(t, 3, m.Rule.Weight)
	assert.Equal(t, "venta.*mercader", m.Pattern)

	m, ok = e.MatchRule("60000000", "Compras de mercaderías")
	require.True(t, ok)
	assert.Equal(t, "600", m.Prefix)
	assert.Equal(t, 3, m.Rule.Weight)
}

func TestMatchRule_TieKeepsFirstRegistered(t *testing.T) {
	ruleSet := []Rule{
		{CodePrefixes: []string{"600"}, QuestionIncrease: "primera", QuestionDecrease: "primera", Weight: 2},
		{CodePrefixes: []string{"600"}, QuestionIncrease: "segunda", QuestionDecrease: "segunda", Weight: 2},
	}
	e, err := NewEngine(DefaultConfig(), ruleSet)
	require.NoError(t, err)

	m, ok := e.MatchRule("600000", "Compras")
	require.True(t, ok)
	assert.Equal(t, "primera", m.Rule.QuestionIncrease)
}

func TestGenerate_TwoPartQuestion(t *testing.T) {
	e := newEngine(t)

	question, reason, ok := e.Generate(Context{
		AccountCode:    "700000",
		AccountName:    "Ventas de mercaderías",
		PctChange:      pct(35.4),
		AbsChange:      50000,
		PreviousValue:  141000,
		CurrentValue:   191000,
		PeriodPrevious: "FY23",
		PeriodCurrent:  "FY24",
	})
	require.True(t, ok)

	lines := strings.Split(question, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"drivers"`)
	assert.Contains(t, lines[0], "del crecimiento de ingresos")
	assert.Contains(t, lines[0], "(35%)")
	assert.True(t, strings.HasPrefix(lines[1], "(ii) "))
	assert.Contains(t, lines[1], "ventas de mercaderías")

	pairRe := regexp.MustCompile(`vs\s+(FY\d{2}|YTD\d{2})\s+vs\s+(FY\d{2}|YTD\d{2})`)
	assert.True(t, pairRe.MatchString(lines[0]))

	assert.Contains(t, reason, "prefijo='700'")
	assert.Contains(t, reason, "prioridad=3")
}

func TestGenerate_DecreaseUsesDecreaseQuestion(t *testing.T) {
	e := newEngine(t)

	question, _, ok := e.Generate(Context{
		AccountCode:    "628000",
		AccountName:    "Suministros electricidad",
		PctChange:      pct(-30),
		AbsChange:      -4000,
		PreviousValue:  13000,
		CurrentValue:   9000,
		PeriodPrevious: "YTD23",
		PeriodCurrent:  "YTD24",
	})
	require.True(t, ok)
	assert.Contains(t, question, "de la reducción de gastos")
	assert.Contains(t, question, "¿Han disminuido los suministros?")
}

func TestGenerate_UndefinedPctUsesAbsoluteDirection(t *testing.T) {
	e := newEngine(t)

	question, _, ok := e.Generate(Context{
		AccountCode:    "621000",
		AccountName:    "Arrendamientos nave",
		PctChange:      domain.Value{},
		AbsChange:      12000,
		PreviousValue:  0,
		CurrentValue:   12000,
		PeriodPrevious: "FY23",
		PeriodCurrent:  "FY24",
	})
	require.True(t, ok)
	assert.Contains(t, question, "¿Han aumentado los gastos de alquiler?")
	assert.Contains(t, question, "(0%)")
}

func TestGenerate_FallbackForUnmatchedAccount(t *testing.T) {
	e := newEngine(t)

	question, reason, ok := e.Generate(Context{
		AccountCode:    "890000",
		AccountName:    "Partida sin grupo",
		PctChange:      pct(45),
		AbsChange:      9000,
		PreviousValue:  20000,
		CurrentValue:   29000,
		PeriodPrevious: "FY23",
		PeriodCurrent:  "FY24",
	})
	require.True(t, ok)
	assert.Contains(t, question, "explique el motivo de esta variación significativa")
	assert.Contains(t, reason, "fallback")

	// below the fallback percentage nothing fires
	_, _, ok = e.Generate(Context{
		AccountCode:    "890000",
		AccountName:    "Partida sin grupo",
		PctChange:      pct(15),
		AbsChange:      9000,
		PreviousValue:  20000,
		PeriodPrevious: "FY23",
		PeriodCurrent:  "FY24",
	})
	assert.False(t, ok)
}

func TestGenerate_BelowThresholdsSkips(t *testing.T) {
	e := newEngine(t)

	_, _, ok := e.Generate(Context{
		AccountCode:    "700000",
		AccountName:    "Ventas",
		PctChange:      pct(4),
		AbsChange:      200,
		PeriodPrevious: "FY23",
		PeriodCurrent:  "FY24",
	})
	assert.False(t, ok)
}

func TestNewEngine_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AbsoluteThreshold = -5
	_, err := NewEngine(cfg, DefaultRules())
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.ExclusionPatterns = []string{"[unclosed"}
	_, err = NewEngine(cfg, DefaultRules())
	assert.Error(t, err)
}
