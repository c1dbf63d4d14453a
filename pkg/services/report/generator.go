package report

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
	"github.com/de-tools/fdd-atlas/pkg/services/analyzer"
	"github.com/de-tools/fdd-atlas/pkg/services/normalizer"
	"github.com/de-tools/fdd-atlas/pkg/services/rules"
)

// Config bundles the pipeline configuration. A zero Mapping or Rules
// slice falls back to the built-in catalog.
type Config struct {
	Analyzer analyzer.Config
	Rules    rules.Config
	RuleSet  []rules.Rule
	Mapping  map[string]domain.CategoryMapping
}

func DefaultConfig() Config {
	return Config{
		Analyzer: analyzer.DefaultConfig(),
		Rules:    rules.DefaultConfig(),
	}
}

// Generator runs the full questionnaire pipeline over a ledger. It is
// safe to share across goroutines; configuration is fixed at build time.
type Generator struct {
	analyzer *analyzer.Analyzer
	engine   *rules.Engine
	mapping  map[string]domain.CategoryMapping
}

func NewGenerator(cfg Config) (*Generator, error) {
	a, err := analyzer.New(cfg.Analyzer)
	if err != nil {
		return nil, err
	}
	ruleSet := cfg.RuleSet
	if ruleSet == nil {
		ruleSet = rules.DefaultRules()
	}
	engine, err := rules.NewEngine(cfg.Rules, ruleSet)
	if err != nil {
		return nil, err
	}
	mapping := cfg.Mapping
	if mapping == nil {
		mapping = DefaultMapping()
	}
	return &Generator{analyzer: a, engine: engine, mapping: mapping}, nil
}

// Generate produces one questionnaire row per unique account code.
func (g *Generator) Generate(ctx context.Context, l domain.Ledger) (domain.QAReport, error) {
	logger := zerolog.Ctx(ctx)

	collapsed := collapseAccounts(l)
	window := normalizer.Window(collapsed)
	aggregated := normalizer.Aggregate(collapsed, window)
	revenueTotals := g.revenueTotals(aggregated)

	variations := g.analyzer.AnalyzeVariations(aggregated, window.Pairs)
	byAccount := map[string][]domain.VariationResult{}
	for _, v := range variations {
		byAccount[v.AccountCode] = append(byAccount[v.AccountCode], v)
	}

	var periodNames []string
	for _, p := range window.Periods {
		periodNames = append(periodNames, p.Name)
	}
	var pairKeys []string
	for _, pair := range window.Pairs {
		pairKeys = append(pairKeys, domain.PairKey(pair[0], pair[1]))
	}

	var items []domain.QAItem
	for _, acc := range aggregated.Accounts {
		item := g.buildItem(acc, byAccount[acc.Code], periodNames, window.Pairs, revenueTotals)
		items = append(items, item)
	}

	sortItems(items)
	dedupDriversLeadIn(items)

	report := domain.QAReport{
		Items:           items,
		AnalysisPeriods: periodNames,
		ComparisonPairs: pairKeys,
		RevenueTotals:   revenueTotals,
		SourceFile:      l.SourceFile,
		GeneratedAt:     time.Now().UTC(),
	}
	logger.Info().
		Int("items", len(items)).
		Int("questions", len(report.Questions())).
		Str("source", l.SourceFile).
		Msg("questionnaire generated")
	return report, nil
}

func (g *Generator) buildItem(
	acc domain.Account,
	accVariations []domain.VariationResult,
	periods []string,
	pairs [][2]string,
	revenueTotals map[string]domain.Value,
) domain.QAItem {
	item := domain.QAItem{
		Code:           acc.Code,
		Description:    acc.Description,
		Mapping:        ResolveMapping(g.mapping, acc.Code),
		Values:         map[string]domain.Value{},
		Variations:     map[string]domain.VariationResult{},
		AbsChanges:     map[string]domain.Value{},
		PctChanges:     map[string]domain.Value{},
		PctOverRevenue: map[string]domain.Value{},
		PPChanges:      map[string]domain.Value{},
		Priority:       domain.PriorityBaja,
		Status:         domain.StatusOpen,
	}

	for _, period := range periods {
		if v := acc.Value(period); v.Valid {
			item.Values[period] = v
		}
	}

	for _, period := range periods {
		value, ok := item.Values[period]
		if !ok {
			continue
		}
		total, totalOK := revenueTotals[period]
		if !totalOK || total.Num == 0 {
			continue
		}
		item.PctOverRevenue[period] = domain.SomeValue(value.Num / total.Num * 100)
	}
	for _, pair := range pairs {
		base, baseOK := item.PctOverRevenue[pair[0]]
		comp, compOK := item.PctOverRevenue[pair[1]]
		if baseOK && compOK {
			item.PPChanges[domain.PairKey(pair[0], pair[1])] = domain.SomeValue(comp.Num - base.Num)
		}
	}

	for _, v := range accVariations {
		key := domain.PairKey(v.BasePeriod, v.CompPeriod)
		if share, ok := item.PctOverRevenue[v.BasePeriod]; ok {
			v.BaseRevenueShare = share
		}
		if share, ok := item.PctOverRevenue[v.CompPeriod]; ok {
			v.CompRevenueShare = share
		}
		if pp, ok := item.PPChanges[key]; ok {
			v.PPChange = pp
		}
		item.Variations[key] = v
		if v.AbsChange.Valid {
			item.AbsChanges[key] = v.AbsChange
		}
		if v.PctChange.Valid {
			item.PctChanges[key] = v.PctChange
		}
		item.Priority = item.Priority.Max(v.Priority)
	}

	item.Question, item.Reason = g.question(acc, accVariations)
	return item
}

// question picks the variation to ask about. Expense and revenue
// accounts get a combined fiscal-year plus year-to-date question when
// both variations clear the gate; everything else uses the single best
// gated variation.
func (g *Generator) question(acc domain.Account, accVariations []domain.VariationResult) (string, string) {
	if len(accVariations) == 0 {
		return "", ""
	}

	if g.analyzer.IsRevenue(acc.Code) || g.analyzer.IsExpense(acc.Code) {
		if q, reason, ok := g.composeDriverQuestion(accVariations); ok {
			return q, reason
		}
	}

	for _, v := range accVariations {
		if q, reason, ok := g.engine.Generate(variationContext(v)); ok {
			return q, reason
		}
	}
	return "", ""
}

// composeDriverQuestion builds the two-part question from the best
// gated fiscal-year variation, extended with the year-to-date trend
// when that one clears the gate too.
func (g *Generator) composeDriverQuestion(accVariations []domain.VariationResult) (string, string, bool) {
	fyVar, fyQ, fyReason, fyOK := g.firstGated(accVariations, isFiscalPair)
	ytdVar, ytdQ, ytdReason, ytdOK := g.firstGated(accVariations, isYTDPair)

	switch {
	case fyOK && ytdOK:
		question := fyQ + "\n" + trendLine(fyVar, ytdVar)
		return question, fyReason, true
	case fyOK:
		return fyQ, fyReason, true
	case ytdOK:
		return ytdQ, ytdReason, true
	default:
		return "", "", false
	}
}

func (g *Generator) firstGated(
	accVariations []domain.VariationResult,
	match func(domain.VariationResult) bool,
) (domain.VariationResult, string, string, bool) {
	for _, v := range accVariations {
		if !match(v) {
			continue
		}
		if q, reason, ok := g.engine.Generate(variationContext(v)); ok {
			return v, q, reason, true
		}
	}
	return domain.VariationResult{}, "", "", false
}

func trendLine(fy, ytd domain.VariationResult) string {
	var b strings.Builder
	b.WriteString("(iii) Indicar si la tendencia se mantiene en ")
	b.WriteString(ytd.BasePeriod)
	b.WriteString(" vs ")
	b.WriteString(ytd.CompPeriod)
	ytdPct, ytdOK := ytd.PctChange.Float()
	if ytdOK {
		b.WriteString(" (")
		b.WriteString(formatRoundedPct(ytdPct))
		b.WriteString(")")
	}
	b.WriteString(".")
	fyPct, fyOK := fy.PctChange.Float()
	if fyOK && ytdOK && sameSign(fyPct, ytdPct) && math.Abs(ytdPct) < 0.75*math.Abs(fyPct) {
		b.WriteString(" Se observa una posible desaceleración respecto al ejercicio completo.")
	}
	return b.String()
}

func formatRoundedPct(pct float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(math.Abs(pct))))
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

func variationContext(v domain.VariationResult) rules.Context {
	return rules.Context{
		AccountCode:    v.AccountCode,
		AccountName:    v.Description,
		PctChange:      v.PctChange,
		AbsChange:      v.AbsChange.Num,
		PreviousValue:  v.BaseValue.Num,
		CurrentValue:   v.CompValue.Num,
		PeriodPrevious: v.BasePeriod,
		PeriodCurrent:  v.CompPeriod,
	}
}

func isFiscalPair(v domain.VariationResult) bool {
	return strings.HasPrefix(v.BasePeriod, "FY") && strings.HasPrefix(v.CompPeriod, "FY")
}

func isYTDPair(v domain.VariationResult) bool {
	return strings.HasPrefix(v.BasePeriod, "YTD") && strings.HasPrefix(v.CompPeriod, "YTD")
}

// collapseAccounts merges duplicate codes: values are summed per period
// and the longest description wins.
func collapseAccounts(l domain.Ledger) domain.Ledger {
	byCode := map[string]*domain.Account{}
	var order []string
	for _, acc := range l.Accounts {
		existing, ok := byCode[acc.Code]
		if !ok {
			clone := acc
			clone.Values = map[string]float64{}
			for k, v := range acc.Values {
				clone.Values[k] = v
			}
			byCode[acc.Code] = &clone
			order = append(order, acc.Code)
			continue
		}
		for k, v := range acc.Values {
			existing.Values[k] += v
		}
		if len(acc.Description) > len(existing.Description) {
			existing.Description = acc.Description
		}
	}

	out := domain.Ledger{Periods: l.Periods, SourceFile: l.SourceFile}
	for _, code := range order {
		out.Accounts = append(out.Accounts, *byCode[code])
	}
	return out
}

// revenueTotals sums the absolute aggregated values of revenue group
// accounts per period. Periods with no revenue are omitted.
func (g *Generator) revenueTotals(aggregated domain.Ledger) map[string]domain.Value {
	totals := map[string]domain.Value{}
	for _, p := range aggregated.Periods {
		total := 0.0
		found := false
		for _, acc := range aggregated.Accounts {
			if !strings.HasPrefix(acc.Code, "7") {
				continue
			}
			if num, ok := acc.Values[p.Name]; ok {
				total += math.Abs(num)
				found = true
			}
		}
		if found && total > 0 {
			totals[p.Name] = domain.SomeValue(total)
		}
	}
	return totals
}

func sortItems(items []domain.QAItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if k := strings.Compare(sortKey(a.Mapping.Level1), sortKey(b.Mapping.Level1)); k != 0 {
			return k < 0
		}
		if k := strings.Compare(sortKey(a.Mapping.Level2), sortKey(b.Mapping.Level2)); k != 0 {
			return k < 0
		}
		if k := strings.Compare(sortKey(a.Mapping.Level3), sortKey(b.Mapping.Level3)); k != 0 {
			return k < 0
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return sortKey(a.Code) < sortKey(b.Code)
	})
}

func sortKey(s string) string {
	if s == "" {
		return "ZZZ"
	}
	return s
}

var driverPairPattern = regexp.MustCompile(`vs\s+(FY\d{2}|YTD\d{2})\s+vs\s+(FY\d{2}|YTD\d{2})`)

// dedupDriversLeadIn keeps the generic drivers lead-in only for the
// first item per (category, period pair) in sort order. Later items
// lose the lead-in and have their sub-questions renumbered.
func dedupDriversLeadIn(items []domain.QAItem) {
	seen := map[string]bool{}
	for i := range items {
		q := items[i].Question
		if q == "" {
			continue
		}
		lines := strings.Split(q, "\n")
		first := lines[0]
		if !strings.Contains(first, "(i)") || !strings.Contains(strings.ToLower(first), "drivers") {
			continue
		}
		m := driverPairPattern.FindStringSubmatch(first)
		if m == nil {
			continue
		}
		key := strings.Join([]string{
			items[i].Mapping.Level1, items[i].Mapping.Level2, items[i].Mapping.Level3,
			m[1], m[2],
		}, "|")
		if !seen[key] {
			seen[key] = true
			continue
		}
		rest := lines[1:]
		for j := range rest {
			rest[j] = strings.Replace(rest[j], "(ii) ", "(i) ", 1)
			rest[j] = strings.Replace(rest[j], "(iii) ", "(ii) ", 1)
		}
		items[i].Question = strings.Join(rest, "\n")
	}
}
