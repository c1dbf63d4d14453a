package rules

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
)

// Rule matches accounts by code prefix and description patterns and
// carries one question per variation direction. Weight breaks ties
// between overlapping rules; higher wins.
type Rule struct {
	Patterns         []string
	CodePrefixes     []string
	QuestionIncrease string
	QuestionDecrease string
	Weight           int
}

// Config carries the gating thresholds of the engine.
type Config struct {
	PercentThreshold  float64 `mapstructure:"percent_threshold"`
	AbsoluteThreshold float64 `mapstructure:"absolute_threshold"`
	// exclusion patterns are ignored above this absolute change
	ExclusionOverride float64 `mapstructure:"exclusion_override"`
	// unmatched accounts still get a generic question above this percentage
	FallbackPercent   float64  `mapstructure:"fallback_percent"`
	ExclusionPatterns []string `mapstructure:"exclusion_patterns"`
}

func DefaultConfig() Config {
	return Config{
		PercentThreshold:  10,
		AbsoluteThreshold: 1000,
		ExclusionOverride: 50000,
		FallbackPercent:   20,
		ExclusionPatterns: []string{
			`alquiler.*veh[ií]culo`,
			`renting.*coche`,
			`material.*oficina`,
			`papeler[ií]a`,
		},
	}
}

func (c Config) Validate() error {
	for name, value := range map[string]float64{
		"percent_threshold":  c.PercentThreshold,
		"absolute_threshold": c.AbsoluteThreshold,
		"exclusion_override": c.ExclusionOverride,
		"fallback_percent":   c.FallbackPercent,
	} {
		if value < 0 {
			return fmt.Errorf("rules config: %s must not be negative, got %v", name, value)
		}
	}
	return nil
}

// Context describes one account variation for question generation.
type Context struct {
	AccountCode    string
	AccountName    string
	PctChange      domain.Value
	AbsChange      float64
	PreviousValue  float64
	CurrentValue   float64
	PeriodPrevious string
	PeriodCurrent  string
}

// Match reports which rule fired and through which prefix and pattern.
type Match struct {
	Rule    Rule
	Prefix  string
	Pattern string
}

type compiledRule struct {
	rule     Rule
	patterns []*regexp.Regexp
}

type Engine struct {
	cfg        Config
	rules      []compiledRule
	exclusions []*regexp.Regexp
}

func NewEngine(cfg Config, ruleSet []Rule) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg}
	for _, raw := range cfg.ExclusionPatterns {
		re, err := regexp.Compile("(?i)" + raw)
		if err != nil {
			return nil, fmt.Errorf("rules config: bad exclusion pattern %q: %w", raw, err)
		}
		e.exclusions = append(e.exclusions, re)
	}
	for _, rule := range ruleSet {
		cr := compiledRule{rule: rule}
		for _, raw := range rule.Patterns {
			re, err := regexp.Compile("(?i)" + raw)
			if err != nil {
				return nil, fmt.Errorf("rules: bad pattern %q: %w", raw, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		e.rules = append(e.rules, cr)
	}
	return e, nil
}

// ShouldGenerate gates question generation. Excluded descriptions are
// skipped unless the absolute change is large enough to override the
// exclusion. An undefined percentage passes the percentage check when
// the absolute change clears the floor.
func (e *Engine) ShouldGenerate(pct domain.Value, absChange float64, accountName string) bool {
	abs := math.Abs(absChange)
	if abs <= e.cfg.ExclusionOverride {
		lower := strings.ToLower(accountName)
		for _, re := range e.exclusions {
			if re.MatchString(lower) {
				return false
			}
		}
	}
	if num, ok := pct.Float(); ok && math.Abs(num) < e.cfg.PercentThreshold {
		return false
	}
	return abs >= e.cfg.AbsoluteThreshold
}

// MatchRule finds the highest-weight rule matching the account. Ties
// keep the rule registered first.
func (e *Engine) MatchRule(code, name string) (Match, bool) {
	var best Match
	found := false
	lower := strings.ToLower(name)

	for _, cr := range e.rules {
		var prefix string
		for _, p := range cr.rule.CodePrefixes {
			if strings.HasPrefix(code, p) {
				prefix = p
				break
			}
		}
		if prefix == "" {
			continue
		}

		var pattern string
		if len(cr.patterns) > 0 {
			matched := false
			for i, re := range cr.patterns {
				if re.MatchString(lower) {
					pattern = cr.rule.Patterns[i]
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}

		if !found || cr.rule.Weight > best.Rule.Weight {
			best = Match{Rule: cr.rule, Prefix: prefix, Pattern: pattern}
			found = true
		}
	}
	return best, found
}

// Generate produces the question and its audit-trail reason for the
// given variation. ok is false when no question applies.
func (e *Engine) Generate(ctx Context) (question, reason string, ok bool) {
	if !e.ShouldGenerate(ctx.PctChange, ctx.AbsChange, ctx.AccountName) {
		return "", "", false
	}

	pct, pctOK := ctx.PctChange.Float()

	match, found := e.MatchRule(ctx.AccountCode, ctx.AccountName)
	if !found {
		if pctOK && math.Abs(pct) > e.cfg.FallbackPercent {
			direction := "incrementado"
			if pct < 0 {
				direction = "disminuido"
			}
			question = fmt.Sprintf(
				"La cuenta ha %s un %.1f%% (de %.2f a %.2f). Por favor, explique el motivo de esta variación significativa.",
				direction, math.Abs(pct), ctx.PreviousValue, ctx.CurrentValue,
			)
			reason = fmt.Sprintf(
				"Regla aplicada: fallback (sin match). Umbrales: |%%|>%.0f (fallback). Variación: %s | abs: %+.2f | %s: %.2f → %s: %.2f",
				e.cfg.FallbackPercent, formatPct(ctx.PctChange), ctx.AbsChange,
				ctx.PeriodPrevious, ctx.PreviousValue, ctx.PeriodCurrent, ctx.CurrentValue,
			)
			return question, reason, true
		}
		return "", "", false
	}

	increase := ctx.AbsChange > 0
	if pctOK && pct != 0 {
		increase = pct > 0
	}

	base := match.Rule.QuestionDecrease
	if increase {
		base = match.Rule.QuestionIncrease
	}

	leadIn := fmt.Sprintf(
		"(i) Comentar de manera general los principales \"drivers\" %s vs %s vs %s (%d%%).",
		driversTopic(ctx.AccountCode, increase), ctx.PeriodPrevious, ctx.PeriodCurrent, roundedPct(ctx.PctChange),
	)
	question = leadIn + "\n(ii) " + base

	patternDesc := "patrón=genérica"
	if match.Pattern != "" {
		patternDesc = fmt.Sprintf("patrón='%s'", match.Pattern)
	}
	reason = fmt.Sprintf(
		"Regla aplicada: prefijo='%s', %s, prioridad=%d. Umbrales: |%%|>=%.1f y |abs|>=%.0f. Variación: %s | abs: %+.2f | %s: %.2f → %s: %.2f",
		match.Prefix, patternDesc, match.Rule.Weight,
		e.cfg.PercentThreshold, e.cfg.AbsoluteThreshold,
		formatPct(ctx.PctChange), ctx.AbsChange,
		ctx.PeriodPrevious, ctx.PreviousValue, ctx.PeriodCurrent, ctx.CurrentValue,
	)
	return question, reason, true
}

func driversTopic(code string, increase bool) string {
	group := ""
	if code != "" {
		group = code[:1]
	}
	switch group {
	case "7":
		if increase {
			return "del crecimiento de ingresos"
		}
		return "de la disminución de ingresos"
	case "6":
		if increase {
			return "del incremento de gastos"
		}
		return "de la reducción de gastos"
	default:
		return "de la variación del saldo"
	}
}

func roundedPct(pct domain.Value) int {
	num, ok := pct.Float()
	if !ok {
		return 0
	}
	return int(math.Round(math.Abs(num)))
}

func formatPct(pct domain.Value) string {
	num, ok := pct.Float()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%+.1f%%", num)
}
