package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
)

// Config carries the thresholds that drive variation classification
// and priority assignment. All amounts are absolute euro values.
type Config struct {
	SignificantThreshold float64 `mapstructure:"significant_threshold"`
	LowThreshold         float64 `mapstructure:"low_threshold"`
	MinAbsolute          float64 `mapstructure:"min_absolute"`
	HighPercentage       float64 `mapstructure:"high_percentage"`
	HighAbsolute         float64 `mapstructure:"high_absolute"`
	RevenuePrefixes      []string `mapstructure:"revenue_prefixes"`
	ExpensePrefixes      []string `mapstructure:"expense_prefixes"`
}

func DefaultConfig() Config {
	return Config{
		SignificantThreshold: 20,
		LowThreshold:         10,
		MinAbsolute:          1000,
		HighPercentage:       50,
		HighAbsolute:         100000,
		RevenuePrefixes:      []string{"70", "71", "72", "73", "74", "75"},
		ExpensePrefixes:      []string{"60", "61", "62", "63", "64", "65", "66", "67", "68", "69"},
	}
}

func (c Config) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"significant_threshold", c.SignificantThreshold},
		{"low_threshold", c.LowThreshold},
		{"min_absolute", c.MinAbsolute},
		{"high_percentage", c.HighPercentage},
		{"high_absolute", c.HighAbsolute},
	}
	for _, check := range checks {
		if check.value < 0 {
			return fmt.Errorf("analyzer config: %s must not be negative, got %v", check.name, check.value)
		}
	}
	if c.LowThreshold > c.SignificantThreshold {
		return fmt.Errorf("analyzer config: low_threshold %v exceeds significant_threshold %v", c.LowThreshold, c.SignificantThreshold)
	}
	return nil
}

type Analyzer struct {
	cfg Config
}

func New(cfg Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{cfg: cfg}, nil
}

func (a *Analyzer) Config() Config {
	return a.cfg
}

// Compare classifies the change of a single account between two periods.
func (a *Analyzer) Compare(acc domain.Account, base, compare string) domain.VariationResult {
	baseVal := acc.Value(base)
	compVal := acc.Value(compare)

	res := domain.VariationResult{
		AccountCode: acc.Code,
		Description: acc.Description,
		BasePeriod:  base,
		CompPeriod:  compare,
		BaseValue:   baseVal,
		CompValue:   compVal,
	}

	baseNum, baseOK := baseVal.Float()
	compNum, compOK := compVal.Float()
	res.AbsChange = domain.SomeValue(coalesce(compNum, compOK) - coalesce(baseNum, baseOK))

	switch {
	case !baseOK && !compOK:
		res.Kind = domain.VariationStable
	case !baseOK:
		// appeared out of nothing, even when the first observation is zero
		res.Kind = domain.VariationNewItem
	case !compOK:
		// the account stopped being reported; no percentage exists
		res.Kind = domain.VariationDisappeared
	case baseNum == 0 && compNum == 0:
		res.Kind = domain.VariationStable
	case baseNum == 0:
		// no base to compute a percentage against
		res.Kind = domain.VariationNewItem
	default:
		pct := (compNum - baseNum) / math.Abs(baseNum) * 100
		res.PctChange = domain.SomeValue(pct)
		switch {
		case math.Abs(pct) < a.cfg.LowThreshold:
			res.Kind = domain.VariationStable
		case math.Abs(pct) < a.cfg.SignificantThreshold:
			res.Kind = domain.VariationMinor
		case pct > 0:
			res.Kind = domain.VariationSigIncrease
		default:
			res.Kind = domain.VariationSigDecrease
		}
	}

	res.Priority = a.priority(res)
	return res
}

func coalesce(num float64, ok bool) float64 {
	if !ok {
		return 0
	}
	return num
}

// priority applies the cascade: large relative swings over the
// materiality floor and very large absolute swings rank highest.
// Without a defined percentage the absolute change decides alone.
func (a *Analyzer) priority(res domain.VariationResult) domain.Priority {
	abs := math.Abs(res.AbsChange.Num)
	pct, pctOK := res.PctChange.Float()
	if !pctOK {
		switch {
		case abs >= a.cfg.HighAbsolute:
			return domain.PriorityAlta
		case abs >= a.cfg.MinAbsolute:
			return domain.PriorityMedia
		default:
			return domain.PriorityBaja
		}
	}
	switch {
	case math.Abs(pct) >= a.cfg.HighPercentage && abs >= a.cfg.MinAbsolute:
		return domain.PriorityAlta
	case abs >= a.cfg.HighAbsolute:
		return domain.PriorityAlta
	case math.Abs(pct) >= a.cfg.SignificantThreshold && abs >= a.cfg.MinAbsolute:
		return domain.PriorityMedia
	default:
		return domain.PriorityBaja
	}
}

// AnalyzeVariations compares every account across the given pairs and
// returns the non-stable results ordered by priority, then magnitude.
func (a *Analyzer) AnalyzeVariations(l domain.Ledger, pairs [][2]string) []domain.VariationResult {
	var results []domain.VariationResult
	for _, acc := range l.Accounts {
		for _, pair := range pairs {
			res := a.Compare(acc, pair[0], pair[1])
			if res.Kind == domain.VariationStable {
				continue
			}
			results = append(results, res)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		ri, rj := results[i], results[j]
		if ri.Priority.Rank() != rj.Priority.Rank() {
			return ri.Priority.Rank() < rj.Priority.Rank()
		}
		return magnitude(ri) > magnitude(rj)
	})
	return results
}

func magnitude(res domain.VariationResult) float64 {
	if pct, ok := res.PctChange.Float(); ok {
		return math.Abs(pct)
	}
	return math.Abs(res.AbsChange.Num)
}

// TopVariations keeps the first n results of an already sorted slice.
func TopVariations(results []domain.VariationResult, n int) []domain.VariationResult {
	if n < 0 || n >= len(results) {
		return results
	}
	return results[:n]
}

// RevenueAccountCodes filters the ledger for revenue accounts.
func (a *Analyzer) RevenueAccountCodes(l domain.Ledger) []string {
	var codes []string
	for _, acc := range l.Accounts {
		for _, prefix := range a.cfg.RevenuePrefixes {
			if strings.HasPrefix(acc.Code, prefix) {
				codes = append(codes, acc.Code)
				break
			}
		}
	}
	return codes
}

// IsRevenue reports whether the code belongs to a revenue group.
func (a *Analyzer) IsRevenue(code string) bool {
	for _, prefix := range a.cfg.RevenuePrefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// IsExpense reports whether the code belongs to an expense group.
func (a *Analyzer) IsExpense(code string) bool {
	for _, prefix := range a.cfg.ExpensePrefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}
