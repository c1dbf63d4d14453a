package normalizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/fdd-atlas/pkg/models/domain"
)

// FiscalPeriods summarizes the monthly coverage of a ledger.
type FiscalPeriods struct {
	// observed months per year, from the ledger columns
	MonthsByYear map[int][]int
	// years with at least twelve observed months
	CompleteYears []int
	// latest year with monthly data
	LatestYear int
	// month of the most recent monthly column
	ReferenceMonth int
}

// AnalysisWindow is the set of aggregate periods a report compares,
// with the ordered pairs to diff against each other.
type AnalysisWindow struct {
	Periods []domain.Period
	Pairs   [][2]string
}

// DetectFiscalPeriods scans the ledger columns for monthly coverage.
func DetectFiscalPeriods(l domain.Ledger) FiscalPeriods {
	months := map[int]map[int]bool{}
	for _, p := range l.MonthlyPeriods() {
		if months[p.Year] == nil {
			months[p.Year] = map[int]bool{}
		}
		months[p.Year][p.Month] = true
	}

	fp := FiscalPeriods{MonthsByYear: map[int][]int{}}
	var years []int
	for year := range months {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		var observed []int
		for m := 1; m <= 12; m++ {
			if months[year][m] {
				observed = append(observed, m)
			}
		}
		fp.MonthsByYear[year] = observed
		if len(observed) >= 12 {
			fp.CompleteYears = append(fp.CompleteYears, year)
		}
	}
	if len(years) > 0 {
		fp.LatestYear = years[len(years)-1]
		latest := fp.MonthsByYear[fp.LatestYear]
		if len(latest) > 0 {
			fp.ReferenceMonth = latest[len(latest)-1]
		}
	}
	return fp
}

// Window selects the periods to analyze: the last two complete fiscal
// years plus year-to-date aggregates for the two most recent years,
// cut at the reference month. Consecutive entries of the same kind
// form comparison pairs.
func Window(l domain.Ledger) AnalysisWindow {
	fp := DetectFiscalPeriods(l)
	var w AnalysisWindow

	fiscal := fp.CompleteYears
	if len(fiscal) > 2 {
		fiscal = fiscal[len(fiscal)-2:]
	}
	for _, year := range fiscal {
		w.Periods = append(w.Periods, domain.Period{
			Name: fmt.Sprintf("FY%02d", year%100),
			Year: year,
			Kind: domain.PeriodYearly,
		})
	}
	for i := 1; i < len(fiscal); i++ {
		w.Pairs = append(w.Pairs, [2]string{
			fmt.Sprintf("FY%02d", fiscal[i-1]%100),
			fmt.Sprintf("FY%02d", fiscal[i]%100),
		})
	}

	if fp.ReferenceMonth > 0 {
		var ytdYears []int
		for year, observed := range fp.MonthsByYear {
			if hasMonthUpTo(observed, fp.ReferenceMonth) {
				ytdYears = append(ytdYears, year)
			}
		}
		sort.Ints(ytdYears)
		if len(ytdYears) > 2 {
			ytdYears = ytdYears[len(ytdYears)-2:]
		}
		for _, year := range ytdYears {
			w.Periods = append(w.Periods, domain.Period{
				Name: fmt.Sprintf("YTD%02d", year%100),
				Year: year,
				Kind: domain.PeriodYTD,
			})
		}
		for i := 1; i < len(ytdYears); i++ {
			w.Pairs = append(w.Pairs, [2]string{
				fmt.Sprintf("YTD%02d", ytdYears[i-1]%100),
				fmt.Sprintf("YTD%02d", ytdYears[i]%100),
			})
		}
	}
	return w
}

func hasMonthUpTo(observed []int, ref int) bool {
	for _, m := range observed {
		if m <= ref {
			return true
		}
	}
	return false
}

// FiscalYearTotals sums an account's monthly values per year. Years
// where the account has no observation are omitted.
func FiscalYearTotals(acc domain.Account, monthly []domain.Period) map[int]float64 {
	totals := map[int]float64{}
	seen := map[int]bool{}
	for _, p := range monthly {
		num, ok := acc.Values[p.Name]
		if !ok {
			continue
		}
		totals[p.Year] += num
		seen[p.Year] = true
	}
	for year := range totals {
		if !seen[year] {
			delete(totals, year)
		}
	}
	return totals
}

// YearToDateTotals sums an account's monthly values per year up to and
// including refMonth. With refMonth 0 the latest observed month is used.
func YearToDateTotals(acc domain.Account, l domain.Ledger, refMonth int) map[int]float64 {
	if refMonth == 0 {
		refMonth = DetectFiscalPeriods(l).ReferenceMonth
	}
	totals := map[int]float64{}
	seen := map[int]bool{}
	for _, p := range l.MonthlyPeriods() {
		if p.Month > refMonth {
			continue
		}
		num, ok := acc.Values[p.Name]
		if !ok {
			continue
		}
		totals[p.Year] += num
		seen[p.Year] = true
	}
	for year := range totals {
		if !seen[year] {
			delete(totals, year)
		}
	}
	return totals
}

// Aggregate projects the ledger onto the window's aggregate periods.
// Accounts keep their identity; Values are re-keyed by aggregate name.
func Aggregate(l domain.Ledger, w AnalysisWindow) domain.Ledger {
	monthly := l.MonthlyPeriods()
	refMonth := DetectFiscalPeriods(l).ReferenceMonth

	out := domain.Ledger{Periods: w.Periods, SourceFile: l.SourceFile}
	for _, acc := range l.Accounts {
		fy := FiscalYearTotals(acc, monthly)
		ytd := YearToDateTotals(acc, l, refMonth)

		values := map[string]float64{}
		for _, p := range w.Periods {
			switch p.Kind {
			case domain.PeriodYearly:
				if total, ok := fy[p.Year]; ok {
					values[p.Name] = total
				}
			case domain.PeriodYTD:
				if total, ok := ytd[p.Year]; ok {
					values[p.Name] = total
				}
			}
		}
		projected := acc
		projected.Values = values
		out.Accounts = append(out.Accounts, projected)
	}
	return out
}

// NormalizeHierarchy links each account to its closest ancestor, found
// by zero-filling the shortest possible suffix of the code.
func NormalizeHierarchy(accounts []domain.Account) []domain.Account {
	byCode := map[string]int{}
	for i, acc := range accounts {
		byCode[acc.Code] = i
	}
	for i := range accounts {
		accounts[i].ParentCode = parentCode(accounts[i].Code, byCode)
	}
	for i := range accounts {
		accounts[i].Level = level(accounts[i].Code, accounts, byCode, map[string]bool{})
	}
	return accounts
}

func parentCode(code string, byCode map[string]int) string {
	for k := 1; k < len(code); k++ {
		candidate := code[:len(code)-k] + strings.Repeat("0", k)
		if candidate == code {
			continue
		}
		if _, ok := byCode[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func level(code string, accounts []domain.Account, byCode map[string]int, visiting map[string]bool) int {
	idx, ok := byCode[code]
	if !ok || visiting[code] {
		return 0
	}
	parent := accounts[idx].ParentCode
	if parent == "" {
		return 1
	}
	visiting[code] = true
	defer delete(visiting, code)
	return level(parent, accounts, byCode, visiting) + 1
}
