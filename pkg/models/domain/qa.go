package domain

import "time"

// QAItem is one row of the due-diligence questionnaire: an account with
// its per-period values, variations between compared period pairs and
// the generated question, if any rule matched.
type QAItem struct {
	Code        string
	Description string
	Mapping     CategoryMapping
	Values      map[string]Value
	// keyed by PairKey
	Variations map[string]VariationResult
	AbsChanges map[string]Value
	PctChanges map[string]Value
	// percentage over total revenue, keyed by period name
	PctOverRevenue map[string]Value
	// percentage-point change of the revenue share, keyed by PairKey
	PPChanges map[string]Value
	Question  string
	Reason    string
	Priority  Priority
	Status    Status
	Answer    string
	FollowUp  string
}

type QAReport struct {
	Items           []QAItem
	AnalysisPeriods []string
	ComparisonPairs []string
	RevenueTotals   map[string]Value
	SourceFile      string
	GeneratedAt     time.Time
}

func (r QAReport) CountByPriority() map[Priority]int {
	counts := map[Priority]int{}
	for _, item := range r.Items {
		if item.Question == "" {
			continue
		}
		counts[item.Priority]++
	}
	return counts
}

// Questions returns only the items that carry a generated question.
func (r QAReport) Questions() []QAItem {
	var out []QAItem
	for _, item := range r.Items {
		if item.Question != "" {
			out = append(out, item)
		}
	}
	return out
}
