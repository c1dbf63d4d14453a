package domain

// CategoryMapping places an account in the three-level reporting
// hierarchy used by the EBITDA and balance views.
type CategoryMapping struct {
	Level1 string
	Level2 string
	Level3 string
}

// Account is a general-ledger account with one value per period column.
// Values is keyed by period name; an absent key means no observation.
type Account struct {
	Code        string
	Description string
	Values      map[string]float64
	ParentCode  string
	Level       int
	Mapping     CategoryMapping
}

func (a Account) Value(period string) Value {
	num, ok := a.Values[period]
	if !ok {
		return Value{}
	}
	return SomeValue(num)
}

// Group returns the leading digit of the account code, or empty when the
// code does not start with a digit.
func (a Account) Group() string {
	if a.Code == "" || a.Code[0] < '0' || a.Code[0] > '9' {
		return ""
	}
	return a.Code[:1]
}

// Ledger is a parsed trial balance: accounts plus the period columns
// observed in the source document, in chronological order.
type Ledger struct {
	Accounts   []Account
	Periods    []Period
	SourceFile string
}

func (l Ledger) MonthlyPeriods() []Period {
	var out []Period
	for _, p := range l.Periods {
		if p.IsMonthly() {
			out = append(out, p)
		}
	}
	return out
}
