package domain

import (
	"regexp"
	"strconv"
	"strings"
)

type PeriodKind string

const (
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
	PeriodYTD     PeriodKind = "ytd"
)

var (
	monthlyPattern = regexp.MustCompile(`^[A-Za-z]{3}-\d{2}$`)
	yearlyPattern  = regexp.MustCompile(`(?i)^FY\d{2}$`)
	ytdPattern     = regexp.MustCompile(`(?i)^YTD\d{2}$`)

	monthsByAbbrev = map[string]int{
		"ene": 1, "jan": 1,
		"feb": 2,
		"mar": 3,
		"abr": 4, "apr": 4,
		"may": 5,
		"jun": 6,
		"jul": 7,
		"ago": 8, "aug": 8,
		"sep": 9,
		"oct": 10,
		"nov": 11,
		"dic": 12, "dec": 12,
	}
)

// Period is a column label parsed into a comparable fiscal coordinate.
// Month is 0 for yearly and year-to-date periods.
type Period struct {
	Name  string
	Year  int
	Month int
	Kind  PeriodKind
}

// ParsePeriod reads labels such as "Ene-23", "FY23" or "YTD24". Unknown
// labels parse as monthly with year 0 so they sort before real data.
func ParsePeriod(name string) Period {
	trimmed := strings.TrimSpace(name)
	switch {
	case monthlyPattern.MatchString(trimmed):
		abbrev := strings.ToLower(trimmed[:3])
		year, _ := strconv.Atoi(trimmed[4:])
		if month, ok := monthsByAbbrev[abbrev]; ok {
			return Period{Name: trimmed, Year: 2000 + year, Month: month, Kind: PeriodMonthly}
		}
	case yearlyPattern.MatchString(trimmed):
		year, _ := strconv.Atoi(trimmed[2:])
		return Period{Name: trimmed, Year: 2000 + year, Kind: PeriodYearly}
	case ytdPattern.MatchString(trimmed):
		year, _ := strconv.Atoi(trimmed[3:])
		return Period{Name: trimmed, Year: 2000 + year, Kind: PeriodYTD}
	}
	return Period{Name: trimmed, Kind: PeriodMonthly}
}

// Before orders periods chronologically. Within a year, monthly periods
// come first and month-less aggregates follow.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.sortMonth() < other.sortMonth()
}

func (p Period) sortMonth() int {
	if p.Month == 0 {
		return 13
	}
	return p.Month
}

func (p Period) IsMonthly() bool {
	return p.Kind == PeriodMonthly && p.Month > 0
}
