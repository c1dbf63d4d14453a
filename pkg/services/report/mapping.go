package report

import "github.com/de-tools/fdd-atlas/pkg/models/domain"

// DefaultMapping places two-digit account prefixes into the three-level
// reporting hierarchy used by the EBITDA and balance views.
func DefaultMapping() map[string]domain.CategoryMapping {
	return map[string]domain.CategoryMapping{
		// ingresos
		"70": {Level1: "EBITDA", Level2: "Revenue", Level3: "Gross revenue"},
		"71": {Level1: "EBITDA", Level2: "Revenue", Level3: "Other revenue"},
		"72": {Level1: "EBITDA", Level2: "Revenue", Level3: "Other revenue"},
		"73": {Level1: "EBITDA", Level2: "Revenue", Level3: "Other revenue"},
		"74": {Level1: "EBITDA", Level2: "Revenue", Level3: "Other revenue"},
		"75": {Level1: "EBITDA", Level2: "Revenue", Level3: "Other revenue"},
		"76": {Level1: "EBITDA", Level2: "Revenue", Level3: "Financial income"},
		"77": {Level1: "EBITDA", Level2: "Revenue", Level3: "Extraordinary income"},

		// gastos
		"60": {Level1: "EBITDA", Level2: "COGS", Level3: "Purchases"},
		"61": {Level1: "EBITDA", Level2: "COGS", Level3: "Variation in stock"},
		"62": {Level1: "EBITDA", Level2: "OPEX", Level3: "External services"},
		"63": {Level1: "EBITDA", Level2: "OPEX", Level3: "Taxes"},
		"64": {Level1: "EBITDA", Level2: "OPEX", Level3: "Personnel costs"},
		"65": {Level1: "EBITDA", Level2: "OPEX", Level3: "Other operating expenses"},
		"66": {Level1: "EBITDA", Level2: "Financial expenses", Level3: "Financial expenses"},
		"67": {Level1: "EBITDA", Level2: "Extraordinary", Level3: "Extraordinary expenses"},
		"68": {Level1: "EBITDA", Level2: "D&A", Level3: "Depreciation & Amortization"},
		"69": {Level1: "EBITDA", Level2: "Provisions", Level3: "Provisions"},

		// activo
		"20": {Level1: "Balance", Level2: "Assets", Level3: "Intangible assets"},
		"21": {Level1: "Balance", Level2: "Assets", Level3: "Tangible assets"},
		"22": {Level1: "Balance", Level2: "Assets", Level3: "Real estate investments"},
		"23": {Level1: "Balance", Level2: "Assets", Level3: "Fixed assets in progress"},
		"24": {Level1: "Balance", Level2: "Assets", Level3: "Financial assets"},
		"25": {Level1: "Balance", Level2: "Assets", Level3: "Long-term investments"},

		// existencias
		"30": {Level1: "Balance", Level2: "Working Capital", Level3: "Inventory"},
		"31": {Level1: "Balance", Level2: "Working Capital", Level3: "Inventory"},
		"32": {Level1: "Balance", Level2: "Working Capital", Level3: "Inventory"},
		"33": {Level1: "Balance", Level2: "Working Capital", Level3: "Inventory"},
		"34": {Level1: "Balance", Level2: "Working Capital", Level3: "Inventory"},
		"35": {Level1: "Balance", Level2: "Working Capital", Level3: "Inventory"},
		"36": {Level1: "Balance", Level2: "Working Capital", Level3: "Inventory"},

		// deudores y acreedores
		"40": {Level1: "Balance", Level2: "Working Capital", Level3: "Trade payables"},
		"41": {Level1: "Balance", Level2: "Working Capital", Level3: "Trade payables"},
		"43": {Level1: "Balance", Level2: "Working Capital", Level3: "Trade receivables"},
		"44": {Level1: "Balance", Level2: "Working Capital", Level3: "Trade receivables"},
		"46": {Level1: "Balance", Level2: "Working Capital", Level3: "Personnel"},
		"47": {Level1: "Balance", Level2: "Working Capital", Level3: "Public entities"},
		"48": {Level1: "Balance", Level2: "Working Capital", Level3: "Accruals"},
		"49": {Level1: "Balance", Level2: "Working Capital", Level3: "Provisions"},

		// cuentas financieras
		"50": {Level1: "Balance", Level2: "Financial Position", Level3: "Short-term debt"},
		"51": {Level1: "Balance", Level2: "Financial Position", Level3: "Short-term debt"},
		"52": {Level1: "Balance", Level2: "Financial Position", Level3: "Short-term investments"},
		"53": {Level1: "Balance", Level2: "Financial Position", Level3: "Short-term investments"},
		"54": {Level1: "Balance", Level2: "Financial Position", Level3: "Short-term investments"},
		"55": {Level1: "Balance", Level2: "Financial Position", Level3: "Intercompany"},
		"56": {Level1: "Balance", Level2: "Financial Position", Level3: "Cash pending"},
		"57": {Level1: "Balance", Level2: "Financial Position", Level3: "Cash & equivalents"},

		// patrimonio y pasivo
		"10": {Level1: "Balance", Level2: "Equity", Level3: "Share capital"},
		"11": {Level1: "Balance", Level2: "Equity", Level3: "Reserves"},
		"12": {Level1: "Balance", Level2: "Equity", Level3: "Retained earnings"},
		"13": {Level1: "Balance", Level2: "Equity", Level3: "Grants"},
		"14": {Level1: "Balance", Level2: "Liabilities", Level3: "Provisions"},
		"15": {Level1: "Balance", Level2: "Liabilities", Level3: "Long-term debt"},
		"16": {Level1: "Balance", Level2: "Liabilities", Level3: "Long-term debt"},
		"17": {Level1: "Balance", Level2: "Liabilities", Level3: "Long-term debt"},
		"18": {Level1: "Balance", Level2: "Liabilities", Level3: "Bonds"},
		"19": {Level1: "Balance", Level2: "Liabilities", Level3: "Provisions"},
	}
}

// coarse group categories for codes outside the curated table
var fallbackByGroup = map[string]domain.CategoryMapping{
	"1": {Level1: "Balance", Level2: "Equity"},
	"2": {Level1: "Balance", Level2: "Assets"},
	"3": {Level1: "Balance", Level2: "Working Capital", Level3: "Inventory"},
	"4": {Level1: "Balance", Level2: "Working Capital"},
	"5": {Level1: "Balance", Level2: "Financial Position"},
	"6": {Level1: "EBITDA", Level2: "OPEX"},
	"7": {Level1: "EBITDA", Level2: "Revenue"},
}

// ResolveMapping finds the category for a code by longest-prefix match,
// falling back to the coarse top-level group.
func ResolveMapping(table map[string]domain.CategoryMapping, code string) domain.CategoryMapping {
	for length := len(code); length >= 2; length-- {
		if m, ok := table[code[:length]]; ok {
			return m
		}
	}
	if code != "" {
		if m, ok := fallbackByGroup[code[:1]]; ok {
			return m
		}
	}
	return domain.CategoryMapping{}
}
