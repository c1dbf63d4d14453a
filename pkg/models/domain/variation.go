package domain

type VariationKind string

const (
	VariationNewItem     VariationKind = "item_nuevo"
	VariationDisappeared VariationKind = "item_desaparecido"
	VariationStable      VariationKind = "estable"
	VariationMinor       VariationKind = "cambio_menor"
	VariationSigIncrease VariationKind = "aumento_significativo"
	VariationSigDecrease VariationKind = "disminucion_significativa"
)

type Priority string

const (
	PriorityAlta  Priority = "Alta"
	PriorityMedia Priority = "Media"
	PriorityBaja  Priority = "Baja"
)

// Rank orders priorities for sorting, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityAlta:
		return 0
	case PriorityMedia:
		return 1
	default:
		return 2
	}
}

// Max returns the higher of two priorities.
func (p Priority) Max(other Priority) Priority {
	if other.Rank() < p.Rank() {
		return other
	}
	return p
}

type Status string

const (
	StatusOpen       Status = "Abierto"
	StatusInProgress Status = "En proceso"
	StatusClosed     Status = "Cerrado"
)

// VariationResult compares one account across a pair of periods.
// PctChange is absent when the base value is zero or missing.
type VariationResult struct {
	AccountCode string
	Description string
	BasePeriod  string
	CompPeriod  string
	BaseValue   Value
	CompValue   Value
	AbsChange   Value
	PctChange   Value
	Kind        VariationKind
	Priority    Priority
	// revenue-share context, filled by the report pipeline when the
	// period totals allow it
	BaseRevenueShare Value
	CompRevenueShare Value
	PPChange         Value
}

// PairKey names a period comparison, e.g. "FY23_vs_FY24".
func PairKey(base, compare string) string {
	return base + "_vs_" + compare
}
