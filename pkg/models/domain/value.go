package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Value is an optional numeric amount. A zero Value means the amount is
// absent, which is distinct from an amount of zero.
type Value struct {
	Num   float64
	Valid bool
}

func NewValue(num float64) (Value, error) {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return Value{}, fmt.Errorf("value must be finite, got %v", num)
	}
	return Value{Num: num, Valid: true}, nil
}

// SomeValue wraps a finite float. Non-finite inputs produce an absent Value.
func SomeValue(num float64) Value {
	v, err := NewValue(num)
	if err != nil {
		return Value{}
	}
	return v
}

func (v Value) Float() (float64, bool) {
	return v.Num, v.Valid
}

func (v Value) Abs() Value {
	if !v.Valid {
		return Value{}
	}
	return Value{Num: math.Abs(v.Num), Valid: true}
}

func (v Value) String() string {
	if !v.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v.Num)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Num)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	parsed, err := NewValue(num)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
