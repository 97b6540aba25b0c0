package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Quantity is the inventory "jumlah" field. The form allows the field to be
// cleared entirely, and a cleared value must be persisted as the empty value,
// not silently coerced to 0. A fresh form defaults to 1.
type Quantity struct {
	value int64
	set   bool
}

func NewQuantity(n int64) Quantity { return Quantity{value: n, set: true} }

func EmptyQuantity() Quantity { return Quantity{} }

// DefaultQuantity is the fresh-form default.
func DefaultQuantity() Quantity { return NewQuantity(1) }

func (q Quantity) IsEmpty() bool { return !q.set }

func (q Quantity) Value() (int64, bool) { return q.value, q.set }

// String renders the displayed cell value: "" when empty.
func (q Quantity) String() string {
	if !q.set {
		return ""
	}
	return strconv.FormatInt(q.value, 10)
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.set {
		return []byte(`""`), nil
	}
	return []byte(strconv.FormatInt(q.value, 10)), nil
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `""`, "null":
		*q = EmptyQuantity()
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Join(ErrInvalidArgument, fmt.Errorf("quantity %s: %w", data, err))
	}
	if n < 0 {
		return errors.Join(ErrInvalidArgument, fmt.Errorf("quantity must be non-negative, got %d", n))
	}
	*q = NewQuantity(n)
	return nil
}

// QuantityFromStored rebuilds a Quantity from whatever the document store
// handed back: older documents may carry "" (or nothing) where the user
// cleared the field, while regular values arrive as one of the numeric BSON
// types.
func QuantityFromStored(v any) Quantity {
	switch n := v.(type) {
	case nil:
		return EmptyQuantity()
	case string:
		return EmptyQuantity()
	case int32:
		return NewQuantity(int64(n))
	case int64:
		return NewQuantity(n)
	case int:
		return NewQuantity(int64(n))
	case float64:
		return NewQuantity(int64(n))
	default:
		return EmptyQuantity()
	}
}

// StoredValue is the document representation: the raw number, or "" for an
// empty value, preserved exactly as entered.
func (q Quantity) StoredValue() any {
	if !q.set {
		return ""
	}
	return q.value
}
