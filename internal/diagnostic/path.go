package diagnostic

import (
	"strings"
)

// FieldPath builds a readable path to the value being populated.
// Examples:
//   - "Order" for the root
//   - "Order.Customer" for a nested field
//   - "Order.Items[]" for slice elements
//   - "Order.Lookup{}" for map values
//   - "Order.Items[].Product" for a field within slice elements
//
// FieldPath values are immutable; every method returns a new path.
type FieldPath struct {
	parts []string
}

func NewFieldPath(root string) FieldPath {
	return FieldPath{parts: []string{root}}
}

// Field appends a field name to the path.
func (p FieldPath) Field(name string) FieldPath {
	return FieldPath{parts: append(p.clone(), name)}
}

// Elem marks the last element as a collection element.
func (p FieldPath) Elem() FieldPath {
	return p.suffix("[]")
}

// Value marks the last element as a map value.
func (p FieldPath) Value() FieldPath {
	return p.suffix("{}")
}

func (p FieldPath) suffix(s string) FieldPath {
	if len(p.parts) == 0 {
		return FieldPath{parts: []string{s}}
	}

	parts := p.clone()
	parts[len(parts)-1] += s

	return FieldPath{parts: parts}
}

func (p FieldPath) clone() []string {
	parts := make([]string, len(p.parts), len(p.parts)+1)
	copy(parts, p.parts)

	return parts
}

// Depth returns the number of fields below the root.
func (p FieldPath) Depth() int {
	return max(len(p.parts)-1, 0)
}

func (p FieldPath) String() string {
	return strings.Join(p.parts, ".")
}
