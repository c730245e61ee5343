package models_base

import "fmt"

// Grouped data type. Carries the raw concatenated child-AVP bytes; the
// avp package re-parses it into an owned child list and substitutes its
// own container, so a Grouped value only surfaces when no dictionary is
// available to drive the recursion.
type Grouped []byte

// DecodeGrouped decodes a Grouped payload from byte array.
func DecodeGrouped(b []byte) (Type, error) {
	d := make([]byte, len(b))
	copy(d, b)
	return Grouped(d), nil
}

// Serialize implements the Type interface.
func (g Grouped) Serialize() []byte {
	return []byte(g)
}

// Len implements the Type interface.
func (g Grouped) Len() int {
	return len(g)
}

// Padding implements the Type interface.
func (g Grouped) Padding() int {
	l := len(g)
	return pad4(l) - l
}

// Type implements the Type interface.
func (g Grouped) Type() TypeID {
	return GroupedType
}

// String implements the Type interface.
func (g Grouped) String() string {
	return fmt.Sprintf("Grouped{%d bytes}", len(g))
}
