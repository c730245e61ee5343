// Package models_base implements the Diameter data type system: one Go
// type per RFC 6733 derived data format, each knowing how to serialize
// itself and how much padding it needs on the wire.
package models_base

// Type is implemented by every Diameter data format.
type Type interface {
	Serialize() []byte
	Len() int
	Padding() int
	Type() TypeID
	String() string
}

// TypeID identifies a data format in the dictionary.
type TypeID int

const (
	UnknownType TypeID = iota
	AddressType
	DiameterIdentityType
	DiameterURIType
	EnumeratedType
	Float32Type
	Float64Type
	GroupedType
	IPFilterRuleType
	IPv4Type
	Integer32Type
	Integer64Type
	OctetStringType
	QoSFilterRuleType
	TimeType
	UTF8StringType
	Unsigned32Type
	Unsigned64Type
	IPv6Type
)
