package models_base

import "fmt"

// OctetString is arbitrary binary data, padded to a 32-bit boundary on
// the wire.
type OctetString string

func DecodeOctetString(b []byte) (Type, error) {
	d := make([]byte, len(b))
	copy(d, b)
	return OctetString(d), nil
}

func (s OctetString) Serialize() []byte {
	return []byte(s)
}

func (s OctetString) Len() int {
	return len(s)
}

func (s OctetString) Padding() int {
	return pad4(len(s)) - len(s)
}

func (s OctetString) Type() TypeID {
	return OctetStringType
}

func (s OctetString) String() string {
	return fmt.Sprintf("OctetString{%#x},Padding:%d", string(s), s.Padding())
}
