package models_base

import (
	"fmt"
	"net"
)

// IPv4 data type: a bare 4-byte address with no family prefix, used by a
// handful of legacy RADIUS-derived AVPs such as Framed-IP-Address.
type IPv4 net.IP

// DecodeIPv4 decodes an IPv4 data type from byte array.
func DecodeIPv4(b []byte) (Type, error) {
	if len(b) != net.IPv4len {
		return IPv4{}, &DecodeError{TypeName: "IPv4", Reason: fmt.Sprintf("payload must be 4 bytes, have %d", len(b))}
	}
	d := make([]byte, net.IPv4len)
	copy(d, b)
	return IPv4(d), nil
}

// Serialize implements the Type interface.
func (ip IPv4) Serialize() []byte {
	if v4 := net.IP(ip).To4(); v4 != nil {
		return v4
	}
	return net.IP(ip)
}

// Len implements the Type interface.
func (ip IPv4) Len() int {
	return net.IPv4len
}

// Padding implements the Type interface.
func (ip IPv4) Padding() int {
	return 0
}

// Type implements the Type interface.
func (ip IPv4) Type() TypeID {
	return IPv4Type
}

// String implements the Type interface.
func (ip IPv4) String() string {
	return fmt.Sprintf("IPv4{%s}", net.IP(ip))
}
