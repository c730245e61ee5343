package models_base

import (
	"encoding/binary"
	"fmt"
	"net"
)

// Address families from the IANA AddressFamilyNumbers registry that the
// codec interprets. Anything else decodes as raw octets.
const (
	addrFamilyIPv4 = 1
	addrFamilyIPv6 = 2
	addrFamilyE164 = 8
)

// Address data type. The family discriminator travels with the value
// instead of being inferred from the payload at serialize time; a four
// digit E.164 number and an IPv4 address are both 4 bytes long and only
// the family tells them apart. The two-byte family prefix is part of
// the wire form only.
type Address struct {
	family uint16
	body   []byte
}

// NewAddressIP builds an IPv4 or IPv6 Address from ip.
func NewAddressIP(ip net.IP) Address {
	if v4 := ip.To4(); v4 != nil {
		return Address{family: addrFamilyIPv4, body: v4}
	}
	return Address{family: addrFamilyIPv6, body: ip.To16()}
}

// NewAddressE164 builds an E.164 Address, rejecting non-digit input.
func NewAddressE164(digits string) (Address, error) {
	if digits == "" {
		return Address{}, &EncodeError{TypeName: "Address", Reason: "empty E.164 number"}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Address{}, &EncodeError{TypeName: "Address", Reason: fmt.Sprintf("E.164 number contains non-digit %q", digits[i])}
		}
	}
	return Address{family: addrFamilyE164, body: []byte(digits)}, nil
}

// Family returns the IANA address family number.
func (a Address) Family() uint16 {
	return a.family
}

// IP returns the IP form of the address, or nil for non-IP families.
func (a Address) IP() net.IP {
	switch a.family {
	case addrFamilyIPv4, addrFamilyIPv6:
		return net.IP(a.body)
	}
	return nil
}

// E164 returns the digit string of an E.164 address, or "" for other
// families.
func (a Address) E164() string {
	if a.family != addrFamilyE164 {
		return ""
	}
	return string(a.body)
}

// DecodeAddress decodes an Address from byte array. The first two bytes
// select the family; unknown families fall back to raw octets so a parse
// of the enclosing message never fails on an exotic address.
func DecodeAddress(b []byte) (Type, error) {
	if len(b) < 2 {
		return Address{}, &DecodeError{TypeName: "Address", Reason: fmt.Sprintf("payload must be at least 2 bytes, have %d", len(b))}
	}
	family := binary.BigEndian.Uint16(b[:2])
	body := b[2:]
	switch family {
	case addrFamilyIPv4:
		if len(body) != net.IPv4len {
			return Address{}, &DecodeError{TypeName: "Address", Reason: fmt.Sprintf("IPv4 address must be 4 bytes, have %d", len(body))}
		}
	case addrFamilyIPv6:
		if len(body) != net.IPv6len {
			return Address{}, &DecodeError{TypeName: "Address", Reason: fmt.Sprintf("IPv6 address must be 16 bytes, have %d", len(body))}
		}
	case addrFamilyE164:
		// digit string, any length
	default:
		// Unknown family: keep the whole payload (prefix included) as
		// opaque octets so it survives a re-serialize untouched.
		return DecodeOctetString(b)
	}
	d := make([]byte, len(body))
	copy(d, body)
	return Address{family: family, body: d}, nil
}

// Serialize implements the Type interface.
func (a Address) Serialize() []byte {
	b := make([]byte, 2+len(a.body))
	binary.BigEndian.PutUint16(b[:2], a.family)
	copy(b[2:], a.body)
	return b
}

// Len implements the Type interface.
func (a Address) Len() int {
	return 2 + len(a.body)
}

// Padding implements the Type interface.
func (a Address) Padding() int {
	l := a.Len()
	return pad4(l) - l
}

// Type implements the Type interface.
func (a Address) Type() TypeID {
	return AddressType
}

// String implements the Type interface.
func (a Address) String() string {
	if ip := a.IP(); ip != nil {
		return fmt.Sprintf("Address{%s},Padding:%d", ip, a.Padding())
	}
	return fmt.Sprintf("Address{%s},Padding:%d", a.body, a.Padding())
}
