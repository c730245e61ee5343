package models_base

import "fmt"

// Decode interprets payload bytes under the given wire type. The switch is
// closed over every TypeID so the compiler keeps the codec exhaustive;
// UnknownType degrades to raw octets rather than failing.
func Decode(id TypeID, b []byte) (Type, error) {
	switch id {
	case AddressType:
		return DecodeAddress(b)
	case DiameterIdentityType:
		return DecodeDiameterIdentity(b)
	case DiameterURIType:
		return DecodeDiameterURI(b)
	case EnumeratedType:
		return DecodeEnumerated(b)
	case Float32Type:
		return DecodeFloat32(b)
	case Float64Type:
		return DecodeFloat64(b)
	case GroupedType:
		return DecodeGrouped(b)
	case IPFilterRuleType:
		return DecodeIPFilterRule(b)
	case IPv4Type:
		return DecodeIPv4(b)
	case IPv6Type:
		return DecodeIPv6(b)
	case Integer32Type:
		return DecodeInteger32(b)
	case Integer64Type:
		return DecodeInteger64(b)
	case OctetStringType:
		return DecodeOctetString(b)
	case QoSFilterRuleType:
		return DecodeQoSFilterRule(b)
	case TimeType:
		return DecodeTime(b)
	case UTF8StringType:
		return DecodeUTF8String(b)
	case Unsigned32Type:
		return DecodeUnsigned32(b)
	case Unsigned64Type:
		return DecodeUnsigned64(b)
	case UnknownType:
		return DecodeOctetString(b)
	}
	return nil, &DecodeError{TypeName: fmt.Sprintf("TypeID(%d)", id), Reason: "no decoder registered"}
}
