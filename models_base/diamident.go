package models_base

import "fmt"

// DiameterIdentity holds an FQDN or realm as defined in RFC 6733
// section 4.3.1.
type DiameterIdentity OctetString

func DecodeDiameterIdentity(b []byte) (Type, error) {
	d := make([]byte, len(b))
	copy(d, b)
	return DiameterIdentity(d), nil
}

func (s DiameterIdentity) Serialize() []byte {
	return []byte(s)
}

func (s DiameterIdentity) Len() int {
	return len(s)
}

func (s DiameterIdentity) Padding() int {
	return pad4(len(s)) - len(s)
}

func (s DiameterIdentity) Type() TypeID {
	return DiameterIdentityType
}

func (s DiameterIdentity) String() string {
	return fmt.Sprintf("DiameterIdentity{%s},Padding:%d", string(s), s.Padding())
}
