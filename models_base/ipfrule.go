package models_base

import "fmt"

// IPFilterRule carries a packet filter in the IPFilterRule syntax. The
// rule text is not interpreted here.
type IPFilterRule OctetString

func DecodeIPFilterRule(b []byte) (Type, error) {
	d := make([]byte, len(b))
	copy(d, b)
	return IPFilterRule(d), nil
}

func (s IPFilterRule) Serialize() []byte {
	return []byte(s)
}

func (s IPFilterRule) Len() int {
	return len(s)
}

func (s IPFilterRule) Padding() int {
	return pad4(len(s)) - len(s)
}

func (s IPFilterRule) Type() TypeID {
	return IPFilterRuleType
}

func (s IPFilterRule) String() string {
	return fmt.Sprintf("IPFilterRule{%s},Padding:%d", string(s), s.Padding())
}
