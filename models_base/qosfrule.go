package models_base

import "fmt"

// QoSFilterRule carries a QoS filter in the QoSFilterRule syntax. The
// rule text is not interpreted here.
type QoSFilterRule OctetString

func DecodeQoSFilterRule(b []byte) (Type, error) {
	d := make([]byte, len(b))
	copy(d, b)
	return QoSFilterRule(d), nil
}

func (s QoSFilterRule) Serialize() []byte {
	return []byte(s)
}

func (s QoSFilterRule) Len() int {
	return len(s)
}

func (s QoSFilterRule) Padding() int {
	return pad4(len(s)) - len(s)
}

func (s QoSFilterRule) Type() TypeID {
	return QoSFilterRuleType
}

func (s QoSFilterRule) String() string {
	return fmt.Sprintf("QoSFilterRule{%s},Padding:%d", string(s), s.Padding())
}
