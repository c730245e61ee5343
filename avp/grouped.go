package avp

import (
	"strings"

	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// GroupedBody is the decoded payload of a Grouped AVP: an owned, ordered
// child list. The wire bytes are derived from the children on every
// serialize, never the other way around, so mutating a child can never
// leave a stale byte cache behind.
type GroupedBody struct {
	AVPs []*AVP
}

// NewGroupedBody builds a Grouped payload from child AVPs.
func NewGroupedBody(avps ...*AVP) *GroupedBody {
	return &GroupedBody{AVPs: avps}
}

func decodeGroup(payload []byte, registry *dict.Registry) (*GroupedBody, error) {
	children, err := DecodeAll(payload, registry)
	if err != nil {
		return nil, err
	}
	return &GroupedBody{AVPs: children}, nil
}

// Serialize implements the models_base.Type interface.
func (g *GroupedBody) Serialize() []byte {
	p := models_base.NewPacker(g.Len())
	for _, child := range g.AVPs {
		// Child errors cannot occur here: every child holds data by
		// construction. SerializeTo only fails on nil Data.
		_ = child.SerializeTo(p)
	}
	return p.Bytes()
}

// Len implements the models_base.Type interface. Children are already
// 4-byte aligned, so the group itself never needs padding.
func (g *GroupedBody) Len() int {
	n := 0
	for _, child := range g.AVPs {
		n += child.Len()
	}
	return n
}

// Padding implements the models_base.Type interface.
func (g *GroupedBody) Padding() int {
	return 0
}

// Type implements the models_base.Type interface.
func (g *GroupedBody) Type() models_base.TypeID {
	return models_base.GroupedType
}

// String implements the models_base.Type interface.
func (g *GroupedBody) String() string {
	var sb strings.Builder
	sb.WriteString("Grouped{")
	for i, child := range g.AVPs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(child.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
