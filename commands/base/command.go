package base

import (
	"fmt"

	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/commands/schema"
	"github.com/hsdfat8/diam-core/models_base"
)

// MarshalCommand validates m against its schema, generates the AVP list
// in schema order and serializes header plus payload.
func MarshalCommand(h *Header, s *schema.Schema, m any) ([]byte, error) {
	if err := s.Validate(m); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	avps, err := s.GenerateAVPs(m, false)
	if err != nil {
		return nil, err
	}

	h.Version = DiameterVersion
	h.Length = uint32(commandLen(avps))

	p := models_base.NewPacker(int(h.Length))
	h.serializeTo(p)
	for _, a := range avps {
		if err := a.SerializeTo(p); err != nil {
			return nil, err
		}
	}
	return p.Bytes(), nil
}

// UnmarshalCommand parses data and assigns the AVPs into m's fields.
// Required-field checks are deliberately not applied here; callers that
// want them run Validate on the result.
func UnmarshalCommand(h *Header, s *schema.Schema, m any, data []byte) error {
	msg, err := ParseMessage(data)
	if err != nil {
		return err
	}
	*h = msg.Header
	return s.AssignFields(m, msg.AVPs)
}

func commandLen(avps []*avp.AVP) int {
	n := HeaderLength
	for _, a := range avps {
		n += a.Len()
	}
	return n
}

// LenCommand computes the marshaled size without serializing.
func LenCommand(s *schema.Schema, m any) int {
	avps, err := s.GenerateAVPs(m, false)
	if err != nil {
		return HeaderLength
	}
	return commandLen(avps)
}

func StringCommand(name string, h *Header, s *schema.Schema, m any) string {
	avps, err := s.GenerateAVPs(m, false)
	if err != nil {
		return fmt.Sprintf("%s{%s}", name, h.String())
	}
	out := fmt.Sprintf("%s{%s}", name, h.String())
	for _, a := range avps {
		out += "\n  " + a.String()
	}
	return out
}

func NewRequestHeader(code, appID uint32, proxiable bool) Header {
	return Header{
		Version:       DiameterVersion,
		Flags:         CommandFlags{Request: true, Proxiable: proxiable},
		CommandCode:   code,
		ApplicationID: appID,
	}
}

func NewAnswerHeader(code, appID uint32, proxiable bool) Header {
	return Header{
		Version:       DiameterVersion,
		Flags:         CommandFlags{Proxiable: proxiable},
		CommandCode:   code,
		ApplicationID: appID,
	}
}

// The helpers below adapt typed struct fields to the schema's
// []models_base.Type accessors. Empty strings and zero numerics are
// treated as absent for optional fields; required fields with a
// meaningful zero use the *Always variants instead.

func identVal(v models_base.DiameterIdentity) []models_base.Type {
	if v == "" {
		return nil
	}
	return []models_base.Type{v}
}

func utf8Val(v models_base.UTF8String) []models_base.Type {
	if v == "" {
		return nil
	}
	return []models_base.Type{v}
}

func u32Val(v models_base.Unsigned32) []models_base.Type {
	if v == 0 {
		return nil
	}
	return []models_base.Type{v}
}

func u32Always(v models_base.Unsigned32) []models_base.Type {
	return []models_base.Type{v}
}

func u64Val(v models_base.Unsigned64) []models_base.Type {
	if v == 0 {
		return nil
	}
	return []models_base.Type{v}
}

func enumAlways(v models_base.Enumerated) []models_base.Type {
	return []models_base.Type{v}
}

func enumVal(v models_base.Enumerated) []models_base.Type {
	if v == 0 {
		return nil
	}
	return []models_base.Type{v}
}

func u32Slice(vs []models_base.Unsigned32) []models_base.Type {
	out := make([]models_base.Type, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}
	return out
}

func identSlice(vs []models_base.DiameterIdentity) []models_base.Type {
	out := make([]models_base.Type, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}
	return out
}

func utf8Slice(vs []models_base.UTF8String) []models_base.Type {
	out := make([]models_base.Type, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}
	return out
}

func addrSlice(vs []models_base.Address) []models_base.Type {
	out := make([]models_base.Type, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}
	return out
}

func fieldTypeError(name string, v models_base.Type) error {
	return fmt.Errorf("%s: unexpected data type %T", name, v)
}
