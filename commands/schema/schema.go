// Package schema implements the generic attribute generator: static
// per-command field tables that map named struct fields to AVP codes,
// consumed by one encode routine and one decode routine. The tables are
// the shape a code generator would emit; the algorithm lives here once.
package schema

import (
	"fmt"

	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/models_base"
)

// FieldBinding binds one named field of a message (or grouped) struct to
// an AVP code. Leaf fields use Get/Set; grouped fields bound to a nested
// struct use Group/GetGroup/SetGroup/NewGroup instead.
type FieldBinding struct {
	Name      string // AVP display name, used in validation errors
	Code      uint32
	VendorID  uint32
	Required  bool
	Repeated  bool
	Mandatory *bool // overrides the dictionary M-bit default when set

	Get func(m any) []models_base.Type
	Set func(m any, v models_base.Type) error

	Group    *Schema
	GetGroup func(m any) []any
	SetGroup func(m any, g any)
	NewGroup func() any
}

// Schema is the ordered field table for one message or grouped type.
// Extra, when set, exposes the instance's overflow list: AVPs present on
// the wire but claimed by no binding.
type Schema struct {
	Fields []*FieldBinding
	Extra  func(m any) *[]*avp.AVP
}

// MissingFieldError reports a required field absent at strict encode or
// validation time. It is never raised during decode.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required AVP %s", e.Field)
}

func (b *FieldBinding) newAVP(data models_base.Type) *avp.AVP {
	a := avp.New(b.Code, b.VendorID, data)
	if b.Mandatory != nil {
		if *b.Mandatory {
			a.Flags |= avp.Mbit
		} else {
			a.Flags &^= avp.Mbit
		}
	}
	return a
}

// GenerateAVPs walks the field table in declaration order and produces
// the AVP list for m. In strict mode an absent required field fails;
// in lenient mode it is skipped. The overflow list, when present, is
// appended unchanged after all schema-driven AVPs. Declaration order
// first is a compatibility requirement, some peers validate AVP order.
func (s *Schema) GenerateAVPs(m any, strict bool) ([]*avp.AVP, error) {
	var avps []*avp.AVP
	for _, b := range s.Fields {
		if b.Group != nil {
			groups := b.GetGroup(m)
			if len(groups) == 0 {
				if b.Required && strict {
					return nil, &MissingFieldError{Field: b.Name}
				}
				continue
			}
			for _, g := range groups {
				children, err := b.Group.GenerateAVPs(g, strict)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", b.Name, err)
				}
				avps = append(avps, b.newAVP(avp.NewGroupedBody(children...)))
			}
			continue
		}

		values := b.Get(m)
		if len(values) == 0 {
			if b.Required && strict {
				return nil, &MissingFieldError{Field: b.Name}
			}
			continue
		}
		for _, v := range values {
			avps = append(avps, b.newAVP(v))
		}
	}
	if s.Extra != nil {
		avps = append(avps, *s.Extra(m)...)
	}
	return avps, nil
}

// AssignFields populates m's fields from a parsed AVP list. Scalar
// bindings keep the first match; every unclaimed AVP, including
// spec-violating duplicates, lands in the overflow list in wire order.
// Missing fields never fail here; required-field checking is Validate's
// job, after decode.
func (s *Schema) AssignFields(m any, avps []*avp.AVP) error {
	claimed := make([]bool, len(avps))
	for _, b := range s.Fields {
		matched := 0
		for i, a := range avps {
			if claimed[i] || a.Code != b.Code || a.VendorID != b.VendorID {
				continue
			}
			if !b.Repeated && matched > 0 {
				break
			}
			if b.Group != nil {
				children := a.Group()
				if children == nil {
					// Declared grouped but decoded flat: leave it for
					// the overflow list rather than dropping data.
					continue
				}
				g := b.NewGroup()
				if err := b.Group.AssignFields(g, children); err != nil {
					return fmt.Errorf("%s: %w", b.Name, err)
				}
				b.SetGroup(m, g)
			} else {
				if err := b.Set(m, a.Data); err != nil {
					return fmt.Errorf("%s: %w", b.Name, err)
				}
			}
			claimed[i] = true
			matched++
		}
	}

	if s.Extra != nil {
		extra := s.Extra(m)
		for i, a := range avps {
			if !claimed[i] {
				*extra = append(*extra, a)
			}
		}
	}
	return nil
}

// Validate checks that every required field of m is populated. This is
// the strict-mode counterpart of GenerateAVPs' lenient default.
func (s *Schema) Validate(m any) error {
	for _, b := range s.Fields {
		if !b.Required {
			continue
		}
		if b.Group != nil {
			if len(b.GetGroup(m)) == 0 {
				return &MissingFieldError{Field: b.Name}
			}
			continue
		}
		if len(b.Get(m)) == 0 {
			return &MissingFieldError{Field: b.Name}
		}
	}
	return nil
}
