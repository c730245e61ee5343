package schema

import (
	"fmt"
	"time"

	"github.com/hsdfat8/diam-core/models_base"
)

// Constructors for the common scalar field shapes. ptr resolves the
// instance's field, so one accessor pair serves encode and decode.
// Empty strings and zero numerics read as absent; required fields whose
// zero value is legitimate use the *Always and Enum variants, which
// always emit.

func fieldTypeError(name string, v models_base.Type) error {
	return fmt.Errorf("%s: unexpected data type %T", name, v)
}

// IdentField binds a DiameterIdentity field.
func IdentField(name string, code uint32, required bool, ptr func(m any) *models_base.DiameterIdentity) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Required: required,
		Get: func(m any) []models_base.Type {
			if v := *ptr(m); v != "" {
				return []models_base.Type{v}
			}
			return nil
		},
		Set: func(m any, v models_base.Type) error {
			id, ok := v.(models_base.DiameterIdentity)
			if !ok {
				return fieldTypeError(name, v)
			}
			*ptr(m) = id
			return nil
		},
	}
}

// UTF8Field binds a UTF8String field.
func UTF8Field(name string, code uint32, required bool, ptr func(m any) *models_base.UTF8String) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Required: required,
		Get: func(m any) []models_base.Type {
			if v := *ptr(m); v != "" {
				return []models_base.Type{v}
			}
			return nil
		},
		Set: func(m any, v models_base.Type) error {
			s, ok := v.(models_base.UTF8String)
			if !ok {
				return fieldTypeError(name, v)
			}
			*ptr(m) = s
			return nil
		},
	}
}

// U32Field binds an Unsigned32 field, zero meaning absent.
func U32Field(name string, code uint32, required bool, ptr func(m any) *models_base.Unsigned32) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Required: required,
		Get: func(m any) []models_base.Type {
			if v := *ptr(m); v != 0 {
				return []models_base.Type{v}
			}
			return nil
		},
		Set: func(m any, v models_base.Type) error {
			u, ok := v.(models_base.Unsigned32)
			if !ok {
				return fieldTypeError(name, v)
			}
			*ptr(m) = u
			return nil
		},
	}
}

// U32FieldAlways binds a required Unsigned32 counter where zero is a
// legitimate value, so the AVP is always emitted.
func U32FieldAlways(name string, code uint32, ptr func(m any) *models_base.Unsigned32) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Required: true,
		Get: func(m any) []models_base.Type {
			return []models_base.Type{*ptr(m)}
		},
		Set: func(m any, v models_base.Type) error {
			u, ok := v.(models_base.Unsigned32)
			if !ok {
				return fieldTypeError(name, v)
			}
			*ptr(m) = u
			return nil
		},
	}
}

// U64Field binds an Unsigned64 field, zero meaning absent.
func U64Field(name string, code uint32, required bool, ptr func(m any) *models_base.Unsigned64) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Required: required,
		Get: func(m any) []models_base.Type {
			if v := *ptr(m); v != 0 {
				return []models_base.Type{v}
			}
			return nil
		},
		Set: func(m any, v models_base.Type) error {
			u, ok := v.(models_base.Unsigned64)
			if !ok {
				return fieldTypeError(name, v)
			}
			*ptr(m) = u
			return nil
		},
	}
}

// EnumField binds an Enumerated field. Required enums always emit,
// since enumerations routinely define 0 (Disconnect-Cause REBOOTING);
// optional enums fall back to zero-means-absent.
func EnumField(name string, code uint32, required bool, ptr func(m any) *models_base.Enumerated) *FieldBinding {
	get := func(m any) []models_base.Type {
		if v := *ptr(m); v != 0 {
			return []models_base.Type{v}
		}
		return nil
	}
	if required {
		get = func(m any) []models_base.Type {
			return []models_base.Type{*ptr(m)}
		}
	}
	return &FieldBinding{
		Name: name, Code: code, Required: required,
		Get:  get,
		Set: func(m any, v models_base.Type) error {
			e, ok := v.(models_base.Enumerated)
			if !ok {
				return fieldTypeError(name, v)
			}
			*ptr(m) = e
			return nil
		},
	}
}

// TimeField binds an optional Time field, the zero time meaning absent.
func TimeField(name string, code uint32, ptr func(m any) *models_base.Time) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code,
		Get: func(m any) []models_base.Type {
			t := *ptr(m)
			if time.Time(t).IsZero() {
				return nil
			}
			return []models_base.Type{t}
		},
		Set: func(m any, v models_base.Type) error {
			t, ok := v.(models_base.Time)
			if !ok {
				return fieldTypeError(name, v)
			}
			*ptr(m) = t
			return nil
		},
	}
}

// OctetField binds an OctetString field, empty meaning absent.
func OctetField(name string, code uint32, required bool, ptr func(m any) *models_base.OctetString) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Required: required,
		Get: func(m any) []models_base.Type {
			if v := *ptr(m); len(v) > 0 {
				return []models_base.Type{v}
			}
			return nil
		},
		Set: func(m any, v models_base.Type) error {
			o, ok := v.(models_base.OctetString)
			if !ok {
				return fieldTypeError(name, v)
			}
			*ptr(m) = o
			return nil
		},
	}
}

// U32SliceField binds a repeated Unsigned32 field.
func U32SliceField(name string, code uint32, ptr func(m any) *[]models_base.Unsigned32) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Repeated: true,
		Get: func(m any) []models_base.Type {
			vs := *ptr(m)
			out := make([]models_base.Type, 0, len(vs))
			for _, v := range vs {
				out = append(out, v)
			}
			return out
		},
		Set: func(m any, v models_base.Type) error {
			u, ok := v.(models_base.Unsigned32)
			if !ok {
				return fieldTypeError(name, v)
			}
			s := ptr(m)
			*s = append(*s, u)
			return nil
		},
	}
}

// IdentSliceField binds a repeated DiameterIdentity field.
func IdentSliceField(name string, code uint32, ptr func(m any) *[]models_base.DiameterIdentity) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Repeated: true,
		Get: func(m any) []models_base.Type {
			vs := *ptr(m)
			out := make([]models_base.Type, 0, len(vs))
			for _, v := range vs {
				out = append(out, v)
			}
			return out
		},
		Set: func(m any, v models_base.Type) error {
			id, ok := v.(models_base.DiameterIdentity)
			if !ok {
				return fieldTypeError(name, v)
			}
			s := ptr(m)
			*s = append(*s, id)
			return nil
		},
	}
}

// OctetSliceField binds a repeated OctetString field.
func OctetSliceField(name string, code uint32, ptr func(m any) *[]models_base.OctetString) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Repeated: true,
		Get: func(m any) []models_base.Type {
			vs := *ptr(m)
			out := make([]models_base.Type, 0, len(vs))
			for _, v := range vs {
				out = append(out, v)
			}
			return out
		},
		Set: func(m any, v models_base.Type) error {
			o, ok := v.(models_base.OctetString)
			if !ok {
				return fieldTypeError(name, v)
			}
			s := ptr(m)
			*s = append(*s, o)
			return nil
		},
	}
}

// AddrSliceField binds a repeated Address field.
func AddrSliceField(name string, code uint32, required bool, ptr func(m any) *[]models_base.Address) *FieldBinding {
	return &FieldBinding{
		Name: name, Code: code, Required: required, Repeated: true,
		Get: func(m any) []models_base.Type {
			vs := *ptr(m)
			out := make([]models_base.Type, 0, len(vs))
			for _, v := range vs {
				out = append(out, v)
			}
			return out
		},
		Set: func(m any, v models_base.Type) error {
			a, ok := v.(models_base.Address)
			if !ok {
				return fieldTypeError(name, v)
			}
			s := ptr(m)
			*s = append(*s, a)
			return nil
		},
	}
}
