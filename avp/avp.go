// Package avp implements the Diameter attribute-value-pair codec: header
// and flag handling, vendor-id bookkeeping, dictionary-driven semantic
// decoding, and recursive Grouped payloads.
package avp

import (
	"fmt"

	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// AVP flag bits.
const (
	Vbit uint8 = 0x80 // vendor-specific
	Mbit uint8 = 0x40 // mandatory
	Pbit uint8 = 0x20 // protected
)

// UnknownName is the display name for AVPs absent from the dictionary.
const UnknownName = "Unknown"

// AVP is a Diameter attribute-value-pair. The V-bit in Flags and a
// non-zero VendorID always agree; use SetVendorID rather than poking
// either field.
type AVP struct {
	Code     uint32
	Flags    uint8
	Length   int // header + payload, excludes padding
	VendorID uint32
	Name     string // dictionary display name, UnknownName when absent
	Data     models_base.Type
}

// New creates an AVP, taking the M-bit default and display name from the
// default dictionary. The V-bit follows vendorID.
func New(code, vendorID uint32, data models_base.Type) *AVP {
	var flags uint8
	name := UnknownName
	if def, ok := dict.Default.Lookup(code, vendorID); ok {
		name = def.Name
		if def.Must {
			flags |= Mbit
		}
	}
	a := &AVP{Code: code, Flags: flags, Name: name, Data: data}
	a.SetVendorID(vendorID)
	a.Length = a.headerLen() + data.Len()
	return a
}

// NewWithFlags creates an AVP with explicit flags, bypassing the
// dictionary M-bit default. The V-bit is still forced consistent with
// vendorID.
func NewWithFlags(code uint32, flags uint8, vendorID uint32, data models_base.Type) *AVP {
	a := &AVP{Code: code, Flags: flags, Name: UnknownName, Data: data}
	if def, ok := dict.Default.Lookup(code, vendorID); ok {
		a.Name = def.Name
	}
	a.SetVendorID(vendorID)
	a.Length = a.headerLen() + data.Len()
	return a
}

// SetVendorID assigns the vendor-id and keeps the V-bit in sync.
func (a *AVP) SetVendorID(vendorID uint32) {
	a.VendorID = vendorID
	if vendorID != 0 {
		a.Flags |= Vbit
	} else {
		a.Flags &^= Vbit
	}
}

// Mandatory reports whether the M-bit is set.
func (a *AVP) Mandatory() bool {
	return a.Flags&Mbit != 0
}

// Group returns the child AVP list of a Grouped AVP, or nil.
func (a *AVP) Group() []*AVP {
	if g, ok := a.Data.(*GroupedBody); ok {
		return g.AVPs
	}
	return nil
}

// Decode reads one AVP from the cursor, including its padding, and
// resolves its semantic type through the registry. Truncation surfaces
// as models_base.TruncatedError when the AVP header itself cannot be
// read, and as MalformedAVPError when the header promises more payload
// than the cursor holds.
func Decode(u *models_base.Unpacker, registry *dict.Registry) (*AVP, error) {
	a := &AVP{}
	code, err := u.Uint32()
	if err != nil {
		return nil, err
	}
	a.Code = code

	flagsAndLength, err := u.Uint32()
	if err != nil {
		return nil, err
	}
	a.Flags = uint8(flagsAndLength >> 24)
	a.Length = int(flagsAndLength & 0xffffff)

	if a.Flags&Vbit != 0 {
		vendorID, err := u.Uint32()
		if err != nil {
			return nil, &MalformedAVPError{Code: a.Code, Reason: "vendor-id missing", Err: err}
		}
		a.VendorID = vendorID
	}

	payloadLength := a.Length - a.headerLen()
	if payloadLength < 0 {
		return nil, &MalformedAVPError{Code: a.Code, Reason: fmt.Sprintf("declared length %d shorter than header", a.Length)}
	}
	payload, err := u.Octets(payloadLength)
	if err != nil {
		return nil, &MalformedAVPError{Code: a.Code, Reason: "truncated payload", Err: err}
	}

	typeID := models_base.UnknownType
	a.Name = UnknownName
	if def, ok := registry.Lookup(a.Code, a.VendorID); ok {
		typeID = def.Type
		a.Name = def.Name
	}

	a.Data, err = models_base.Decode(typeID, payload)
	if err != nil {
		return nil, fmt.Errorf("AVP %d (%s): %w", a.Code, a.Name, err)
	}
	if a.Data.Type() == models_base.GroupedType {
		group, err := decodeGroup(payload, registry)
		if err != nil {
			return nil, &MalformedAVPError{Code: a.Code, Reason: "bad grouped payload", Err: err}
		}
		a.Data = group
	}
	return a, nil
}

// DecodeAll parses a concatenated AVP sequence until the buffer is
// exhausted.
func DecodeAll(b []byte, registry *dict.Registry) ([]*AVP, error) {
	var avps []*AVP
	u := models_base.NewUnpacker(b)
	for u.Remaining() > 0 {
		a, err := Decode(u, registry)
		if err != nil {
			return nil, err
		}
		avps = append(avps, a)
	}
	return avps, nil
}

// Serialize returns the wire form of this AVP, padding included.
func (a *AVP) Serialize() ([]byte, error) {
	p := models_base.NewPacker(a.Len())
	if err := a.SerializeTo(p); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// SerializeTo appends the wire form of this AVP to the packer.
func (a *AVP) SerializeTo(p *models_base.Packer) error {
	if a.Data == nil {
		return &MalformedAVPError{Code: a.Code, Reason: "no data"}
	}
	a.SetVendorID(a.VendorID) // re-assert the V-bit invariant
	payload := a.Data.Serialize()
	a.Length = a.headerLen() + len(payload)

	p.PutUint32(a.Code)
	p.PutUint32(uint32(a.Flags)<<24 | uint32(a.Length)&0xffffff)
	if a.Flags&Vbit != 0 {
		p.PutUint32(a.VendorID)
	}
	p.PutOctets(payload)
	return nil
}

// Len returns the on-wire length of this AVP including padding.
func (a *AVP) Len() int {
	if a.Data == nil {
		return pad4(a.headerLen())
	}
	return pad4(a.headerLen() + a.Data.Len())
}

func (a *AVP) headerLen() int {
	if a.Flags&Vbit != 0 || a.VendorID != 0 {
		return 12
	}
	return 8
}

func (a *AVP) String() string {
	return fmt.Sprintf("%s{Code:%d,Flags:0x%x,Length:%d,VendorId:%d,Value:%s}",
		a.Name, a.Code, a.Flags, a.Len(), a.VendorID, a.Data)
}

func pad4(n int) int {
	return (n + 3) &^ 3
}
