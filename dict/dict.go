// Package dict holds the static AVP dictionary: the mapping from
// (code, vendor-id) to name, wire type, and default mandatory flag that
// drives semantic AVP decoding. Rows are registered once at init and the
// table is never mutated afterwards.
package dict

import "github.com/hsdfat8/diam-core/models_base"

// Definition describes one dictionary row.
type Definition struct {
	Name     string
	Code     uint32
	VendorID uint32
	Type     models_base.TypeID
	Must     bool // M-bit default for AVPs built from this row
}

type key struct {
	code   uint32
	vendor uint32
}

// Registry is a read-only lookup table from (code, vendor-id) to a
// Definition. The zero Registry is empty but usable.
type Registry struct {
	byKey  map[key]*Definition
	byName map[string]*Definition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:  make(map[key]*Definition),
		byName: make(map[string]*Definition),
	}
}

// Add registers a row. Later rows win, which lets an application overlay
// vendor dictionaries on top of Default.
func (r *Registry) Add(defs ...*Definition) {
	for _, d := range defs {
		r.byKey[key{d.Code, d.VendorID}] = d
		r.byName[d.Name] = d
	}
}

// Lookup resolves (code, vendorID). A vendor-specific miss falls back to
// the IETF (vendor 0) row, matching how peers commonly set the V-bit on
// AVPs that are defined vendor-neutrally.
func (r *Registry) Lookup(code, vendorID uint32) (*Definition, bool) {
	if r == nil || r.byKey == nil {
		return nil, false
	}
	if d, ok := r.byKey[key{code, vendorID}]; ok {
		return d, true
	}
	if vendorID != 0 {
		if d, ok := r.byKey[key{code, 0}]; ok {
			return d, true
		}
	}
	return nil, false
}

// LookupName resolves a display name to its Definition.
func (r *Registry) LookupName(name string) (*Definition, bool) {
	if r == nil || r.byName == nil {
		return nil, false
	}
	d, ok := r.byName[name]
	return d, ok
}

// Default is the process-wide dictionary covering the RFC 6733 base
// protocol, RFC 8506 credit-control, and the 3GPP AVPs the engine uses.
var Default = NewRegistry()
