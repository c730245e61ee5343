package dict

import (
	"testing"

	"github.com/hsdfat8/diam-core/models_base"
)

func TestLookupBaseAVP(t *testing.T) {
	d, ok := Default.Lookup(OriginHost, 0)
	if !ok {
		t.Fatal("Origin-Host not found in default dictionary")
	}
	if d.Name != "Origin-Host" || d.Type != models_base.DiameterIdentityType || !d.Must {
		t.Errorf("unexpected definition: %+v", d)
	}
}

func TestLookupVendorAVP(t *testing.T) {
	d, ok := Default.Lookup(VisitedPLMNID, Vendor3GPP)
	if !ok {
		t.Fatal("Visited-PLMN-Id not found")
	}
	if d.VendorID != Vendor3GPP {
		t.Errorf("unexpected vendor: %d", d.VendorID)
	}
}

func TestLookupVendorFallsBackToIETF(t *testing.T) {
	// Result-Code sent with a spurious V-bit should still resolve.
	d, ok := Default.Lookup(ResultCode, Vendor3GPP)
	if !ok {
		t.Fatal("vendor fallback lookup failed")
	}
	if d.Name != "Result-Code" {
		t.Errorf("unexpected definition: %+v", d)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Default.Lookup(999999, 0); ok {
		t.Fatal("lookup of unknown code must miss")
	}
}

func TestLookupName(t *testing.T) {
	d, ok := Default.LookupName("Granted-Service-Unit")
	if !ok {
		t.Fatal("Granted-Service-Unit not found by name")
	}
	if d.Code != GrantedServiceUnit || d.Type != models_base.GroupedType {
		t.Errorf("unexpected definition: %+v", d)
	}
}
