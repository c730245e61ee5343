package creditcontrol

import (
	"testing"

	"github.com/hsdfat8/diam-core/commands/base"
	"github.com/hsdfat8/diam-core/models_base"
)

func TestCreditControlRequestRoundTrip(t *testing.T) {
	ccr := NewCreditControlRequest()
	ccr.SessionId = models_base.UTF8String("client.example.com;1415;7")
	ccr.OriginHost = models_base.DiameterIdentity("client.example.com")
	ccr.OriginRealm = models_base.DiameterIdentity("example.com")
	ccr.DestinationRealm = models_base.DiameterIdentity("ocs.example.com")
	ccr.ServiceContextId = models_base.UTF8String("32251@3gpp.org")
	ccr.CCRequestType = models_base.Enumerated(RequestTypeUpdate)
	ccr.CCRequestNumber = models_base.Unsigned32(3)
	ccr.SubscriptionId = []*SubscriptionId{
		{Type: models_base.Enumerated(SubscriptionE164), Data: models_base.UTF8String("41780000000")},
		{Type: models_base.Enumerated(SubscriptionIMSI), Data: models_base.UTF8String("228011234567890")},
	}
	ccr.RequestedServiceUnit = &ServiceUnit{CCTotalOctets: 5 << 20}
	ccr.UsedServiceUnit = []*ServiceUnit{
		{CCTotalOctets: 1 << 20, CCInputOctets: 512 << 10, CCOutputOctets: 512 << 10},
	}
	ccr.Header.HopByHopID = 0x1001
	ccr.Header.EndToEndID = 0x2001

	data, err := ccr.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	decoded := &CreditControlRequest{}
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.SessionId != ccr.SessionId {
		t.Errorf("SessionId = %q", decoded.SessionId)
	}
	if decoded.CCRequestType != RequestTypeUpdate || decoded.CCRequestNumber != 3 {
		t.Errorf("request type/number = %d/%d", decoded.CCRequestType, decoded.CCRequestNumber)
	}
	if len(decoded.SubscriptionId) != 2 {
		t.Fatalf("SubscriptionId count = %d, want 2", len(decoded.SubscriptionId))
	}
	if decoded.SubscriptionId[0].Type != SubscriptionE164 || decoded.SubscriptionId[0].Data != "41780000000" {
		t.Errorf("SubscriptionId[0] = %+v", decoded.SubscriptionId[0])
	}
	if decoded.RequestedServiceUnit == nil || decoded.RequestedServiceUnit.CCTotalOctets != 5<<20 {
		t.Errorf("RequestedServiceUnit = %+v", decoded.RequestedServiceUnit)
	}
	if len(decoded.UsedServiceUnit) != 1 || decoded.UsedServiceUnit[0].CCInputOctets != 512<<10 {
		t.Errorf("UsedServiceUnit = %+v", decoded.UsedServiceUnit)
	}
}

func TestCreditControlAnswerGrant(t *testing.T) {
	cca := NewCreditControlAnswer()
	cca.SessionId = models_base.UTF8String("client.example.com;1415;7")
	cca.ResultCode = models_base.Unsigned32(uint32(base.ResultCodeSuccess))
	cca.OriginHost = models_base.DiameterIdentity("ocs.example.com")
	cca.OriginRealm = models_base.DiameterIdentity("example.com")
	cca.CCRequestType = models_base.Enumerated(RequestTypeUpdate)
	cca.CCRequestNumber = models_base.Unsigned32(3)
	cca.GrantedServiceUnit = &ServiceUnit{CCTotalOctets: 1048576}
	cca.ValidityTime = models_base.Unsigned32(600)

	data, err := cca.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	decoded := &CreditControlAnswer{}
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.ResultCode != 2001 {
		t.Errorf("ResultCode = %d, want 2001", decoded.ResultCode)
	}
	if decoded.GrantedServiceUnit == nil || decoded.GrantedServiceUnit.CCTotalOctets != 1048576 {
		t.Errorf("GrantedServiceUnit = %+v, want CC-Total-Octets 1048576", decoded.GrantedServiceUnit)
	}
	if decoded.ValidityTime != 600 {
		t.Errorf("ValidityTime = %d", decoded.ValidityTime)
	}
}

func TestCreditControlValidation(t *testing.T) {
	ccr := NewCreditControlRequest()
	err := ccr.Validate()
	if err == nil {
		t.Fatal("empty CCR must fail validation")
	}

	ccr.SessionId = models_base.UTF8String("s;1;1")
	ccr.OriginHost = models_base.DiameterIdentity("a.example.com")
	ccr.OriginRealm = models_base.DiameterIdentity("example.com")
	ccr.DestinationRealm = models_base.DiameterIdentity("b.example.com")
	ccr.ServiceContextId = models_base.UTF8String("32251@3gpp.org")
	ccr.CCRequestType = models_base.Enumerated(RequestTypeInitial)
	if err := ccr.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreditControlRegisteredWithParseAny(t *testing.T) {
	ccr := NewCreditControlRequest()
	ccr.SessionId = models_base.UTF8String("s;1;1")
	ccr.OriginHost = models_base.DiameterIdentity("a.example.com")
	ccr.OriginRealm = models_base.DiameterIdentity("example.com")
	ccr.DestinationRealm = models_base.DiameterIdentity("b.example.com")
	ccr.ServiceContextId = models_base.UTF8String("32251@3gpp.org")
	ccr.CCRequestType = models_base.Enumerated(RequestTypeEvent)
	data, err := ccr.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	cmd, err := base.ParseAny(data)
	if err != nil {
		t.Fatalf("ParseAny failed: %v", err)
	}
	if _, ok := cmd.(*CreditControlRequest); !ok {
		t.Errorf("ParseAny returned %T, want *CreditControlRequest", cmd)
	}
}
