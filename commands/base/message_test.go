package base

import (
	"errors"
	"net"
	"testing"

	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

func TestMessageEnvelopeRoundTrip(t *testing.T) {
	m := NewMessage(CodeCapabilitiesExchange, CommandFlags{Request: true}, AppBase)
	m.Header.HopByHopID = 0xdeadbeef
	m.Header.EndToEndID = 0xcafef00d
	m.Add(dict.OriginHost, 0, models_base.DiameterIdentity("host.example.com"))
	m.Add(dict.OriginRealm, 0, models_base.DiameterIdentity("example.com"))
	m.Add(dict.VendorID, 0, models_base.Unsigned32(10415))

	data, err := m.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(data) != m.Len() {
		t.Errorf("Len() = %d but Marshal produced %d bytes", m.Len(), len(data))
	}

	parsed, err := ParseMessage(data)
	if err != nil {
		t.Fatalf("ParseMessage failed: %v", err)
	}
	if parsed.Header.CommandCode != CodeCapabilitiesExchange {
		t.Errorf("CommandCode = %d, want %d", parsed.Header.CommandCode, CodeCapabilitiesExchange)
	}
	if parsed.Header.HopByHopID != 0xdeadbeef || parsed.Header.EndToEndID != 0xcafef00d {
		t.Error("hop-by-hop or end-to-end id not preserved")
	}
	if !parsed.Header.Flags.Request {
		t.Error("request flag lost")
	}

	host, ok := parsed.Get("Origin-Host")
	if !ok {
		t.Fatal("Origin-Host not found")
	}
	if host.(models_base.DiameterIdentity) != "host.example.com" {
		t.Errorf("Origin-Host = %v", host)
	}

	// Name lookup tolerates case and underscore spelling.
	if _, ok := parsed.Get("origin_host"); !ok {
		t.Error("normalized name lookup failed")
	}
}

func TestMessageGetAll(t *testing.T) {
	m := NewMessage(CodeCapabilitiesExchange, CommandFlags{Request: true}, AppBase)
	m.Add(dict.HostIPAddress, 0, models_base.NewAddressIP(net.IP{0x0a, 0x00, 0x00, 0x01}))
	m.Add(dict.HostIPAddress, 0, models_base.NewAddressIP(net.IP{0x0a, 0x00, 0x00, 0x02}))

	data, _ := m.Marshal()
	parsed, err := ParseMessage(data)
	if err != nil {
		t.Fatalf("ParseMessage failed: %v", err)
	}
	if got := parsed.GetAll("Host-IP-Address"); len(got) != 2 {
		t.Errorf("GetAll returned %d values, want 2", len(got))
	}
}

func TestParseMessageUnsupportedVersion(t *testing.T) {
	m := NewMessage(CodeDeviceWatchdog, CommandFlags{Request: true}, AppBase)
	data, _ := m.Marshal()
	data[0] = 2

	_, err := ParseMessage(data)
	var verr *UnsupportedVersionError
	if !errors.As(err, &verr) {
		t.Fatalf("expected UnsupportedVersionError, got %v", err)
	}
	if verr.Version != 2 {
		t.Errorf("Version = %d, want 2", verr.Version)
	}
}

func TestParseMessageLengthMismatch(t *testing.T) {
	m := NewMessage(CodeDeviceWatchdog, CommandFlags{Request: true}, AppBase)
	m.Add(dict.OriginHost, 0, models_base.DiameterIdentity("a.example.com"))
	data, _ := m.Marshal()

	// Truncated buffer.
	var terr *models_base.TruncatedError
	if _, err := ParseMessage(data[:len(data)-4]); !errors.As(err, &terr) {
		t.Errorf("expected TruncatedError for short buffer, got %v", err)
	}

	// Trailing garbage beyond the declared length.
	var merr *MalformedMessageError
	if _, err := ParseMessage(append(data, 0, 0, 0, 0)); !errors.As(err, &merr) {
		t.Errorf("expected MalformedMessageError for long buffer, got %v", err)
	}
}

func TestMessageAnswer(t *testing.T) {
	req := NewMessage(CodeSessionTermination, CommandFlags{Request: true, Proxiable: true}, AppBase)
	req.Header.HopByHopID = 7
	req.Header.EndToEndID = 9

	ans := req.Answer()
	if ans.Header.Flags.Request {
		t.Error("answer must clear the request flag")
	}
	if !ans.Header.Flags.Proxiable {
		t.Error("answer must preserve the proxiable flag")
	}
	if ans.Header.HopByHopID != 7 || ans.Header.EndToEndID != 9 {
		t.Error("answer must mirror hop-by-hop and end-to-end ids")
	}
	if ans.Header.CommandCode != CodeSessionTermination {
		t.Error("answer must keep the command code")
	}
	if len(ans.AVPs) != 0 {
		t.Error("answer starts with no AVPs")
	}
}

func TestParseAnyTypedAndFallback(t *testing.T) {
	dwr := NewDeviceWatchdogRequest()
	dwr.OriginHost = models_base.DiameterIdentity("a.example.com")
	dwr.OriginRealm = models_base.DiameterIdentity("example.com")
	data, err := dwr.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	cmd, err := ParseAny(data)
	if err != nil {
		t.Fatalf("ParseAny failed: %v", err)
	}
	typed, ok := cmd.(*DeviceWatchdogRequest)
	if !ok {
		t.Fatalf("ParseAny returned %T, want *DeviceWatchdogRequest", cmd)
	}
	if typed.OriginHost != dwr.OriginHost {
		t.Error("typed decode lost Origin-Host")
	}

	// An unregistered command code falls back to the untyped envelope.
	raw := NewMessage(999999, CommandFlags{Request: true}, AppRelay)
	raw.Add(dict.SessionID, 0, models_base.UTF8String("abc;1;2"))
	rawData, _ := raw.Marshal()

	cmd, err = ParseAny(rawData)
	if err != nil {
		t.Fatalf("ParseAny fallback failed: %v", err)
	}
	msg, ok := cmd.(*Message)
	if !ok {
		t.Fatalf("ParseAny returned %T, want *Message", cmd)
	}
	if _, ok := msg.Get("Session-Id"); !ok {
		t.Error("fallback envelope lost Session-Id")
	}
}

func TestUnknownAVPsPreservedOnRoundTrip(t *testing.T) {
	dwr := NewDeviceWatchdogRequest()
	dwr.OriginHost = models_base.DiameterIdentity("a.example.com")
	dwr.OriginRealm = models_base.DiameterIdentity("example.com")
	data, err := dwr.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Splice in an AVP no schema claims, then reframe.
	m, err := ParseMessage(data)
	if err != nil {
		t.Fatalf("ParseMessage failed: %v", err)
	}
	m.Add(dict.ProxyHost, 0, models_base.DiameterIdentity("proxy.example.com"))
	data, err = m.Marshal()
	if err != nil {
		t.Fatalf("re-marshal failed: %v", err)
	}

	decoded := &DeviceWatchdogRequest{}
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded.AdditionalAVPs) != 1 {
		t.Fatalf("AdditionalAVPs = %d, want 1", len(decoded.AdditionalAVPs))
	}
	if decoded.AdditionalAVPs[0].Code != dict.ProxyHost {
		t.Errorf("preserved AVP code = %d, want %d", decoded.AdditionalAVPs[0].Code, dict.ProxyHost)
	}

	// The unknown AVP survives a second marshal.
	out, err := decoded.Marshal()
	if err != nil {
		t.Fatalf("second marshal failed: %v", err)
	}
	round, err := ParseMessage(out)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if _, ok := round.Get("Proxy-Host"); !ok {
		t.Error("unclaimed AVP dropped on re-marshal")
	}
}

func TestDuplicateScalarKeepsFirst(t *testing.T) {
	m := NewMessage(CodeDeviceWatchdog, CommandFlags{Request: true}, AppBase)
	m.Add(dict.OriginHost, 0, models_base.DiameterIdentity("first.example.com"))
	m.Add(dict.OriginHost, 0, models_base.DiameterIdentity("second.example.com"))
	m.Add(dict.OriginRealm, 0, models_base.DiameterIdentity("example.com"))
	data, _ := m.Marshal()

	dwr := &DeviceWatchdogRequest{}
	if err := dwr.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if dwr.OriginHost != "first.example.com" {
		t.Errorf("OriginHost = %q, want the first occurrence", dwr.OriginHost)
	}
	if len(dwr.AdditionalAVPs) != 1 {
		t.Fatalf("duplicate must land in AdditionalAVPs, got %d entries", len(dwr.AdditionalAVPs))
	}
	if got := dwr.AdditionalAVPs[0].Data.(models_base.DiameterIdentity); got != "second.example.com" {
		t.Errorf("overflow holds %q, want the second occurrence", got)
	}
}

func TestResultCodeClassification(t *testing.T) {
	if !ResultCodeSuccess.Success() {
		t.Error("2001 must classify as success")
	}
	if ResultCodeTooBusy.Success() {
		t.Error("3004 must not classify as success")
	}
	if !ResultCodeOutOfSpace.Transient() {
		t.Error("4002 must classify as transient")
	}
	if got := ResultCodeSuccess.String(); got != "DIAMETER_SUCCESS" {
		t.Errorf("String() = %q", got)
	}
}
