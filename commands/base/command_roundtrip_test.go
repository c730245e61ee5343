package base

import (
	"bytes"
	"net"
	"testing"

	"github.com/hsdfat8/diam-core/models_base"
)

func testCER() *CapabilitiesExchangeRequest {
	cer := NewCapabilitiesExchangeRequest()
	cer.OriginHost = "client.example.com"
	cer.OriginRealm = "example.com"
	cer.HostIpAddress = []models_base.Address{
		models_base.NewAddressIP(net.ParseIP("127.0.0.1")),
	}
	cer.VendorId = 10415
	cer.ProductName = "diam-core"
	return cer
}

// Each typed command marshals, parses back into a fresh value of the
// same type, and the fields the check function cares about survive.
func TestTypedCommandRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() Command
		parse func() Command
		check func(t *testing.T, c Command)
	}{
		{
			name: "CER",
			build: func() Command {
				cer := testCER()
				cer.AuthApplicationId = []models_base.Unsigned32{16777238}
				cer.Header.HopByHopID = 1
				cer.Header.EndToEndID = 1
				return cer
			},
			parse: func() Command { return &CapabilitiesExchangeRequest{} },
			check: func(t *testing.T, c Command) {
				cer := c.(*CapabilitiesExchangeRequest)
				if cer.OriginHost != "client.example.com" || cer.OriginRealm != "example.com" {
					t.Errorf("origin = %s/%s", cer.OriginHost, cer.OriginRealm)
				}
				if cer.VendorId != 10415 || cer.ProductName != "diam-core" {
					t.Errorf("identity = %d/%s", cer.VendorId, cer.ProductName)
				}
				if len(cer.AuthApplicationId) != 1 || cer.AuthApplicationId[0] != 16777238 {
					t.Errorf("AuthApplicationId = %v", cer.AuthApplicationId)
				}
			},
		},
		{
			name: "CEA",
			build: func() Command {
				cea := NewCapabilitiesExchangeAnswer()
				cea.ResultCode = models_base.Unsigned32(ResultCodeSuccess)
				cea.OriginHost = "server.example.com"
				cea.OriginRealm = "example.com"
				cea.HostIpAddress = []models_base.Address{
					models_base.NewAddressIP(net.ParseIP("192.168.1.1")),
				}
				cea.VendorId = 10415
				cea.ProductName = "diam-core"
				return cea
			},
			parse: func() Command { return &CapabilitiesExchangeAnswer{} },
			check: func(t *testing.T, c Command) {
				cea := c.(*CapabilitiesExchangeAnswer)
				if cea.ResultCode != models_base.Unsigned32(ResultCodeSuccess) {
					t.Errorf("ResultCode = %d", cea.ResultCode)
				}
			},
		},
		{
			name: "DWR",
			build: func() Command {
				dwr := NewDeviceWatchdogRequest()
				dwr.OriginHost = "client.example.com"
				dwr.OriginRealm = "example.com"
				dwr.Header.HopByHopID = 2
				return dwr
			},
			parse: func() Command { return &DeviceWatchdogRequest{} },
			check: func(t *testing.T, c Command) {
				dwr := c.(*DeviceWatchdogRequest)
				if dwr.OriginHost != "client.example.com" {
					t.Errorf("OriginHost = %s", dwr.OriginHost)
				}
				if dwr.Header.HopByHopID != 2 {
					t.Errorf("HopByHopID = %d", dwr.Header.HopByHopID)
				}
			},
		},
		{
			name: "DWA",
			build: func() Command {
				dwa := NewDeviceWatchdogAnswer()
				dwa.ResultCode = models_base.Unsigned32(ResultCodeSuccess)
				dwa.OriginHost = "server.example.com"
				dwa.OriginRealm = "example.com"
				return dwa
			},
			parse: func() Command { return &DeviceWatchdogAnswer{} },
			check: func(t *testing.T, c Command) {
				if c.(*DeviceWatchdogAnswer).ResultCode != models_base.Unsigned32(ResultCodeSuccess) {
					t.Error("ResultCode lost")
				}
			},
		},
		{
			name: "DPR",
			build: func() Command {
				dpr := NewDisconnectPeerRequest()
				dpr.OriginHost = "client.example.com"
				dpr.OriginRealm = "example.com"
				dpr.DisconnectCause = DisconnectRebooting
				return dpr
			},
			parse: func() Command { return &DisconnectPeerRequest{} },
			check: func(t *testing.T, c Command) {
				if c.(*DisconnectPeerRequest).DisconnectCause != DisconnectRebooting {
					t.Error("DisconnectCause lost")
				}
			},
		},
		{
			name: "DPA",
			build: func() Command {
				dpa := NewDisconnectPeerAnswer()
				dpa.ResultCode = models_base.Unsigned32(ResultCodeSuccess)
				dpa.OriginHost = "server.example.com"
				dpa.OriginRealm = "example.com"
				return dpa
			},
			parse: func() Command { return &DisconnectPeerAnswer{} },
			check: func(t *testing.T, c Command) {
				if c.(*DisconnectPeerAnswer).ResultCode != models_base.Unsigned32(ResultCodeSuccess) {
					t.Error("ResultCode lost")
				}
			},
		},
		{
			name: "STR",
			build: func() Command {
				str := NewSessionTerminationRequest()
				str.SessionId = "client.example.com;123;1"
				str.OriginHost = "client.example.com"
				str.OriginRealm = "example.com"
				str.DestinationRealm = "server.example.com"
				str.AuthApplicationId = 16777238
				str.TerminationCause = models_base.Enumerated(1)
				return str
			},
			parse: func() Command { return &SessionTerminationRequest{} },
			check: func(t *testing.T, c Command) {
				str := c.(*SessionTerminationRequest)
				if str.SessionId != "client.example.com;123;1" {
					t.Errorf("SessionId = %s", str.SessionId)
				}
				if str.TerminationCause != 1 {
					t.Errorf("TerminationCause = %d", str.TerminationCause)
				}
			},
		},
		{
			name: "ASR",
			build: func() Command {
				asr := NewAbortSessionRequest()
				asr.SessionId = "client.example.com;456;1"
				asr.OriginHost = "server.example.com"
				asr.OriginRealm = "example.com"
				asr.DestinationRealm = "example.com"
				asr.DestinationHost = "client.example.com"
				asr.AuthApplicationId = 16777238
				return asr
			},
			parse: func() Command { return &AbortSessionRequest{} },
			check: func(t *testing.T, c Command) {
				asr := c.(*AbortSessionRequest)
				if asr.DestinationHost != "client.example.com" {
					t.Errorf("DestinationHost = %s", asr.DestinationHost)
				}
			},
		},
		{
			name: "ACR",
			build: func() Command {
				acr := NewAccountingRequest()
				acr.SessionId = "client.example.com;789;1"
				acr.OriginHost = "client.example.com"
				acr.OriginRealm = "example.com"
				acr.DestinationRealm = "server.example.com"
				acr.AccountingRecordType = models_base.Enumerated(2)
				acr.AccountingRecordNumber = 1
				return acr
			},
			parse: func() Command { return &AccountingRequest{} },
			check: func(t *testing.T, c Command) {
				acr := c.(*AccountingRequest)
				if acr.AccountingRecordType != 2 || acr.AccountingRecordNumber != 1 {
					t.Errorf("record = %d/%d", acr.AccountingRecordType, acr.AccountingRecordNumber)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.build()
			data, err := cmd.Marshal()
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if len(data) < HeaderLength {
				t.Fatalf("marshaled %d bytes, below header size", len(data))
			}
			if data[0] != DiameterVersion {
				t.Errorf("version byte = %d", data[0])
			}
			if got := cmd.Len(); got != len(data) {
				t.Errorf("Len() = %d but Marshal produced %d bytes", got, len(data))
			}

			decoded := tt.parse()
			if err := decoded.Unmarshal(data); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			tt.check(t, decoded)

			// A second marshal of the decoded value is byte stable.
			data2, err := decoded.Marshal()
			if err != nil {
				t.Fatalf("re-marshal failed: %v", err)
			}
			if !bytes.Equal(data, data2) {
				t.Error("re-marshal is not byte identical")
			}
		})
	}
}

func TestRepeatedFieldsSurviveRoundTrip(t *testing.T) {
	cer := testCER()
	cer.HostIpAddress = []models_base.Address{
		models_base.NewAddressIP(net.ParseIP("10.0.0.1")),
		models_base.NewAddressIP(net.ParseIP("10.0.0.2")),
	}
	cer.AuthApplicationId = []models_base.Unsigned32{1, 2, 3}
	cer.Header.HopByHopID = 0x12345678
	cer.Header.EndToEndID = 0x87654321

	data, err := cer.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	decoded := &CapabilitiesExchangeRequest{}
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Header.HopByHopID != 0x12345678 || decoded.Header.EndToEndID != 0x87654321 {
		t.Errorf("header ids = 0x%x/0x%x", decoded.Header.HopByHopID, decoded.Header.EndToEndID)
	}
	if len(decoded.HostIpAddress) != 2 {
		t.Errorf("HostIpAddress count = %d, want 2", len(decoded.HostIpAddress))
	}
	if len(decoded.AuthApplicationId) != 3 {
		t.Errorf("AuthApplicationId count = %d, want 3", len(decoded.AuthApplicationId))
	}
}

func TestCommandHeaderDefaults(t *testing.T) {
	if !NewCapabilitiesExchangeRequest().Header.Flags.Request {
		t.Error("CER missing request flag")
	}
	if NewCapabilitiesExchangeAnswer().Header.Flags.Request {
		t.Error("CEA carries request flag")
	}
	if !NewReAuthRequest().Header.Flags.Proxiable {
		t.Error("RAR missing proxiable flag")
	}
	if NewDeviceWatchdogRequest().Header.Flags.Proxiable {
		t.Error("DWR must not be proxiable")
	}
}

func TestCommandString(t *testing.T) {
	dwr := NewDeviceWatchdogRequest()
	dwr.OriginHost = "client.example.com"
	dwr.OriginRealm = "example.com"
	if dwr.String() == "" {
		t.Error("String() returned empty")
	}
}
