package models_base

import "testing"

func TestParseDiameterURI(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    DiameterURI
		wantErr bool
	}{
		{
			name: "bare host defaults",
			in:   "aaa://dra1.example.com",
			want: DiameterURI{Scheme: "aaa", FQDN: "dra1.example.com", Port: 3868},
		},
		{
			name: "explicit port and params",
			in:   "aaa://dra1.example.com:6868;transport=tcp;protocol=diameter",
			want: DiameterURI{Scheme: "aaa", FQDN: "dra1.example.com", Port: 6868, Transport: "tcp", Protocol: "diameter"},
		},
		{
			name: "secure scheme default port",
			in:   "aaas://dra2.example.com;transport=sctp",
			want: DiameterURI{Scheme: "aaas", FQDN: "dra2.example.com", Port: 5658, Transport: "sctp"},
		},
		{name: "unknown scheme", in: "http://example.com", wantErr: true},
		{name: "missing host", in: "aaa://", wantErr: true},
		{name: "bad port", in: "aaa://host:notaport", wantErr: true},
		{name: "bad transport", in: "aaa://host;transport=udp", wantErr: true},
		{name: "unknown parameter", in: "aaa://host;color=red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDiameterURI(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDiameterURI failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDiameterURIRoundTrip(t *testing.T) {
	u, err := ParseDiameterURI("aaa://peer.example.com:3868;transport=tcp")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	decoded, err := DecodeDiameterURI(u.Serialize())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.(DiameterURI) != u {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, u)
	}
}
