package models_base

import (
	"fmt"
	"strconv"
	"strings"
)

// Default ports per RFC 6733: 3868 for aaa (TCP/SCTP), 5658 for aaas (TLS).
const (
	DefaultDiameterPort    = 3868
	DefaultDiameterTLSPort = 5658
)

// DiameterURI data type, e.g.
// "aaa://dra1.example.com:3868;transport=tcp;protocol=diameter".
type DiameterURI struct {
	Scheme    string // "aaa" or "aaas"
	FQDN      string
	Port      int
	Transport string // "tcp" or "sctp", empty when unspecified
	Protocol  string // "diameter", empty when unspecified
}

// ParseDiameterURI parses the textual form of a Diameter URI. The port
// defaults per scheme; unknown semicolon parameters are rejected.
func ParseDiameterURI(s string) (DiameterURI, error) {
	var u DiameterURI
	switch {
	case strings.HasPrefix(s, "aaa://"):
		u.Scheme = "aaa"
		u.Port = DefaultDiameterPort
		s = s[len("aaa://"):]
	case strings.HasPrefix(s, "aaas://"):
		u.Scheme = "aaas"
		u.Port = DefaultDiameterTLSPort
		s = s[len("aaas://"):]
	default:
		return u, &DecodeError{TypeName: "DiameterURI", Reason: fmt.Sprintf("unsupported scheme in %q", s)}
	}

	parts := strings.Split(s, ";")
	hostport := parts[0]
	if host, port, ok := strings.Cut(hostport, ":"); ok {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return u, &DecodeError{TypeName: "DiameterURI", Reason: fmt.Sprintf("invalid port %q", port)}
		}
		u.FQDN = host
		u.Port = p
	} else {
		u.FQDN = hostport
	}
	if u.FQDN == "" {
		return u, &DecodeError{TypeName: "DiameterURI", Reason: "missing host"}
	}

	for _, param := range parts[1:] {
		key, value, ok := strings.Cut(param, "=")
		if !ok {
			return u, &DecodeError{TypeName: "DiameterURI", Reason: fmt.Sprintf("malformed parameter %q", param)}
		}
		switch key {
		case "transport":
			if value != "tcp" && value != "sctp" {
				return u, &DecodeError{TypeName: "DiameterURI", Reason: fmt.Sprintf("unsupported transport %q", value)}
			}
			u.Transport = value
		case "protocol":
			if value != "diameter" {
				return u, &DecodeError{TypeName: "DiameterURI", Reason: fmt.Sprintf("unsupported protocol %q", value)}
			}
			u.Protocol = value
		default:
			return u, &DecodeError{TypeName: "DiameterURI", Reason: fmt.Sprintf("unknown parameter %q", key)}
		}
	}
	return u, nil
}

// DecodeDiameterURI decodes a DiameterURI data type from byte array.
func DecodeDiameterURI(b []byte) (Type, error) {
	return ParseDiameterURI(string(b))
}

// Serialize implements the Type interface.
func (u DiameterURI) Serialize() []byte {
	var sb strings.Builder
	sb.WriteString(u.Scheme)
	sb.WriteString("://")
	sb.WriteString(u.FQDN)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(u.Port))
	if u.Transport != "" {
		sb.WriteString(";transport=")
		sb.WriteString(u.Transport)
	}
	if u.Protocol != "" {
		sb.WriteString(";protocol=")
		sb.WriteString(u.Protocol)
	}
	return []byte(sb.String())
}

// Len implements the Type interface.
func (u DiameterURI) Len() int {
	return len(u.Serialize())
}

// Padding implements the Type interface.
func (u DiameterURI) Padding() int {
	l := u.Len()
	return pad4(l) - l
}

// Type implements the Type interface.
func (u DiameterURI) Type() TypeID {
	return DiameterURIType
}

// String implements the Type interface.
func (u DiameterURI) String() string {
	return fmt.Sprintf("DiameterURI{%s}", u.Serialize())
}
