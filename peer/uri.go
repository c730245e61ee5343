package peer

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Default ports from RFC 6733 section 4.3.1.
const (
	DefaultPort    = 3868
	DefaultTLSPort = 5658
)

// URI is a parsed DiameterURI of the form
// aaa://host[:port][;transport=tcp|sctp][;protocol=diameter]. The aaas
// scheme implies TLS and a different default port.
type URI struct {
	Scheme    string // "aaa" or "aaas"
	FQDN      string
	Port      int
	Transport string // "tcp" or "sctp"
	Protocol  string // "diameter"
}

// ParseURI parses a DiameterURI. Missing port, transport and protocol
// take their scheme defaults.
func ParseURI(s string) (*URI, error) {
	scheme, rest, ok := strings.Cut(s, "://")
	if !ok {
		return nil, ErrInvalidURI{URI: s, Reason: "missing scheme separator"}
	}

	u := &URI{Scheme: scheme, Transport: "tcp", Protocol: "diameter"}
	switch scheme {
	case "aaa":
		u.Port = DefaultPort
	case "aaas":
		u.Port = DefaultTLSPort
	default:
		return nil, ErrInvalidURI{URI: s, Reason: fmt.Sprintf("unsupported scheme %q", scheme)}
	}

	params := strings.Split(rest, ";")
	hostport := params[0]
	if hostport == "" {
		return nil, ErrInvalidURI{URI: s, Reason: "empty host"}
	}

	if host, portStr, err := net.SplitHostPort(hostport); err == nil {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return nil, ErrInvalidURI{URI: s, Reason: fmt.Sprintf("bad port %q", portStr)}
		}
		u.FQDN = host
		u.Port = port
	} else {
		u.FQDN = hostport
	}

	for _, param := range params[1:] {
		key, value, ok := strings.Cut(param, "=")
		if !ok {
			return nil, ErrInvalidURI{URI: s, Reason: fmt.Sprintf("malformed parameter %q", param)}
		}
		switch key {
		case "transport":
			if value != "tcp" && value != "sctp" {
				return nil, ErrInvalidURI{URI: s, Reason: fmt.Sprintf("unsupported transport %q", value)}
			}
			u.Transport = value
		case "protocol":
			if value != "diameter" {
				return nil, ErrInvalidURI{URI: s, Reason: fmt.Sprintf("unsupported protocol %q", value)}
			}
			u.Protocol = value
		default:
			// Unknown parameters are ignored for forward compatibility.
		}
	}

	return u, nil
}

// TLS reports whether the URI selects the secure scheme.
func (u *URI) TLS() bool {
	return u.Scheme == "aaas"
}

// Addr returns the host:port dial target.
func (u *URI) Addr() string {
	return net.JoinHostPort(u.FQDN, strconv.Itoa(u.Port))
}

// String reassembles the canonical URI form.
func (u *URI) String() string {
	return fmt.Sprintf("%s://%s:%d;transport=%s;protocol=%s",
		u.Scheme, u.FQDN, u.Port, u.Transport, u.Protocol)
}
