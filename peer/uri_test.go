package peer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want URI
	}{
		{
			name: "bare host takes scheme default port",
			in:   "aaa://dra1.example.com",
			want: URI{Scheme: "aaa", FQDN: "dra1.example.com", Port: 3868, Transport: "tcp", Protocol: "diameter"},
		},
		{
			name: "explicit port",
			in:   "aaa://dra1.example.com:6868",
			want: URI{Scheme: "aaa", FQDN: "dra1.example.com", Port: 6868, Transport: "tcp", Protocol: "diameter"},
		},
		{
			name: "secure scheme default port",
			in:   "aaas://dra1.example.com",
			want: URI{Scheme: "aaas", FQDN: "dra1.example.com", Port: 5658, Transport: "tcp", Protocol: "diameter"},
		},
		{
			name: "transport and protocol params",
			in:   "aaa://dra1.example.com:3868;transport=sctp;protocol=diameter",
			want: URI{Scheme: "aaa", FQDN: "dra1.example.com", Port: 3868, Transport: "sctp", Protocol: "diameter"},
		},
		{
			name: "unknown params ignored",
			in:   "aaa://dra1.example.com;foo=bar",
			want: URI{Scheme: "aaa", FQDN: "dra1.example.com", Port: 3868, Transport: "tcp", Protocol: "diameter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURI(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseURIErrors(t *testing.T) {
	bad := []string{
		"dra1.example.com",
		"http://dra1.example.com",
		"aaa://",
		"aaa://host:notaport",
		"aaa://host;transport=udp",
		"aaa://host;protocol=radius",
		"aaa://host;transport",
	}
	for _, in := range bad {
		_, err := ParseURI(in)
		require.Error(t, err, "input %q", in)
		assert.IsType(t, ErrInvalidURI{}, err)
	}
}

func TestURIHelpers(t *testing.T) {
	u, err := ParseURI("aaas://dra1.example.com;transport=sctp")
	require.NoError(t, err)
	assert.True(t, u.TLS())
	assert.Equal(t, "dra1.example.com:5658", u.Addr())
	assert.Equal(t, "aaas://dra1.example.com:5658;transport=sctp;protocol=diameter", u.String())
}
