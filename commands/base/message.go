package base

import (
	"fmt"
	"strings"

	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// Command is the surface shared by typed commands and the untyped
// Message envelope.
type Command interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
	Len() int
	String() string
}

// Message is the untyped envelope: a header plus the flat AVP list with
// dictionary-resolved names. It carries commands the typed layer does
// not know, and is the fallback ParseAny returns for unregistered
// command codes.
type Message struct {
	Header Header
	AVPs   []*avp.AVP

	registry *dict.Registry
}

// NewMessage builds an empty message for the given command code.
func NewMessage(code uint32, flags CommandFlags, appID uint32) *Message {
	return &Message{
		Header: Header{
			Version:       DiameterVersion,
			Flags:         flags,
			CommandCode:   code,
			ApplicationID: appID,
		},
		registry: dict.Default,
	}
}

// ParseMessage decodes one complete Diameter message. The buffer must
// hold exactly the bytes the header declares; the read loop upstream
// frames on the declared length, so a mismatch here means corruption.
func ParseMessage(data []byte) (*Message, error) {
	return ParseMessageDict(data, dict.Default)
}

// ParseMessageDict is ParseMessage with an explicit dictionary.
func ParseMessageDict(data []byte, registry *dict.Registry) (*Message, error) {
	u := models_base.NewUnpacker(data)
	h, err := DecodeHeader(u)
	if err != nil {
		return nil, err
	}
	if uint32(len(data)) < h.Length {
		return nil, &models_base.TruncatedError{Need: int(h.Length), Have: len(data)}
	}
	if uint32(len(data)) > h.Length {
		return nil, &MalformedMessageError{
			Reason: fmt.Sprintf("declared length %d but %d bytes supplied", h.Length, len(data)),
		}
	}

	avps, err := avp.DecodeAll(data[HeaderLength:h.Length], registry)
	if err != nil {
		return nil, err
	}
	return &Message{Header: h, AVPs: avps, registry: registry}, nil
}

// Marshal serializes the message, writing the true payload length into
// the header length field.
func (m *Message) Marshal() ([]byte, error) {
	m.Header.Version = DiameterVersion
	m.Header.Length = uint32(m.Len())

	p := models_base.NewPacker(int(m.Header.Length))
	m.Header.serializeTo(p)
	for _, a := range m.AVPs {
		if err := a.SerializeTo(p); err != nil {
			return nil, err
		}
	}
	return p.Bytes(), nil
}

// Unmarshal replaces the message contents with the parsed form of data.
func (m *Message) Unmarshal(data []byte) error {
	reg := m.registry
	if reg == nil {
		reg = dict.Default
	}
	parsed, err := ParseMessageDict(data, reg)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// Len returns the full on-wire size, header included.
func (m *Message) Len() int {
	n := HeaderLength
	for _, a := range m.AVPs {
		n += a.Len()
	}
	return n
}

// Answer derives an empty answer envelope: same command code,
// application id and hop-by-hop/end-to-end ids, request flag cleared,
// proxiable preserved.
func (m *Message) Answer() *Message {
	h := m.Header
	h.Flags.Request = false
	h.Flags.Error = false
	h.Flags.Retransmitted = false
	h.Length = 0
	return &Message{Header: h, registry: m.registry}
}

// Add appends an AVP built from the dictionary defaults for code.
func (m *Message) Add(code, vendorID uint32, data models_base.Type) {
	m.AVPs = append(m.AVPs, avp.New(code, vendorID, data))
}

// AddAVP appends a prebuilt AVP.
func (m *Message) AddAVP(a *avp.AVP) {
	m.AVPs = append(m.AVPs, a)
}

// Get returns the first AVP whose dictionary name matches, ignoring
// case and the customary '-'/'_' spelling differences.
func (m *Message) Get(name string) (models_base.Type, bool) {
	want := normalizeName(name)
	for _, a := range m.AVPs {
		if normalizeName(a.Name) == want {
			return a.Data, true
		}
	}
	return nil, false
}

// GetAll returns every matching AVP value in wire order.
func (m *Message) GetAll(name string) []models_base.Type {
	want := normalizeName(name)
	var out []models_base.Type
	for _, a := range m.AVPs {
		if normalizeName(a.Name) == want {
			out = append(out, a.Data)
		}
	}
	return out
}

func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "_", "-")
	return strings.ToLower(name)
}

func (m *Message) String() string {
	var sb strings.Builder
	sb.WriteString(m.Header.String())
	for _, a := range m.AVPs {
		sb.WriteString("\n  ")
		sb.WriteString(a.String())
	}
	return sb.String()
}

type registryKey struct {
	code    uint32
	request bool
}

var commandRegistry = map[registryKey]func() Command{}

// RegisterCommand maps a command code and direction to a typed
// constructor. Later registrations win, so applications can shadow the
// base protocol set.
func RegisterCommand(code uint32, request bool, newFn func() Command) {
	commandRegistry[registryKey{code: code, request: request}] = newFn
}

// ResolveCommand returns the registered constructor, if any.
func ResolveCommand(code uint32, request bool) (func() Command, bool) {
	fn, ok := commandRegistry[registryKey{code: code, request: request}]
	return fn, ok
}

// ParseAny decodes data into the registered typed command for its code
// and direction, falling back to the untyped Message envelope.
func ParseAny(data []byte) (Command, error) {
	u := models_base.NewUnpacker(data)
	h, err := DecodeHeader(u)
	if err != nil {
		return nil, err
	}
	if newFn, ok := ResolveCommand(h.CommandCode, h.Flags.Request); ok {
		cmd := newFn()
		if err := cmd.Unmarshal(data); err != nil {
			return nil, err
		}
		return cmd, nil
	}
	return ParseMessage(data)
}

func init() {
	RegisterCommand(CodeCapabilitiesExchange, true, func() Command { return &CapabilitiesExchangeRequest{} })
	RegisterCommand(CodeCapabilitiesExchange, false, func() Command { return &CapabilitiesExchangeAnswer{} })
	RegisterCommand(CodeDeviceWatchdog, true, func() Command { return &DeviceWatchdogRequest{} })
	RegisterCommand(CodeDeviceWatchdog, false, func() Command { return &DeviceWatchdogAnswer{} })
	RegisterCommand(CodeDisconnectPeer, true, func() Command { return &DisconnectPeerRequest{} })
	RegisterCommand(CodeDisconnectPeer, false, func() Command { return &DisconnectPeerAnswer{} })
	RegisterCommand(CodeSessionTermination, true, func() Command { return &SessionTerminationRequest{} })
	RegisterCommand(CodeSessionTermination, false, func() Command { return &SessionTerminationAnswer{} })
	RegisterCommand(CodeAbortSession, true, func() Command { return &AbortSessionRequest{} })
	RegisterCommand(CodeAbortSession, false, func() Command { return &AbortSessionAnswer{} })
	RegisterCommand(CodeAccounting, true, func() Command { return &AccountingRequest{} })
	RegisterCommand(CodeAccounting, false, func() Command { return &AccountingAnswer{} })
	RegisterCommand(CodeReAuth, true, func() Command { return &ReAuthRequest{} })
	RegisterCommand(CodeReAuth, false, func() Command { return &ReAuthAnswer{} })
}
