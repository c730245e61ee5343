// Package base implements the Diameter message layer: the 20-byte
// header, the untyped message envelope, and the RFC 6733 base protocol
// commands (CER/CEA, DWR/DWA, DPR/DPA, STR/STA, ASR/ASA, ACR/ACA,
// RAR/RAA) as typed structs backed by schema field tables.
package base

import (
	"fmt"

	"github.com/hsdfat8/diam-core/models_base"
)

const (
	// HeaderLength is the fixed size of the Diameter message header.
	HeaderLength = 20

	// DiameterVersion is the only protocol version this stack speaks.
	DiameterVersion = 1
)

// Command codes from RFC 6733 and RFC 8506.
const (
	CodeCapabilitiesExchange = 257
	CodeReAuth               = 258
	CodeAccounting           = 271
	CodeCreditControl        = 272
	CodeAbortSession         = 274
	CodeSessionTermination   = 275
	CodeDeviceWatchdog       = 280
	CodeDisconnectPeer       = 282
)

// Well-known application ids.
const (
	AppBase          = 0
	AppCreditControl = 4
	AppGx            = 16777238
	AppRelay         = 0xffffffff
)

const (
	flagRequest       = 0x80
	flagProxiable     = 0x40
	flagError         = 0x20
	flagRetransmitted = 0x10
)

// CommandFlags holds the four command-flag bits of the message header.
type CommandFlags struct {
	Request       bool
	Proxiable     bool
	Error         bool
	Retransmitted bool
}

func (f CommandFlags) byteValue() uint8 {
	var b uint8
	if f.Request {
		b |= flagRequest
	}
	if f.Proxiable {
		b |= flagProxiable
	}
	if f.Error {
		b |= flagError
	}
	if f.Retransmitted {
		b |= flagRetransmitted
	}
	return b
}

func flagsFromByte(b uint8) CommandFlags {
	return CommandFlags{
		Request:       b&flagRequest != 0,
		Proxiable:     b&flagProxiable != 0,
		Error:         b&flagError != 0,
		Retransmitted: b&flagRetransmitted != 0,
	}
}

// Header is the Diameter message header. Length is written by Marshal
// from the serialized payload; values set by callers are ignored there
// but preserved by parsing.
type Header struct {
	Version       uint8
	Length        uint32
	Flags         CommandFlags
	CommandCode   uint32
	ApplicationID uint32
	HopByHopID    uint32
	EndToEndID    uint32
}

func (h *Header) serializeTo(p *models_base.Packer) {
	p.PutUint32(uint32(h.Version)<<24 | h.Length&0x00ffffff)
	p.PutUint32(uint32(h.Flags.byteValue())<<24 | h.CommandCode&0x00ffffff)
	p.PutUint32(h.ApplicationID)
	p.PutUint32(h.HopByHopID)
	p.PutUint32(h.EndToEndID)
}

// DecodeHeader reads one message header. The version octet must be 1
// and the declared length must cover at least the header itself.
func DecodeHeader(u *models_base.Unpacker) (Header, error) {
	var h Header

	w, err := u.Uint32()
	if err != nil {
		return h, err
	}
	h.Version = uint8(w >> 24)
	h.Length = w & 0x00ffffff
	if h.Version != DiameterVersion {
		return h, &UnsupportedVersionError{Version: h.Version}
	}
	if h.Length < HeaderLength {
		return h, &MalformedMessageError{
			Reason: fmt.Sprintf("declared length %d shorter than header", h.Length),
		}
	}

	w, err = u.Uint32()
	if err != nil {
		return h, err
	}
	h.Flags = flagsFromByte(uint8(w >> 24))
	h.CommandCode = w & 0x00ffffff

	if h.ApplicationID, err = u.Uint32(); err != nil {
		return h, err
	}
	if h.HopByHopID, err = u.Uint32(); err != nil {
		return h, err
	}
	if h.EndToEndID, err = u.Uint32(); err != nil {
		return h, err
	}
	return h, nil
}

func (h *Header) String() string {
	dir := "answer"
	if h.Flags.Request {
		dir = "request"
	}
	return fmt.Sprintf("cmd=%d(%s) app=%d hbh=0x%08X e2e=0x%08X len=%d",
		h.CommandCode, dir, h.ApplicationID, h.HopByHopID, h.EndToEndID, h.Length)
}
