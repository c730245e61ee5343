package base

import (
	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/commands/schema"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// Disconnect-Cause values from RFC 6733 section 5.4.3.
const (
	DisconnectRebooting            = 0
	DisconnectBusy                 = 1
	DisconnectDoNotWantToTalkToYou = 2
)

// DisconnectPeerRequest is the DPR message (code 282).
type DisconnectPeerRequest struct {
	Header Header

	OriginHost      models_base.DiameterIdentity
	OriginRealm     models_base.DiameterIdentity
	DisconnectCause models_base.Enumerated
	AdditionalAVPs  []*avp.AVP
}

// DisconnectPeerAnswer is the DPA message (code 282).
type DisconnectPeerAnswer struct {
	Header Header

	ResultCode     models_base.Unsigned32
	OriginHost     models_base.DiameterIdentity
	OriginRealm    models_base.DiameterIdentity
	ErrorMessage   models_base.UTF8String
	AdditionalAVPs []*avp.AVP
}

var dprSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*DisconnectPeerRequest).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*DisconnectPeerRequest).OriginRealm }),
		schema.EnumField("Disconnect-Cause", dict.DisconnectCause, true,
			func(m any) *models_base.Enumerated { return &m.(*DisconnectPeerRequest).DisconnectCause }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*DisconnectPeerRequest).AdditionalAVPs },
}

var dpaSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.U32Field("Result-Code", dict.ResultCode, true,
			func(m any) *models_base.Unsigned32 { return &m.(*DisconnectPeerAnswer).ResultCode }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*DisconnectPeerAnswer).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*DisconnectPeerAnswer).OriginRealm }),
		schema.UTF8Field("Error-Message", dict.ErrorMessage, false,
			func(m any) *models_base.UTF8String { return &m.(*DisconnectPeerAnswer).ErrorMessage }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*DisconnectPeerAnswer).AdditionalAVPs },
}

// NewDisconnectPeerRequest builds an empty DPR.
func NewDisconnectPeerRequest() *DisconnectPeerRequest {
	return &DisconnectPeerRequest{Header: NewRequestHeader(CodeDisconnectPeer, AppBase, false)}
}

// NewDisconnectPeerAnswer builds an empty DPA.
func NewDisconnectPeerAnswer() *DisconnectPeerAnswer {
	return &DisconnectPeerAnswer{Header: NewAnswerHeader(CodeDisconnectPeer, AppBase, false)}
}

func (d *DisconnectPeerRequest) Marshal() ([]byte, error) {
	return MarshalCommand(&d.Header, dprSchema, d)
}

func (d *DisconnectPeerRequest) Unmarshal(data []byte) error {
	return UnmarshalCommand(&d.Header, dprSchema, d, data)
}

func (d *DisconnectPeerRequest) Validate() error { return dprSchema.Validate(d) }
func (d *DisconnectPeerRequest) Len() int        { return LenCommand(dprSchema, d) }
func (d *DisconnectPeerRequest) String() string {
	return StringCommand("DPR", &d.Header, dprSchema, d)
}

func (d *DisconnectPeerAnswer) Marshal() ([]byte, error) {
	return MarshalCommand(&d.Header, dpaSchema, d)
}

func (d *DisconnectPeerAnswer) Unmarshal(data []byte) error {
	return UnmarshalCommand(&d.Header, dpaSchema, d, data)
}

func (d *DisconnectPeerAnswer) Validate() error { return dpaSchema.Validate(d) }
func (d *DisconnectPeerAnswer) Len() int        { return LenCommand(dpaSchema, d) }
func (d *DisconnectPeerAnswer) String() string {
	return StringCommand("DPA", &d.Header, dpaSchema, d)
}
