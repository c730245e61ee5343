package base

import (
	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/commands/schema"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// DeviceWatchdogRequest is the DWR message (code 280).
type DeviceWatchdogRequest struct {
	Header Header

	OriginHost     models_base.DiameterIdentity
	OriginRealm    models_base.DiameterIdentity
	OriginStateId  models_base.Unsigned32
	AdditionalAVPs []*avp.AVP
}

// DeviceWatchdogAnswer is the DWA message (code 280).
type DeviceWatchdogAnswer struct {
	Header Header

	ResultCode     models_base.Unsigned32
	OriginHost     models_base.DiameterIdentity
	OriginRealm    models_base.DiameterIdentity
	ErrorMessage   models_base.UTF8String
	OriginStateId  models_base.Unsigned32
	AdditionalAVPs []*avp.AVP
}

var dwrSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*DeviceWatchdogRequest).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*DeviceWatchdogRequest).OriginRealm }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*DeviceWatchdogRequest).OriginStateId }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*DeviceWatchdogRequest).AdditionalAVPs },
}

var dwaSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.U32Field("Result-Code", dict.ResultCode, true,
			func(m any) *models_base.Unsigned32 { return &m.(*DeviceWatchdogAnswer).ResultCode }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*DeviceWatchdogAnswer).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*DeviceWatchdogAnswer).OriginRealm }),
		schema.UTF8Field("Error-Message", dict.ErrorMessage, false,
			func(m any) *models_base.UTF8String { return &m.(*DeviceWatchdogAnswer).ErrorMessage }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*DeviceWatchdogAnswer).OriginStateId }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*DeviceWatchdogAnswer).AdditionalAVPs },
}

// NewDeviceWatchdogRequest builds an empty DWR.
func NewDeviceWatchdogRequest() *DeviceWatchdogRequest {
	return &DeviceWatchdogRequest{Header: NewRequestHeader(CodeDeviceWatchdog, AppBase, false)}
}

// NewDeviceWatchdogAnswer builds an empty DWA.
func NewDeviceWatchdogAnswer() *DeviceWatchdogAnswer {
	return &DeviceWatchdogAnswer{Header: NewAnswerHeader(CodeDeviceWatchdog, AppBase, false)}
}

func (d *DeviceWatchdogRequest) Marshal() ([]byte, error) {
	return MarshalCommand(&d.Header, dwrSchema, d)
}

func (d *DeviceWatchdogRequest) Unmarshal(data []byte) error {
	return UnmarshalCommand(&d.Header, dwrSchema, d, data)
}

func (d *DeviceWatchdogRequest) Validate() error { return dwrSchema.Validate(d) }
func (d *DeviceWatchdogRequest) Len() int        { return LenCommand(dwrSchema, d) }
func (d *DeviceWatchdogRequest) String() string {
	return StringCommand("DWR", &d.Header, dwrSchema, d)
}

func (d *DeviceWatchdogAnswer) Marshal() ([]byte, error) {
	return MarshalCommand(&d.Header, dwaSchema, d)
}

func (d *DeviceWatchdogAnswer) Unmarshal(data []byte) error {
	return UnmarshalCommand(&d.Header, dwaSchema, d, data)
}

func (d *DeviceWatchdogAnswer) Validate() error { return dwaSchema.Validate(d) }
func (d *DeviceWatchdogAnswer) Len() int        { return LenCommand(dwaSchema, d) }
func (d *DeviceWatchdogAnswer) String() string {
	return StringCommand("DWA", &d.Header, dwaSchema, d)
}
