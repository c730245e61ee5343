package base

import (
	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/commands/schema"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// VendorSpecificApplicationId is the grouped AVP advertising one
// vendor-specific application during capabilities exchange.
type VendorSpecificApplicationId struct {
	VendorId          models_base.Unsigned32
	AuthApplicationId *models_base.Unsigned32
	AcctApplicationId *models_base.Unsigned32
}

var vsAppIDSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		{
			Name: "Vendor-Id", Code: dict.VendorID, Required: true,
			Get: func(m any) []models_base.Type {
				return u32Val(m.(*VendorSpecificApplicationId).VendorId)
			},
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Vendor-Id", v)
				}
				m.(*VendorSpecificApplicationId).VendorId = u
				return nil
			},
		},
		{
			Name: "Auth-Application-Id", Code: dict.AuthApplicationID,
			Get: func(m any) []models_base.Type {
				g := m.(*VendorSpecificApplicationId)
				if g.AuthApplicationId == nil {
					return nil
				}
				return []models_base.Type{*g.AuthApplicationId}
			},
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Auth-Application-Id", v)
				}
				m.(*VendorSpecificApplicationId).AuthApplicationId = &u
				return nil
			},
		},
		{
			Name: "Acct-Application-Id", Code: dict.AcctApplicationID,
			Get: func(m any) []models_base.Type {
				g := m.(*VendorSpecificApplicationId)
				if g.AcctApplicationId == nil {
					return nil
				}
				return []models_base.Type{*g.AcctApplicationId}
			},
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Acct-Application-Id", v)
				}
				m.(*VendorSpecificApplicationId).AcctApplicationId = &u
				return nil
			},
		},
	},
}

// capabilities holds the fields CER and CEA share. CEA additionally
// carries Result-Code and Error-Message.
type capabilities struct {
	OriginHost                  models_base.DiameterIdentity
	OriginRealm                 models_base.DiameterIdentity
	HostIpAddress               []models_base.Address
	VendorId                    models_base.Unsigned32
	ProductName                 models_base.UTF8String
	OriginStateId               models_base.Unsigned32
	SupportedVendorId           []models_base.Unsigned32
	AuthApplicationId           []models_base.Unsigned32
	InbandSecurityId            []models_base.Unsigned32
	AcctApplicationId           []models_base.Unsigned32
	VendorSpecificApplicationId []*VendorSpecificApplicationId
	FirmwareRevision            models_base.Unsigned32
	AdditionalAVPs              []*avp.AVP
}

// CapabilitiesExchangeRequest is the CER message (code 257).
type CapabilitiesExchangeRequest struct {
	Header Header
	capabilities
}

// CapabilitiesExchangeAnswer is the CEA message (code 257).
type CapabilitiesExchangeAnswer struct {
	Header Header

	ResultCode   models_base.Unsigned32
	ErrorMessage models_base.UTF8String
	capabilities
}

func capsFields(cap func(m any) *capabilities) []*schema.FieldBinding {
	return []*schema.FieldBinding{
		{
			Name: "Origin-Host", Code: dict.OriginHost, Required: true,
			Get: func(m any) []models_base.Type { return identVal(cap(m).OriginHost) },
			Set: func(m any, v models_base.Type) error {
				id, ok := v.(models_base.DiameterIdentity)
				if !ok {
					return fieldTypeError("Origin-Host", v)
				}
				cap(m).OriginHost = id
				return nil
			},
		},
		{
			Name: "Origin-Realm", Code: dict.OriginRealm, Required: true,
			Get: func(m any) []models_base.Type { return identVal(cap(m).OriginRealm) },
			Set: func(m any, v models_base.Type) error {
				id, ok := v.(models_base.DiameterIdentity)
				if !ok {
					return fieldTypeError("Origin-Realm", v)
				}
				cap(m).OriginRealm = id
				return nil
			},
		},
		{
			Name: "Host-IP-Address", Code: dict.HostIPAddress, Required: true, Repeated: true,
			Get: func(m any) []models_base.Type { return addrSlice(cap(m).HostIpAddress) },
			Set: func(m any, v models_base.Type) error {
				a, ok := v.(models_base.Address)
				if !ok {
					return fieldTypeError("Host-IP-Address", v)
				}
				c := cap(m)
				c.HostIpAddress = append(c.HostIpAddress, a)
				return nil
			},
		},
		{
			Name: "Vendor-Id", Code: dict.VendorID, Required: true,
			Get: func(m any) []models_base.Type { return u32Val(cap(m).VendorId) },
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Vendor-Id", v)
				}
				cap(m).VendorId = u
				return nil
			},
		},
		{
			Name: "Product-Name", Code: dict.ProductName, Required: true,
			Get: func(m any) []models_base.Type { return utf8Val(cap(m).ProductName) },
			Set: func(m any, v models_base.Type) error {
				s, ok := v.(models_base.UTF8String)
				if !ok {
					return fieldTypeError("Product-Name", v)
				}
				cap(m).ProductName = s
				return nil
			},
		},
		{
			Name: "Origin-State-Id", Code: dict.OriginStateID,
			Get: func(m any) []models_base.Type { return u32Val(cap(m).OriginStateId) },
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Origin-State-Id", v)
				}
				cap(m).OriginStateId = u
				return nil
			},
		},
		{
			Name: "Supported-Vendor-Id", Code: dict.SupportedVendorID, Repeated: true,
			Get: func(m any) []models_base.Type { return u32Slice(cap(m).SupportedVendorId) },
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Supported-Vendor-Id", v)
				}
				c := cap(m)
				c.SupportedVendorId = append(c.SupportedVendorId, u)
				return nil
			},
		},
		{
			Name: "Auth-Application-Id", Code: dict.AuthApplicationID, Repeated: true,
			Get: func(m any) []models_base.Type { return u32Slice(cap(m).AuthApplicationId) },
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Auth-Application-Id", v)
				}
				c := cap(m)
				c.AuthApplicationId = append(c.AuthApplicationId, u)
				return nil
			},
		},
		{
			Name: "Inband-Security-Id", Code: dict.InbandSecurityID, Repeated: true,
			Get: func(m any) []models_base.Type { return u32Slice(cap(m).InbandSecurityId) },
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Inband-Security-Id", v)
				}
				c := cap(m)
				c.InbandSecurityId = append(c.InbandSecurityId, u)
				return nil
			},
		},
		{
			Name: "Acct-Application-Id", Code: dict.AcctApplicationID, Repeated: true,
			Get: func(m any) []models_base.Type { return u32Slice(cap(m).AcctApplicationId) },
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Acct-Application-Id", v)
				}
				c := cap(m)
				c.AcctApplicationId = append(c.AcctApplicationId, u)
				return nil
			},
		},
		{
			Name: "Vendor-Specific-Application-Id", Code: dict.VendorSpecificApplicationID, Repeated: true,
			Group:    vsAppIDSchema,
			NewGroup: func() any { return &VendorSpecificApplicationId{} },
			GetGroup: func(m any) []any {
				c := cap(m)
				out := make([]any, 0, len(c.VendorSpecificApplicationId))
				for _, g := range c.VendorSpecificApplicationId {
					out = append(out, g)
				}
				return out
			},
			SetGroup: func(m any, g any) {
				c := cap(m)
				c.VendorSpecificApplicationId = append(c.VendorSpecificApplicationId, g.(*VendorSpecificApplicationId))
			},
		},
		{
			Name: "Firmware-Revision", Code: dict.FirmwareRevision,
			Get: func(m any) []models_base.Type { return u32Val(cap(m).FirmwareRevision) },
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Firmware-Revision", v)
				}
				cap(m).FirmwareRevision = u
				return nil
			},
		},
	}
}

var cerSchema = &schema.Schema{
	Fields: capsFields(func(m any) *capabilities {
		return &m.(*CapabilitiesExchangeRequest).capabilities
	}),
	Extra: func(m any) *[]*avp.AVP {
		return &m.(*CapabilitiesExchangeRequest).AdditionalAVPs
	},
}

var ceaSchema = &schema.Schema{
	Fields: append([]*schema.FieldBinding{
		{
			Name: "Result-Code", Code: dict.ResultCode, Required: true,
			Get: func(m any) []models_base.Type {
				return u32Val(m.(*CapabilitiesExchangeAnswer).ResultCode)
			},
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned32)
				if !ok {
					return fieldTypeError("Result-Code", v)
				}
				m.(*CapabilitiesExchangeAnswer).ResultCode = u
				return nil
			},
		},
	}, append(capsFields(func(m any) *capabilities {
		return &m.(*CapabilitiesExchangeAnswer).capabilities
	}),
		&schema.FieldBinding{
			Name: "Error-Message", Code: dict.ErrorMessage, Mandatory: boolPtr(false),
			Get: func(m any) []models_base.Type {
				return utf8Val(m.(*CapabilitiesExchangeAnswer).ErrorMessage)
			},
			Set: func(m any, v models_base.Type) error {
				s, ok := v.(models_base.UTF8String)
				if !ok {
					return fieldTypeError("Error-Message", v)
				}
				m.(*CapabilitiesExchangeAnswer).ErrorMessage = s
				return nil
			},
		})...),
	Extra: func(m any) *[]*avp.AVP {
		return &m.(*CapabilitiesExchangeAnswer).AdditionalAVPs
	},
}

func boolPtr(b bool) *bool { return &b }

// NewCapabilitiesExchangeRequest builds an empty CER.
func NewCapabilitiesExchangeRequest() *CapabilitiesExchangeRequest {
	return &CapabilitiesExchangeRequest{Header: NewRequestHeader(CodeCapabilitiesExchange, AppBase, false)}
}

// NewCapabilitiesExchangeAnswer builds an empty CEA.
func NewCapabilitiesExchangeAnswer() *CapabilitiesExchangeAnswer {
	return &CapabilitiesExchangeAnswer{Header: NewAnswerHeader(CodeCapabilitiesExchange, AppBase, false)}
}

func (c *CapabilitiesExchangeRequest) Marshal() ([]byte, error) {
	return MarshalCommand(&c.Header, cerSchema, c)
}

func (c *CapabilitiesExchangeRequest) Unmarshal(data []byte) error {
	return UnmarshalCommand(&c.Header, cerSchema, c, data)
}

func (c *CapabilitiesExchangeRequest) Validate() error { return cerSchema.Validate(c) }
func (c *CapabilitiesExchangeRequest) Len() int        { return LenCommand(cerSchema, c) }
func (c *CapabilitiesExchangeRequest) String() string {
	return StringCommand("CER", &c.Header, cerSchema, c)
}

func (c *CapabilitiesExchangeAnswer) Marshal() ([]byte, error) {
	return MarshalCommand(&c.Header, ceaSchema, c)
}

func (c *CapabilitiesExchangeAnswer) Unmarshal(data []byte) error {
	return UnmarshalCommand(&c.Header, ceaSchema, c, data)
}

func (c *CapabilitiesExchangeAnswer) Validate() error { return ceaSchema.Validate(c) }
func (c *CapabilitiesExchangeAnswer) Len() int        { return LenCommand(ceaSchema, c) }
func (c *CapabilitiesExchangeAnswer) String() string {
	return StringCommand("CEA", &c.Header, ceaSchema, c)
}
