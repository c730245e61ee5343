// Package creditcontrol implements the RFC 8506 Credit-Control
// application commands (CCR/CCA, code 272, application id 4) on top of
// the base message layer.
package creditcontrol

import (
	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/commands/base"
	"github.com/hsdfat8/diam-core/commands/schema"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// CC-Request-Type values.
const (
	RequestTypeInitial     = 1
	RequestTypeUpdate      = 2
	RequestTypeTermination = 3
	RequestTypeEvent       = 4
)

// Subscription-Id-Type values.
const (
	SubscriptionE164    = 0
	SubscriptionIMSI    = 1
	SubscriptionSIPURI  = 2
	SubscriptionNAI     = 3
	SubscriptionPrivate = 4
)

// ServiceUnit is the shared shape of the Requested-Service-Unit,
// Granted-Service-Unit and Used-Service-Unit grouped AVPs. Zero fields
// are omitted on the wire.
type ServiceUnit struct {
	CCTime                 models_base.Unsigned32
	CCTotalOctets          models_base.Unsigned64
	CCInputOctets          models_base.Unsigned64
	CCOutputOctets         models_base.Unsigned64
	CCServiceSpecificUnits models_base.Unsigned64
}

// SubscriptionId is the Subscription-Id grouped AVP identifying the
// charged party.
type SubscriptionId struct {
	Type models_base.Enumerated
	Data models_base.UTF8String
}

// CreditControlRequest is the CCR message.
type CreditControlRequest struct {
	Header base.Header

	SessionId            models_base.UTF8String
	OriginHost           models_base.DiameterIdentity
	OriginRealm          models_base.DiameterIdentity
	DestinationRealm     models_base.DiameterIdentity
	AuthApplicationId    models_base.Unsigned32
	ServiceContextId     models_base.UTF8String
	CCRequestType        models_base.Enumerated
	CCRequestNumber      models_base.Unsigned32
	DestinationHost      models_base.DiameterIdentity
	UserName             models_base.UTF8String
	OriginStateId        models_base.Unsigned32
	SubscriptionId       []*SubscriptionId
	RequestedServiceUnit *ServiceUnit
	UsedServiceUnit      []*ServiceUnit
	AdditionalAVPs       []*avp.AVP
}

// CreditControlAnswer is the CCA message.
type CreditControlAnswer struct {
	Header base.Header

	SessionId          models_base.UTF8String
	ResultCode         models_base.Unsigned32
	OriginHost         models_base.DiameterIdentity
	OriginRealm        models_base.DiameterIdentity
	AuthApplicationId  models_base.Unsigned32
	CCRequestType      models_base.Enumerated
	CCRequestNumber    models_base.Unsigned32
	GrantedServiceUnit *ServiceUnit
	ValidityTime       models_base.Unsigned32
	ErrorMessage       models_base.UTF8String
	AdditionalAVPs     []*avp.AVP
}

var serviceUnitSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.U32Field("CC-Time", dict.CCTime, false,
			func(m any) *models_base.Unsigned32 { return &m.(*ServiceUnit).CCTime }),
		schema.U64Field("CC-Total-Octets", dict.CCTotalOctets, false,
			func(m any) *models_base.Unsigned64 { return &m.(*ServiceUnit).CCTotalOctets }),
		schema.U64Field("CC-Input-Octets", dict.CCInputOctets, false,
			func(m any) *models_base.Unsigned64 { return &m.(*ServiceUnit).CCInputOctets }),
		schema.U64Field("CC-Output-Octets", dict.CCOutputOctets, false,
			func(m any) *models_base.Unsigned64 { return &m.(*ServiceUnit).CCOutputOctets }),
		schema.U64Field("CC-Service-Specific-Units", dict.CCServiceSpecificUnits, false,
			func(m any) *models_base.Unsigned64 { return &m.(*ServiceUnit).CCServiceSpecificUnits }),
	},
}

var subscriptionIDSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.EnumField("Subscription-Id-Type", dict.SubscriptionIDType, true,
			func(m any) *models_base.Enumerated { return &m.(*SubscriptionId).Type }),
		schema.UTF8Field("Subscription-Id-Data", dict.SubscriptionIDData, true,
			func(m any) *models_base.UTF8String { return &m.(*SubscriptionId).Data }),
	},
}

func singleUnitGroup(name string, code uint32, required bool, ptr func(m any) **ServiceUnit) *schema.FieldBinding {
	return &schema.FieldBinding{
		Name: name, Code: code, Required: required,
		Group:    serviceUnitSchema,
		NewGroup: func() any { return &ServiceUnit{} },
		GetGroup: func(m any) []any {
			u := *ptr(m)
			if u == nil {
				return nil
			}
			return []any{u}
		},
		SetGroup: func(m any, g any) { *ptr(m) = g.(*ServiceUnit) },
	}
}

var ccrSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*CreditControlRequest).SessionId }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*CreditControlRequest).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*CreditControlRequest).OriginRealm }),
		schema.IdentField("Destination-Realm", dict.DestinationRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*CreditControlRequest).DestinationRealm }),
		schema.U32Field("Auth-Application-Id", dict.AuthApplicationID, true,
			func(m any) *models_base.Unsigned32 { return &m.(*CreditControlRequest).AuthApplicationId }),
		schema.UTF8Field("Service-Context-Id", dict.ServiceContextID, true,
			func(m any) *models_base.UTF8String { return &m.(*CreditControlRequest).ServiceContextId }),
		schema.EnumField("CC-Request-Type", dict.CCRequestType, true,
			func(m any) *models_base.Enumerated { return &m.(*CreditControlRequest).CCRequestType }),
		schema.U32FieldAlways("CC-Request-Number", dict.CCRequestNumber,
			func(m any) *models_base.Unsigned32 { return &m.(*CreditControlRequest).CCRequestNumber }),
		schema.IdentField("Destination-Host", dict.DestinationHost, false,
			func(m any) *models_base.DiameterIdentity { return &m.(*CreditControlRequest).DestinationHost }),
		schema.UTF8Field("User-Name", dict.UserName, false,
			func(m any) *models_base.UTF8String { return &m.(*CreditControlRequest).UserName }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*CreditControlRequest).OriginStateId }),
		{
			Name: "Subscription-Id", Code: dict.SubscriptionID, Repeated: true,
			Group:    subscriptionIDSchema,
			NewGroup: func() any { return &SubscriptionId{} },
			GetGroup: func(m any) []any {
				c := m.(*CreditControlRequest)
				out := make([]any, 0, len(c.SubscriptionId))
				for _, s := range c.SubscriptionId {
					out = append(out, s)
				}
				return out
			},
			SetGroup: func(m any, g any) {
				c := m.(*CreditControlRequest)
				c.SubscriptionId = append(c.SubscriptionId, g.(*SubscriptionId))
			},
		},
		singleUnitGroup("Requested-Service-Unit", dict.RequestedServiceUnit, false,
			func(m any) **ServiceUnit { return &m.(*CreditControlRequest).RequestedServiceUnit }),
		{
			Name: "Used-Service-Unit", Code: dict.UsedServiceUnit, Repeated: true,
			Group:    serviceUnitSchema,
			NewGroup: func() any { return &ServiceUnit{} },
			GetGroup: func(m any) []any {
				c := m.(*CreditControlRequest)
				out := make([]any, 0, len(c.UsedServiceUnit))
				for _, u := range c.UsedServiceUnit {
					out = append(out, u)
				}
				return out
			},
			SetGroup: func(m any, g any) {
				c := m.(*CreditControlRequest)
				c.UsedServiceUnit = append(c.UsedServiceUnit, g.(*ServiceUnit))
			},
		},
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*CreditControlRequest).AdditionalAVPs },
}

var ccaSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*CreditControlAnswer).SessionId }),
		schema.U32Field("Result-Code", dict.ResultCode, true,
			func(m any) *models_base.Unsigned32 { return &m.(*CreditControlAnswer).ResultCode }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*CreditControlAnswer).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*CreditControlAnswer).OriginRealm }),
		schema.U32Field("Auth-Application-Id", dict.AuthApplicationID, true,
			func(m any) *models_base.Unsigned32 { return &m.(*CreditControlAnswer).AuthApplicationId }),
		schema.EnumField("CC-Request-Type", dict.CCRequestType, true,
			func(m any) *models_base.Enumerated { return &m.(*CreditControlAnswer).CCRequestType }),
		schema.U32FieldAlways("CC-Request-Number", dict.CCRequestNumber,
			func(m any) *models_base.Unsigned32 { return &m.(*CreditControlAnswer).CCRequestNumber }),
		singleUnitGroup("Granted-Service-Unit", dict.GrantedServiceUnit, false,
			func(m any) **ServiceUnit { return &m.(*CreditControlAnswer).GrantedServiceUnit }),
		schema.U32Field("Validity-Time", dict.ValidityTime, false,
			func(m any) *models_base.Unsigned32 { return &m.(*CreditControlAnswer).ValidityTime }),
		schema.UTF8Field("Error-Message", dict.ErrorMessage, false,
			func(m any) *models_base.UTF8String { return &m.(*CreditControlAnswer).ErrorMessage }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*CreditControlAnswer).AdditionalAVPs },
}

// NewCreditControlRequest builds an empty CCR with the credit-control
// application id prefilled.
func NewCreditControlRequest() *CreditControlRequest {
	c := &CreditControlRequest{Header: base.NewRequestHeader(base.CodeCreditControl, base.AppCreditControl, true)}
	c.AuthApplicationId = base.AppCreditControl
	return c
}

// NewCreditControlAnswer builds an empty CCA.
func NewCreditControlAnswer() *CreditControlAnswer {
	c := &CreditControlAnswer{Header: base.NewAnswerHeader(base.CodeCreditControl, base.AppCreditControl, true)}
	c.AuthApplicationId = base.AppCreditControl
	return c
}

func (c *CreditControlRequest) Marshal() ([]byte, error) {
	return base.MarshalCommand(&c.Header, ccrSchema, c)
}

func (c *CreditControlRequest) Unmarshal(data []byte) error {
	return base.UnmarshalCommand(&c.Header, ccrSchema, c, data)
}

func (c *CreditControlRequest) Validate() error { return ccrSchema.Validate(c) }
func (c *CreditControlRequest) Len() int        { return base.LenCommand(ccrSchema, c) }
func (c *CreditControlRequest) String() string {
	return base.StringCommand("CCR", &c.Header, ccrSchema, c)
}

func (c *CreditControlAnswer) Marshal() ([]byte, error) {
	return base.MarshalCommand(&c.Header, ccaSchema, c)
}

func (c *CreditControlAnswer) Unmarshal(data []byte) error {
	return base.UnmarshalCommand(&c.Header, ccaSchema, c, data)
}

func (c *CreditControlAnswer) Validate() error { return ccaSchema.Validate(c) }
func (c *CreditControlAnswer) Len() int        { return base.LenCommand(ccaSchema, c) }
func (c *CreditControlAnswer) String() string {
	return base.StringCommand("CCA", &c.Header, ccaSchema, c)
}

func init() {
	base.RegisterCommand(base.CodeCreditControl, true, func() base.Command { return &CreditControlRequest{} })
	base.RegisterCommand(base.CodeCreditControl, false, func() base.Command { return &CreditControlAnswer{} })
}
