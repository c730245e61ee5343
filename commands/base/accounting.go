package base

import (
	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/commands/schema"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// Accounting-Record-Type values from RFC 6733 section 9.8.1.
const (
	AccountingEventRecord   = 1
	AccountingStartRecord   = 2
	AccountingInterimRecord = 3
	AccountingStopRecord    = 4
)

// AccountingRequest is the ACR message (code 271).
type AccountingRequest struct {
	Header Header

	SessionId              models_base.UTF8String
	OriginHost             models_base.DiameterIdentity
	OriginRealm            models_base.DiameterIdentity
	DestinationRealm       models_base.DiameterIdentity
	AccountingRecordType   models_base.Enumerated
	AccountingRecordNumber models_base.Unsigned32
	AcctApplicationId      models_base.Unsigned32
	UserName               models_base.UTF8String
	DestinationHost        models_base.DiameterIdentity
	AccountingSubSessionId models_base.Unsigned64
	AcctSessionId          models_base.OctetString
	AcctInterimInterval    models_base.Unsigned32
	OriginStateId          models_base.Unsigned32
	EventTimestamp         models_base.Time
	RouteRecord            []models_base.DiameterIdentity
	AdditionalAVPs         []*avp.AVP
}

// AccountingAnswer is the ACA message (code 271).
type AccountingAnswer struct {
	Header Header

	SessionId              models_base.UTF8String
	ResultCode             models_base.Unsigned32
	OriginHost             models_base.DiameterIdentity
	OriginRealm            models_base.DiameterIdentity
	AccountingRecordType   models_base.Enumerated
	AccountingRecordNumber models_base.Unsigned32
	AcctApplicationId      models_base.Unsigned32
	UserName               models_base.UTF8String
	ErrorMessage           models_base.UTF8String
	AcctInterimInterval    models_base.Unsigned32
	OriginStateId          models_base.Unsigned32
	EventTimestamp         models_base.Time
	AdditionalAVPs         []*avp.AVP
}

var acrSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*AccountingRequest).SessionId }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AccountingRequest).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AccountingRequest).OriginRealm }),
		schema.IdentField("Destination-Realm", dict.DestinationRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AccountingRequest).DestinationRealm }),
		schema.EnumField("Accounting-Record-Type", dict.AccountingRecordType, true,
			func(m any) *models_base.Enumerated { return &m.(*AccountingRequest).AccountingRecordType }),
		schema.U32FieldAlways("Accounting-Record-Number", dict.AccountingRecordNumber,
			func(m any) *models_base.Unsigned32 { return &m.(*AccountingRequest).AccountingRecordNumber }),
		schema.U32Field("Acct-Application-Id", dict.AcctApplicationID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*AccountingRequest).AcctApplicationId }),
		schema.UTF8Field("User-Name", dict.UserName, false,
			func(m any) *models_base.UTF8String { return &m.(*AccountingRequest).UserName }),
		schema.IdentField("Destination-Host", dict.DestinationHost, false,
			func(m any) *models_base.DiameterIdentity { return &m.(*AccountingRequest).DestinationHost }),
		{
			Name: "Accounting-Sub-Session-Id", Code: dict.AccountingSubSessionID,
			Get: func(m any) []models_base.Type {
				return u64Val(m.(*AccountingRequest).AccountingSubSessionId)
			},
			Set: func(m any, v models_base.Type) error {
				u, ok := v.(models_base.Unsigned64)
				if !ok {
					return fieldTypeError("Accounting-Sub-Session-Id", v)
				}
				m.(*AccountingRequest).AccountingSubSessionId = u
				return nil
			},
		},
		{
			Name: "Acct-Session-Id", Code: dict.AcctSessionID,
			Get: func(m any) []models_base.Type {
				o := m.(*AccountingRequest).AcctSessionId
				if len(o) == 0 {
					return nil
				}
				return []models_base.Type{o}
			},
			Set: func(m any, v models_base.Type) error {
				o, ok := v.(models_base.OctetString)
				if !ok {
					return fieldTypeError("Acct-Session-Id", v)
				}
				m.(*AccountingRequest).AcctSessionId = o
				return nil
			},
		},
		schema.U32Field("Acct-Interim-Interval", dict.AcctInterimInterval, false,
			func(m any) *models_base.Unsigned32 { return &m.(*AccountingRequest).AcctInterimInterval }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*AccountingRequest).OriginStateId }),
		schema.TimeField("Event-Timestamp", dict.EventTimestamp,
			func(m any) *models_base.Time { return &m.(*AccountingRequest).EventTimestamp }),
		schema.IdentSliceField("Route-Record", dict.RouteRecord,
			func(m any) *[]models_base.DiameterIdentity { return &m.(*AccountingRequest).RouteRecord }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*AccountingRequest).AdditionalAVPs },
}

var acaSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*AccountingAnswer).SessionId }),
		schema.U32Field("Result-Code", dict.ResultCode, true,
			func(m any) *models_base.Unsigned32 { return &m.(*AccountingAnswer).ResultCode }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AccountingAnswer).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AccountingAnswer).OriginRealm }),
		schema.EnumField("Accounting-Record-Type", dict.AccountingRecordType, true,
			func(m any) *models_base.Enumerated { return &m.(*AccountingAnswer).AccountingRecordType }),
		schema.U32FieldAlways("Accounting-Record-Number", dict.AccountingRecordNumber,
			func(m any) *models_base.Unsigned32 { return &m.(*AccountingAnswer).AccountingRecordNumber }),
		schema.U32Field("Acct-Application-Id", dict.AcctApplicationID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*AccountingAnswer).AcctApplicationId }),
		schema.UTF8Field("User-Name", dict.UserName, false,
			func(m any) *models_base.UTF8String { return &m.(*AccountingAnswer).UserName }),
		schema.UTF8Field("Error-Message", dict.ErrorMessage, false,
			func(m any) *models_base.UTF8String { return &m.(*AccountingAnswer).ErrorMessage }),
		schema.U32Field("Acct-Interim-Interval", dict.AcctInterimInterval, false,
			func(m any) *models_base.Unsigned32 { return &m.(*AccountingAnswer).AcctInterimInterval }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*AccountingAnswer).OriginStateId }),
		schema.TimeField("Event-Timestamp", dict.EventTimestamp,
			func(m any) *models_base.Time { return &m.(*AccountingAnswer).EventTimestamp }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*AccountingAnswer).AdditionalAVPs },
}

// NewAccountingRequest builds an empty ACR.
func NewAccountingRequest() *AccountingRequest {
	return &AccountingRequest{Header: NewRequestHeader(CodeAccounting, AppBase, true)}
}

// NewAccountingAnswer builds an empty ACA.
func NewAccountingAnswer() *AccountingAnswer {
	return &AccountingAnswer{Header: NewAnswerHeader(CodeAccounting, AppBase, true)}
}

func (a *AccountingRequest) Marshal() ([]byte, error) {
	return MarshalCommand(&a.Header, acrSchema, a)
}

func (a *AccountingRequest) Unmarshal(data []byte) error {
	return UnmarshalCommand(&a.Header, acrSchema, a, data)
}

func (a *AccountingRequest) Validate() error { return acrSchema.Validate(a) }
func (a *AccountingRequest) Len() int        { return LenCommand(acrSchema, a) }
func (a *AccountingRequest) String() string {
	return StringCommand("ACR", &a.Header, acrSchema, a)
}

func (a *AccountingAnswer) Marshal() ([]byte, error) {
	return MarshalCommand(&a.Header, acaSchema, a)
}

func (a *AccountingAnswer) Unmarshal(data []byte) error {
	return UnmarshalCommand(&a.Header, acaSchema, a, data)
}

func (a *AccountingAnswer) Validate() error { return acaSchema.Validate(a) }
func (a *AccountingAnswer) Len() int        { return LenCommand(acaSchema, a) }
func (a *AccountingAnswer) String() string {
	return StringCommand("ACA", &a.Header, acaSchema, a)
}
