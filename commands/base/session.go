package base

import (
	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/commands/schema"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// Termination-Cause values from RFC 6733 section 8.15.
const (
	TerminationLogout             = 1
	TerminationServiceNotProvided = 2
	TerminationBadAnswer          = 3
	TerminationAdministrative     = 4
	TerminationLinkBroken         = 5
	TerminationAuthExpired        = 6
	TerminationUserMoved          = 7
	TerminationSessionTimeout     = 8
)

// SessionTerminationRequest is the STR message (code 275).
type SessionTerminationRequest struct {
	Header Header

	SessionId         models_base.UTF8String
	OriginHost        models_base.DiameterIdentity
	OriginRealm       models_base.DiameterIdentity
	DestinationRealm  models_base.DiameterIdentity
	AuthApplicationId models_base.Unsigned32
	TerminationCause  models_base.Enumerated
	UserName          models_base.UTF8String
	DestinationHost   models_base.DiameterIdentity
	Class             []models_base.OctetString
	OriginStateId     models_base.Unsigned32
	RouteRecord       []models_base.DiameterIdentity
	AdditionalAVPs    []*avp.AVP
}

// SessionTerminationAnswer is the STA message (code 275).
type SessionTerminationAnswer struct {
	Header Header

	SessionId      models_base.UTF8String
	ResultCode     models_base.Unsigned32
	OriginHost     models_base.DiameterIdentity
	OriginRealm    models_base.DiameterIdentity
	UserName       models_base.UTF8String
	Class          []models_base.OctetString
	ErrorMessage   models_base.UTF8String
	OriginStateId  models_base.Unsigned32
	AdditionalAVPs []*avp.AVP
}

// AbortSessionRequest is the ASR message (code 274).
type AbortSessionRequest struct {
	Header Header

	SessionId         models_base.UTF8String
	OriginHost        models_base.DiameterIdentity
	OriginRealm       models_base.DiameterIdentity
	DestinationRealm  models_base.DiameterIdentity
	DestinationHost   models_base.DiameterIdentity
	AuthApplicationId models_base.Unsigned32
	UserName          models_base.UTF8String
	OriginStateId     models_base.Unsigned32
	RouteRecord       []models_base.DiameterIdentity
	AdditionalAVPs    []*avp.AVP
}

// AbortSessionAnswer is the ASA message (code 274).
type AbortSessionAnswer struct {
	Header Header

	SessionId      models_base.UTF8String
	ResultCode     models_base.Unsigned32
	OriginHost     models_base.DiameterIdentity
	OriginRealm    models_base.DiameterIdentity
	UserName       models_base.UTF8String
	OriginStateId  models_base.Unsigned32
	ErrorMessage   models_base.UTF8String
	AdditionalAVPs []*avp.AVP
}

var strSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*SessionTerminationRequest).SessionId }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*SessionTerminationRequest).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*SessionTerminationRequest).OriginRealm }),
		schema.IdentField("Destination-Realm", dict.DestinationRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*SessionTerminationRequest).DestinationRealm }),
		schema.U32Field("Auth-Application-Id", dict.AuthApplicationID, true,
			func(m any) *models_base.Unsigned32 { return &m.(*SessionTerminationRequest).AuthApplicationId }),
		schema.EnumField("Termination-Cause", dict.TerminationCause, true,
			func(m any) *models_base.Enumerated { return &m.(*SessionTerminationRequest).TerminationCause }),
		schema.UTF8Field("User-Name", dict.UserName, false,
			func(m any) *models_base.UTF8String { return &m.(*SessionTerminationRequest).UserName }),
		schema.IdentField("Destination-Host", dict.DestinationHost, false,
			func(m any) *models_base.DiameterIdentity { return &m.(*SessionTerminationRequest).DestinationHost }),
		schema.OctetSliceField("Class", dict.Class,
			func(m any) *[]models_base.OctetString { return &m.(*SessionTerminationRequest).Class }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*SessionTerminationRequest).OriginStateId }),
		schema.IdentSliceField("Route-Record", dict.RouteRecord,
			func(m any) *[]models_base.DiameterIdentity { return &m.(*SessionTerminationRequest).RouteRecord }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*SessionTerminationRequest).AdditionalAVPs },
}

var staSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*SessionTerminationAnswer).SessionId }),
		schema.U32Field("Result-Code", dict.ResultCode, true,
			func(m any) *models_base.Unsigned32 { return &m.(*SessionTerminationAnswer).ResultCode }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*SessionTerminationAnswer).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*SessionTerminationAnswer).OriginRealm }),
		schema.UTF8Field("User-Name", dict.UserName, false,
			func(m any) *models_base.UTF8String { return &m.(*SessionTerminationAnswer).UserName }),
		schema.OctetSliceField("Class", dict.Class,
			func(m any) *[]models_base.OctetString { return &m.(*SessionTerminationAnswer).Class }),
		schema.UTF8Field("Error-Message", dict.ErrorMessage, false,
			func(m any) *models_base.UTF8String { return &m.(*SessionTerminationAnswer).ErrorMessage }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*SessionTerminationAnswer).OriginStateId }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*SessionTerminationAnswer).AdditionalAVPs },
}

var asrSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*AbortSessionRequest).SessionId }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AbortSessionRequest).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AbortSessionRequest).OriginRealm }),
		schema.IdentField("Destination-Realm", dict.DestinationRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AbortSessionRequest).DestinationRealm }),
		schema.IdentField("Destination-Host", dict.DestinationHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AbortSessionRequest).DestinationHost }),
		schema.U32Field("Auth-Application-Id", dict.AuthApplicationID, true,
			func(m any) *models_base.Unsigned32 { return &m.(*AbortSessionRequest).AuthApplicationId }),
		schema.UTF8Field("User-Name", dict.UserName, false,
			func(m any) *models_base.UTF8String { return &m.(*AbortSessionRequest).UserName }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*AbortSessionRequest).OriginStateId }),
		schema.IdentSliceField("Route-Record", dict.RouteRecord,
			func(m any) *[]models_base.DiameterIdentity { return &m.(*AbortSessionRequest).RouteRecord }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*AbortSessionRequest).AdditionalAVPs },
}

var asaSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*AbortSessionAnswer).SessionId }),
		schema.U32Field("Result-Code", dict.ResultCode, true,
			func(m any) *models_base.Unsigned32 { return &m.(*AbortSessionAnswer).ResultCode }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AbortSessionAnswer).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*AbortSessionAnswer).OriginRealm }),
		schema.UTF8Field("User-Name", dict.UserName, false,
			func(m any) *models_base.UTF8String { return &m.(*AbortSessionAnswer).UserName }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*AbortSessionAnswer).OriginStateId }),
		schema.UTF8Field("Error-Message", dict.ErrorMessage, false,
			func(m any) *models_base.UTF8String { return &m.(*AbortSessionAnswer).ErrorMessage }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*AbortSessionAnswer).AdditionalAVPs },
}

// NewSessionTerminationRequest builds an empty STR.
func NewSessionTerminationRequest() *SessionTerminationRequest {
	return &SessionTerminationRequest{Header: NewRequestHeader(CodeSessionTermination, AppBase, true)}
}

// NewSessionTerminationAnswer builds an empty STA.
func NewSessionTerminationAnswer() *SessionTerminationAnswer {
	return &SessionTerminationAnswer{Header: NewAnswerHeader(CodeSessionTermination, AppBase, true)}
}

// NewAbortSessionRequest builds an empty ASR.
func NewAbortSessionRequest() *AbortSessionRequest {
	return &AbortSessionRequest{Header: NewRequestHeader(CodeAbortSession, AppBase, true)}
}

// NewAbortSessionAnswer builds an empty ASA.
func NewAbortSessionAnswer() *AbortSessionAnswer {
	return &AbortSessionAnswer{Header: NewAnswerHeader(CodeAbortSession, AppBase, true)}
}

func (s *SessionTerminationRequest) Marshal() ([]byte, error) {
	return MarshalCommand(&s.Header, strSchema, s)
}

func (s *SessionTerminationRequest) Unmarshal(data []byte) error {
	return UnmarshalCommand(&s.Header, strSchema, s, data)
}

func (s *SessionTerminationRequest) Validate() error { return strSchema.Validate(s) }
func (s *SessionTerminationRequest) Len() int        { return LenCommand(strSchema, s) }
func (s *SessionTerminationRequest) String() string {
	return StringCommand("STR", &s.Header, strSchema, s)
}

func (s *SessionTerminationAnswer) Marshal() ([]byte, error) {
	return MarshalCommand(&s.Header, staSchema, s)
}

func (s *SessionTerminationAnswer) Unmarshal(data []byte) error {
	return UnmarshalCommand(&s.Header, staSchema, s, data)
}

func (s *SessionTerminationAnswer) Validate() error { return staSchema.Validate(s) }
func (s *SessionTerminationAnswer) Len() int        { return LenCommand(staSchema, s) }
func (s *SessionTerminationAnswer) String() string {
	return StringCommand("STA", &s.Header, staSchema, s)
}

func (a *AbortSessionRequest) Marshal() ([]byte, error) {
	return MarshalCommand(&a.Header, asrSchema, a)
}

func (a *AbortSessionRequest) Unmarshal(data []byte) error {
	return UnmarshalCommand(&a.Header, asrSchema, a, data)
}

func (a *AbortSessionRequest) Validate() error { return asrSchema.Validate(a) }
func (a *AbortSessionRequest) Len() int        { return LenCommand(asrSchema, a) }
func (a *AbortSessionRequest) String() string {
	return StringCommand("ASR", &a.Header, asrSchema, a)
}

func (a *AbortSessionAnswer) Marshal() ([]byte, error) {
	return MarshalCommand(&a.Header, asaSchema, a)
}

func (a *AbortSessionAnswer) Unmarshal(data []byte) error {
	return UnmarshalCommand(&a.Header, asaSchema, a, data)
}

func (a *AbortSessionAnswer) Validate() error { return asaSchema.Validate(a) }
func (a *AbortSessionAnswer) Len() int        { return LenCommand(asaSchema, a) }
func (a *AbortSessionAnswer) String() string {
	return StringCommand("ASA", &a.Header, asaSchema, a)
}
