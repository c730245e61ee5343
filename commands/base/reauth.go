package base

import (
	"github.com/hsdfat8/diam-core/avp"
	"github.com/hsdfat8/diam-core/commands/schema"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

// Re-Auth-Request-Type values from RFC 6733 section 8.12.
const (
	ReAuthAuthorizeOnly         = 0
	ReAuthAuthorizeAuthenticate = 1
)

// ReAuthRequest is the RAR message (code 258).
type ReAuthRequest struct {
	Header Header

	SessionId         models_base.UTF8String
	OriginHost        models_base.DiameterIdentity
	OriginRealm       models_base.DiameterIdentity
	DestinationRealm  models_base.DiameterIdentity
	DestinationHost   models_base.DiameterIdentity
	AuthApplicationId models_base.Unsigned32
	ReAuthRequestType models_base.Enumerated
	UserName          models_base.UTF8String
	OriginStateId     models_base.Unsigned32
	RouteRecord       []models_base.DiameterIdentity
	AdditionalAVPs    []*avp.AVP
}

// ReAuthAnswer is the RAA message (code 258).
type ReAuthAnswer struct {
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

var rarSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*ReAuthRequest).SessionId }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*ReAuthRequest).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*ReAuthRequest).OriginRealm }),
		schema.IdentField("Destination-Realm", dict.DestinationRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*ReAuthRequest).DestinationRealm }),
		schema.IdentField("Destination-Host", dict.DestinationHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*ReAuthRequest).DestinationHost }),
		schema.U32Field("Auth-Application-Id", dict.AuthApplicationID, true,
			func(m any) *models_base.Unsigned32 { return &m.(*ReAuthRequest).AuthApplicationId }),
		schema.EnumField("Re-Auth-Request-Type", dict.ReAuthRequestType, true,
			func(m any) *models_base.Enumerated { return &m.(*ReAuthRequest).ReAuthRequestType }),
		schema.UTF8Field("User-Name", dict.UserName, false,
			func(m any) *models_base.UTF8String { return &m.(*ReAuthRequest).UserName }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*ReAuthRequest).OriginStateId }),
		schema.IdentSliceField("Route-Record", dict.RouteRecord,
			func(m any) *[]models_base.DiameterIdentity { return &m.(*ReAuthRequest).RouteRecord }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*ReAuthRequest).AdditionalAVPs },
}

var raaSchema = &schema.Schema{
	Fields: []*schema.FieldBinding{
		schema.UTF8Field("Session-Id", dict.SessionID, true,
			func(m any) *models_base.UTF8String { return &m.(*ReAuthAnswer).SessionId }),
		schema.U32Field("Result-Code", dict.ResultCode, true,
			func(m any) *models_base.Unsigned32 { return &m.(*ReAuthAnswer).ResultCode }),
		schema.IdentField("Origin-Host", dict.OriginHost, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*ReAuthAnswer).OriginHost }),
		schema.IdentField("Origin-Realm", dict.OriginRealm, true,
			func(m any) *models_base.DiameterIdentity { return &m.(*ReAuthAnswer).OriginRealm }),
		schema.UTF8Field("User-Name", dict.UserName, false,
			func(m any) *models_base.UTF8String { return &m.(*ReAuthAnswer).UserName }),
		schema.U32Field("Origin-State-Id", dict.OriginStateID, false,
			func(m any) *models_base.Unsigned32 { return &m.(*ReAuthAnswer).OriginStateId }),
		schema.UTF8Field("Error-Message", dict.ErrorMessage, false,
			func(m any) *models_base.UTF8String { return &m.(*ReAuthAnswer).ErrorMessage }),
	},
	Extra: func(m any) *[]*avp.AVP { return &m.(*ReAuthAnswer).AdditionalAVPs },
}

// NewReAuthRequest builds an empty RAR.
func NewReAuthRequest() *ReAuthRequest {
	return &ReAuthRequest{Header: NewRequestHeader(CodeReAuth, AppBase, true)}
}

// NewReAuthAnswer builds an empty RAA.
func NewReAuthAnswer() *ReAuthAnswer {
	return &ReAuthAnswer{Header: NewAnswerHeader(CodeReAuth, AppBase, true)}
}

func (r *ReAuthRequest) Marshal() ([]byte, error) {
	return MarshalCommand(&r.Header, rarSchema, r)
}

func (r *ReAuthRequest) Unmarshal(data []byte) error {
	return UnmarshalCommand(&r.Header, rarSchema, r, data)
}

func (r *ReAuthRequest) Validate() error { return rarSchema.Validate(r) }
func (r *ReAuthRequest) Len() int        { return LenCommand(rarSchema, r) }
func (r *ReAuthRequest) String() string {
	return StringCommand("RAR", &r.Header, rarSchema, r)
}

func (r *ReAuthAnswer) Marshal() ([]byte, error) {
	return MarshalCommand(&r.Header, raaSchema, r)
}

func (r *ReAuthAnswer) Unmarshal(data []byte) error {
	return UnmarshalCommand(&r.Header, raaSchema, r, data)
}

func (r *ReAuthAnswer) Validate() error { return raaSchema.Validate(r) }
func (r *ReAuthAnswer) Len() int        { return LenCommand(raaSchema, r) }
func (r *ReAuthAnswer) String() string {
	return StringCommand("RAA", &r.Header, raaSchema, r)
}
