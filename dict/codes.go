package dict

// AVP codes used by the base protocol and credit-control commands.
const (
	UserName                    = 1
	Class                       = 25
	FramedIPAddress             = 8
	AcctSessionID               = 44
	EventTimestamp              = 55
	AcctInterimInterval         = 85
	HostIPAddress               = 257
	AuthApplicationID           = 258
	AcctApplicationID           = 259
	VendorSpecificApplicationID = 260
	RedirectHostUsage           = 261
	RedirectMaxCacheTime        = 262
	SessionID                   = 263
	OriginHost                  = 264
	SupportedVendorID           = 265
	VendorID                    = 266
	FirmwareRevision            = 267
	ResultCode                  = 268
	ProductName                 = 269
	SessionBinding              = 270
	SessionServerFailover       = 271
	MultiRoundTimeOut           = 272
	DisconnectCause             = 273
	AuthRequestType             = 274
	AuthGracePeriod             = 276
	AuthSessionState            = 277
	OriginStateID               = 278
	FailedAVP                   = 279
	ProxyHost                   = 280
	ErrorMessage                = 281
	RouteRecord                 = 282
	DestinationRealm            = 283
	ProxyInfo                   = 284
	ReAuthRequestType           = 285
	AccountingSubSessionID      = 287
	RedirectHost                = 292
	DestinationHost             = 293
	ErrorReportingHost          = 294
	TerminationCause            = 295
	OriginRealm                 = 296
	ExperimentalResult          = 297
	ExperimentalResultCode      = 298
	InbandSecurityID            = 299
	AccountingRecordType        = 480
	AccountingRealtimeRequired  = 483
	AccountingRecordNumber      = 485

	// Credit-control (RFC 8506)
	CCCorrelationID         = 411
	CCInputOctets           = 412
	CCMoney                 = 413
	CCOutputOctets          = 414
	CCRequestNumber         = 415
	CCRequestType           = 416
	CCServiceSpecificUnits  = 417
	CCSessionFailover       = 418
	CCSubSessionID          = 419
	CCTime                  = 420
	CCTotalOctets           = 421
	CCUnitType              = 454
	CheckBalanceResult      = 422
	CostInformation         = 423
	CostUnit                = 424
	CurrencyCode            = 425
	CreditControlFailureHandling = 427
	FinalUnitAction         = 449
	FinalUnitIndication     = 430
	GrantedServiceUnit      = 431
	RatingGroup             = 432
	RequestedAction         = 436
	RequestedServiceUnit    = 437
	ServiceContextID        = 461
	ServiceIdentifier       = 439
	SubscriptionID          = 443
	SubscriptionIDData      = 444
	SubscriptionIDType      = 450
	TariffTimeChange        = 451
	UsedServiceUnit         = 446
	UserEquipmentInfo       = 458
	UserEquipmentInfoType   = 459
	UserEquipmentInfoValue  = 460
	ValidityTime            = 448
)

// Vendor3GPP is the 3GPP enterprise number.
const Vendor3GPP = 10415

// 3GPP vendor-specific AVP codes.
const (
	TGPPChargingCharacteristics = 13
	TGPPIMSI                    = 1
	TGPPMSTimeZone              = 23
	TGPPRATType                 = 21
	TGPPSGSNMCCMNC              = 18
	TGPPUserLocationInfo        = 22
	VisitedPLMNID               = 1407
)
