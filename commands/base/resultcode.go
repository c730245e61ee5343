package base

// ResultCode is the value carried in the Result-Code AVP.
type ResultCode uint32

// Result codes from RFC 6733 section 7.1.
const (
	// Informational (1xxx)
	ResultCodeMultiRoundAuth ResultCode = 1001

	// Success (2xxx)
	ResultCodeSuccess        ResultCode = 2001
	ResultCodeLimitedSuccess ResultCode = 2002

	// Protocol errors (3xxx)
	ResultCodeCommandUnsupported     ResultCode = 3001
	ResultCodeUnableToDeliver        ResultCode = 3002
	ResultCodeRealmNotServed         ResultCode = 3003
	ResultCodeTooBusy                ResultCode = 3004
	ResultCodeLoopDetected           ResultCode = 3005
	ResultCodeRedirectIndication     ResultCode = 3006
	ResultCodeApplicationUnsupported ResultCode = 3007
	ResultCodeInvalidHDRBits         ResultCode = 3008
	ResultCodeInvalidAVPBits         ResultCode = 3009
	ResultCodeUnknownPeer            ResultCode = 3010

	// Transient failures (4xxx)
	ResultCodeAuthenticationRejected ResultCode = 4001
	ResultCodeOutOfSpace             ResultCode = 4002
	ResultCodeElectionLost           ResultCode = 4003

	// Permanent failures (5xxx)
	ResultCodeAVPUnsupported        ResultCode = 5001
	ResultCodeUnknownSessionID      ResultCode = 5002
	ResultCodeAuthorizationRejected ResultCode = 5003
	ResultCodeInvalidAVPValue       ResultCode = 5004
	ResultCodeMissingAVP            ResultCode = 5005
	ResultCodeResourcesExceeded     ResultCode = 5006
	ResultCodeContradictingAVPs     ResultCode = 5007
	ResultCodeAVPNotAllowed         ResultCode = 5008
	ResultCodeAVPOccursTooManyTimes ResultCode = 5009
	ResultCodeNoCommonApplication   ResultCode = 5010
	ResultCodeUnsupportedVersion    ResultCode = 5011
	ResultCodeUnableToComply        ResultCode = 5012
)

// Success reports whether the code is in the 2xxx range.
func (r ResultCode) Success() bool {
	return r >= 2000 && r < 3000
}

// Transient reports whether a retry may succeed later.
func (r ResultCode) Transient() bool {
	return r >= 4000 && r < 5000
}

func (r ResultCode) String() string {
	switch r {
	case ResultCodeMultiRoundAuth:
		return "DIAMETER_MULTI_ROUND_AUTH"
	case ResultCodeSuccess:
		return "DIAMETER_SUCCESS"
	case ResultCodeLimitedSuccess:
		return "DIAMETER_LIMITED_SUCCESS"
	case ResultCodeCommandUnsupported:
		return "DIAMETER_COMMAND_UNSUPPORTED"
	case ResultCodeUnableToDeliver:
		return "DIAMETER_UNABLE_TO_DELIVER"
	case ResultCodeRealmNotServed:
		return "DIAMETER_REALM_NOT_SERVED"
	case ResultCodeTooBusy:
		return "DIAMETER_TOO_BUSY"
	case ResultCodeLoopDetected:
		return "DIAMETER_LOOP_DETECTED"
	case ResultCodeRedirectIndication:
		return "DIAMETER_REDIRECT_INDICATION"
	case ResultCodeApplicationUnsupported:
		return "DIAMETER_APPLICATION_UNSUPPORTED"
	case ResultCodeInvalidHDRBits:
		return "DIAMETER_INVALID_HDR_BITS"
	case ResultCodeInvalidAVPBits:
		return "DIAMETER_INVALID_AVP_BITS"
	case ResultCodeUnknownPeer:
		return "DIAMETER_UNKNOWN_PEER"
	case ResultCodeAuthenticationRejected:
		return "DIAMETER_AUTHENTICATION_REJECTED"
	case ResultCodeOutOfSpace:
		return "DIAMETER_OUT_OF_SPACE"
	case ResultCodeElectionLost:
		return "DIAMETER_ELECTION_LOST"
	case ResultCodeAVPUnsupported:
		return "DIAMETER_AVP_UNSUPPORTED"
	case ResultCodeUnknownSessionID:
		return "DIAMETER_UNKNOWN_SESSION_ID"
	case ResultCodeAuthorizationRejected:
		return "DIAMETER_AUTHORIZATION_REJECTED"
	case ResultCodeInvalidAVPValue:
		return "DIAMETER_INVALID_AVP_VALUE"
	case ResultCodeMissingAVP:
		return "DIAMETER_MISSING_AVP"
	case ResultCodeResourcesExceeded:
		return "DIAMETER_RESOURCES_EXCEEDED"
	case ResultCodeContradictingAVPs:
		return "DIAMETER_CONTRADICTING_AVPS"
	case ResultCodeAVPNotAllowed:
		return "DIAMETER_AVP_NOT_ALLOWED"
	case ResultCodeAVPOccursTooManyTimes:
		return "DIAMETER_AVP_OCCURS_TOO_MANY_TIMES"
	case ResultCodeNoCommonApplication:
		return "DIAMETER_NO_COMMON_APPLICATION"
	case ResultCodeUnsupportedVersion:
		return "DIAMETER_UNSUPPORTED_VERSION"
	case ResultCodeUnableToComply:
		return "DIAMETER_UNABLE_TO_COMPLY"
	}
	return "DIAMETER_UNKNOWN_RESULT"
}
