package avp

import "fmt"

// MalformedAVPError reports an AVP whose header is inconsistent (declared
// length shorter than its own header, truncated payload) or whose Grouped
// payload failed to parse. It fails the enclosing AVP's decode but not,
// by itself, its siblings.
type MalformedAVPError struct {
	Code   uint32
	Reason string
	Err    error
}

func (e *MalformedAVPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed AVP %d: %s: %v", e.Code, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed AVP %d: %s", e.Code, e.Reason)
}

func (e *MalformedAVPError) Unwrap() error {
	return e.Err
}
