package base

import "fmt"

// MalformedMessageError reports a message whose framing disagrees with
// its contents, such as a declared length that does not match the AVP
// payload actually present.
type MalformedMessageError struct {
	Reason string
}

func (e *MalformedMessageError) Error() string {
	return "malformed message: " + e.Reason
}

// UnsupportedVersionError reports a header whose version octet is not 1.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported diameter version %d", e.Version)
}
