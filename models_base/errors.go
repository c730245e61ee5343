package models_base

import "fmt"

// DecodeError reports payload bytes that cannot be interpreted under the
// declared wire type (wrong fixed length, invalid UTF-8, short address).
type DecodeError struct {
	TypeName string
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %s", e.TypeName, e.Reason)
}

// EncodeError reports a value that does not fit its declared wire type.
// It is raised at construction time, before any bytes are produced.
type EncodeError struct {
	TypeName string
	Reason   string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot encode %s: %s", e.TypeName, e.Reason)
}

// TruncatedError reports a read past the end of a wire buffer.
type TruncatedError struct {
	Need int
	Have int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated data: need %d bytes, have %d", e.Need, e.Have)
}
