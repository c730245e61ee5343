package peer

import (
	"fmt"
	"time"
)

// ErrInvalidConfig represents a configuration validation error
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Reason)
}

// ErrConnectionClosed indicates the connection has reached its terminal state
type ErrConnectionClosed struct {
	ConnID string
	Reason DisconnectReason
}

func (e ErrConnectionClosed) Error() string {
	return fmt.Sprintf("connection %s is closed (%s)", e.ConnID, e.Reason)
}

// ErrNotReady indicates the capabilities exchange has not completed
type ErrNotReady struct {
	ConnID string
	State  State
}

func (e ErrNotReady) Error() string {
	return fmt.Sprintf("connection %s not ready for traffic (state %s)", e.ConnID, e.State)
}

// ErrTimeout indicates a peer operation timed out
type ErrTimeout struct {
	Operation string
	Timeout   time.Duration
}

func (e ErrTimeout) Error() string {
	return fmt.Sprintf("%s timeout after %s", e.Operation, e.Timeout)
}

// ErrHandshakeFailed indicates CER/CEA handshake failed
type ErrHandshakeFailed struct {
	Reason     string
	ResultCode uint32
}

func (e ErrHandshakeFailed) Error() string {
	if e.ResultCode != 0 {
		return fmt.Sprintf("handshake failed: %s (result code: %d)", e.Reason, e.ResultCode)
	}
	return fmt.Sprintf("handshake failed: %s", e.Reason)
}

// ErrInvalidURI indicates a DiameterURI could not be parsed
type ErrInvalidURI struct {
	URI    string
	Reason string
}

func (e ErrInvalidURI) Error() string {
	return fmt.Sprintf("invalid diameter uri %q: %s", e.URI, e.Reason)
}
