package peer

import "fmt"

// State is the lifecycle phase of a peer connection.
type State int

const (
	// StateConnecting covers transport setup, before the capabilities
	// exchange begins.
	StateConnecting State = iota
	// StateConnected means the transport is up and CER/CEA is in flight.
	StateConnected
	// StateReady means the capabilities exchange succeeded and
	// application traffic may flow.
	StateReady
	// StateWaitingDWA means a watchdog request is outstanding.
	StateWaitingDWA
	// StateClosing means a DPR/DPA teardown is in progress.
	StateClosing
	// StateClosed is terminal; the connection object is discarded and
	// reconnection creates a fresh one.
	StateClosed
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateReady:
		return "READY"
	case StateWaitingDWA:
		return "WAITING_DWA"
	case StateClosing:
		return "CLOSING"
	case StateClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", s)
	}
}

// IsActive returns true if application messages can be sent and received
func (s State) IsActive() bool {
	return s == StateReady || s == StateWaitingDWA
}

// Terminal returns true once the connection is finished
func (s State) Terminal() bool {
	return s == StateClosed
}

// DisconnectReason records why a connection reached StateClosed. It is
// kept for logging and metrics only; nothing branches on it besides the
// persistent-peer reconnect check.
type DisconnectReason int

const (
	ReasonNone DisconnectReason = iota
	// ReasonCleanShutdown is a completed DPR/DPA exchange.
	ReasonCleanShutdown
	// ReasonNodeShutdown is a teardown driven by the local node stopping.
	ReasonNodeShutdown
	// ReasonCERRejected means the capabilities exchange failed with an
	// error result code.
	ReasonCERRejected
	// ReasonWatchdogTimeout means no DWA arrived in time.
	ReasonWatchdogTimeout
	// ReasonCETimeout means no CER/CEA completed in time.
	ReasonCETimeout
	// ReasonTransportError is a socket failure or EOF.
	ReasonTransportError
	// ReasonBusy means the peer disconnected with cause BUSY.
	ReasonBusy
	ReasonUnknown
)

// String returns the string representation of DisconnectReason
func (r DisconnectReason) String() string {
	switch r {
	case ReasonNone:
		return "NONE"
	case ReasonCleanShutdown:
		return "CLEAN_SHUTDOWN"
	case ReasonNodeShutdown:
		return "NODE_SHUTDOWN"
	case ReasonCERRejected:
		return "CER_REJECTED"
	case ReasonWatchdogTimeout:
		return "WATCHDOG_TIMEOUT"
	case ReasonCETimeout:
		return "CE_TIMEOUT"
	case ReasonTransportError:
		return "TRANSPORT_ERROR"
	case ReasonBusy:
		return "BUSY"
	default:
		return "UNKNOWN"
	}
}
