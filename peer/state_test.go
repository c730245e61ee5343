package peer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "CONNECTING", StateConnecting.String())
	assert.Equal(t, "CONNECTED", StateConnected.String())
	assert.Equal(t, "READY", StateReady.String())
	assert.Equal(t, "WAITING_DWA", StateWaitingDWA.String())
	assert.Equal(t, "CLOSING", StateClosing.String())
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "UNKNOWN(99)", State(99).String())
}

func TestStatePredicates(t *testing.T) {
	active := map[State]bool{
		StateConnecting: false,
		StateConnected:  false,
		StateReady:      true,
		StateWaitingDWA: true,
		StateClosing:    false,
		StateClosed:     false,
	}
	for s, want := range active {
		assert.Equal(t, want, s.IsActive(), "IsActive(%s)", s)
	}
	assert.True(t, StateClosed.Terminal())
	assert.False(t, StateClosing.Terminal())
}

func TestDisconnectReasonString(t *testing.T) {
	reasons := map[DisconnectReason]string{
		ReasonNone:            "NONE",
		ReasonCleanShutdown:   "CLEAN_SHUTDOWN",
		ReasonNodeShutdown:    "NODE_SHUTDOWN",
		ReasonCERRejected:     "CER_REJECTED",
		ReasonWatchdogTimeout: "WATCHDOG_TIMEOUT",
		ReasonCETimeout:       "CE_TIMEOUT",
		ReasonTransportError:  "TRANSPORT_ERROR",
		ReasonBusy:            "BUSY",
		ReasonUnknown:         "UNKNOWN",
	}
	for r, want := range reasons {
		assert.Equal(t, want, r.String())
	}
}
