// Package metrics keeps per-command-code traffic counters.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// CommandMetrics counts messages per Diameter command code.
type CommandMetrics struct {
	counters map[uint32]*atomic.Uint64
	mu       sync.RWMutex
}

// NewCommandMetrics creates an empty counter set.
func NewCommandMetrics() *CommandMetrics {
	return &CommandMetrics{
		counters: make(map[uint32]*atomic.Uint64),
	}
}

// Increment bumps the counter for a command code.
func (m *CommandMetrics) Increment(commandCode uint32) {
	m.mu.Lock()
	counter, exists := m.counters[commandCode]
	if !exists {
		counter = &atomic.Uint64{}
		m.counters[commandCode] = counter
	}
	m.mu.Unlock()
	counter.Add(1)
}

// Get returns the count for a command code.
func (m *CommandMetrics) Get(commandCode uint32) uint64 {
	m.mu.RLock()
	counter, exists := m.counters[commandCode]
	m.mu.RUnlock()

	if !exists {
		return 0
	}
	return counter.Load()
}

// Snapshot returns a copy of all counters.
func (m *CommandMetrics) Snapshot() map[uint32]uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[uint32]uint64, len(m.counters))
	for code, counter := range m.counters {
		result[code] = counter.Load()
	}
	return result
}

// Reset clears all counters.
func (m *CommandMetrics) Reset() {
	m.mu.Lock()
	m.counters = make(map[uint32]*atomic.Uint64)
	m.mu.Unlock()
}

// CommandCodeToName maps Diameter command codes to short names.
func CommandCodeToName(code uint32) string {
	switch code {
	case 257:
		return "Capabilities-Exchange"
	case 258:
		return "Re-Auth"
	case 271:
		return "Accounting"
	case 272:
		return "Credit-Control"
	case 274:
		return "Abort-Session"
	case 275:
		return "Session-Termination"
	case 280:
		return "Device-Watchdog"
	case 282:
		return "Disconnect-Peer"
	default:
		return fmt.Sprintf("Command-%d", code)
	}
}

// Format renders a one-line summary with command names sorted by code.
func Format(direction string, m *CommandMetrics) string {
	snap := m.Snapshot()
	codes := make([]uint32, 0, len(snap))
	total := uint64(0)
	for code, count := range snap {
		codes = append(codes, code)
		total += count
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "%s:", direction)
	for _, code := range codes {
		fmt.Fprintf(&b, " [%s=%d]", CommandCodeToName(code), snap[code])
	}
	fmt.Fprintf(&b, " total=%d", total)
	return b.String()
}
