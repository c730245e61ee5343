package peer

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/hsdfat8/diam-core/commands/base"
	"github.com/hsdfat8/diam-core/models_base"
	"github.com/hsdfat8/diam-core/pkg/logger"
	"github.com/hsdfat8/diam-core/pkg/transport"
)

// Role distinguishes the side that dialed from the side that accepted.
type Role int

const (
	RoleInitiator Role = iota
	RoleResponder
)

// String returns the string representation of Role
func (r Role) String() string {
	switch r {
	case RoleInitiator:
		return "initiator"
	case RoleResponder:
		return "responder"
	default:
		return fmt.Sprintf("role(%d)", r)
	}
}

// Stats tracks per-connection traffic counters
type Stats struct {
	MessagesSent     atomic.Uint64
	MessagesReceived atomic.Uint64
	BytesSent        atomic.Uint64
	BytesReceived    atomic.Uint64
}

var connSeq atomic.Uint64

// Conn is one peer connection driving the RFC 6733 peer state machine:
// capabilities exchange, watchdog and disconnect. I/O runs on a
// read/write goroutine pair; every timer is a bare timestamp inspected
// by CheckTimers on the owner's sweep tick, so a state change
// invalidates a stale timer with no timer task to cancel.
type Conn struct {
	id    string
	role  Role
	cfg   Config
	tc    *transport.Conn
	clock clockwork.Clock

	mu        sync.Mutex
	state     State
	reason    DisconnectReason
	peerHost  string
	peerRealm string

	// Timer bases, guarded by mu. Zero means the timer is not armed.
	startedAt    time.Time // capabilities exchange deadline base
	lastActivity time.Time // idle watchdog base
	dwrSentAt    time.Time // set while a DWR is outstanding
	dprSentAt    time.Time // set while a DPR is outstanding

	hopByHop atomic.Uint32
	endToEnd atomic.Uint32

	pendingMu sync.RWMutex
	pending   map[uint32]chan *base.Message

	sendCh chan []byte
	recvCh chan *base.Message

	readyOnce sync.Once
	readyCh   chan struct{}
	closeOnce sync.Once
	closedCh  chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stats Stats
}

// NewConn wraps an established transport in a peer connection. Nothing
// flows until Start is called. A nil clock selects the wall clock.
func NewConn(nc net.Conn, role Role, cfg Config, clock clockwork.Clock) *Conn {
	cfg.applyDefaults()
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Conn{
		id:       fmt.Sprintf("%s-%d", role, connSeq.Add(1)),
		role:     role,
		cfg:      cfg,
		tc:       transport.NewConn(nc, nil),
		clock:    clock,
		state:    StateConnecting,
		pending:  make(map[uint32]chan *base.Message),
		sendCh:   make(chan []byte, cfg.SendBufferSize),
		recvCh:   make(chan *base.Message, cfg.RecvBufferSize),
		readyCh:  make(chan struct{}),
		closedCh: make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
	// RFC 6733 section 3: seed the end-to-end id from the clock so ids
	// stay unique across restarts.
	c.endToEnd.Store(uint32(clock.Now().Unix()) << 12)
	return c
}

// Start launches the I/O loops and, on the initiator side, opens the
// capabilities exchange.
func (c *Conn) Start() error {
	now := c.clock.Now()
	c.mu.Lock()
	c.state = StateConnected
	c.startedAt = now
	c.lastActivity = now
	c.mu.Unlock()

	c.startReadLoop()
	c.startWriteLoop()

	if c.role == RoleInitiator {
		if err := c.sendCER(); err != nil {
			c.closeWith(ReasonTransportError)
			return err
		}
	}

	logger.Log.Infow("Peer connection started",
		"conn_id", c.id, "role", c.role.String(), "remote", c.tc.RemoteAddr().String())
	return nil
}

// ID returns the connection identifier used in logs.
func (c *Conn) ID() string { return c.id }

// Role returns the connection role.
func (c *Conn) Role() Role { return c.role }

// State returns the current state.
func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reason returns the recorded disconnect reason, ReasonNone while open.
func (c *Conn) Reason() DisconnectReason {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reason
}

// PeerHost returns the Origin-Host learned from the peer's CER or CEA.
func (c *Conn) PeerHost() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.peerHost
}

// PeerRealm returns the Origin-Realm learned from the peer's CER or CEA.
func (c *Conn) PeerRealm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.peerRealm
}

// RemoteAddr returns the transport remote address.
func (c *Conn) RemoteAddr() net.Addr { return c.tc.RemoteAddr() }

// Stats returns the traffic counters.
func (c *Conn) Stats() *Stats { return &c.stats }

// Receive returns the channel carrying inbound application requests.
func (c *Conn) Receive() <-chan *base.Message { return c.recvCh }

// Closed returns a channel closed when the connection reaches
// StateClosed.
func (c *Conn) Closed() <-chan struct{} { return c.closedCh }

// WaitReady blocks until the capabilities exchange completes or the
// connection dies.
func (c *Conn) WaitReady(ctx context.Context) error {
	select {
	case <-c.readyCh:
		return nil
	case <-c.closedCh:
		return ErrConnectionClosed{ConnID: c.id, Reason: c.Reason()}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Send queues an already-marshalled message for the write loop.
func (c *Conn) Send(data []byte) error {
	if !c.State().IsActive() {
		return ErrNotReady{ConnID: c.id, State: c.State()}
	}
	select {
	case c.sendCh <- data:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed{ConnID: c.id, Reason: c.Reason()}
	default:
		return fmt.Errorf("connection %s send buffer full", c.id)
	}
}

// SendRequest sends a request and waits for the answer carrying the
// same hop-by-hop id.
func (c *Conn) SendRequest(ctx context.Context, req *base.Message) (*base.Message, error) {
	if !c.State().IsActive() {
		return nil, ErrNotReady{ConnID: c.id, State: c.State()}
	}

	req.Header.HopByHopID = c.nextHopByHop()
	if req.Header.EndToEndID == 0 {
		req.Header.EndToEndID = c.nextEndToEnd()
	}
	data, err := req.Marshal()
	if err != nil {
		return nil, err
	}

	respCh := make(chan *base.Message, 1)
	c.registerPending(req.Header.HopByHopID, respCh)
	defer c.unregisterPending(req.Header.HopByHopID)

	if err := c.send(data); err != nil {
		return nil, err
	}

	select {
	case ans := <-respCh:
		return ans, nil
	case <-c.closedCh:
		return nil, ErrConnectionClosed{ConnID: c.id, Reason: c.Reason()}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Disconnect starts a graceful DPR/DPA teardown with the given
// Disconnect-Cause value.
func (c *Conn) Disconnect(cause models_base.Enumerated) error {
	return c.beginDisconnect(cause, ReasonCleanShutdown)
}

// Close aborts the connection without a DPR/DPA exchange and waits for
// the I/O loops to exit.
func (c *Conn) Close() error {
	c.closeWith(ReasonCleanShutdown)
	c.wg.Wait()
	return nil
}

// CheckTimers advances any timer-driven transition due at now. The
// owning node calls it on every sweep tick; there are no per-timer
// goroutines to race with, only this method and the message handlers.
func (c *Conn) CheckTimers(now time.Time) {
	c.mu.Lock()
	switch c.state {
	case StateConnecting, StateConnected:
		if now.Sub(c.startedAt) >= c.cfg.CETimeout {
			c.mu.Unlock()
			logger.Log.Warnw("Capabilities exchange timed out", "conn_id", c.id)
			c.closeWith(ReasonCETimeout)
			return
		}
	case StateReady:
		if now.Sub(c.lastActivity) >= c.cfg.WatchdogInterval {
			c.state = StateWaitingDWA
			c.dwrSentAt = now
			c.mu.Unlock()
			c.sendDWR()
			return
		}
	case StateWaitingDWA:
		if !c.dwrSentAt.IsZero() && now.Sub(c.dwrSentAt) >= c.cfg.WatchdogTimeout {
			c.mu.Unlock()
			logger.Log.Errorw("Watchdog timed out", "conn_id", c.id)
			c.closeWith(ReasonWatchdogTimeout)
			return
		}
	case StateClosing:
		if !c.dprSentAt.IsZero() && now.Sub(c.dprSentAt) >= c.cfg.DisconnectTimeout {
			c.mu.Unlock()
			logger.Log.Warnw("No DPA received, dropping transport", "conn_id", c.id)
			c.closeWith(ReasonCleanShutdown)
			return
		}
	}
	c.mu.Unlock()
}

// ---- handshake ----

func (c *Conn) sendCER() error {
	cer := base.NewCapabilitiesExchangeRequest()
	c.fillIdentity(&cer.OriginHost, &cer.OriginRealm)
	cer.HostIpAddress = c.hostAddresses()
	cer.VendorId = models_base.Unsigned32(c.cfg.VendorID)
	cer.ProductName = models_base.UTF8String(c.cfg.ProductName)
	for _, id := range c.cfg.AuthApplicationIDs {
		cer.AuthApplicationId = append(cer.AuthApplicationId, models_base.Unsigned32(id))
	}
	for _, id := range c.cfg.AcctApplicationIDs {
		cer.AcctApplicationId = append(cer.AcctApplicationId, models_base.Unsigned32(id))
	}
	cer.Header.HopByHopID = c.nextHopByHop()
	cer.Header.EndToEndID = c.nextEndToEnd()

	data, err := cer.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal CER: %w", err)
	}
	logger.Log.Debugw("CER sent", "conn_id", c.id)
	return c.send(data)
}

func (c *Conn) handleCER(data []byte) error {
	if c.role != RoleResponder {
		return fmt.Errorf("CER received on initiator connection %s", c.id)
	}
	if c.State() != StateConnected {
		logger.Log.Debugw("Ignoring CER outside handshake", "conn_id", c.id, "state", c.State().String())
		return nil
	}

	cer := &base.CapabilitiesExchangeRequest{}
	if err := cer.Unmarshal(data); err != nil {
		return fmt.Errorf("failed to unmarshal CER: %w", err)
	}

	cea := base.NewCapabilitiesExchangeAnswer()
	c.fillIdentity(&cea.OriginHost, &cea.OriginRealm)
	cea.HostIpAddress = c.hostAddresses()
	cea.VendorId = models_base.Unsigned32(c.cfg.VendorID)
	cea.ProductName = models_base.UTF8String(c.cfg.ProductName)
	for _, id := range c.cfg.AuthApplicationIDs {
		cea.AuthApplicationId = append(cea.AuthApplicationId, models_base.Unsigned32(id))
	}
	for _, id := range c.cfg.AcctApplicationIDs {
		cea.AcctApplicationId = append(cea.AcctApplicationId, models_base.Unsigned32(id))
	}
	cea.Header.HopByHopID = cer.Header.HopByHopID
	cea.Header.EndToEndID = cer.Header.EndToEndID

	if err := cer.Validate(); err != nil {
		logger.Log.Warnw("Rejecting CER", "conn_id", c.id, "error", err)
		cea.ResultCode = models_base.Unsigned32(base.ResultCodeMissingAVP)
		cea.ErrorMessage = models_base.UTF8String(err.Error())
		if data, merr := cea.Marshal(); merr == nil {
			c.writeNow(data)
		}
		c.closeWith(ReasonCERRejected)
		return err
	}

	cea.ResultCode = models_base.Unsigned32(base.ResultCodeSuccess)
	data, err := cea.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal CEA: %w", err)
	}
	if err := c.send(data); err != nil {
		return err
	}

	c.markReady(string(cer.OriginHost), string(cer.OriginRealm))
	return nil
}

func (c *Conn) handleCEA(data []byte) error {
	if c.State() != StateConnected {
		logger.Log.Debugw("Ignoring CEA outside handshake", "conn_id", c.id, "state", c.State().String())
		return nil
	}

	cea := &base.CapabilitiesExchangeAnswer{}
	if err := cea.Unmarshal(data); err != nil {
		return fmt.Errorf("failed to unmarshal CEA: %w", err)
	}

	rc := base.ResultCode(cea.ResultCode)
	if !rc.Success() {
		logger.Log.Errorw("CER rejected by peer",
			"conn_id", c.id, "result_code", uint32(rc), "error_message", string(cea.ErrorMessage))
		c.closeWith(ReasonCERRejected)
		return ErrHandshakeFailed{Reason: "CER rejected", ResultCode: uint32(rc)}
	}

	c.markReady(string(cea.OriginHost), string(cea.OriginRealm))
	return nil
}

func (c *Conn) markReady(host, realm string) {
	c.mu.Lock()
	c.state = StateReady
	c.peerHost = host
	c.peerRealm = realm
	c.lastActivity = c.clock.Now()
	c.mu.Unlock()

	c.readyOnce.Do(func() { close(c.readyCh) })
	logger.Log.Infow("Capabilities exchange complete",
		"conn_id", c.id, "peer_host", host, "peer_realm", realm)
}

// ---- watchdog ----

func (c *Conn) sendDWR() {
	dwr := base.NewDeviceWatchdogRequest()
	c.fillIdentity(&dwr.OriginHost, &dwr.OriginRealm)
	dwr.Header.HopByHopID = c.nextHopByHop()
	dwr.Header.EndToEndID = c.nextEndToEnd()

	data, err := dwr.Marshal()
	if err != nil {
		logger.Log.Errorw("Failed to marshal DWR", "conn_id", c.id, "error", err)
		return
	}
	if err := c.send(data); err != nil {
		logger.Log.Warnw("Failed to send DWR", "conn_id", c.id, "error", err)
		return
	}
	logger.Log.Debugw("DWR sent", "conn_id", c.id)
}

func (c *Conn) handleDWR(dwr *base.Message) error {
	if !c.State().IsActive() {
		logger.Log.Debugw("Ignoring DWR outside active state", "conn_id", c.id, "state", c.State().String())
		return nil
	}

	dwa := base.NewDeviceWatchdogAnswer()
	c.fillIdentity(&dwa.OriginHost, &dwa.OriginRealm)
	dwa.ResultCode = models_base.Unsigned32(base.ResultCodeSuccess)
	dwa.Header.HopByHopID = dwr.Header.HopByHopID
	dwa.Header.EndToEndID = dwr.Header.EndToEndID

	data, err := dwa.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal DWA: %w", err)
	}
	logger.Log.Debugw("DWR received, sending DWA", "conn_id", c.id)
	return c.send(data)
}

func (c *Conn) handleDWA(data []byte) error {
	dwa := &base.DeviceWatchdogAnswer{}
	if err := dwa.Unmarshal(data); err != nil {
		return fmt.Errorf("failed to unmarshal DWA: %w", err)
	}

	c.mu.Lock()
	if c.state != StateWaitingDWA {
		c.mu.Unlock()
		logger.Log.Debugw("Ignoring DWA with no DWR outstanding", "conn_id", c.id)
		return nil
	}
	rc := base.ResultCode(dwa.ResultCode)
	if rc.Success() {
		c.state = StateReady
		c.dwrSentAt = time.Time{}
		c.lastActivity = c.clock.Now()
		c.mu.Unlock()
		logger.Log.Debugw("DWA received", "conn_id", c.id)
		return nil
	}
	c.mu.Unlock()

	logger.Log.Warnw("DWA carried failure result, disconnecting",
		"conn_id", c.id, "result_code", uint32(rc))
	return c.beginDisconnect(base.DisconnectDoNotWantToTalkToYou, ReasonUnknown)
}

// ---- disconnect ----

func (c *Conn) beginDisconnect(cause models_base.Enumerated, reason DisconnectReason) error {
	c.mu.Lock()
	if c.state == StateClosing || c.state == StateClosed {
		c.mu.Unlock()
		return nil
	}
	c.state = StateClosing
	c.reason = reason
	c.dprSentAt = c.clock.Now()
	c.mu.Unlock()

	dpr := base.NewDisconnectPeerRequest()
	c.fillIdentity(&dpr.OriginHost, &dpr.OriginRealm)
	dpr.DisconnectCause = cause
	dpr.Header.HopByHopID = c.nextHopByHop()
	dpr.Header.EndToEndID = c.nextEndToEnd()

	data, err := dpr.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal DPR: %w", err)
	}
	logger.Log.Infow("DPR sent", "conn_id", c.id, "cause", int32(cause))
	return c.send(data)
}

func (c *Conn) handleDPR(data []byte) error {
	dpr := &base.DisconnectPeerRequest{}
	if err := dpr.Unmarshal(data); err != nil {
		return fmt.Errorf("failed to unmarshal DPR: %w", err)
	}

	reason := ReasonCleanShutdown
	if int32(dpr.DisconnectCause) == base.DisconnectBusy {
		reason = ReasonBusy
	}

	dpa := base.NewDisconnectPeerAnswer()
	c.fillIdentity(&dpa.OriginHost, &dpa.OriginRealm)
	dpa.ResultCode = models_base.Unsigned32(base.ResultCodeSuccess)
	dpa.Header.HopByHopID = dpr.Header.HopByHopID
	dpa.Header.EndToEndID = dpr.Header.EndToEndID

	out, err := dpa.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal DPA: %w", err)
	}

	c.mu.Lock()
	if c.state != StateClosed {
		c.state = StateClosing
		if c.reason == ReasonNone {
			c.reason = reason
		}
	}
	c.mu.Unlock()

	logger.Log.Infow("DPR received, sending DPA and closing",
		"conn_id", c.id, "cause", int32(dpr.DisconnectCause))

	// Written directly so the DPA reaches the wire before the transport
	// goes down.
	c.writeNow(out)
	c.closeWith(reason)
	return nil
}

func (c *Conn) handleDPA(data []byte) error {
	dpa := &base.DisconnectPeerAnswer{}
	if err := dpa.Unmarshal(data); err != nil {
		return fmt.Errorf("failed to unmarshal DPA: %w", err)
	}
	if c.State() != StateClosing {
		logger.Log.Debugw("Ignoring DPA with no DPR outstanding", "conn_id", c.id)
		return nil
	}
	logger.Log.Infow("DPA received", "conn_id", c.id, "result_code", uint32(dpa.ResultCode))
	c.closeWith(ReasonCleanShutdown)
	return nil
}

// ---- I/O loops ----

func (c *Conn) startReadLoop() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		for {
			data, err := c.tc.ReadMessage()
			if err != nil {
				if c.ctx.Err() == nil {
					logger.Log.Errorw("Read failed", "conn_id", c.id, "error", err)
					c.closeWith(ReasonTransportError)
				}
				return
			}

			c.stats.MessagesReceived.Add(1)
			c.stats.BytesReceived.Add(uint64(len(data)))

			if err := c.dispatch(data); err != nil {
				logger.Log.Errorw("Failed to dispatch message", "conn_id", c.id, "error", err)
			}
		}
	}()
}

func (c *Conn) startWriteLoop() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		for {
			select {
			case <-c.ctx.Done():
				return
			case data := <-c.sendCh:
				if err := c.tc.WriteMessage(data); err != nil {
					if c.ctx.Err() == nil {
						logger.Log.Errorw("Write failed", "conn_id", c.id, "error", err)
						c.closeWith(ReasonTransportError)
					}
					return
				}
				c.stats.MessagesSent.Add(1)
				c.stats.BytesSent.Add(uint64(len(data)))
				c.touch()
			}
		}
	}()
}

// dispatch routes one framed message. Base-protocol lifecycle commands
// are handled here; answers are matched to pending requests; everything
// else is an application request for the node's handler. A decode
// failure fails this message only, never the stream, because framing
// already succeeded upstream.
func (c *Conn) dispatch(data []byte) error {
	msg, err := base.ParseMessage(data)
	if err != nil {
		return err
	}

	c.touch()

	if msg.Header.ApplicationID == base.AppBase {
		switch msg.Header.CommandCode {
		case base.CodeCapabilitiesExchange:
			if msg.Header.Flags.Request {
				return c.handleCER(data)
			}
			return c.handleCEA(data)
		case base.CodeDeviceWatchdog:
			if msg.Header.Flags.Request {
				return c.handleDWR(msg)
			}
			return c.handleDWA(data)
		case base.CodeDisconnectPeer:
			if msg.Header.Flags.Request {
				return c.handleDPR(data)
			}
			return c.handleDPA(data)
		}
	}

	if !msg.Header.Flags.Request {
		c.deliverAnswer(msg)
		return nil
	}

	select {
	case c.recvCh <- msg:
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		logger.Log.Warnw("Receive buffer full, dropping request",
			"conn_id", c.id, "command_code", msg.Header.CommandCode)
	}
	return nil
}

func (c *Conn) deliverAnswer(msg *base.Message) {
	c.pendingMu.RLock()
	respCh, exists := c.pending[msg.Header.HopByHopID]
	c.pendingMu.RUnlock()

	if !exists {
		logger.Log.Debugw("No pending request for answer",
			"conn_id", c.id, "hop_by_hop_id", msg.Header.HopByHopID)
		return
	}
	select {
	case respCh <- msg:
	default:
	}
}

func (c *Conn) registerPending(hopByHopID uint32, ch chan *base.Message) {
	c.pendingMu.Lock()
	c.pending[hopByHopID] = ch
	c.pendingMu.Unlock()
}

func (c *Conn) unregisterPending(hopByHopID uint32) {
	c.pendingMu.Lock()
	delete(c.pending, hopByHopID)
	c.pendingMu.Unlock()
}

// send queues internal traffic, blocking until the write loop takes it
// or the connection dies.
func (c *Conn) send(data []byte) error {
	select {
	case c.sendCh <- data:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed{ConnID: c.id, Reason: c.Reason()}
	}
}

func (c *Conn) writeNow(data []byte) {
	if err := c.tc.WriteMessage(data); err != nil {
		logger.Log.Warnw("Direct write failed", "conn_id", c.id, "error", err)
		return
	}
	c.stats.MessagesSent.Add(1)
	c.stats.BytesSent.Add(uint64(len(data)))
	c.touch()
}

func (c *Conn) closeWith(reason DisconnectReason) {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	prev := c.state
	c.state = StateClosed
	if c.reason == ReasonNone {
		c.reason = reason
	}
	reason = c.reason
	c.mu.Unlock()

	c.cancel()
	c.tc.Close()
	c.closeOnce.Do(func() { close(c.closedCh) })

	logger.Log.Infow("Peer connection closed",
		"conn_id", c.id, "prev_state", prev.String(), "reason", reason.String())
}

func (c *Conn) touch() {
	c.mu.Lock()
	c.lastActivity = c.clock.Now()
	c.mu.Unlock()
}

func (c *Conn) fillIdentity(host, realm *models_base.DiameterIdentity) {
	*host = models_base.DiameterIdentity(c.cfg.OriginHost)
	*realm = models_base.DiameterIdentity(c.cfg.OriginRealm)
}

func (c *Conn) hostAddresses() []models_base.Address {
	hosts := c.cfg.HostIPAddresses
	if len(hosts) == 0 {
		if host, _, err := net.SplitHostPort(c.tc.LocalAddr().String()); err == nil {
			hosts = []string{host}
		} else {
			hosts = []string{"127.0.0.1"}
		}
	}
	addrs := make([]models_base.Address, 0, len(hosts))
	for _, h := range hosts {
		ip := net.ParseIP(h)
		if ip == nil {
			continue
		}
		addrs = append(addrs, models_base.NewAddressIP(ip))
	}
	return addrs
}

func (c *Conn) nextHopByHop() uint32 { return c.hopByHop.Add(1) }
func (c *Conn) nextEndToEnd() uint32 { return c.endToEnd.Add(1) }
