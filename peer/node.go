package peer

import (
	"context"
	"net"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"

	"github.com/hsdfat8/diam-core/commands/base"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
	"github.com/hsdfat8/diam-core/pkg/logger"
	"github.com/hsdfat8/diam-core/pkg/metrics"
)

// Handler processes one inbound application request and returns the
// answer to send back, or nil for none.
type Handler func(c *Conn, req *base.Message) *base.Message

// Node owns a set of peer connections: it accepts inbound peers, dials
// configured ones, drives every connection's timers from one sweep
// ticker, and dispatches application requests to the handler. The
// connection table is mutated only under the node's mutex; timer logic
// runs only on the sweep goroutine.
type Node struct {
	cfg     Config
	handler Handler
	clock   clockwork.Clock

	mu    sync.Mutex
	conns map[string]*Conn
	ln    net.Listener

	inbound  *metrics.CommandMetrics
	outbound *metrics.CommandMetrics

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNode creates a node with the given identity and handler. The
// handler may be nil; requests are then answered with
// DIAMETER_UNABLE_TO_COMPLY.
func NewNode(cfg Config, handler Handler) (*Node, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Node{
		cfg:      cfg,
		handler:  handler,
		clock:    clockwork.NewRealClock(),
		conns:    make(map[string]*Conn),
		inbound:  metrics.NewCommandMetrics(),
		outbound: metrics.NewCommandMetrics(),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// SetClock overrides the wall clock. Call before Start.
func (n *Node) SetClock(clk clockwork.Clock) {
	n.clock = clk
}

// Start launches the timer sweep.
func (n *Node) Start() {
	n.wg.Add(1)
	go n.sweepLoop()
	logger.Log.Infow("Node started",
		"origin_host", n.cfg.OriginHost, "origin_realm", n.cfg.OriginRealm)
}

// Listen accepts inbound peer connections on addr until the node stops.
func (n *Node) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.ln = ln
	n.mu.Unlock()

	n.wg.Add(1)
	go n.acceptLoop(ln)
	logger.Log.Infow("Listening for peers", "addr", ln.Addr().String())
	return nil
}

// Addr returns the listener address, nil when not listening.
func (n *Node) Addr() net.Addr {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ln == nil {
		return nil
	}
	return n.ln.Addr()
}

// ConnectPeer dials a peer and waits for the capabilities exchange.
func (n *Node) ConnectPeer(ctx context.Context, p Peer) (*Conn, error) {
	addr := p.Address
	if p.URI != "" {
		u, err := ParseURI(p.URI)
		if err != nil {
			return nil, err
		}
		addr = u.Addr()
	}

	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	c, err := n.adopt(nc, RoleInitiator, &p)
	if err != nil {
		return nil, err
	}
	if err := c.WaitReady(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// ConnFor returns the active connection whose peer Origin-Host matches,
// or nil.
func (n *Node) ConnFor(originHost string) *Conn {
	for _, c := range n.snapshot() {
		if c.State().IsActive() && c.PeerHost() == originHost {
			return c
		}
	}
	return nil
}

// Conns returns the live connections.
func (n *Node) Conns() []*Conn {
	return n.snapshot()
}

// InboundMetrics returns the per-command inbound request counters.
func (n *Node) InboundMetrics() *metrics.CommandMetrics { return n.inbound }

// OutboundMetrics returns the per-command outbound answer counters.
func (n *Node) OutboundMetrics() *metrics.CommandMetrics { return n.outbound }

// Stop disconnects every peer with DPR cause REBOOTING and shuts the
// node down. ctx bounds the wait for DPA exchanges; connections still
// open when it expires are dropped.
func (n *Node) Stop(ctx context.Context) error {
	n.mu.Lock()
	if n.ln != nil {
		n.ln.Close()
	}
	n.mu.Unlock()

	conns := n.snapshot()
	for _, c := range conns {
		if err := c.beginDisconnect(base.DisconnectRebooting, ReasonNodeShutdown); err != nil {
			logger.Log.Debugw("DPR failed during shutdown", "conn_id", c.ID(), "error", err)
		}
	}
	for _, c := range conns {
		select {
		case <-c.Closed():
		case <-ctx.Done():
			c.closeWith(ReasonNodeShutdown)
		}
	}

	n.cancel()
	n.wg.Wait()
	logger.Log.Infow("Node stopped", "origin_host", n.cfg.OriginHost)
	return nil
}

func (n *Node) acceptLoop(ln net.Listener) {
	defer n.wg.Done()

	for {
		nc, err := ln.Accept()
		if err != nil {
			if n.ctx.Err() == nil {
				logger.Log.Warnw("Accept failed", "error", err)
			}
			return
		}
		if _, err := n.adopt(nc, RoleResponder, nil); err != nil {
			logger.Log.Errorw("Failed to start inbound connection",
				"remote", nc.RemoteAddr().String(), "error", err)
		}
	}
}

// adopt wraps a fresh transport, registers the connection and launches
// its service goroutines. p is non-nil only for dialed peers.
func (n *Node) adopt(nc net.Conn, role Role, p *Peer) (*Conn, error) {
	c := NewConn(nc, role, n.cfg, n.clock)

	n.mu.Lock()
	n.conns[c.ID()] = c
	n.mu.Unlock()

	if err := c.Start(); err != nil {
		n.mu.Lock()
		delete(n.conns, c.ID())
		n.mu.Unlock()
		return nil, err
	}

	n.wg.Add(2)
	go n.serveConn(c)
	go n.reapConn(c, p)
	return c, nil
}

func (n *Node) serveConn(c *Conn) {
	defer n.wg.Done()

	for {
		select {
		case req := <-c.Receive():
			n.inbound.Increment(req.Header.CommandCode)
			n.handleRequest(c, req)
		case <-c.Closed():
			return
		case <-n.ctx.Done():
			return
		}
	}
}

func (n *Node) handleRequest(c *Conn, req *base.Message) {
	var ans *base.Message
	if n.handler != nil {
		ans = n.handler(c, req)
	} else {
		ans = req.Answer()
		ans.Add(dict.ResultCode, 0, models_base.Unsigned32(base.ResultCodeUnableToComply))
		ans.Add(dict.OriginHost, 0, models_base.DiameterIdentity(n.cfg.OriginHost))
		ans.Add(dict.OriginRealm, 0, models_base.DiameterIdentity(n.cfg.OriginRealm))
	}
	if ans == nil {
		return
	}

	data, err := ans.Marshal()
	if err != nil {
		logger.Log.Errorw("Failed to marshal answer",
			"conn_id", c.ID(), "command_code", ans.Header.CommandCode, "error", err)
		return
	}
	n.outbound.Increment(ans.Header.CommandCode)
	if err := c.Send(data); err != nil {
		logger.Log.Warnw("Failed to send answer", "conn_id", c.ID(), "error", err)
	}
}

// reapConn waits for the connection to die, drops it from the table and
// redials persistent peers.
func (n *Node) reapConn(c *Conn, p *Peer) {
	defer n.wg.Done()

	// Stop guarantees every connection closes before the node context
	// is cancelled, so waiting on the connection alone cannot leak.
	<-c.Closed()

	n.mu.Lock()
	delete(n.conns, c.ID())
	n.mu.Unlock()

	if p != nil && p.Persistent && c.Reason() != ReasonNodeShutdown && n.ctx.Err() == nil {
		n.wg.Add(1)
		go n.redial(*p)
	}
}

func (n *Node) redial(p Peer) {
	defer n.wg.Done()

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 0

	for {
		select {
		case <-n.ctx.Done():
			return
		default:
		}

		ctx, cancel := context.WithTimeout(n.ctx, n.cfg.CETimeout)
		_, err := n.ConnectPeer(ctx, p)
		cancel()
		if err == nil {
			logger.Log.Infow("Peer reconnected", "peer", p.Address)
			return
		}

		wait := bo.NextBackOff()
		logger.Log.Warnw("Reconnect failed",
			"peer", p.Address, "error", err, "retry_in", wait)
		select {
		case <-n.ctx.Done():
			return
		case <-n.clock.After(wait):
		}
	}
}

func (n *Node) sweepLoop() {
	defer n.wg.Done()

	ticker := n.clock.NewTicker(n.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-n.ctx.Done():
			return
		case now := <-ticker.Chan():
			for _, c := range n.snapshot() {
				c.CheckTimers(now)
			}
		}
	}
}

func (n *Node) snapshot() []*Conn {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*Conn, 0, len(n.conns))
	for _, c := range n.conns {
		out = append(out, c)
	}
	return out
}
