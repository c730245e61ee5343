package peer

import "time"

// Config holds the local node identity and the timer settings shared by
// every peer connection it owns.
type Config struct {
	// Identity advertised in CER/CEA, DWR and DPR.
	OriginHost  string
	OriginRealm string
	ProductName string
	VendorID    uint32

	// Host-IP-Address values for the capabilities exchange. Empty means
	// derive one from the transport's local address.
	HostIPAddresses []string

	// Application ids advertised in the capabilities exchange.
	AuthApplicationIDs []uint32
	AcctApplicationIDs []uint32

	// CETimeout bounds the whole capabilities exchange, on both sides.
	CETimeout time.Duration
	// WatchdogInterval is the idle time after which a DWR is sent.
	WatchdogInterval time.Duration
	// WatchdogTimeout bounds the wait for a DWA.
	WatchdogTimeout time.Duration
	// DisconnectTimeout bounds the wait for a DPA after sending DPR.
	DisconnectTimeout time.Duration
	// SweepInterval is the node's timer-check tick.
	SweepInterval time.Duration

	SendBufferSize int
	RecvBufferSize int
}

// DefaultConfig returns a Config with production timer defaults. The
// identity fields must still be filled in.
func DefaultConfig() Config {
	return Config{
		ProductName:       "diam-core",
		CETimeout:         10 * time.Second,
		WatchdogInterval:  30 * time.Second,
		WatchdogTimeout:   10 * time.Second,
		DisconnectTimeout: 5 * time.Second,
		SweepInterval:     time.Second,
		SendBufferSize:    64,
		RecvBufferSize:    64,
	}
}

// Validate checks the identity and timer fields.
func (c *Config) Validate() error {
	if c.OriginHost == "" {
		return ErrInvalidConfig{Field: "OriginHost", Reason: "must not be empty"}
	}
	if c.OriginRealm == "" {
		return ErrInvalidConfig{Field: "OriginRealm", Reason: "must not be empty"}
	}
	if c.CETimeout <= 0 {
		return ErrInvalidConfig{Field: "CETimeout", Reason: "must be positive"}
	}
	if c.WatchdogInterval <= 0 {
		return ErrInvalidConfig{Field: "WatchdogInterval", Reason: "must be positive"}
	}
	if c.WatchdogTimeout <= 0 {
		return ErrInvalidConfig{Field: "WatchdogTimeout", Reason: "must be positive"}
	}
	if c.SweepInterval <= 0 {
		return ErrInvalidConfig{Field: "SweepInterval", Reason: "must be positive"}
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.ProductName == "" {
		c.ProductName = def.ProductName
	}
	if c.CETimeout <= 0 {
		c.CETimeout = def.CETimeout
	}
	if c.WatchdogInterval <= 0 {
		c.WatchdogInterval = def.WatchdogInterval
	}
	if c.WatchdogTimeout <= 0 {
		c.WatchdogTimeout = def.WatchdogTimeout
	}
	if c.DisconnectTimeout <= 0 {
		c.DisconnectTimeout = def.DisconnectTimeout
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = def.SweepInterval
	}
	if c.SendBufferSize <= 0 {
		c.SendBufferSize = def.SendBufferSize
	}
	if c.RecvBufferSize <= 0 {
		c.RecvBufferSize = def.RecvBufferSize
	}
}

// Peer describes a configured remote peer the node dials.
type Peer struct {
	// Name is an optional label used in logs.
	Name string
	// Address is the host:port dial target. Ignored when URI is set.
	Address string
	// URI is an optional DiameterURI form of the dial target.
	URI string
	// Persistent peers are redialed with exponential backoff after any
	// disconnect other than a node shutdown.
	Persistent bool
}
