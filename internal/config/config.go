// Package config loads the daemon configuration from file and
// environment with viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/hsdfat8/diam-core/peer"
)

// Config holds the application configuration
type Config struct {
	Node    NodeConfig
	Timers  TimersConfig
	Logging LoggingConfig
	Peers   []PeerConfig
}

// NodeConfig holds the local Diameter identity and listener settings
type NodeConfig struct {
	OriginHost      string
	OriginRealm     string
	ProductName     string
	VendorID        uint32
	ListenAddr      string
	HostIPAddresses []string
	AuthAppIDs      []uint32
	AcctAppIDs      []uint32
	SendBufferSize  int
	RecvBufferSize  int
}

// TimersConfig holds the peer state machine timers
type TimersConfig struct {
	CETimeout         time.Duration
	WatchdogInterval  time.Duration
	WatchdogTimeout   time.Duration
	DisconnectTimeout time.Duration
	SweepInterval     time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string // "debug", "info", "warn", "error"
}

// PeerConfig describes one remote peer to dial at startup
type PeerConfig struct {
	Name       string
	Address    string
	URI        string
	Persistent bool
}

// Load loads configuration from file and environment variables
// Priority order (highest to lowest):
// 1. Environment variables (prefixed with DIAMCORE_)
// 2. Config file specified by configPath
// 3. config.yaml in standard paths
// 4. Hardcoded defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/diam-core")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("DIAMCORE")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file; defaults and environment variables apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("node.originHost", "diam-core.example.com")
	v.SetDefault("node.originRealm", "example.com")
	v.SetDefault("node.productName", "diam-core")
	v.SetDefault("node.vendorID", 10415)
	v.SetDefault("node.listenAddr", "0.0.0.0:3868")
	v.SetDefault("node.sendBufferSize", 64)
	v.SetDefault("node.recvBufferSize", 64)

	v.SetDefault("timers.ceTimeout", "10s")
	v.SetDefault("timers.watchdogInterval", "30s")
	v.SetDefault("timers.watchdogTimeout", "10s")
	v.SetDefault("timers.disconnectTimeout", "5s")
	v.SetDefault("timers.sweepInterval", "1s")

	v.SetDefault("logging.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Node.Validate(); err != nil {
		return fmt.Errorf("node: %w", err)
	}
	if err := c.Timers.Validate(); err != nil {
		return fmt.Errorf("timers: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	for i := range c.Peers {
		if err := c.Peers[i].Validate(); err != nil {
			return fmt.Errorf("peer %d: %w", i, err)
		}
	}
	return nil
}

// Validate validates the NodeConfig
func (c *NodeConfig) Validate() error {
	if c.OriginHost == "" {
		return fmt.Errorf("originHost is required")
	}
	if c.OriginRealm == "" {
		return fmt.Errorf("originRealm is required")
	}
	if c.ProductName == "" {
		return fmt.Errorf("productName is required")
	}
	return nil
}

// Validate validates the TimersConfig
func (c *TimersConfig) Validate() error {
	if c.CETimeout <= 0 {
		return fmt.Errorf("ceTimeout must be positive")
	}
	if c.WatchdogInterval <= 0 {
		return fmt.Errorf("watchdogInterval must be positive")
	}
	if c.WatchdogTimeout <= 0 {
		return fmt.Errorf("watchdogTimeout must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweepInterval must be positive")
	}
	return nil
}

// Validate validates the LoggingConfig
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error", "fatal":
		return nil
	default:
		return fmt.Errorf("unknown log level %q", c.Level)
	}
}

// Validate validates the PeerConfig
func (c *PeerConfig) Validate() error {
	if c.Address == "" && c.URI == "" {
		return fmt.Errorf("either address or uri is required")
	}
	if c.URI != "" {
		if _, err := peer.ParseURI(c.URI); err != nil {
			return err
		}
	}
	return nil
}

// PeerSettings converts the loaded configuration into the peer layer's
// Config.
func (c *Config) PeerSettings() peer.Config {
	return peer.Config{
		OriginHost:         c.Node.OriginHost,
		OriginRealm:        c.Node.OriginRealm,
		ProductName:        c.Node.ProductName,
		VendorID:           c.Node.VendorID,
		HostIPAddresses:    c.Node.HostIPAddresses,
		AuthApplicationIDs: c.Node.AuthAppIDs,
		AcctApplicationIDs: c.Node.AcctAppIDs,
		CETimeout:          c.Timers.CETimeout,
		WatchdogInterval:   c.Timers.WatchdogInterval,
		WatchdogTimeout:    c.Timers.WatchdogTimeout,
		DisconnectTimeout:  c.Timers.DisconnectTimeout,
		SweepInterval:      c.Timers.SweepInterval,
		SendBufferSize:     c.Node.SendBufferSize,
		RecvBufferSize:     c.Node.RecvBufferSize,
	}
}

// DiameterPeers converts the configured peer list.
func (c *Config) DiameterPeers() []peer.Peer {
	peers := make([]peer.Peer, 0, len(c.Peers))
	for _, p := range c.Peers {
		peers = append(peers, peer.Peer{
			Name:       p.Name,
			Address:    p.Address,
			URI:        p.URI,
			Persistent: p.Persistent,
		})
	}
	return peers
}
