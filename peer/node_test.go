package peer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsdfat8/diam-core/commands/base"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/models_base"
)

func nodeConfig(host string) Config {
	cfg := DefaultConfig()
	cfg.OriginHost = host
	cfg.OriginRealm = "example.com"
	cfg.VendorID = 99
	cfg.HostIPAddresses = []string{"127.0.0.1"}
	cfg.AuthApplicationIDs = []uint32{base.AppCreditControl}
	cfg.SweepInterval = 50 * time.Millisecond
	return cfg
}

func TestNodeConnectAndDispatch(t *testing.T) {
	serverCfg := nodeConfig("server.example.com")
	handler := func(c *Conn, req *base.Message) *base.Message {
		ans := req.Answer()
		ans.Add(dict.ResultCode, 0, models_base.Unsigned32(base.ResultCodeSuccess))
		ans.Add(dict.OriginHost, 0, models_base.DiameterIdentity(serverCfg.OriginHost))
		ans.Add(dict.OriginRealm, 0, models_base.DiameterIdentity(serverCfg.OriginRealm))
		return ans
	}

	server, err := NewNode(serverCfg, handler)
	require.NoError(t, err)
	server.Start()
	require.NoError(t, server.Listen("127.0.0.1:0"))

	client, err := NewNode(nodeConfig("client.example.com"), nil)
	require.NoError(t, err)
	client.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	defer server.Stop(ctx)
	defer client.Stop(ctx)

	conn, err := client.ConnectPeer(ctx, Peer{Address: server.Addr().String()})
	require.NoError(t, err)
	assert.Equal(t, StateReady, conn.State())
	assert.Equal(t, "server.example.com", conn.PeerHost())

	require.Eventually(t, func() bool {
		return server.ConnFor("client.example.com") != nil
	}, time.Second, 10*time.Millisecond)

	req := base.NewMessage(base.CodeCreditControl, base.CommandFlags{Request: true, Proxiable: true}, base.AppCreditControl)
	req.Add(dict.SessionID, 0, models_base.UTF8String("client.example.com;1;1"))
	req.Add(dict.OriginHost, 0, models_base.DiameterIdentity("client.example.com"))
	req.Add(dict.OriginRealm, 0, models_base.DiameterIdentity("example.com"))

	ans, err := conn.SendRequest(ctx, req)
	require.NoError(t, err)
	rc, ok := ans.Get("Result-Code")
	require.True(t, ok)
	assert.EqualValues(t, base.ResultCodeSuccess, rc.(models_base.Unsigned32))

	assert.EqualValues(t, 1, server.InboundMetrics().Get(base.CodeCreditControl))
	assert.EqualValues(t, 1, server.OutboundMetrics().Get(base.CodeCreditControl))
}

func TestNodeDefaultHandlerAnswersUnableToComply(t *testing.T) {
	server, err := NewNode(nodeConfig("server.example.com"), nil)
	require.NoError(t, err)
	server.Start()
	require.NoError(t, server.Listen("127.0.0.1:0"))

	client, err := NewNode(nodeConfig("client.example.com"), nil)
	require.NoError(t, err)
	client.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	defer server.Stop(ctx)
	defer client.Stop(ctx)

	conn, err := client.ConnectPeer(ctx, Peer{Address: server.Addr().String()})
	require.NoError(t, err)

	req := base.NewMessage(base.CodeAccounting, base.CommandFlags{Request: true}, base.AppBase)
	ans, err := conn.SendRequest(ctx, req)
	require.NoError(t, err)

	rc, ok := ans.Get("Result-Code")
	require.True(t, ok)
	assert.EqualValues(t, base.ResultCodeUnableToComply, rc.(models_base.Unsigned32))
}

func TestNodeStopDisconnectsPeers(t *testing.T) {
	server, err := NewNode(nodeConfig("server.example.com"), nil)
	require.NoError(t, err)
	server.Start()
	require.NoError(t, server.Listen("127.0.0.1:0"))

	client, err := NewNode(nodeConfig("client.example.com"), nil)
	require.NoError(t, err)
	client.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := client.ConnectPeer(ctx, Peer{Address: server.Addr().String()})
	require.NoError(t, err)

	require.NoError(t, client.Stop(ctx))
	assert.Equal(t, StateClosed, conn.State())
	assert.Equal(t, ReasonNodeShutdown, conn.Reason())
	assert.Empty(t, client.Conns())

	require.NoError(t, server.Stop(ctx))
}

func TestNodeRejectsInvalidConfig(t *testing.T) {
	_, err := NewNode(Config{OriginRealm: "example.com"}, nil)
	require.Error(t, err)
	assert.IsType(t, ErrInvalidConfig{}, err)
}
