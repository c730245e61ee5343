package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hsdfat8/diam-core/commands/base"
	"github.com/hsdfat8/diam-core/commands/creditcontrol"
	"github.com/hsdfat8/diam-core/dict"
	"github.com/hsdfat8/diam-core/internal/config"
	"github.com/hsdfat8/diam-core/models_base"
	"github.com/hsdfat8/diam-core/peer"
	"github.com/hsdfat8/diam-core/pkg/logger"
	"github.com/hsdfat8/diam-core/pkg/metrics"
	"github.com/hsdfat8/diam-core/store"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (YAML)")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.Errorw("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}
	logger.SetLevel(level)

	logger.Log.Infow("Starting Diameter node",
		"origin_host", cfg.Node.OriginHost,
		"origin_realm", cfg.Node.OriginRealm,
		"listen_addr", cfg.Node.ListenAddr)

	st := store.NewMemoryStore()
	handler := newCreditControlHandler(cfg.Node.OriginHost, cfg.Node.OriginRealm, st)

	node, err := peer.NewNode(cfg.PeerSettings(), handler)
	if err != nil {
		logger.Log.Errorw("Failed to create node", "error", err)
		os.Exit(1)
	}
	node.Start()

	if cfg.Node.ListenAddr != "" {
		if err := node.Listen(cfg.Node.ListenAddr); err != nil {
			logger.Log.Errorw("Failed to listen", "addr", cfg.Node.ListenAddr, "error", err)
			os.Exit(1)
		}
	}

	for _, p := range cfg.DiameterPeers() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		conn, err := node.ConnectPeer(ctx, p)
		cancel()
		if err != nil {
			logger.Log.Warnw("Failed to connect peer", "peer", p.Address, "error", err)
			continue
		}
		logger.Log.Infow("Peer connected", "peer_host", conn.PeerHost())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Log.Infow("Shutting down", "signal", sig.String())

	logger.Log.Infow(metrics.Format("inbound", node.InboundMetrics()))
	logger.Log.Infow(metrics.Format("outbound", node.OutboundMetrics()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := node.Stop(ctx); err != nil {
		logger.Log.Errorw("Shutdown failed", "error", err)
		os.Exit(1)
	}
}

// newCreditControlHandler serves CCR and STR against the store. Other
// requests get DIAMETER_UNABLE_TO_COMPLY.
func newCreditControlHandler(originHost, originRealm string, st store.Store) peer.Handler {
	return func(c *peer.Conn, req *base.Message) *base.Message {
		switch {
		case req.Header.CommandCode == base.CodeCreditControl && req.Header.Flags.Request:
			return handleCCR(originHost, originRealm, st, req)
		case req.Header.CommandCode == base.CodeSessionTermination && req.Header.Flags.Request:
			return handleSTR(originHost, originRealm, st, req)
		default:
			ans := req.Answer()
			ans.Add(dict.ResultCode, 0, models_base.Unsigned32(base.ResultCodeUnableToComply))
			ans.Add(dict.OriginHost, 0, models_base.DiameterIdentity(originHost))
			ans.Add(dict.OriginRealm, 0, models_base.DiameterIdentity(originRealm))
			return ans
		}
	}
}

func handleCCR(originHost, originRealm string, st store.Store, req *base.Message) *base.Message {
	data, err := req.Marshal()
	if err != nil {
		return nil
	}
	ccr := &creditcontrol.CreditControlRequest{}
	if err := ccr.Unmarshal(data); err != nil {
		logger.Log.Warnw("Malformed CCR", "error", err)
		return nil
	}

	cca := creditcontrol.NewCreditControlAnswer()
	cca.Header.HopByHopID = ccr.Header.HopByHopID
	cca.Header.EndToEndID = ccr.Header.EndToEndID
	cca.SessionId = ccr.SessionId
	cca.OriginHost = models_base.DiameterIdentity(originHost)
	cca.OriginRealm = models_base.DiameterIdentity(originRealm)
	cca.CCRequestType = ccr.CCRequestType
	cca.CCRequestNumber = ccr.CCRequestNumber
	cca.ResultCode = models_base.Unsigned32(base.ResultCodeSuccess)

	subscriber := ""
	if len(ccr.SubscriptionId) > 0 {
		subscriber = string(ccr.SubscriptionId[0].Data)
	}

	profile, err := st.GetProfile(subscriber)
	if err != nil {
		logger.Log.Infow("Unknown subscriber", "subscriber", subscriber, "session_id", string(ccr.SessionId))
		cca.ResultCode = models_base.Unsigned32(base.ResultCodeUnableToComply)
		return toMessage(cca)
	}
	if profile.Blocked {
		cca.ResultCode = models_base.Unsigned32(base.ResultCodeAuthorizationRejected)
		return toMessage(cca)
	}

	sess, err := st.GetSession(string(ccr.SessionId))
	if err != nil {
		sess = &store.Session{
			SessionID:    string(ccr.SessionId),
			SubscriberID: subscriber,
			OriginHost:   string(ccr.OriginHost),
		}
	}
	sess.RequestNumber = uint32(ccr.CCRequestNumber)
	for _, used := range ccr.UsedServiceUnit {
		sess.UsedUnits += uint64(used.CCTotalOctets)
	}

	if ccr.RequestedServiceUnit != nil {
		requested := uint64(ccr.RequestedServiceUnit.CCTotalOctets)
		grant := requested
		if grant > profile.Balance {
			grant = profile.Balance
		}
		if grant == 0 {
			cca.ResultCode = models_base.Unsigned32(base.ResultCodeUnableToComply)
		} else {
			profile.Balance -= grant
			cca.GrantedServiceUnit = &creditcontrol.ServiceUnit{
				CCTotalOctets: models_base.Unsigned64(grant),
			}
			cca.ValidityTime = 600
		}
	}

	if err := st.SaveProfile(profile); err != nil {
		logger.Log.Errorw("Failed to save profile", "subscriber", subscriber, "error", err)
	}
	if err := st.SaveSession(sess); err != nil {
		logger.Log.Errorw("Failed to save session", "session_id", sess.SessionID, "error", err)
	}

	if int32(ccr.CCRequestType) == creditcontrol.RequestTypeTermination {
		if err := st.DeleteSession(string(ccr.SessionId)); err != nil {
			logger.Log.Errorw("Failed to delete session", "session_id", string(ccr.SessionId), "error", err)
		}
	}
	return toMessage(cca)
}

func handleSTR(originHost, originRealm string, st store.Store, req *base.Message) *base.Message {
	data, err := req.Marshal()
	if err != nil {
		return nil
	}
	str := &base.SessionTerminationRequest{}
	if err := str.Unmarshal(data); err != nil {
		logger.Log.Warnw("Malformed STR", "error", err)
		return nil
	}

	if err := st.DeleteSession(string(str.SessionId)); err != nil {
		logger.Log.Errorw("Failed to delete session", "session_id", string(str.SessionId), "error", err)
	}

	sta := base.NewSessionTerminationAnswer()
	sta.Header.HopByHopID = str.Header.HopByHopID
	sta.Header.EndToEndID = str.Header.EndToEndID
	sta.SessionId = str.SessionId
	sta.ResultCode = models_base.Unsigned32(base.ResultCodeSuccess)
	sta.OriginHost = models_base.DiameterIdentity(originHost)
	sta.OriginRealm = models_base.DiameterIdentity(originRealm)
	return toMessage(sta)
}

func toMessage(cmd base.Command) *base.Message {
	data, err := cmd.Marshal()
	if err != nil {
		logger.Log.Errorw("Failed to marshal answer", "error", err)
		return nil
	}
	msg, err := base.ParseMessage(data)
	if err != nil {
		logger.Log.Errorw("Failed to reparse answer", "error", err)
		return nil
	}
	return msg
}
