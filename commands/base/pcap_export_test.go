package base

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/hsdfat8/diam-core/models_base"
)

// appendFrame writes one Diameter message to the capture wrapped in
// Ethernet/IPv4/TCP so the file opens cleanly in Wireshark.
func appendFrame(w *pcapgo.Writer, payload []byte, srcIP, dstIP net.IP, srcPort, dstPort layers.TCPPort, seq, ack uint32, ts time.Time) error {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		DstMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    srcIP,
		DstIP:    dstIP,
	}
	tcp := &layers.TCP{
		SrcPort: srcPort,
		DstPort: dstPort,
		Seq:     seq,
		Ack:     ack,
		ACK:     ack > 0,
		PSH:     true,
		Window:  65535,
	}
	tcp.SetNetworkLayerForChecksum(ip)

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp, gopacket.Payload(payload)); err != nil {
		return err
	}
	ci := gopacket.CaptureInfo{
		Timestamp:     ts,
		CaptureLength: len(buf.Bytes()),
		Length:        len(buf.Bytes()),
	}
	return w.WritePacket(ci, buf.Bytes())
}

// A capabilities exchange followed by a watchdog request goes out as a
// three packet capture, and reading the file back yields Diameter
// payloads that parse to the same command codes.
func TestExportHandshakeCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handshake.pcap")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create capture: %v", err)
	}
	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		t.Fatalf("write file header: %v", err)
	}

	clientIP := net.ParseIP("10.0.0.1")
	serverIP := net.ParseIP("10.0.0.2")

	cer := testCER()
	cer.Header.HopByHopID = 1
	cer.Header.EndToEndID = 1
	cerData, err := cer.Marshal()
	if err != nil {
		t.Fatalf("marshal CER: %v", err)
	}

	cea := NewCapabilitiesExchangeAnswer()
	cea.ResultCode = models_base.Unsigned32(ResultCodeSuccess)
	cea.OriginHost = "server.example.com"
	cea.OriginRealm = "example.com"
	cea.HostIpAddress = []models_base.Address{models_base.NewAddressIP(serverIP)}
	cea.VendorId = 10415
	cea.ProductName = "diam-core"
	cea.Header.HopByHopID = 1
	cea.Header.EndToEndID = 1
	ceaData, err := cea.Marshal()
	if err != nil {
		t.Fatalf("marshal CEA: %v", err)
	}

	dwr := NewDeviceWatchdogRequest()
	dwr.OriginHost = "client.example.com"
	dwr.OriginRealm = "example.com"
	dwr.Header.HopByHopID = 2
	dwr.Header.EndToEndID = 2
	dwrData, err := dwr.Marshal()
	if err != nil {
		t.Fatalf("marshal DWR: %v", err)
	}

	now := time.Now()
	seq := uint32(1000)
	if err := appendFrame(w, cerData, clientIP, serverIP, 50000, 3868, seq, 0, now); err != nil {
		t.Fatalf("write CER frame: %v", err)
	}
	if err := appendFrame(w, ceaData, serverIP, clientIP, 3868, 50000, 2000, seq+uint32(len(cerData)), now.Add(5*time.Millisecond)); err != nil {
		t.Fatalf("write CEA frame: %v", err)
	}
	if err := appendFrame(w, dwrData, clientIP, serverIP, 50000, 3868, seq+uint32(len(cerData)), 2000+uint32(len(ceaData)), now.Add(10*time.Millisecond)); err != nil {
		t.Fatalf("write DWR frame: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close capture: %v", err)
	}

	rf, err := os.Open(path)
	if err != nil {
		t.Fatalf("reopen capture: %v", err)
	}
	defer rf.Close()
	r, err := pcapgo.NewReader(rf)
	if err != nil {
		t.Fatalf("read file header: %v", err)
	}

	wantCodes := []uint32{CodeCapabilitiesExchange, CodeCapabilitiesExchange, CodeDeviceWatchdog}
	for i, want := range wantCodes {
		data, _, err := r.ReadPacketData()
		if err != nil {
			t.Fatalf("packet %d: %v", i, err)
		}
		pkt := gopacket.NewPacket(data, layers.LinkTypeEthernet, gopacket.Default)
		app := pkt.ApplicationLayer()
		if app == nil {
			t.Fatalf("packet %d has no payload", i)
		}
		msg, err := ParseMessage(app.Payload())
		if err != nil {
			t.Fatalf("packet %d payload does not parse: %v", i, err)
		}
		if msg.Header.CommandCode != want {
			t.Errorf("packet %d command = %d, want %d", i, msg.Header.CommandCode, want)
		}
	}
}
