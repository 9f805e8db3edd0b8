// Package network receives captured input events from the host, over UDP
// when the path is open and over WebSocket otherwise.
package network

import (
	"log/slog"
	"net"
	"time"

	"winject/internal/event"
	"winject/internal/protocol"
)

// UDPReceiver is the agent-side UDP listener that receives binary input
// events from the capture host with minimal latency.
type UDPReceiver struct {
	hostAddr  string // host address in "ip:port" format
	localPort int    // local listen port, 0 for ephemeral
	conn      *net.UDPConn
	done      chan struct{}
	log       *slog.Logger

	// OnEvent is called for each received input event.
	OnEvent func(ev event.Event)

	// dedup ring buffer for redundant packets
	dedup seqDedup
}

// seqDedup tracks recently seen sequence numbers to discard redundant
// packets. Fixed-size ring, no allocation on the hot path, O(1) lookup.
type seqDedup struct {
	ring [512]uint32
	pos  int
	seen map[uint32]struct{}
}

func newSeqDedup() seqDedup {
	return seqDedup{seen: make(map[uint32]struct{}, 512)}
}

func (d *seqDedup) isDuplicate(seq uint32) bool {
	if _, ok := d.seen[seq]; ok {
		return true
	}
	// Evict oldest entry
	old := d.ring[d.pos]
	if old != 0 {
		delete(d.seen, old)
	}
	d.ring[d.pos] = seq
	d.seen[seq] = struct{}{}
	d.pos = (d.pos + 1) % len(d.ring)
	return false
}

// NewUDPReceiver creates a new UDP receiver for the agent.
// hostAddr should be "ip:port" matching the capture host's event stream;
// localPort 0 binds an ephemeral port.
func NewUDPReceiver(hostAddr string, localPort int, logger *slog.Logger) *UDPReceiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &UDPReceiver{
		hostAddr:  hostAddr,
		localPort: localPort,
		done:      make(chan struct{}),
		log:       logger,
		dedup:     newSeqDedup(),
	}
}

// Probe tests whether UDP connectivity to the host is available.
// It sends register packets and waits for an Ack response.
// Returns true if the host replied within the timeout, false otherwise.
func (r *UDPReceiver) Probe() bool {
	hostUDP, err := net.ResolveUDPAddr("udp", r.hostAddr)
	if err != nil {
		r.log.Warn("udp probe: failed to resolve host", "addr", r.hostAddr, "err", err)
		return false
	}

	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: 0})
	if err != nil {
		r.log.Warn("udp probe: failed to bind", "err", err)
		return false
	}
	defer conn.Close()

	// Try up to 3 times with 500ms timeout each (total max ~1.5s)
	buf := make([]byte, 64)
	for attempt := 0; attempt < 3; attempt++ {
		pkt := &protocol.UDPPacket{
			Type:      protocol.UDPPacketRegister,
			Timestamp: time.Now().UnixMilli(),
		}
		conn.WriteToUDP(protocol.EncodeUDPPacket(pkt), hostUDP)

		conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			continue // timeout or error, retry
		}
		resp, err := protocol.DecodeUDPPacket(buf[:n])
		if err != nil {
			continue
		}
		if resp.Type == protocol.UDPPacketAck {
			r.log.Info("udp probe: host acked, path is open", "attempt", attempt+1)
			return true
		}
	}

	r.log.Info("udp probe: no ack after 3 attempts, path blocked")
	return false
}

// Start opens a UDP socket, registers with the host, and begins receiving.
// Call Probe() first to verify UDP connectivity before calling Start().
func (r *UDPReceiver) Start() error {
	hostUDP, err := net.ResolveUDPAddr("udp", r.hostAddr)
	if err != nil {
		return err
	}

	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: r.localPort})
	if err != nil {
		return err
	}
	r.conn = conn

	// Large read buffer for burst receives
	conn.SetReadBuffer(1 << 20) // 1 MB

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	r.log.Info("udp receiver listening", "port", localAddr.Port, "host", r.hostAddr)

	r.sendControl(protocol.UDPPacketRegister, hostUDP)

	go r.heartbeatLoop(hostUDP)
	go r.readLoop()

	return nil
}

// Stop closes the receiver socket and terminates the loops.
func (r *UDPReceiver) Stop() {
	close(r.done)
	if r.conn != nil {
		r.conn.Close()
	}
}

// heartbeatLoop sends periodic heartbeat packets to keep the registration alive.
func (r *UDPReceiver) heartbeatLoop(hostAddr *net.UDPAddr) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.sendControl(protocol.UDPPacketHeartbeat, hostAddr)
		case <-r.done:
			return
		}
	}
}

// sendControl sends a register or heartbeat packet (header-only, no payload).
func (r *UDPReceiver) sendControl(pktType uint8, addr *net.UDPAddr) {
	pkt := &protocol.UDPPacket{
		Type:      pktType,
		Timestamp: time.Now().UnixMilli(),
	}
	r.conn.WriteToUDP(protocol.EncodeUDPPacket(pkt), addr)
}

// readLoop reads and dispatches incoming binary input packets.
func (r *UDPReceiver) readLoop() {
	buf := make([]byte, 64)
	for {
		r.conn.SetReadDeadline(time.Time{}) // clear any deadline from probe
		n, _, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-r.done:
				return
			default:
				continue
			}
		}

		pkt, err := protocol.DecodeUDPPacket(buf[:n])
		if err != nil {
			r.log.Warn("udp receiver: dropping malformed packet", "len", n, "err", err)
			continue
		}

		switch pkt.Type {
		case protocol.UDPPacketRegister, protocol.UDPPacketHeartbeat, protocol.UDPPacketAck:
			continue
		}

		// Deduplicate redundant packets (same seq number)
		if r.dedup.isDuplicate(pkt.Seq) {
			continue
		}

		if r.OnEvent != nil {
			r.OnEvent(pkt.Event())
		}
	}
}
