package protocol

import (
	"encoding/binary"
	"errors"

	"winject/internal/event"
)

// UDP packet types
const (
	UDPPacketKeyEvent    uint8 = 0x01
	UDPPacketMouseButton uint8 = 0x02
	UDPPacketMouseMove   uint8 = 0x03
	UDPPacketMouseWheel  uint8 = 0x04
	UDPPacketRegister    uint8 = 0x10
	UDPPacketHeartbeat   uint8 = 0x11
	UDPPacketAck         uint8 = 0x12 // Host -> Agent: confirms UDP path is open
)

// Header: [type(1)] [seq(4)] [timestamp(8)] = 13 bytes
const UDPHeaderSize = 13

// UDPPacket represents a binary-encoded input event for low-latency UDP
// transport. Mouse coordinates are absolute screen positions; the agent
// normalizes them against its own display at injection time.
//
// Wire format per type:
//
//	KeyEvent    (0x01): header + keycode(uint16) + pressed(uint8) + mods(uint16)               = 18 bytes
//	MouseButton (0x02): header + button(uint16) + pressed(uint8) + x(int32) + y(int32) + mods  = 26 bytes
//	MouseMove   (0x03): header + x(int32) + y(int32) + mods(uint16) + dragged(uint8)           = 24 bytes
//	MouseWheel  (0x04): header + x(int32) + y(int32) + amount(uint16) + rotation(int16) + mods = 27 bytes
//	Register    (0x10): header only                                                            = 13 bytes
//	Heartbeat   (0x11): header only                                                            = 13 bytes
type UDPPacket struct {
	Type      uint8
	Seq       uint32
	Timestamp int64

	Keycode   uint16 // key event
	Pressed   uint8  // key / mouse button (1=pressed, 0=released)
	Modifiers uint16 // modifier bitmask, all event types

	Button   uint16 // mouse button ordinal
	X        int32  // absolute screen x
	Y        int32  // absolute screen y
	Dragged  uint8  // mouse move: 1 if a button is held
	Amount   uint16 // wheel notches
	Rotation int16  // wheel direction, signed
}

// EncodeUDPPacket serializes a UDPPacket to wire format.
func EncodeUDPPacket(pkt *UDPPacket) []byte {
	size := UDPHeaderSize
	switch pkt.Type {
	case UDPPacketKeyEvent:
		size += 5 // keycode(2) + pressed(1) + modifiers(2)
	case UDPPacketMouseButton:
		size += 13 // button(2) + pressed(1) + x(4) + y(4) + modifiers(2)
	case UDPPacketMouseMove:
		size += 11 // x(4) + y(4) + modifiers(2) + dragged(1)
	case UDPPacketMouseWheel:
		size += 14 // x(4) + y(4) + amount(2) + rotation(2) + modifiers(2)
	}

	buf := make([]byte, size)
	buf[0] = pkt.Type
	binary.BigEndian.PutUint32(buf[1:5], pkt.Seq)
	binary.BigEndian.PutUint64(buf[5:13], uint64(pkt.Timestamp))

	payload := buf[UDPHeaderSize:]
	switch pkt.Type {
	case UDPPacketKeyEvent:
		binary.BigEndian.PutUint16(payload[0:2], pkt.Keycode)
		payload[2] = pkt.Pressed
		binary.BigEndian.PutUint16(payload[3:5], pkt.Modifiers)
	case UDPPacketMouseButton:
		binary.BigEndian.PutUint16(payload[0:2], pkt.Button)
		payload[2] = pkt.Pressed
		binary.BigEndian.PutUint32(payload[3:7], uint32(pkt.X))
		binary.BigEndian.PutUint32(payload[7:11], uint32(pkt.Y))
		binary.BigEndian.PutUint16(payload[11:13], pkt.Modifiers)
	case UDPPacketMouseMove:
		binary.BigEndian.PutUint32(payload[0:4], uint32(pkt.X))
		binary.BigEndian.PutUint32(payload[4:8], uint32(pkt.Y))
		binary.BigEndian.PutUint16(payload[8:10], pkt.Modifiers)
		payload[10] = pkt.Dragged
	case UDPPacketMouseWheel:
		binary.BigEndian.PutUint32(payload[0:4], uint32(pkt.X))
		binary.BigEndian.PutUint32(payload[4:8], uint32(pkt.Y))
		binary.BigEndian.PutUint16(payload[8:10], pkt.Amount)
		binary.BigEndian.PutUint16(payload[10:12], uint16(pkt.Rotation))
		binary.BigEndian.PutUint16(payload[12:14], pkt.Modifiers)
	}

	return buf
}

// DecodeUDPPacket deserializes wire bytes into a UDPPacket.
func DecodeUDPPacket(data []byte) (*UDPPacket, error) {
	if len(data) < UDPHeaderSize {
		return nil, errors.New("udp: packet too short")
	}

	pkt := &UDPPacket{
		Type:      data[0],
		Seq:       binary.BigEndian.Uint32(data[1:5]),
		Timestamp: int64(binary.BigEndian.Uint64(data[5:13])),
	}

	payload := data[UDPHeaderSize:]
	switch pkt.Type {
	case UDPPacketKeyEvent:
		if len(payload) < 5 {
			return nil, errors.New("udp: key event payload too short")
		}
		pkt.Keycode = binary.BigEndian.Uint16(payload[0:2])
		pkt.Pressed = payload[2]
		pkt.Modifiers = binary.BigEndian.Uint16(payload[3:5])
	case UDPPacketMouseButton:
		if len(payload) < 13 {
			return nil, errors.New("udp: mouse button payload too short")
		}
		pkt.Button = binary.BigEndian.Uint16(payload[0:2])
		pkt.Pressed = payload[2]
		pkt.X = int32(binary.BigEndian.Uint32(payload[3:7]))
		pkt.Y = int32(binary.BigEndian.Uint32(payload[7:11]))
		pkt.Modifiers = binary.BigEndian.Uint16(payload[11:13])
	case UDPPacketMouseMove:
		if len(payload) < 11 {
			return nil, errors.New("udp: mouse move payload too short")
		}
		pkt.X = int32(binary.BigEndian.Uint32(payload[0:4]))
		pkt.Y = int32(binary.BigEndian.Uint32(payload[4:8]))
		pkt.Modifiers = binary.BigEndian.Uint16(payload[8:10])
		pkt.Dragged = payload[10]
	case UDPPacketMouseWheel:
		if len(payload) < 14 {
			return nil, errors.New("udp: mouse wheel payload too short")
		}
		pkt.X = int32(binary.BigEndian.Uint32(payload[0:4]))
		pkt.Y = int32(binary.BigEndian.Uint32(payload[4:8]))
		pkt.Amount = binary.BigEndian.Uint16(payload[8:10])
		pkt.Rotation = int16(binary.BigEndian.Uint16(payload[10:12]))
		pkt.Modifiers = binary.BigEndian.Uint16(payload[12:14])
	case UDPPacketRegister, UDPPacketHeartbeat, UDPPacketAck:
		// no payload
	default:
		return nil, errors.New("udp: unknown packet type")
	}

	return pkt, nil
}

// Event converts a decoded input packet into the internal event model.
// Control packets (Register/Heartbeat/Ack) convert to a zero-typed event
// the injector will warn about, so callers should filter them first.
func (pkt *UDPPacket) Event() event.Event {
	ev := event.Event{
		Timestamp: pkt.Timestamp,
		Modifiers: pkt.Modifiers,
	}
	switch pkt.Type {
	case UDPPacketKeyEvent:
		ev.Type = event.KeyReleased
		if pkt.Pressed != 0 {
			ev.Type = event.KeyPressed
		}
		ev.Keycode = pkt.Keycode
	case UDPPacketMouseButton:
		ev.Type = event.MouseReleased
		if pkt.Pressed != 0 {
			ev.Type = event.MousePressed
		}
		ev.Button = pkt.Button
		ev.X, ev.Y = pkt.X, pkt.Y
	case UDPPacketMouseMove:
		ev.Type = event.MouseMoved
		if pkt.Dragged != 0 {
			ev.Type = event.MouseDragged
		}
		ev.X, ev.Y = pkt.X, pkt.Y
	case UDPPacketMouseWheel:
		ev.Type = event.MouseWheel
		ev.X, ev.Y = pkt.X, pkt.Y
		ev.Amount = pkt.Amount
		ev.Rotation = pkt.Rotation
	}
	return ev
}

// FromEvent builds the UDP packet for an input event, or nil for event types
// the binary protocol does not carry.
func FromEvent(ev event.Event, seq uint32) *UDPPacket {
	pkt := &UDPPacket{
		Seq:       seq,
		Timestamp: ev.Timestamp,
		Modifiers: ev.Modifiers,
	}
	switch ev.Type {
	case event.KeyPressed, event.KeyReleased:
		pkt.Type = UDPPacketKeyEvent
		pkt.Keycode = ev.Keycode
		if ev.Type == event.KeyPressed {
			pkt.Pressed = 1
		}
	case event.MousePressed, event.MouseReleased:
		pkt.Type = UDPPacketMouseButton
		pkt.Button = ev.Button
		pkt.X, pkt.Y = ev.X, ev.Y
		if ev.Type == event.MousePressed {
			pkt.Pressed = 1
		}
	case event.MouseMoved, event.MouseDragged:
		pkt.Type = UDPPacketMouseMove
		pkt.X, pkt.Y = ev.X, ev.Y
		if ev.Type == event.MouseDragged {
			pkt.Dragged = 1
		}
	case event.MouseWheel:
		pkt.Type = UDPPacketMouseWheel
		pkt.X, pkt.Y = ev.X, ev.Y
		pkt.Amount = ev.Amount
		pkt.Rotation = ev.Rotation
	default:
		return nil
	}
	return pkt
}
