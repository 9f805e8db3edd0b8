package protocol

import (
	"testing"

	"winject/internal/event"
)

func TestKeyEventRoundTrip(t *testing.T) {
	pkt := &UDPPacket{
		Type:      UDPPacketKeyEvent,
		Seq:       42,
		Timestamp: 1700000000123,
		Keycode:   0xE048,
		Pressed:   1,
		Modifiers: event.MaskShiftL,
	}

	decoded, err := DecodeUDPPacket(EncodeUDPPacket(pkt))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if *decoded != *pkt {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, pkt)
	}

	ev := decoded.Event()
	if ev.Type != event.KeyPressed {
		t.Errorf("expected key_pressed, got %v", ev.Type)
	}
	if ev.Keycode != 0xE048 || ev.Modifiers != event.MaskShiftL {
		t.Errorf("unexpected event fields: %+v", ev)
	}
}

func TestMouseButtonWithNegativeCoordinates(t *testing.T) {
	// Coordinates from a monitor left of the primary display are negative
	// and must survive the unsigned wire encoding.
	pkt := &UDPPacket{
		Type:    UDPPacketMouseButton,
		Seq:     7,
		Button:  6,
		Pressed: 1,
		X:       -1440,
		Y:       -90,
	}

	decoded, err := DecodeUDPPacket(EncodeUDPPacket(pkt))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.X != -1440 || decoded.Y != -90 {
		t.Errorf("coordinates corrupted: (%d, %d)", decoded.X, decoded.Y)
	}

	ev := decoded.Event()
	if ev.Type != event.MousePressed || ev.Button != 6 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestWheelRotationSignSurvives(t *testing.T) {
	pkt := &UDPPacket{
		Type:     UDPPacketMouseWheel,
		X:        10,
		Y:        20,
		Amount:   3,
		Rotation: -1,
	}

	decoded, err := DecodeUDPPacket(EncodeUDPPacket(pkt))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Rotation != -1 {
		t.Errorf("rotation sign lost: got %d", decoded.Rotation)
	}
	if ev := decoded.Event(); ev.Rotation != -1 || ev.Amount != 3 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestDraggedFlagSelectsDragType(t *testing.T) {
	pkt := &UDPPacket{Type: UDPPacketMouseMove, X: 5, Y: 6, Dragged: 1, Modifiers: event.MaskButton1}
	decoded, err := DecodeUDPPacket(EncodeUDPPacket(pkt))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if ev := decoded.Event(); ev.Type != event.MouseDragged {
		t.Errorf("expected mouse_dragged, got %v", ev.Type)
	}

	pkt.Dragged = 0
	decoded, err = DecodeUDPPacket(EncodeUDPPacket(pkt))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if ev := decoded.Event(); ev.Type != event.MouseMoved {
		t.Errorf("expected mouse_moved, got %v", ev.Type)
	}
}

func TestControlPacketsHaveNoPayload(t *testing.T) {
	for _, typ := range []uint8{UDPPacketRegister, UDPPacketHeartbeat, UDPPacketAck} {
		data := EncodeUDPPacket(&UDPPacket{Type: typ, Seq: 1})
		if len(data) != UDPHeaderSize {
			t.Errorf("type %#x: expected header-only packet, got %d bytes", typ, len(data))
		}
		if _, err := DecodeUDPPacket(data); err != nil {
			t.Errorf("type %#x: decode failed: %v", typ, err)
		}
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", make([]byte, UDPHeaderSize-1)},
		{"unknown type", append([]byte{0x7F}, make([]byte, UDPHeaderSize-1)...)},
		{"truncated key payload", append([]byte{UDPPacketKeyEvent}, make([]byte, UDPHeaderSize-1+2)...)},
		{"truncated wheel payload", append([]byte{UDPPacketMouseWheel}, make([]byte, UDPHeaderSize-1+8)...)},
	}
	for _, tc := range cases {
		if _, err := DecodeUDPPacket(tc.data); err == nil {
			t.Errorf("%s: expected decode error", tc.name)
		}
	}
}

func TestFromEventSkipsNonWireTypes(t *testing.T) {
	for _, typ := range []event.Type{event.MouseClicked, event.KeyTyped, event.HookEnabled, event.HookDisabled} {
		if pkt := FromEvent(event.Event{Type: typ}, 1); pkt != nil {
			t.Errorf("type %v should not encode, got %+v", typ, pkt)
		}
	}
}

func TestFromEventRoundTrip(t *testing.T) {
	ev := event.Event{
		Type:      event.MouseWheel,
		Timestamp: 99,
		X:         640,
		Y:         480,
		Amount:    2,
		Rotation:  1,
	}
	pkt := FromEvent(ev, 5)
	if pkt == nil {
		t.Fatal("expected a packet")
	}
	decoded, err := DecodeUDPPacket(EncodeUDPPacket(pkt))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := decoded.Event(); got != ev {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, ev)
	}
}
