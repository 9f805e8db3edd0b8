// Package protocol defines the wire formats the agent speaks with a capture
// host: a JSON WebSocket envelope for the control channel and a compact
// binary UDP encoding for the latency-sensitive event stream.
package protocol

import "winject/internal/event"

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// TypeAuth is sent by the agent immediately after connection to authenticate
	TypeAuth MessageType = "auth"

	// TypeInput carries one captured input event from the host to the agent
	TypeInput MessageType = "input"

	// TypePing can be used for application-level heartbeats if needed
	TypePing MessageType = "ping"
)

// Message is the generic container for all WebSocket messages
type Message struct {
	Type  MessageType  `json:"type"`
	Auth  *AuthPayload `json:"auth,omitempty"`
	Input *event.Event `json:"input,omitempty"`
}

// AuthPayload is the payload for TypeAuth
type AuthPayload struct {
	Token        string `json:"token"`
	AgentName    string `json:"agent_name"`
	AgentVersion string `json:"agent_version"`
}
