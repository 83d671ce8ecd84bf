package models

// SSEMessage represents a message sent via Server-Sent Events
type SSEMessage struct {
	Event string // Event type (e.g., "regions", "nav-redirect")
	Data  string // Single-line payload
}
