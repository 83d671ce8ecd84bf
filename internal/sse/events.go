package sse

// SSE event type constants
const (
	EventRegions     = "regions"
	EventNavRedirect = "nav-redirect"
)

// BufferSize is the buffer size for SSE message channels
const BufferSize = 16
