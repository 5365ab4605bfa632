package core

// Frame is a raw text payload as delivered by the transport.
type Frame []byte

// ConnID identifies one transport-level connection. Stable for the
// connection's lifetime, never reused while the connection is open.
type ConnID string

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
