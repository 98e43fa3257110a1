// Package transport drives a single node's radio: one-time bring-up into
// the node's own listening configuration, contended channel acquisition,
// and the scoped tune-away needed to transmit to a peer.
package transport

// Power amplifier levels, lowest to highest.
const (
	PALevelMin  uint8 = 0
	PALevelLow  uint8 = 1
	PALevelHigh uint8 = 2
	PALevelMax  uint8 = 3
)

// RadioDriver is the interface that wraps the transceiver primitives the
// protocol needs. It mirrors the nRF24L01 driver surface. Auto-ack and
// link-level retransmission are configured once at bring-up and happen
// transparently beneath every Write.
type RadioDriver interface {
	// Begin powers the radio up. False is fatal to the node.
	Begin() bool

	// One-time configuration.
	EnableDynamicPayloads()
	SetAutoAck(enable bool)
	SetRetries(delay, count uint8)
	SetAddressWidth(width uint8)
	SetPALevel(level uint8)

	// Tuning and addressing.
	SetChannel(channel uint8)
	OpenReadingPipe(pipe uint8, address uint32)
	CloseReadingPipe(pipe uint8)
	OpenWritingPipe(address uint32)

	// Mode control. Listen and transmit are mutually exclusive states.
	StartListening()
	StopListening()

	// TestCarrier reports whether the tuned channel currently has an
	// active transmission.
	TestCarrier() bool

	// Receive path.
	Available() bool
	Read(buf []byte)

	// Write transmits data to the open writing pipe and reports whether
	// the radio's auto-ack confirmed delivery.
	Write(data []byte) bool
}
