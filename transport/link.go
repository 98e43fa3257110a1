package transport

import (
	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
)

// RadioLink owns a node's steady-state listening configuration and the
// scoped excursions away from it needed to transmit to a peer.
type RadioLink struct {
	driver  RadioDriver
	arbiter *ChannelArbiter
	tuning  Tuning
	address uint32
	channel uint8
}

// NewRadioLink returns a link pinned to the node's own address and channel.
func NewRadioLink(d RadioDriver, address uint32, channel uint8, tuning Tuning) *RadioLink {
	return &RadioLink{
		driver:  d,
		arbiter: NewChannelArbiter(d),
		tuning:  tuning,
		address: address,
		channel: channel,
	}
}

// Address returns the node's own radio address.
func (l *RadioLink) Address() uint32 { return l.address }

// Channel returns the node's own radio channel.
func (l *RadioLink) Channel() uint8 { return l.channel }

// retune returns the radio to the node's own channel and reading pipe.
func (l *RadioLink) retune() {
	l.driver.SetChannel(l.channel)
	l.driver.OpenReadingPipe(proto.ReadingPipe, l.address)
}

// WithPeerChannel opens a transmit path to a peer and runs body, restoring
// the node's own listening configuration on every exit path. A failed body
// must never leave the node deaf to its own address.
func (l *RadioLink) WithPeerChannel(peerChannel uint8, peerAddress uint32, body func() bool) (ok bool) {
	defer func() {
		l.retune()
		l.driver.StartListening()
	}()

	l.driver.StopListening()
	l.driver.CloseReadingPipe(proto.ReadingPipe)
	l.driver.SetChannel(peerChannel)
	l.driver.OpenWritingPipe(peerAddress)

	return body()
}

// Send delivers one encoded record to a peer. The peer's channel is
// acquired first; if it never opens the node is retuned without ever
// having left listening mode and no write is attempted. Either way the
// node ends up listening on its own address.
func (l *RadioLink) Send(peerChannel uint8, peerAddress uint32, data []byte) bool {
	if !l.arbiter.Acquire(peerChannel, l.tuning.MaxAttempts, l.tuning.MinDelay, l.tuning.MaxDelay) {
		l.retune()
		return false
	}

	return l.WithPeerChannel(peerChannel, peerAddress, func() bool {
		return l.driver.Write(data)
	})
}
