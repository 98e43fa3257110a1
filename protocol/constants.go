package protocol

import "time"

// Deployment-wide radio & protocol constants. Every node in a lot must be
// built from this one definition: a node whose constants disagree with the
// fleet's does not fail loudly, it simply derives the wrong address or
// channel and goes silent.
const (
	// BaseStationID is the reserved identity of the aggregating base station.
	BaseStationID NodeID = 0

	// BaseStationAddress is the base station's fixed radio address.
	// 0x00000000 is not a usable nRF24 address, so identity 0 gets an
	// out-of-band constant. Derived sensor addresses are always four
	// identical bytes in 1..MaxSensorNodes and can never collide with it.
	BaseStationAddress uint32 = 0xBAD1DEA5

	// MaxSensorNodes is the number of sensor nodes in a lot. With
	// ChannelSpacing = 5 the highest derived channel is 50, inside the
	// legal 0..125 range. Revisit both constants together.
	MaxSensorNodes = 10

	// ChannelSpacing is the number of channels between adjacent node
	// channels.
	ChannelSpacing = 5

	// MaxChannel is the highest channel the nRF24L01 can be tuned to.
	MaxChannel = 125

	// AddressWidth is the radio address width in bytes.
	AddressWidth = 4

	// ReadingPipe is the pipe each node listens on for its own address.
	ReadingPipe = 1

	// Auto-ack retransmission settings, applied once at bring-up and
	// handled entirely by the radio beneath this protocol.
	SendRetryDelay = 15
	SendRetryMax   = 15

	// Channel-acquisition defaults: how many times to sense a busy channel
	// before giving up and the random backoff bounds between senses.
	ChannelChecksMax    = 10
	ChannelBusyDelayMin = 25 * time.Millisecond
	ChannelBusyDelayMax = 100 * time.Millisecond

	// Message kinds.
	KindUpdate byte = 0x01

	// UpdateSize is the on-air size of an update record in bytes.
	UpdateSize = 5
)
