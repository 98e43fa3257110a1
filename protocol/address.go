// Package protocol defines the parking lot's radio protocol: how a node's
// identity maps to its radio address and channel, and the wire records the
// nodes exchange. Both sides of every link depend on this package being
// their single shared definition.
package protocol

import "encoding/binary"

// NodeID identifies a node in the lot. 0 is the base station,
// 1..MaxSensorNodes are sensor nodes.
type NodeID uint8

// AddressFor derives a node's radio address from its identity. A sensor
// node's address is its id repeated in all four address bytes; the base
// station has the one fixed exception. Deterministic and pure, so sender
// and receiver always agree without any discovery protocol.
func AddressFor(id NodeID) (uint32, error) {
	if int(id) > MaxSensorNodes {
		return 0, ErrInvalidNode
	}
	if id == BaseStationID {
		return BaseStationAddress, nil
	}
	b := [AddressWidth]byte{byte(id), byte(id), byte(id), byte(id)}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ChannelFor derives a node's radio channel from its identity.
func ChannelFor(id NodeID) (uint8, error) {
	if int(id) > MaxSensorNodes {
		return 0, ErrInvalidNode
	}
	ch := uint8(id) * ChannelSpacing
	if ch > MaxChannel {
		return 0, ErrInvalidChannel
	}
	return ch, nil
}
