// Package node implements the two roles a parking-lot radio node can take:
// sensor nodes that each watch one space, and the base station that
// aggregates them. Both share one node core; only the address and channel
// derivation in the protocol package special-cases the base station's
// identity.
package node

import (
	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
	"github.com/jkieltyka15/smart-wsn-parking-lot/transport"
)

// Node is what every participant has: an identity and a radio pinned to
// the configuration derived from it.
type Node struct {
	id     proto.NodeID
	driver transport.RadioDriver
	link   *transport.RadioLink
}

func newNode(id proto.NodeID, d transport.RadioDriver, tuning transport.Tuning) (*Node, error) {
	address, err := proto.AddressFor(id)
	if err != nil {
		return nil, err
	}
	channel, err := proto.ChannelFor(id)
	if err != nil {
		return nil, err
	}

	return &Node{
		id:     id,
		driver: d,
		link:   transport.NewRadioLink(d, address, channel, tuning),
	}, nil
}

// ID returns the node's identity.
func (n *Node) ID() proto.NodeID { return n.id }

// initRadio brings the radio up into the node's steady listening state.
func (n *Node) initRadio() bool {
	return transport.Bringup(n.driver, transport.DefaultConfig(), n.link.Address(), n.link.Channel())
}

// sendUpdate delivers an update record to the node it is addressed to,
// deriving the peer's radio configuration from the record itself.
func (n *Node) sendUpdate(msg *proto.UpdateMessage) bool {
	peerAddress, err := proto.AddressFor(msg.RxID)
	if err != nil {
		return false
	}
	peerChannel, err := proto.ChannelFor(msg.RxID)
	if err != nil {
		return false
	}

	return n.link.Send(peerChannel, peerAddress, proto.EncodeUpdate(msg))
}

// readUpdate drains one pending record from the radio, if any. Malformed
// buffers decode to nil.
func (n *Node) readUpdate() *proto.UpdateMessage {
	if !n.driver.Available() {
		return nil
	}

	buf := make([]byte, proto.UpdateSize)
	n.driver.Read(buf)
	return proto.DecodeUpdate(buf)
}
