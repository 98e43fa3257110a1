package protocol

// Message is the header every record carries: who it is for, who put it on
// the air, and the kind of record that follows.
//
// UpdateMessage layout on air:
//
//	+--------+--------+--------+----------+--------+
//	| RxID   | TxID   | Kind   | OriginID | Vacant |
//	+--------+--------+--------+----------+--------+
//	| 1 byte | 1 byte | 1 byte | 1 byte   | 1 byte |
//	+--------+--------+--------+----------+--------+
//
// The record is a flat byte-for-byte copy of the struct; the radio link
// frames and checksums packets on its own, so there is no length prefix or
// CRC at this layer. Field order is fixed across the fleet.
type Message struct {
	RxID NodeID
	TxID NodeID
	Kind byte
}

// UpdateMessage reports one space's vacancy to another node. OriginID names
// the node the reading came from, which is not necessarily TxID once a
// record has been relayed.
type UpdateMessage struct {
	Message
	OriginID NodeID
	Vacant   bool
}

// NewUpdate builds an update record originated by the sending node itself.
func NewUpdate(rx, tx, origin NodeID, vacant bool) *UpdateMessage {
	return &UpdateMessage{
		Message:  Message{RxID: rx, TxID: tx, Kind: KindUpdate},
		OriginID: origin,
		Vacant:   vacant,
	}
}

// EncodeUpdate serialises an update record into its on-air bytes.
func EncodeUpdate(m *UpdateMessage) []byte {
	if m == nil {
		return make([]byte, 0)
	}

	data := make([]byte, UpdateSize)
	data[0] = byte(m.RxID)
	data[1] = byte(m.TxID)
	data[2] = m.Kind
	data[3] = byte(m.OriginID)
	if m.Vacant {
		data[4] = 1
	}

	return data
}

// DecodeUpdate reinterprets a received buffer as an update record. Returns
// nil if the buffer cannot be one.
func DecodeUpdate(data []byte) *UpdateMessage {
	if len(data) < UpdateSize {
		return nil
	}
	if data[2] != KindUpdate {
		return nil
	}

	return &UpdateMessage{
		Message:  Message{RxID: NodeID(data[0]), TxID: NodeID(data[1]), Kind: data[2]},
		OriginID: NodeID(data[3]),
		Vacant:   data[4] != 0,
	}
}

// ValidFor reports whether a decoded record may be trusted by the node with
// identity self: it must be addressed to self and carry in-range sender and
// origin ids. A record failing this check is a protocol violation and must
// be dropped without any response.
func (m *UpdateMessage) ValidFor(self NodeID) bool {
	if m.RxID != self {
		return false
	}
	if int(m.TxID) > MaxSensorNodes || int(m.OriginID) > MaxSensorNodes {
		return false
	}
	return true
}
