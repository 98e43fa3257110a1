package gateway

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
)

// UpdateEvent is the record appended to the event topic for every update
// the base station applies.
type UpdateEvent struct {
	NodeID       uint8     `json:"node_id"`
	Vacant       bool      `json:"vacant"`
	VacantSpaces int       `json:"vacant_spaces"`
	ReceivedAt   time.Time `json:"received_at"`
}

// KafkaEvents appends one event per applied update, keyed by node id so a
// space's history stays ordered within its partition.
type KafkaEvents struct {
	writer *kafka.Writer
}

// NewKafkaEvents returns an event sink writing to topic on the given
// brokers.
func NewKafkaEvents(brokers []string, topic string) *KafkaEvents {
	return &KafkaEvents{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// StatusChanged implements node.UpdateSink.
func (k *KafkaEvents) StatusChanged(id proto.NodeID, vacant bool, vacantTotal int) {
	event := UpdateEvent{
		NodeID:       uint8(id),
		Vacant:       vacant,
		VacantSpaces: vacantTotal,
		ReceivedAt:   time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		log.Printf("[gateway] marshal event: %v\r\n", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(int(id))),
		Value: value,
	})
	if err != nil {
		log.Printf("[gateway] kafka write: %v\r\n", err)
	}
}

// Close flushes and closes the underlying writer.
func (k *KafkaEvents) Close() error {
	return k.writer.Close()
}
