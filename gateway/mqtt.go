// Package gateway bridges the base station's lot status to the backend.
// Sinks here hang off the base station's update path and must swallow
// their own failures: a broker outage never touches the radio protocol.
package gateway

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
)

// SpaceStatus is the JSON document published per space.
type SpaceStatus struct {
	NodeID    uint8     `json:"node_id"`
	Vacant    bool      `json:"vacant"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LotStatus is the JSON aggregate published per lot.
type LotStatus struct {
	VacantSpaces int       `json:"vacant_spaces"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MQTTPublisher publishes retained per-space and per-lot status documents,
// so late subscribers immediately see the current lot state.
type MQTTPublisher struct {
	client mqtt.Client
	prefix string
	qos    byte
}

// NewMQTTPublisher connects to the broker and returns a publisher rooted
// at topicPrefix.
func NewMQTTPublisher(brokerURL, clientID, topicPrefix string, qos byte) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(10 * time.Second).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	opts.OnConnect = func(_ mqtt.Client) {
		log.Printf("[gateway] connected to mqtt broker: %s\r\n", brokerURL)
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Printf("[gateway] mqtt connection lost: %v\r\n", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}

	return &MQTTPublisher{client: client, prefix: topicPrefix, qos: qos}, nil
}

// StatusChanged implements node.UpdateSink.
func (p *MQTTPublisher) StatusChanged(id proto.NodeID, vacant bool, vacantTotal int) {
	now := time.Now().UTC()
	p.publish(spaceTopic(p.prefix, id), SpaceStatus{NodeID: uint8(id), Vacant: vacant, UpdatedAt: now})
	p.publish(lotTopic(p.prefix), LotStatus{VacantSpaces: vacantTotal, UpdatedAt: now})
}

// Close disconnects from the broker, allowing in-flight publishes to
// finish.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}

func (p *MQTTPublisher) publish(topic string, doc interface{}) {
	payload, err := json.Marshal(doc)
	if err != nil {
		log.Printf("[gateway] marshal for %s: %v\r\n", topic, err)
		return
	}
	if token := p.client.Publish(topic, p.qos, true, payload); token.Wait() && token.Error() != nil {
		log.Printf("[gateway] publish %s: %v\r\n", topic, token.Error())
	}
}

func spaceTopic(prefix string, id proto.NodeID) string {
	return fmt.Sprintf("%s/space/%d", prefix, id)
}

func lotTopic(prefix string) string {
	return prefix + "/vacancies"
}
