// Package config loads per-deployment settings from environment variables.
// Fleet-wide protocol constants (node count, channel spacing, the base
// station's address) deliberately live in the protocol package instead:
// they must be identical on every node, so they are compiled in, not
// configured.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
	"github.com/jkieltyka15/smart-wsn-parking-lot/transport"
)

const (
	EnvNodeID                = "PARKING_NODE_ID"
	EnvChannelChecksMax      = "PARKING_CHANNEL_CHECKS_MAX"
	EnvChannelBusyDelayMinMS = "PARKING_CHANNEL_BUSY_DELAY_MIN_MS"
	EnvChannelBusyDelayMaxMS = "PARKING_CHANNEL_BUSY_DELAY_MAX_MS"
	EnvMQTTBrokerURL         = "PARKING_MQTT_BROKER_URL"
	EnvMQTTClientID          = "PARKING_MQTT_CLIENT_ID"
	EnvMQTTTopicPrefix       = "PARKING_MQTT_TOPIC_PREFIX"
	EnvMQTTQoS               = "PARKING_MQTT_QOS"
	EnvKafkaBrokers          = "PARKING_KAFKA_BROKERS"
	EnvKafkaTopic            = "PARKING_KAFKA_TOPIC"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	NodeID uint8

	ChannelChecksMax    int
	ChannelBusyDelayMin time.Duration
	ChannelBusyDelayMax time.Duration

	MQTTBrokerURL   string
	MQTTClientID    string
	MQTTTopicPrefix string
	MQTTQoS         byte

	KafkaBrokers []string
	KafkaTopic   string
}

// LoadFromEnv loads and validates configuration from environment
// variables. Unset tuning values fall back to the fleet defaults.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		NodeID:              uint8(intEnvOrDefault(EnvNodeID, int(proto.BaseStationID))),
		ChannelChecksMax:    intEnvOrDefault(EnvChannelChecksMax, proto.ChannelChecksMax),
		ChannelBusyDelayMin: msEnvOrDefault(EnvChannelBusyDelayMinMS, proto.ChannelBusyDelayMin),
		ChannelBusyDelayMax: msEnvOrDefault(EnvChannelBusyDelayMaxMS, proto.ChannelBusyDelayMax),
		MQTTBrokerURL:       strings.TrimSpace(os.Getenv(EnvMQTTBrokerURL)),
		MQTTClientID:        envOrDefault(EnvMQTTClientID, "parking-base-station"),
		MQTTTopicPrefix:     envOrDefault(EnvMQTTTopicPrefix, "parking"),
		MQTTQoS:             byte(intEnvOrDefault(EnvMQTTQoS, 1)),
		KafkaTopic:          strings.TrimSpace(os.Getenv(EnvKafkaTopic)),
	}

	if v := strings.TrimSpace(os.Getenv(EnvKafkaBrokers)); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration is coherent.
func (c Config) Validate() error {
	if int(c.NodeID) > proto.MaxSensorNodes {
		return fmt.Errorf("invalid %s: must be in range 0..%d", EnvNodeID, proto.MaxSensorNodes)
	}
	if c.ChannelChecksMax <= 0 {
		return fmt.Errorf("invalid %s: must be > 0", EnvChannelChecksMax)
	}
	if c.ChannelBusyDelayMin <= 0 {
		return fmt.Errorf("invalid %s: must be > 0", EnvChannelBusyDelayMinMS)
	}
	if c.ChannelBusyDelayMax < c.ChannelBusyDelayMin {
		return fmt.Errorf("invalid %s: must be >= %s", EnvChannelBusyDelayMaxMS, EnvChannelBusyDelayMinMS)
	}
	if c.MQTTQoS > 2 {
		return fmt.Errorf("invalid %s: must be 0, 1 or 2", EnvMQTTQoS)
	}
	if c.KafkaTopic != "" && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("invalid %s: required when %s is set", EnvKafkaBrokers, EnvKafkaTopic)
	}
	if c.KafkaTopic == "" && len(c.KafkaBrokers) > 0 {
		return fmt.Errorf("invalid %s: required when %s is set", EnvKafkaTopic, EnvKafkaBrokers)
	}
	return nil
}

// Tuning returns the channel-acquisition bounds this deployment runs with.
func (c Config) Tuning() transport.Tuning {
	return transport.Tuning{
		MaxAttempts: c.ChannelChecksMax,
		MinDelay:    c.ChannelBusyDelayMin,
		MaxDelay:    c.ChannelBusyDelayMax,
	}
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnvOrDefault(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func msEnvOrDefault(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return time.Duration(n) * time.Millisecond
}
