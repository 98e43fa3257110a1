package main

import (
	"log"
	"time"

	parkinglot "github.com/jkieltyka15/smart-wsn-parking-lot"
	"github.com/jkieltyka15/smart-wsn-parking-lot/gateway"
	"github.com/jkieltyka15/smart-wsn-parking-lot/internal/config"
	"github.com/jkieltyka15/smart-wsn-parking-lot/node"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var sinks []node.UpdateSink

	if cfg.MQTTBrokerURL != "" {
		pub, err := gateway.NewMQTTPublisher(cfg.MQTTBrokerURL, cfg.MQTTClientID, cfg.MQTTTopicPrefix, cfg.MQTTQoS)
		if err != nil {
			log.Fatalf("mqtt: %v", err)
		}
		defer pub.Close()
		sinks = append(sinks, pub)
	}

	if cfg.KafkaTopic != "" {
		events := gateway.NewKafkaEvents(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer events.Close()
		sinks = append(sinks, events)
	}

	station, err := node.NewBaseStation(parkinglot.NewRadio(), cfg.Tuning(), sinks...)
	if err != nil {
		log.Fatalf("base station: %v", err)
	}
	if !station.Init() {
		log.Fatalf("base station: radio failed to start")
	}

	log.Printf("[base] listening, tracking %d spaces\r\n", station.Registry().Spaces())

	for {
		station.Poll()
		time.Sleep(10 * time.Millisecond)
	}
}
