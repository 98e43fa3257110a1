package node

import (
	"log"

	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
	"github.com/jkieltyka15/smart-wsn-parking-lot/transport"
)

// UpdateSink receives every update the base station applies to its
// registry. Sink failures must never reach the radio path; implementations
// log and move on.
type UpdateSink interface {
	StatusChanged(id proto.NodeID, vacant bool, vacantTotal int)
}

// BaseStation aggregates occupancy reports from every sensor node in the
// lot.
type BaseStation struct {
	*Node
	registry *StatusRegistry
	sinks    []UpdateSink
}

// NewBaseStation builds the base station with an empty (all-occupied)
// registry. Applied updates are fanned out to the given sinks.
func NewBaseStation(radio transport.RadioDriver, tuning transport.Tuning, sinks ...UpdateSink) (*BaseStation, error) {
	n, err := newNode(proto.BaseStationID, radio, tuning)
	if err != nil {
		return nil, err
	}

	return &BaseStation{
		Node:     n,
		registry: NewStatusRegistry(proto.MaxSensorNodes),
		sinks:    sinks,
	}, nil
}

// Init brings the radio up. False is fatal to the station; the caller
// decides whether to halt or retry.
func (b *BaseStation) Init() bool {
	if !b.initRadio() {
		log.Printf("[base] failed to start radio\r\n")
		return false
	}
	return true
}

// Registry exposes the lot's status table.
func (b *BaseStation) Registry() *StatusRegistry { return b.registry }

// Poll drains every pending record and applies the valid ones to the
// registry, returning how many were applied. A malformed or foreign record
// must not destabilise the station, so it is discarded without response.
func (b *BaseStation) Poll() int {
	applied := 0

	for b.driver.Available() {
		msg := b.readUpdate()
		if msg == nil || !msg.ValidFor(b.id) {
			continue
		}
		if !b.registry.Update(msg.OriginID, msg.Vacant) {
			continue
		}

		applied++
		total := b.registry.CountVacant()
		status := "occupied"
		if msg.Vacant {
			status = "vacant"
		}
		log.Printf("[base] space %d is now %s (%d vacant)\r\n", msg.OriginID, status, total)

		for _, sink := range b.sinks {
			sink.StatusChanged(msg.OriginID, msg.Vacant, total)
		}
	}

	return applied
}
