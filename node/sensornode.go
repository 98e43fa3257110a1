package node

import (
	"log"

	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
	"github.com/jkieltyka15/smart-wsn-parking-lot/sensor"
	"github.com/jkieltyka15/smart-wsn-parking-lot/transport"
)

// SensorNode watches one parking space and reports occupancy changes to
// the base station.
type SensorNode struct {
	*Node
	monitor *sensor.Monitor
}

// NewSensorNode builds a sensor node. The id must be a sensor identity,
// never the base station's.
func NewSensorNode(id proto.NodeID, radio transport.RadioDriver, ranger sensor.RangeSensor, tuning transport.Tuning) (*SensorNode, error) {
	if id == proto.BaseStationID {
		return nil, proto.ErrInvalidNode
	}

	n, err := newNode(id, radio, tuning)
	if err != nil {
		return nil, err
	}

	return &SensorNode{Node: n, monitor: sensor.NewMonitor(ranger)}, nil
}

// Init starts the range sensor and the radio. False is fatal to the node;
// the caller decides whether to halt or retry.
func (s *SensorNode) Init() bool {
	if !s.monitor.Begin() {
		log.Printf("[sensor %d] failed to start range sensor\r\n", s.id)
		return false
	}
	if !s.initRadio() {
		log.Printf("[sensor %d] failed to start radio\r\n", s.id)
		return false
	}
	return true
}

// State returns the space's last classified occupancy.
func (s *SensorNode) State() sensor.OccupancyState { return s.monitor.State() }

// Step runs one control-loop iteration: sample the space and, if its
// occupancy changed, report it to the base station. A dropped report is
// not retried here; the next detected change re-reports.
func (s *SensorNode) Step() bool {
	if !s.monitor.DetectChange() {
		return false
	}

	state := s.monitor.State()
	log.Printf("[sensor %d] parking space is now %s\r\n", s.id, state)

	vacant := state == sensor.StateVacant
	msg := proto.NewUpdate(proto.BaseStationID, s.id, s.id, vacant)
	if !s.sendUpdate(msg) {
		log.Printf("[sensor %d] update dropped: channel busy or send failed\r\n", s.id)
		return false
	}

	return true
}
