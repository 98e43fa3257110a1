// Package parkinglot provides a façade over the parking-lot sensor network
// stack.
package parkinglot

import (
	"github.com/jkieltyka15/smart-wsn-parking-lot/node"
	"github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
	"github.com/jkieltyka15/smart-wsn-parking-lot/sensor"
	"github.com/jkieltyka15/smart-wsn-parking-lot/transport"
)

// The platform radio constructor is split into build-tag specific files:
// - constructors_nrf24.go - for embedded targets (//go:build tinygo || baremetal)
// - constructors_host.go - for development/testing (//go:build !tinygo && !baremetal)

// Re-export the types callers work with.
type (
	NodeID         = protocol.NodeID
	UpdateMessage  = protocol.UpdateMessage
	SensorNode     = node.SensorNode
	BaseStation    = node.BaseStation
	StatusRegistry = node.StatusRegistry
	UpdateSink     = node.UpdateSink
	RangeSensor    = sensor.RangeSensor
	OccupancyState = sensor.OccupancyState
)

// Error constants exposed in the public API.
var (
	ErrInvalidNode    = protocol.ErrInvalidNode
	ErrInvalidChannel = protocol.ErrInvalidChannel
)

// Constants exposed in the public API.
const (
	BaseStationID  = protocol.BaseStationID
	MaxSensorNodes = protocol.MaxSensorNodes

	StateUnknown  = sensor.StateUnknown
	StateOccupied = sensor.StateOccupied
	StateVacant   = sensor.StateVacant
)

// NewSensorNode builds a sensor node on the platform radio with the
// fleet's default tuning.
func NewSensorNode(id NodeID, ranger RangeSensor) (*SensorNode, error) {
	return node.NewSensorNode(id, NewRadio(), ranger, transport.DefaultTuning())
}

// NewBaseStation builds the base station on the platform radio with the
// fleet's default tuning.
func NewBaseStation(sinks ...UpdateSink) (*BaseStation, error) {
	return node.NewBaseStation(NewRadio(), transport.DefaultTuning(), sinks...)
}
