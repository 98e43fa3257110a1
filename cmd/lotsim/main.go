//go:build !tinygo && !baremetal

// Command lotsim runs a whole parking lot inside one process on the
// simulated medium: the base station plus every sensor node, each stepped
// in turn, with spaces flipping occupancy at random.
package main

import (
	"log"
	"math/rand"
	"time"

	parkinglot "github.com/jkieltyka15/smart-wsn-parking-lot"
	"github.com/jkieltyka15/smart-wsn-parking-lot/sensor"
)

type fakeRanger struct {
	rng  *rand.Rand
	near bool
}

func (f *fakeRanger) Begin() bool      { return true }
func (f *fakeRanger) ReadRange() uint8 { return 0 }

func (f *fakeRanger) ReadRangeStatus() sensor.RangeStatus {
	if f.rng.Intn(10) == 0 {
		f.near = !f.near
	}
	if f.near {
		return sensor.RangeNear
	}
	return sensor.RangeNoTarget
}

func main() {
	station, err := parkinglot.NewBaseStation()
	if err != nil {
		log.Fatalf("base station: %v", err)
	}
	if !station.Init() {
		log.Fatalf("base station: radio failed to start")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	nodes := make([]*parkinglot.SensorNode, 0, parkinglot.MaxSensorNodes)
	for id := 1; id <= parkinglot.MaxSensorNodes; id++ {
		ranger := &fakeRanger{rng: rng, near: rng.Intn(2) == 0}
		sn, err := parkinglot.NewSensorNode(parkinglot.NodeID(id), ranger)
		if err != nil {
			log.Fatalf("sensor node %d: %v", id, err)
		}
		if !sn.Init() {
			log.Fatalf("sensor node %d: peripheral failed to start", id)
		}
		nodes = append(nodes, sn)
	}

	for {
		for _, sn := range nodes {
			sn.Step()
		}
		if station.Poll() > 0 {
			log.Printf("[sim] %d of %d spaces vacant\r\n",
				station.Registry().CountVacant(), station.Registry().Spaces())
		}
		time.Sleep(250 * time.Millisecond)
	}
}
