//go:build !tinygo && !baremetal

package main

import (
	"log"
	"math/rand"
	"time"

	parkinglot "github.com/jkieltyka15/smart-wsn-parking-lot"
	"github.com/jkieltyka15/smart-wsn-parking-lot/internal/config"
	"github.com/jkieltyka15/smart-wsn-parking-lot/node"
	"github.com/jkieltyka15/smart-wsn-parking-lot/sensor"
)

// fakeRanger stands in for the VL6180X on host builds: the space flips
// occupancy at random, with the occasional read error thrown in.
type fakeRanger struct {
	rng  *rand.Rand
	near bool
}

func (f *fakeRanger) Begin() bool      { return true }
func (f *fakeRanger) ReadRange() uint8 { return 0 }

func (f *fakeRanger) ReadRangeStatus() sensor.RangeStatus {
	switch n := f.rng.Intn(20); {
	case n == 0:
		return sensor.RangeError
	case n < 3:
		f.near = !f.near
	}
	if f.near {
		return sensor.RangeNear
	}
	return sensor.RangeNoTarget
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.NodeID == 0 {
		log.Fatalf("config: %s must name a sensor node (1..%d)", config.EnvNodeID, parkinglot.MaxSensorNodes)
	}

	ranger := &fakeRanger{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	sn, err := node.NewSensorNode(parkinglot.NodeID(cfg.NodeID), parkinglot.NewRadio(), ranger, cfg.Tuning())
	if err != nil {
		log.Fatalf("sensor node: %v", err)
	}
	if !sn.Init() {
		log.Fatalf("sensor node: peripheral failed to start")
	}

	log.Printf("[sensor %d] watching space\r\n", sn.ID())

	for {
		sn.Step()
		time.Sleep(500 * time.Millisecond)
	}
}
