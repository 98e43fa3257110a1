//go:build !tinygo && !baremetal

// This file is built only for non-embedded targets (host-based testing
// and simulation).
package parkinglot

import (
	"github.com/jkieltyka15/smart-wsn-parking-lot/driver/stub"
	"github.com/jkieltyka15/smart-wsn-parking-lot/transport"
)

// Host builds attach every radio constructed in-process to one shared
// simulated medium, so a whole lot can run inside a single binary.
var hostMedium = stub.NewMedium()

// NewRadio returns a driver attached to the shared simulated medium.
func NewRadio() transport.RadioDriver { return hostMedium.Attach() }

// Medium exposes the shared simulated medium for scripting in tests and
// simulations.
func Medium() *stub.Medium { return hostMedium }
