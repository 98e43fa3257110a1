//go:build tinygo || baremetal

// This file is built only for embedded targets (using the real radio
// hardware).
package parkinglot

import (
	"machine"

	"github.com/jkieltyka15/smart-wsn-parking-lot/driver/nrf24"
	"github.com/jkieltyka15/smart-wsn-parking-lot/transport"
)

// Control pin assignments for the nRF24L01+ carrier board.
const (
	radioCEPin  = machine.D6
	radioCSNPin = machine.D8
)

// NewRadio returns a driver for the SPI-attached nRF24L01+.
func NewRadio() transport.RadioDriver {
	return nrf24.New(machine.SPI0, radioCEPin, radioCSNPin)
}
