//go:build tinygo || baremetal

// Package nrf24 provides a transport.RadioDriver backed by a real
// nRF24L01+ transceiver over SPI. It is built only for embedded targets;
// host builds use the stub medium instead.
package nrf24

import (
	"machine"
	"time"
)

// Bus is the byte-at-a-time SPI transfer the driver needs. The machine
// package's SPI peripherals satisfy it on every port.
type Bus interface {
	Transfer(b byte) (byte, error)
}

// Driver drives one nRF24L01+ through its SPI command set. It keeps an
// internal buffer for payload transfers so the hot path does not allocate.
type Driver struct {
	spi Bus
	ce  machine.Pin
	csn machine.Pin

	width  uint8
	config byte
	buf    [33]byte // command byte + widest payload
}

// New returns a driver on the given SPI bus and control pins. Begin must
// be called before any other operation.
func New(spi Bus, ce, csn machine.Pin) *Driver {
	return &Driver{spi: spi, ce: ce, csn: csn, width: 4}
}

func (d *Driver) command(cmd byte, data []byte) byte {
	d.csn.Low()
	status, _ := d.spi.Transfer(cmd)
	for i := range data {
		data[i], _ = d.spi.Transfer(data[i])
	}
	d.csn.High()
	return status
}

func (d *Driver) readRegister(reg byte) byte {
	d.buf[0] = 0
	d.command(cmdRRegister|(reg&registerMask), d.buf[:1])
	return d.buf[0]
}

func (d *Driver) writeRegister(reg, value byte) {
	d.buf[0] = value
	d.command(cmdWRegister|(reg&registerMask), d.buf[:1])
}

func (d *Driver) writeAddress(reg byte, address uint32) {
	for i := uint8(0); i < d.width; i++ {
		d.buf[i] = byte(address >> (8 * i))
	}
	d.command(cmdWRegister|(reg&registerMask), d.buf[:d.width])
}

// Begin powers the transceiver up into standby and applies conservative
// defaults. Returns false when no chip answers on the bus.
func (d *Driver) Begin() bool {
	d.ce.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.csn.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.ce.Low()
	d.csn.High()

	// Power-on reset settling per datasheet.
	time.Sleep(5 * time.Millisecond)

	d.config = configEnCRC | configCRCO | configPwrUp
	d.writeRegister(regConfig, d.config)
	time.Sleep(2 * time.Millisecond)

	// A dead bus reads the reset value 0x08 back as 0x00 or 0xFF.
	got := d.readRegister(regConfig)
	if got == 0x00 || got == 0xFF {
		return false
	}

	d.command(cmdFlushTx, nil)
	d.command(cmdFlushRx, nil)
	d.writeRegister(regStatus, statusRxDR|statusTxDS|statusMaxRT)

	return true
}

func (d *Driver) EnableDynamicPayloads() {
	d.writeRegister(regFeature, d.readRegister(regFeature)|featureEnDPL)
	d.writeRegister(regDynPD, 0x3F)
}

func (d *Driver) SetAutoAck(enable bool) {
	if enable {
		d.writeRegister(regEnAA, 0x3F)
	} else {
		d.writeRegister(regEnAA, 0x00)
	}
}

func (d *Driver) SetRetries(delay, count uint8) {
	d.writeRegister(regSetupRetr, (delay&0x0F)<<4|count&0x0F)
}

func (d *Driver) SetAddressWidth(width uint8) {
	if width < 3 || width > 5 {
		return
	}
	d.width = width
	d.writeRegister(regSetupAW, width-2)
}

func (d *Driver) SetPALevel(level uint8) {
	setup := d.readRegister(regRFSetup) &^ 0x06
	d.writeRegister(regRFSetup, setup|(level&0x03)<<1)
}

func (d *Driver) SetChannel(channel uint8) {
	if channel > 125 {
		return
	}
	d.writeRegister(regRFCh, channel)
}

func (d *Driver) OpenReadingPipe(pipe uint8, address uint32) {
	if pipe > 5 {
		return
	}
	d.writeAddress(regRxAddrP0+pipe, address)
	d.writeRegister(regEnRxAddr, d.readRegister(regEnRxAddr)|1<<pipe)
}

func (d *Driver) CloseReadingPipe(pipe uint8) {
	if pipe > 5 {
		return
	}
	d.writeRegister(regEnRxAddr, d.readRegister(regEnRxAddr)&^(1<<pipe))
}

func (d *Driver) OpenWritingPipe(address uint32) {
	// Pipe 0 must mirror the TX address so the auto-ack comes back.
	d.writeAddress(regTxAddr, address)
	d.writeAddress(regRxAddrP0, address)
	d.writeRegister(regEnRxAddr, d.readRegister(regEnRxAddr)|1<<0)
}

func (d *Driver) StartListening() {
	d.config |= configPrimRx
	d.writeRegister(regConfig, d.config)
	d.writeRegister(regStatus, statusRxDR|statusTxDS|statusMaxRT)
	d.command(cmdFlushRx, nil)
	d.ce.High()
	// RX settling (Tstby2a) per datasheet.
	time.Sleep(130 * time.Microsecond)
}

func (d *Driver) StopListening() {
	d.ce.Low()
	d.command(cmdFlushTx, nil)
	d.config &^= configPrimRx
	d.writeRegister(regConfig, d.config)
}

// TestCarrier reads the received-power detector, which latches when any
// signal above -64 dBm is present on the tuned channel.
func (d *Driver) TestCarrier() bool {
	return d.readRegister(regRPD)&0x01 != 0
}

func (d *Driver) Available() bool {
	return d.readRegister(regFifoStatus)&fifoRxEmpty == 0
}

func (d *Driver) Read(buf []byte) {
	d.buf[0] = 0
	d.command(cmdRRxPlWidth, d.buf[:1])
	width := int(d.buf[0])
	if width == 0 || width > 32 {
		d.command(cmdFlushRx, nil)
		return
	}

	for i := 0; i < width; i++ {
		d.buf[i] = 0
	}
	d.command(cmdRRxPayload, d.buf[:width])
	copy(buf, d.buf[:width])
	d.writeRegister(regStatus, statusRxDR)
}

// Write transmits data and blocks until the radio reports an acknowledged
// delivery or exhausts its configured retransmissions.
func (d *Driver) Write(data []byte) bool {
	n := len(data)
	if n > 32 {
		n = 32
	}
	copy(d.buf[:n], data[:n])
	d.command(cmdWTxPayload, d.buf[:n])

	// Pulse CE to start the transmission.
	d.ce.High()
	time.Sleep(10 * time.Microsecond)
	d.ce.Low()

	for {
		status := d.command(cmdNop, nil)
		if status&statusTxDS != 0 {
			d.writeRegister(regStatus, statusTxDS)
			return true
		}
		if status&statusMaxRT != 0 {
			d.writeRegister(regStatus, statusMaxRT)
			d.command(cmdFlushTx, nil)
			return false
		}
	}
}
