//go:build tinygo || baremetal

package nrf24

// nRF24L01+ SPI commands.
const (
	cmdRRegister  = 0x00
	cmdWRegister  = 0x20
	cmdRRxPayload = 0x61
	cmdWTxPayload = 0xA0
	cmdFlushTx    = 0xE1
	cmdFlushRx    = 0xE2
	cmdRRxPlWidth = 0x60
	cmdNop        = 0xFF
	registerMask  = 0x1F
)

// nRF24L01+ register map.
const (
	regConfig     = 0x00
	regEnAA       = 0x01
	regEnRxAddr   = 0x02
	regSetupAW    = 0x03
	regSetupRetr  = 0x04
	regRFCh       = 0x05
	regRFSetup    = 0x06
	regStatus     = 0x07
	regRPD        = 0x09
	regRxAddrP0   = 0x0A
	regTxAddr     = 0x10
	regFifoStatus = 0x17
	regDynPD      = 0x1C
	regFeature    = 0x1D
)

// CONFIG bits.
const (
	configPrimRx = 1 << 0
	configPwrUp  = 1 << 1
	configCRCO   = 1 << 2
	configEnCRC  = 1 << 3
)

// STATUS bits.
const (
	statusMaxRT = 1 << 4
	statusTxDS  = 1 << 5
	statusRxDR  = 1 << 6
)

// FIFO_STATUS bits.
const fifoRxEmpty = 1 << 0

// FEATURE bits.
const featureEnDPL = 1 << 2
